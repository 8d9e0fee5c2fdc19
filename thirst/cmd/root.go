// Package cmd provides the command-line interface for thirst.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/thirst/config"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "thirst",
		Short: "Simulate a workday of a thirsty office worker.",
		Long: `thirst simulates one workday hour by hour. Each hour a thirsty ` +
			`user drinks from a glass, which an intern refills when it is ` +
			`empty, and then works until the next hour.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return config.LoadDotEnv()
		},
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command line and exits. Handlers registered with atexit,
// such as the flush of the data recorder, run before the program exits.
func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sarchlab/thirst/config"
	"github.com/sarchlab/thirst/hydration"
	"github.com/sarchlab/thirst/logging"
	"github.com/sarchlab/thirst/simulation"
	"github.com/sarchlab/thirst/workday"
)

type runOptions struct {
	configFile   string
	seed         int64
	workDuration time.Duration
	record       bool
	output       string
	lunchHour    int
	logLevel     string
	traceEvents  bool
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulated workday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			return runDay(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.traceEvents)
		},
	}

	flags := runCmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "",
		"TOML file with the workday configuration")
	flags.Int64Var(&opts.seed, "seed", 0,
		"seed of the random thirst and name")
	flags.DurationVar(&opts.workDuration, "work-duration", time.Second,
		"wall-clock time spent working in each hour")
	flags.BoolVar(&opts.record, "record", false,
		"record the day into a SQLite database")
	flags.StringVar(&opts.output, "output", "",
		"database file name without the .sqlite3 extension")
	flags.IntVar(&opts.lunchHour, "lunch-hour", 0,
		"hour in which the user rests instead of working")
	flags.StringVar(&opts.logLevel, "log-level", "",
		"trace, debug, info, warn, error, or disabled")
	flags.BoolVar(&opts.traceEvents, "trace-events", false,
		"log every simulation event at debug level")

	return runCmd
}

// resolve layers the configuration: defaults, file, environment, then
// flags that are explicitly set.
func (o runOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if o.configFile != "" {
		var err error

		cfg, err = config.Load(o.configFile)
		if err != nil {
			return config.Config{}, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("seed") {
		seed := o.seed
		cfg.User.Seed = &seed
	}

	if flags.Changed("work-duration") {
		cfg.User.WorkDuration = o.workDuration
	}

	if flags.Changed("record") {
		cfg.Recording.Enabled = o.record
	}

	if flags.Changed("output") {
		cfg.Recording.Enabled = true
		cfg.Recording.Output = o.output
	}

	if flags.Changed("lunch-hour") {
		lunch := o.lunchHour
		cfg.Schedule.LunchHour = &lunch
	}

	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	logCfg := logging.DefaultConfig(logging.ProfileRuntime)
	if lvl, ok := logging.ParseLevel(cfg.Log.Level); ok {
		logCfg.Level = lvl
	}
	logging.ApplyEnv(&logCfg)

	return logging.New(w, logCfg)
}

func runDay(
	cfg config.Config,
	out io.Writer,
	logOut io.Writer,
	traceEvents bool,
) error {
	logger := newLogger(cfg, logOut)

	seed := time.Now().UnixNano()
	if cfg.User.Seed != nil {
		seed = *cfg.User.Seed
	}

	name := cfg.User.Name
	if name == "" {
		name = hydration.RandomName(rand.New(rand.NewSource(seed)))
	}

	builder := simulation.MakeBuilder().WithLogger(logger)
	if !cfg.Recording.Enabled {
		builder = builder.WithoutRecording()
	} else if cfg.Recording.Output != "" {
		if err := outputMustBeNew(cfg.Recording.Output); err != nil {
			return err
		}

		builder = builder.WithOutputFileName(cfg.Recording.Output)
	}

	if traceEvents {
		builder = builder.WithEventLogging()
	}

	s := builder.Build()

	day := workday.MakeBuilder().
		WithEngine(s.GetEngine()).
		WithSchedule(cfg.WorkSchedule()).
		WithGlass(hydration.NewGlass(cfg.Glass.InitialVolume)).
		WithUser(hydration.NewUser(name,
			hydration.SleepPacer{Duration: cfg.User.WorkDuration})).
		WithThirstPicker(hydration.NewRandomThirst(cfg.User.ThirstLevels, seed)).
		Build("Office.Day")
	s.RegisterComponent(day)

	logger.Debug().
		Str("simulation", s.ID()).
		Int64("seed", seed).
		Msg("simulation built")

	day.Start()
	err := s.Run()
	s.Terminate()

	if err != nil {
		return fmt.Errorf("run workday: %w", err)
	}

	printSummary(out, day.Summary(), s.OutputPath())

	return nil
}

// outputMustBeNew returns an error if the database file of the output is
// already there. The recorder never overwrites a previous recording.
func outputMustBeNew(output string) error {
	filename := output + ".sqlite3"

	_, err := os.Stat(filename)
	switch {
	case err == nil:
		return fmt.Errorf("output %s: %w", filename, os.ErrExist)
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("output %s: %w", filename, err)
	}

	return nil
}

func printSummary(w io.Writer, summary workday.Summary, outputPath string) {
	fmt.Fprintf(w, "User:         %s\n", summary.User)
	fmt.Fprintf(w, "Office hours: %02d:00 - %02d:00\n",
		summary.StartHour, summary.EndHour)
	fmt.Fprintf(w, "Hours worked: %d\n", summary.Hours)
	fmt.Fprintf(w, "Refills:      %d\n", summary.Refills)
	fmt.Fprintf(w, "Total drunk:  %dml\n", summary.TotalDrunk)
	fmt.Fprintf(w, "Glass left:   %dml\n", summary.FinalVolume)

	if outputPath != "" {
		fmt.Fprintf(w, "Recorded in:  %s\n", outputPath)
	}
}

// Package main is the entry of the thirst binary.
package main

import "github.com/sarchlab/thirst/thirst/cmd"

func main() {
	cmd.Execute()
}

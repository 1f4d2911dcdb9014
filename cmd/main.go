package main

// Entry point of the sample report tool
// Runs the Cobra command tree and maps any error to exit code 1

import (
	"fmt"
	"os"

	"sample-report/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	command := NewRootCommand(os.Stdout, os.Stderr)
	if err := command.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err) //nolint:errcheck
		}
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"poe-show/pkg"
	"poe-show/pkg/poe"
)

// Exit codes of the show command
const (
	// ExitCodeSuccess indicates successful execution, including "no data" reports
	ExitCodeSuccess = 0
	// ExitCodeError indicates a store failure or malformed store data
	ExitCodeError = 1
	// ExitCodeUsage indicates an invalid argument
	ExitCodeUsage = 2
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	rootCmd, err := newRootCmd()
	if err != nil {
		pkg.Fatal("Failed to build command tree: %v", err)
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`{{printf "show version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(handleError(os.Stderr, err))
	}
}

// handleError reports err and returns the exit code for it. Input errors
// have already been reported on stdout by the command.
func handleError(w io.Writer, err error) int {
	var inputErr *poe.InputError
	if errors.As(err, &inputErr) {
		pkg.Debug("%v", err)
		return ExitCodeUsage
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	return ExitCodeError
}

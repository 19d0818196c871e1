// Package main is the entrypoint of mediafetch.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mediafetch/internal/cfg"
	"mediafetch/internal/command/execute"
	"mediafetch/internal/domain/consts"
	"mediafetch/internal/domain/errconsts"
	"mediafetch/internal/utils/logging"
)

// Exit codes.
const (
	exitUsage  = 1
	exitLaunch = 2
)

// main is the main entrypoint of the program (duh!).
func main() {
	os.Exit(exitCode(cfg.Execute(context.Background())))
}

// exitCode reports err and picks the process exit code for it.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var dlErr *execute.DownloadFailedError
	switch {
	case errors.As(err, &dlErr):
		if dlErr.ExitCode > 0 {
			return dlErr.ExitCode
		}
		return exitUsage

	case errors.Is(err, errconsts.ErrToolLaunch):
		logging.E(0, "%v", err)
		return exitLaunch

	case errors.Is(err, errconsts.ErrNoLink):
		fmt.Fprintln(os.Stderr, consts.Usage)
		return exitUsage

	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, consts.Usage)
		return exitUsage
	}
}

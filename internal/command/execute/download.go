// Package execute runs built download commands.
package execute

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"mediafetch/internal/domain/errconsts"
	"mediafetch/internal/utils/logging"
)

// DownloadFailedError reports a download tool that ran but exited unsuccessfully.
type DownloadFailedError struct {
	ExitCode int
}

func (e *DownloadFailedError) Error() string {
	return fmt.Sprintf(errconsts.YTDLPFailure, e.ExitCode)
}

// Result holds the outcome of a finished download command.
type Result struct {
	ExitCode int
	Stderr   string
}

// Success reports whether the tool exited with status 0.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// RunDownload starts cmd and blocks until it exits.
//
// The tool's stdout and stderr are streamed live; stderr is also captured into the
// Result. A failure to start the tool returns an error wrapping errconsts.ErrToolLaunch.
// A non-zero exit is not an error, it is reported through the Result.
func RunDownload(cmd *exec.Cmd, stdin io.Reader, stdout, stderr io.Writer) (*Result, error) {
	if cmd == nil {
		return nil, errors.New("download command is nil")
	}

	var captured bytes.Buffer

	// Only inherit a real file, a plain reader keeps Wait blocked until it hits EOF.
	if f, ok := stdin.(*os.File); ok {
		cmd.Stdin = f
	}
	cmd.Stdout = stdout
	if stderr != nil {
		cmd.Stderr = io.MultiWriter(stderr, &captured)
	} else {
		cmd.Stderr = &captured
	}

	logging.D(1, "Executing download command: %s", cmd.String())
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w %q: %w", errconsts.ErrToolLaunch, cmd.Path, err)
	}

	waitErr := cmd.Wait()
	res := &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stderr:   captured.String(),
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return res, fmt.Errorf("failed waiting for download command: %w", waitErr)
		}
		logging.D(1, "Download command exited with status %d", res.ExitCode)
	}
	return res, nil
}

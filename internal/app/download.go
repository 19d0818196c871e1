// Package app contains core application functionality.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"mediafetch/internal/command/builder"
	"mediafetch/internal/command/execute"
	"mediafetch/internal/domain/consts"
	"mediafetch/internal/domain/errconsts"
	"mediafetch/internal/models"
	"mediafetch/internal/utils/logging"
	"mediafetch/internal/validation"

	"github.com/alessio/shellescape"
)

// Options controls how a resolved request is carried out.
type Options struct {
	DryRun        bool
	PropagateExit bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Download maps the request onto a yt-dlp invocation, runs it, and reports the outcome.
//
// A failed download is reported but only returned as an error when
// PropagateExit is set.
func Download(ctx context.Context, req *models.DownloadRequest, opts Options) error {
	if req == nil || req.Link == "" {
		return errconsts.ErrNoLink
	}
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	sel := builder.SelectFormat(req.Quality, req.Link, req.Extension)
	for _, w := range sel.Warnings {
		logging.W(0, "%s", w)
	}
	logging.D(1, "Quality %q, format %q, post-processing %s", req.Quality, sel.Format, sel.Directive.Kind)

	cmd := builder.NewDownloadCommand(ctx, req, sel)
	if opts.DryRun {
		fmt.Fprintln(stdout, shellescape.QuoteCommand(cmd.Args))
		return nil
	}

	prepareEnvironment(req)

	res, err := execute.RunDownload(cmd, opts.Stdin, stdout, stderr)
	if err != nil {
		return err
	}

	if res.Success() {
		logging.S(0, consts.DownloadSuccessMsg)
		return nil
	}

	logging.D(1, "yt-dlp exited with status %d", res.ExitCode)
	fmt.Fprintln(stderr, consts.DownloadFailedMsg)
	if res.Stderr != "" {
		fmt.Fprintln(stderr, strings.TrimRight(res.Stderr, "\n"))
	}

	if opts.PropagateExit {
		return &execute.DownloadFailedError{ExitCode: res.ExitCode}
	}
	return nil
}

// prepareEnvironment creates the result folder and checks the ffmpeg location.
//
// Problems are only warned about, yt-dlp reports the real failure if one follows.
func prepareEnvironment(req *models.DownloadRequest) {
	if _, err := validation.ValidateDirectory(req.ResultFolder, true); err != nil {
		logging.W(0, "Could not prepare result folder: %v", err)
	}

	if _, err := exec.LookPath(req.FfmpegPath); err != nil {
		logging.W(0, "ffmpeg not found at %q, conversions may fail", req.FfmpegPath)
	}
}

package builder

import (
	"context"
	"os/exec"

	"mediafetch/internal/domain/command"
	"mediafetch/internal/models"
	"mediafetch/internal/utils/logging"

	"github.com/alessio/shellescape"
)

// OutputTemplate returns the yt-dlp output template for files saved into dir.
// dir is used as given, yt-dlp accepts "/" as a separator on every platform.
func OutputTemplate(dir string) string {
	return dir + "/" + command.FilenameSyntax
}

// PostProcessArgs returns the yt-dlp flags implementing a directive.
func PostProcessArgs(d models.Directive) []string {
	switch d.Kind {
	case models.PostProcessExtractAudio:
		return []string{command.ExtractAudio, command.AudioFormat, d.Extension}
	case models.PostProcessRecodeVideo:
		return []string{command.RecodeVideo, d.Extension}
	default:
		return nil
	}
}

// BuildDownloadArgs builds the yt-dlp argument list, excluding the program itself.
func BuildDownloadArgs(req *models.DownloadRequest, sel models.Selection) []string {
	post := PostProcessArgs(sel.Directive)
	args := make([]string, 0, 7+len(post))

	args = append(args,
		command.Format, sel.Format,
		command.Output, OutputTemplate(req.ResultFolder),
		command.FFmpegLocation, req.FfmpegPath,
		req.Link)

	return append(args, post...)
}

// NewDownloadCommand builds the yt-dlp command for a request.
func NewDownloadCommand(ctx context.Context, req *models.DownloadRequest, sel models.Selection) *exec.Cmd {
	cmd := exec.CommandContext(ctx, req.YtdlpPath, BuildDownloadArgs(req, sel)...)
	logging.D(1, "Built download command for URL %q:\n%s", req.Link, shellescape.QuoteCommand(cmd.Args))
	return cmd
}

// Package builder maps download requests onto yt-dlp options and commands.
package builder

import (
	"fmt"
	"strings"

	"mediafetch/internal/domain/consts"
	"mediafetch/internal/models"
	"mediafetch/internal/validation"
)

// SelectFormat maps a quality tier, link, and requested extension onto a yt-dlp
// format selector and post-processing directive.
//
// Links to YouTube Music always select the best audio stream, and default to mp3
// when no extension was requested. SelectFormat has no side effects; warnings are
// returned on the Selection for the caller to report.
func SelectFormat(q models.Quality, link, ext string) models.Selection {
	sel := models.Selection{
		Format:    formatForQuality(q),
		Extension: ext,
	}

	if strings.Contains(link, consts.MusicHostMarker) {
		sel.Format = consts.FormatAudioOnly
		if sel.Extension == "" {
			sel.Extension = consts.ExtMP3
		}
	}

	if sel.Extension == "" {
		return sel
	}

	kind := validation.ClassifyExtension(sel.Extension)
	if kind == models.PostProcessNone {
		sel.Warnings = append(sel.Warnings, fmt.Sprintf("Unknown extension '%s', ignoring.", sel.Extension))
		return sel
	}

	sel.Directive = models.Directive{
		Kind:      kind,
		Extension: sel.Extension,
	}
	return sel
}

// formatForQuality returns the format selector for a tier, falling back to high.
func formatForQuality(q models.Quality) string {
	switch q {
	case models.QualityMedium:
		return consts.FormatMedium
	case models.QualityLow:
		return consts.FormatLow
	default:
		return consts.FormatHigh
	}
}

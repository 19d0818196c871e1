package cfg

import (
	"fmt"
	"strings"

	"mediafetch/internal/domain/consts"
	"mediafetch/internal/domain/errconsts"
	"mediafetch/internal/domain/paths"
	"mediafetch/internal/models"
	"mediafetch/internal/utils/logging"
	"mediafetch/internal/utils/prompt"
	"mediafetch/internal/validation"
)

// ResolveRequest builds a DownloadRequest from flag values and leftover arguments.
//
// The first non-empty argument is the link, later ones are ignored. With no link,
// the missing details are asked for on p. Remaining blanks take the defaults in d.
// errconsts.ErrNoLink is returned if there is still no link.
func ResolveRequest(fv models.FlagValues, args []string, p *prompt.Prompter, d paths.Defaults) (*models.DownloadRequest, error) {
	req := &models.DownloadRequest{
		Link:         firstLink(args),
		Extension:    fv.Extension,
		ResultFolder: fv.ResultFolder,
		YtdlpPath:    fv.YtdlpPath,
		FfmpegPath:   fv.FfmpegPath,
	}
	quality := fv.Quality

	if req.Link == "" {
		logging.D(1, "No link in arguments, asking interactively")
		if err := interview(p, req, &quality); err != nil {
			return nil, err
		}
	}

	applyDefaults(req, d)

	if req.Link == "" {
		return nil, errconsts.ErrNoLink
	}

	q, ok := validation.ValidateQuality(quality)
	if !ok && quality != "" {
		logging.W(0, "Unknown quality %q, using %q", quality, q)
	}
	req.Quality = q

	return req, nil
}

// firstLink returns the first non-empty argument.
func firstLink(args []string) string {
	for _, a := range args {
		if a != "" {
			return a
		}
	}
	return ""
}

// interview asks for media type, quality, save path and link, in that order.
func interview(p *prompt.Prompter, req *models.DownloadRequest, quality *string) error {
	if p == nil {
		return nil
	}

	mediaType, err := p.Ask(consts.PromptMediaType)
	if err != nil {
		return fmt.Errorf("interactive input failed: %w", err)
	}
	switch strings.ToLower(mediaType) {
	case consts.MediaTypeMusicShort, consts.MediaTypeMusic:
		req.Extension = consts.ExtMP3
	default:
		req.Extension = consts.ExtMP4
	}

	qual, err := p.Ask(consts.PromptQuality)
	if err != nil {
		return fmt.Errorf("interactive input failed: %w", err)
	}
	// Only medium and low replace the current quality.
	switch qual = strings.ToLower(qual); qual {
	case consts.QualityMedium, consts.QualityLow:
		*quality = qual
	}

	savePath, err := p.Ask(consts.PromptSavePath)
	if err != nil {
		return fmt.Errorf("interactive input failed: %w", err)
	}
	if savePath != "" {
		req.ResultFolder = savePath
	}

	if req.Link, err = p.Ask(consts.PromptLink); err != nil {
		return fmt.Errorf("interactive input failed: %w", err)
	}
	return nil
}

// applyDefaults fills empty paths from d.
func applyDefaults(req *models.DownloadRequest, d paths.Defaults) {
	if req.YtdlpPath == "" {
		req.YtdlpPath = d.YtdlpPath
	}
	if req.FfmpegPath == "" {
		req.FfmpegPath = d.FfmpegPath
	}
	if req.ResultFolder == "" {
		req.ResultFolder = d.ResultFolder
	}
}

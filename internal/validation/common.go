// Package validation handles validation of user flag input.
package validation

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"mediafetch/internal/domain/consts"
	"mediafetch/internal/models"
)

// ValidateQuality resolves a quality string to a known tier.
//
// Anything other than "high", "medium" or "low" resolves to high, with ok reporting false.
func ValidateQuality(q string) (quality models.Quality, ok bool) {
	switch q {
	case consts.QualityHigh:
		return models.QualityHigh, true
	case consts.QualityMedium:
		return models.QualityMedium, true
	case consts.QualityLow:
		return models.QualityLow, true
	default:
		return models.QualityHigh, false
	}
}

// ClassifyExtension returns the post-processing needed to produce files of extension e.
//
// Matching is exact. Unknown or empty extensions return PostProcessNone.
func ClassifyExtension(e string) models.PostProcess {
	switch {
	case e == "":
		return models.PostProcessNone
	case slices.Contains(consts.AudioExtensions[:], e):
		return models.PostProcessExtractAudio
	case slices.Contains(consts.VideoExtensions[:], e):
		return models.PostProcessRecodeVideo
	default:
		return models.PostProcessNone
	}
}

// ValidateLoggingLevel clamps the debug level to 0-5.
func ValidateLoggingLevel(l int) int {
	return min(max(l, 0), 5)
}

// ValidateDirectory validates that the directory exists, else creates it if desired.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("path %q is a file, not a directory", dir)
		}
		return info, nil

	case errors.Is(err, os.ErrNotExist):
		if !createIfNotFound {
			return nil, fmt.Errorf("directory %q does not exist", dir)
		}
		if err := os.MkdirAll(dir, consts.PermsResultDir); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
		return os.Stat(dir)

	default:
		return nil, fmt.Errorf("failed to stat %q: %w", dir, err)
	}
}

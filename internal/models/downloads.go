package models

import "mediafetch/internal/domain/consts"

// Quality is a user-facing stand-in for a yt-dlp format selector.
type Quality string

// Quality tiers.
const (
	QualityHigh   Quality = consts.QualityHigh
	QualityMedium Quality = consts.QualityMedium
	QualityLow    Quality = consts.QualityLow
)

// DownloadRequest holds everything needed for one yt-dlp invocation.
//
// It is built once per run and consumed once.
type DownloadRequest struct {
	Link         string
	Quality      Quality
	Extension    string
	ResultFolder string
	YtdlpPath    string
	FfmpegPath   string
}

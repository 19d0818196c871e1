// Package errconsts holds sentinel errors and error message formats.
package errconsts

import "errors"

// Sentinel errors.
var (
	ErrNoLink     = errors.New("no link provided")
	ErrToolLaunch = errors.New("failed to start download tool")
)

// Programs
const (
	YTDLPFailure = "yt-dlp exited with status %d"
)

// File
const (
	ConfigFileLoadFail = "failed loading config file %q: %w"
)

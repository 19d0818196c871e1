package models

// FlagValues contains the raw string values of the request flags, before resolution.
type FlagValues struct {
	YtdlpPath    string
	ResultFolder string
	Quality      string
	FfmpegPath   string
	Extension    string
}

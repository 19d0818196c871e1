// Package keys holds flag names, which double as config file keys.
package keys

// Request flags.
const (
	YtdlpPath    string = "ytdlpPath"
	ResultFolder string = "resultFolder"
	Quality      string = "quality"
	FfmpegPath   string = "ffmpegPath"
	Extension    string = "extension"
)

// Program flags.
const (
	ConfigFile    string = "config"
	DebugLevel    string = "debug"
	LogFile       string = "log-file"
	DryRun        string = "dry-run"
	PropagateExit string = "propagate-exit"
)

package consts

// Program messages.
const (
	Usage = "Usage: [--ytdlpPath <path>] [--resultFolder <folder>] [--quality <high|medium|low>] " +
		"[--ffmpegPath <path>] [--extension <ext>] <link>"

	DownloadSuccessMsg = "Download completed successfully."
	DownloadFailedMsg  = "Download failed."
)

// Interactive prompts.
const (
	PromptMediaType = "Is it music or a video? (m/v): "
	PromptQuality   = "Quality (high/medium/low) [high]: "
	PromptSavePath  = "Save path (default: results): "
	PromptLink      = "Enter the link: "
)

// Media type answers which select audio output.
const (
	MediaTypeMusic      = "music"
	MediaTypeMusicShort = "m"
)

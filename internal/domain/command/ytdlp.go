// Package command holds yt-dlp command line flags.
package command

// General
const (
	Format         = "-f"
	Output         = "-o"
	FFmpegLocation = "--ffmpeg-location"
	FilenameSyntax = "%(title)s.%(ext)s"
)

// Post-processing
const (
	ExtractAudio = "-x"
	AudioFormat  = "--audio-format"
	RecodeVideo  = "--recode-video"
)

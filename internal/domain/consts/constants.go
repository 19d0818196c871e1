// Package consts holds various global, unchanging values.
package consts

// Quality tiers.
const (
	QualityHigh   = "high"
	QualityMedium = "medium"
	QualityLow    = "low"
)

// Format selectors handed to yt-dlp's -f flag.
const (
	FormatHigh      = "bestvideo+bestaudio/best"
	FormatMedium    = "bestvideo[height<=720]+bestaudio/best[height<=720]"
	FormatLow       = "worstvideo+worstaudio/worst"
	FormatAudioOnly = "bestaudio/best"
)

// MusicHostMarker identifies links to the music variant of YouTube.
const MusicHostMarker = "music.youtube"

// Default extensions.
const (
	ExtMP3 = "mp3"
	ExtMP4 = "mp4"
)

// AudioExtensions holds extensions yt-dlp can extract audio into.
var AudioExtensions = [...]string{"mp3", "aac", "flac", "wav", "m4a", "opus"}

// VideoExtensions holds containers yt-dlp can re-encode video into.
var VideoExtensions = [...]string{"mp4", "mkv", "webm", "avi"}

// Bundled tool layout.
const (
	LibrariesDir     = "libraries"
	ResultsDir       = "results"
	YTDLPBinary      = "yt-dlp"
	FFmpegBinary     = "ffmpeg"
	WindowsExeSuffix = ".exe"
	SystemYTDLPPath  = "/usr/bin/yt-dlp"
	SystemFFmpegPath = "/usr/bin/ffmpeg"
)

package models

// PostProcess is the kind of conversion requested after download.
type PostProcess int

const (
	PostProcessNone PostProcess = iota
	PostProcessExtractAudio
	PostProcessRecodeVideo
)

// String returns a readable name for the post-processing kind.
func (p PostProcess) String() string {
	switch p {
	case PostProcessExtractAudio:
		return "extract-audio"
	case PostProcessRecodeVideo:
		return "recode-video"
	default:
		return "none"
	}
}

// Directive pairs a post-processing kind with its target extension.
type Directive struct {
	Kind      PostProcess
	Extension string
}

// Selection is the result of mapping a request onto yt-dlp format options.
type Selection struct {
	Format    string
	Extension string
	Directive Directive
	Warnings  []string
}

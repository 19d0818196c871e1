package builder_test

import (
	"context"
	"reflect"
	"testing"

	"mediafetch/internal/command/builder"
	"mediafetch/internal/models"
)

const (
	videoLink = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	musicLink = "https://music.youtube.com/watch?v=dQw4w9WgXcQ"
)

func TestSelectFormatQualityTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		quality models.Quality
		want    string
	}{
		{models.QualityHigh, "bestvideo+bestaudio/best"},
		{models.QualityMedium, "bestvideo[height<=720]+bestaudio/best[height<=720]"},
		{models.QualityLow, "worstvideo+worstaudio/worst"},
		{models.Quality("ultra"), "bestvideo+bestaudio/best"},
		{models.Quality(""), "bestvideo+bestaudio/best"},
	}

	for _, tt := range tests {
		sel := builder.SelectFormat(tt.quality, videoLink, "")
		if sel.Format != tt.want {
			t.Fatalf("quality %q: got format %q, want %q", tt.quality, sel.Format, tt.want)
		}
		if sel.Directive.Kind != models.PostProcessNone || len(sel.Warnings) != 0 {
			t.Fatalf("quality %q: expected no directive or warnings, got %+v", tt.quality, sel)
		}
	}
}

func TestSelectFormatMusicOverride(t *testing.T) {
	t.Parallel()

	for _, q := range []models.Quality{models.QualityHigh, models.QualityMedium, models.QualityLow} {
		sel := builder.SelectFormat(q, musicLink, "")
		if sel.Format != "bestaudio/best" {
			t.Fatalf("quality %q: expected audio-only selector, got %q", q, sel.Format)
		}
		if sel.Extension != "mp3" {
			t.Fatalf("quality %q: expected mp3 default, got %q", q, sel.Extension)
		}
		want := models.Directive{Kind: models.PostProcessExtractAudio, Extension: "mp3"}
		if sel.Directive != want {
			t.Fatalf("quality %q: got directive %+v, want %+v", q, sel.Directive, want)
		}
	}

	// Explicit extension survives the override
	sel := builder.SelectFormat(models.QualityLow, musicLink, "flac")
	if sel.Format != "bestaudio/best" || sel.Extension != "flac" {
		t.Fatalf("expected audio-only flac, got %+v", sel)
	}

	sel = builder.SelectFormat(models.QualityHigh, musicLink, "mkv")
	if sel.Directive.Kind != models.PostProcessRecodeVideo {
		t.Fatalf("expected recode directive for explicit mkv, got %+v", sel.Directive)
	}
}

func TestSelectFormatExtensions(t *testing.T) {
	t.Parallel()

	for _, e := range []string{"mp3", "aac", "flac", "wav", "m4a", "opus"} {
		sel := builder.SelectFormat(models.QualityHigh, videoLink, e)
		want := models.Directive{Kind: models.PostProcessExtractAudio, Extension: e}
		if sel.Directive != want || len(sel.Warnings) != 0 {
			t.Fatalf("extension %q: got %+v", e, sel)
		}
	}

	for _, e := range []string{"mp4", "mkv", "webm", "avi"} {
		sel := builder.SelectFormat(models.QualityHigh, videoLink, e)
		want := models.Directive{Kind: models.PostProcessRecodeVideo, Extension: e}
		if sel.Directive != want || len(sel.Warnings) != 0 {
			t.Fatalf("extension %q: got %+v", e, sel)
		}
	}

	for _, e := range []string{"ogg", "MP4", "mov"} {
		sel := builder.SelectFormat(models.QualityHigh, videoLink, e)
		if sel.Directive.Kind != models.PostProcessNone {
			t.Fatalf("extension %q: expected no directive, got %+v", e, sel.Directive)
		}
		if len(sel.Warnings) != 1 || sel.Warnings[0] != "Unknown extension '"+e+"', ignoring." {
			t.Fatalf("extension %q: unexpected warnings %v", e, sel.Warnings)
		}
	}
}

func TestSelectFormatIsDeterministic(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		q         models.Quality
		link, ext string
	}{
		{models.QualityMedium, videoLink, "mp4"},
		{models.QualityLow, musicLink, ""},
		{models.QualityHigh, videoLink, "bogus"},
	}

	for _, in := range inputs {
		a := builder.SelectFormat(in.q, in.link, in.ext)
		b := builder.SelectFormat(in.q, in.link, in.ext)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("SelectFormat not deterministic for %+v: %+v vs %+v", in, a, b)
		}
	}
}

func TestBuildDownloadArgs(t *testing.T) {
	t.Parallel()

	req := &models.DownloadRequest{
		Link:         videoLink,
		Quality:      models.QualityMedium,
		Extension:    "mp4",
		ResultFolder: "srv/media",
		YtdlpPath:    "/usr/bin/yt-dlp",
		FfmpegPath:   "/usr/bin/ffmpeg",
	}
	sel := builder.SelectFormat(req.Quality, req.Link, req.Extension)

	want := []string{
		"-f", "bestvideo[height<=720]+bestaudio/best[height<=720]",
		"-o", "srv/media/%(title)s.%(ext)s",
		"--ffmpeg-location", "/usr/bin/ffmpeg",
		videoLink,
		"--recode-video", "mp4",
	}
	if got := builder.BuildDownloadArgs(req, sel); !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildDownloadArgs:\n got  %q\n want %q", got, want)
	}
}

func TestBuildDownloadArgsAudioAndNone(t *testing.T) {
	t.Parallel()

	req := &models.DownloadRequest{
		Link:         musicLink,
		ResultFolder: "out",
		FfmpegPath:   "ffmpeg",
	}

	got := builder.BuildDownloadArgs(req, builder.SelectFormat(models.QualityHigh, req.Link, ""))
	tail := got[len(got)-3:]
	if !reflect.DeepEqual(tail, []string{"-x", "--audio-format", "mp3"}) {
		t.Fatalf("expected extract-audio tail, got %q", got)
	}

	req.Link = videoLink
	got = builder.BuildDownloadArgs(req, builder.SelectFormat(models.QualityHigh, req.Link, "txt"))
	if got[len(got)-1] != videoLink || len(got) != 7 {
		t.Fatalf("expected link to be the last argument with no post-processing, got %q", got)
	}
}

func TestNewDownloadCommand(t *testing.T) {
	t.Parallel()

	req := &models.DownloadRequest{
		Link:         videoLink,
		ResultFolder: "out",
		YtdlpPath:    "/opt/tools/yt-dlp",
		FfmpegPath:   "/opt/tools/ffmpeg",
	}
	sel := builder.SelectFormat(models.QualityLow, req.Link, "")
	cmd := builder.NewDownloadCommand(context.Background(), req, sel)

	if cmd.Path != "/opt/tools/yt-dlp" {
		t.Fatalf("expected yt-dlp path, got %q", cmd.Path)
	}
	if cmd.Args[0] != "/opt/tools/yt-dlp" || cmd.Args[2] != "worstvideo+worstaudio/worst" {
		t.Fatalf("unexpected args %q", cmd.Args)
	}
}

func TestOutputTemplateKeepsFolder(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"results":           "results/%(title)s.%(ext)s",
		"./media/../out/":   "./media/../out//%(title)s.%(ext)s",
		`C:\Users\me\Music`: `C:\Users\me\Music/%(title)s.%(ext)s`,
	}
	for dir, want := range tests {
		if got := builder.OutputTemplate(dir); got != want {
			t.Errorf("OutputTemplate(%q) = %q, want %q", dir, got, want)
		}
	}
}

package paths_test

import (
	"path/filepath"
	"testing"

	"mediafetch/internal/domain/paths"
)

func TestDefaultsFor(t *testing.T) {
	t.Parallel()

	exeDir := filepath.Join("opt", "mediafetch")

	tests := []struct {
		name string
		goos string
		want paths.Defaults
	}{
		{
			name: "windows uses bundled binaries",
			goos: "windows",
			want: paths.Defaults{
				YtdlpPath:    filepath.Join(exeDir, "libraries", "yt-dlp.exe"),
				FfmpegPath:   filepath.Join(exeDir, "libraries", "ffmpeg.exe"),
				ResultFolder: filepath.Join(exeDir, "results"),
			},
		},
		{
			name: "linux uses system binaries",
			goos: "linux",
			want: paths.Defaults{
				YtdlpPath:    "/usr/bin/yt-dlp",
				FfmpegPath:   "/usr/bin/ffmpeg",
				ResultFolder: filepath.Join(exeDir, "results"),
			},
		},
		{
			name: "darwin uses system binaries",
			goos: "darwin",
			want: paths.Defaults{
				YtdlpPath:    "/usr/bin/yt-dlp",
				FfmpegPath:   "/usr/bin/ffmpeg",
				ResultFolder: filepath.Join(exeDir, "results"),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := paths.DefaultsFor(tt.goos, exeDir); got != tt.want {
				t.Fatalf("DefaultsFor(%q) = %+v, want %+v", tt.goos, got, tt.want)
			}
		})
	}
}

func TestHostDefaultsResultFolder(t *testing.T) {
	d := paths.HostDefaults()
	if filepath.Base(d.ResultFolder) != "results" {
		t.Fatalf("expected result folder to end in results, got %q", d.ResultFolder)
	}
	if d.YtdlpPath == "" || d.FfmpegPath == "" {
		t.Fatalf("expected tool paths to be set, got %+v", d)
	}
}

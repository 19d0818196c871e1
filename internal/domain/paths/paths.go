// Package paths resolves mediafetch's default tool and output locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"mediafetch/internal/domain/consts"
)

// Defaults holds the fallback locations used when neither a flag nor a prompt supplied one.
type Defaults struct {
	YtdlpPath    string
	FfmpegPath   string
	ResultFolder string
}

// HasBundledTools reports whether releases for goos ship yt-dlp and ffmpeg next to the executable.
func HasBundledTools(goos string) bool {
	return goos == "windows"
}

// DefaultsFor computes the default locations for a platform and executable directory.
func DefaultsFor(goos, exeDir string) Defaults {
	d := Defaults{
		ResultFolder: filepath.Join(exeDir, consts.ResultsDir),
	}

	if HasBundledTools(goos) {
		libDir := filepath.Join(exeDir, consts.LibrariesDir)
		d.YtdlpPath = filepath.Join(libDir, consts.YTDLPBinary+consts.WindowsExeSuffix)
		d.FfmpegPath = filepath.Join(libDir, consts.FFmpegBinary+consts.WindowsExeSuffix)
		return d
	}

	d.YtdlpPath = consts.SystemYTDLPPath
	d.FfmpegPath = consts.SystemFFmpegPath
	return d
}

// ExecutableDir returns the directory holding the running program, or "." if unknown.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil || exe == "" {
		return "."
	}
	return filepath.Dir(exe)
}

// HostDefaults returns the defaults for the running host.
func HostDefaults() Defaults {
	return DefaultsFor(runtime.GOOS, ExecutableDir())
}

package cfg

import (
	"mediafetch/internal/domain/consts"
	"mediafetch/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initRequestFlags initializes the flags describing the download itself.
func initRequestFlags(rootCmd *cobra.Command, v *viper.Viper) error {
	rootCmd.Flags().String(keys.YtdlpPath, "", "Path to the yt-dlp executable")
	if err := v.BindPFlag(keys.YtdlpPath, rootCmd.Flags().Lookup(keys.YtdlpPath)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.ResultFolder, "", "Directory to save downloads into (default: results beside the program)")
	if err := v.BindPFlag(keys.ResultFolder, rootCmd.Flags().Lookup(keys.ResultFolder)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.Quality, consts.QualityHigh, "Download quality (high, medium, or low)")
	if err := v.BindPFlag(keys.Quality, rootCmd.Flags().Lookup(keys.Quality)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.FfmpegPath, "", "Path to the ffmpeg executable")
	if err := v.BindPFlag(keys.FfmpegPath, rootCmd.Flags().Lookup(keys.FfmpegPath)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.Extension, "", "Output extension (audio: mp3, aac, flac, wav, m4a, opus; video: mp4, mkv, webm, avi)")
	if err := v.BindPFlag(keys.Extension, rootCmd.Flags().Lookup(keys.Extension)); err != nil {
		return err
	}
	return nil
}

// initProgramFlags initializes flags related to the program itself, e.g. logging level.
func initProgramFlags(rootCmd *cobra.Command, v *viper.Viper) error {
	rootCmd.Flags().String(keys.ConfigFile, "", "Config file holding flag values (yaml, toml, json...)")
	if err := v.BindPFlag(keys.ConfigFile, rootCmd.Flags().Lookup(keys.ConfigFile)); err != nil {
		return err
	}

	rootCmd.Flags().Int(keys.DebugLevel, 0, "Debug level (0-5)")
	if err := v.BindPFlag(keys.DebugLevel, rootCmd.Flags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.LogFile, "", "Append a structured log of this run to the given file")
	if err := v.BindPFlag(keys.LogFile, rootCmd.Flags().Lookup(keys.LogFile)); err != nil {
		return err
	}

	rootCmd.Flags().Bool(keys.DryRun, false, "Print the yt-dlp command instead of running it")
	if err := v.BindPFlag(keys.DryRun, rootCmd.Flags().Lookup(keys.DryRun)); err != nil {
		return err
	}

	rootCmd.Flags().Bool(keys.PropagateExit, false, "Exit with yt-dlp's status code when the download fails")
	if err := v.BindPFlag(keys.PropagateExit, rootCmd.Flags().Lookup(keys.PropagateExit)); err != nil {
		return err
	}
	return nil
}

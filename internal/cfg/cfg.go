// Package cfg provides configuration and command-line interface setup for mediafetch.
package cfg

import (
	"context"
	"fmt"

	"mediafetch/internal/app"
	"mediafetch/internal/domain/keys"
	"mediafetch/internal/domain/paths"
	"mediafetch/internal/models"
	"mediafetch/internal/utils/logging"
	"mediafetch/internal/utils/prompt"
	"mediafetch/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runFunc carries out a resolved download request.
type runFunc func(ctx context.Context, req *models.DownloadRequest, opts app.Options) error

// newRootCmd builds the root command. Each command owns its own Viper instance.
func newRootCmd(run runFunc, defaults func() paths.Defaults) *cobra.Command {
	v := viper.New()
	var cl cmdLine

	rootCmd := &cobra.Command{
		Use:   "mediafetch [flags] <link>",
		Short: "mediafetch downloads media through yt-dlp and ffmpeg.",
		Long: "mediafetch downloads the media at <link> with yt-dlp, converting it with ffmpeg when an\n" +
			"extension is requested. Without a link it asks for the details interactively.",
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

			var err error
			if cl, err = parseCmdLine(cmd.Flags(), args); err != nil {
				return err
			}
			if cl.help {
				return nil
			}

			if cfgFile := v.GetString(keys.ConfigFile); cfgFile != "" {
				if err := loadConfigFile(cmd, v, cfgFile); err != nil {
					return err
				}
			}

			logging.Level = validation.ValidateLoggingLevel(v.GetInt(keys.DebugLevel))

			if logFile := v.GetString(keys.LogFile); logFile != "" {
				if err := logging.SetupLogging(logFile); err != nil {
					logging.W(0, "Log file was not created: %v", err)
				}
			}

			for _, arg := range cl.unknown {
				logging.D(1, "Ignoring unknown flag %q", arg)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cl.help {
				return cmd.Help()
			}
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

			req, err := ResolveRequest(flagValues(v), cl.free, p, defaults())
			if err != nil {
				return err
			}
			logging.D(1, "Resolved request: %+v", *req)

			return run(cmd.Context(), req, app.Options{
				DryRun:        v.GetBool(keys.DryRun),
				PropagateExit: v.GetBool(keys.PropagateExit),
				Stdin:         cmd.InOrStdin(),
				Stdout:        cmd.OutOrStdout(),
				Stderr:        cmd.ErrOrStderr(),
			})
		},
	}

	if err := initRequestFlags(rootCmd, v); err != nil {
		panic(fmt.Sprintf("failed to bind request flags: %v", err))
	}
	if err := initProgramFlags(rootCmd, v); err != nil {
		panic(fmt.Sprintf("failed to bind program flags: %v", err))
	}
	return rootCmd
}

// flagValues reads the request flags, as merged by Viper.
func flagValues(v *viper.Viper) models.FlagValues {
	return models.FlagValues{
		YtdlpPath:    v.GetString(keys.YtdlpPath),
		ResultFolder: v.GetString(keys.ResultFolder),
		Quality:      v.GetString(keys.Quality),
		FfmpegPath:   v.GetString(keys.FfmpegPath),
		Extension:    v.GetString(keys.Extension),
	}
}

// Execute parses the command line, resolves the request and runs the download.
func Execute(ctx context.Context) error {
	defer func() {
		if err := logging.CloseLogging(); err != nil {
			logging.E(0, "Failed to close log file: %v", err)
		}
	}()
	return newRootCmd(app.Download, paths.HostDefaults).ExecuteContext(ctx)
}

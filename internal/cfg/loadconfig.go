package cfg

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"mediafetch/internal/domain/errconsts"
	"mediafetch/internal/domain/keys"
	"mediafetch/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	flagTypeString = "string"
	flagTypeInt    = "int"
	flagTypeBool   = "bool"
)

// loadConfigFile reads a config file into v and applies its values to flags the user left unset.
func loadConfigFile(cmd *cobra.Command, v *viper.Viper, configFile string) error {
	info, err := os.Stat(configFile)
	if err != nil {
		return fmt.Errorf(errconsts.ConfigFileLoadFail, configFile, err)
	}
	if info.IsDir() {
		return fmt.Errorf(errconsts.ConfigFileLoadFail, configFile, errors.New("path is a directory, should be a file"))
	}

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf(errconsts.ConfigFileLoadFail, configFile, err)
	}
	logging.D(1, "Loaded config file %q", v.ConfigFileUsed())

	return applyConfigToFlags(cmd, v)
}

// applyConfigToFlags copies config file values onto unchanged flags, so flag values and Viper agree.
func applyConfigToFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errOrNil error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == keys.ConfigFile || !v.InConfig(f.Name) {
			return
		}

		var val string
		switch f.Value.Type() {
		case flagTypeString:
			val = v.GetString(f.Name)
		case flagTypeInt:
			val = strconv.Itoa(v.GetInt(f.Name))
		case flagTypeBool:
			val = strconv.FormatBool(v.GetBool(f.Name))
		default:
			return
		}

		if err := f.Value.Set(val); err != nil {
			errOrNil = fmt.Errorf("invalid config value for %q: %w", f.Name, err)
			return
		}
		logging.D(2, "Flag %q set from config file to %q", f.Name, val)
	})
	return errOrNil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-datesort/pkg/datesort"
	"github.com/mattsolo1/grove-datesort/pkg/models"
	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

var (
	cfgFile string
	verbose bool
)

// InitConfig wires viper to the config file, environment and defaults.
func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "datesort")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("DATESORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	// A missing config file is fine; everything has a default.
	_ = viper.ReadInConfig()
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()
	v.SetDefault("data_dir", filepath.Join(home, ".local", "share", "datesort"))
	v.SetDefault("log_level", "warn")
	v.SetDefault("dark_mode", false)
	v.SetDefault("labels.sorted", datesort.DefaultSortedLabel)
	v.SetDefault("labels.original", datesort.DefaultOriginalLabel)
	// Color overrides have no default; an unset key keeps the theme color
	// while "none" clears it.
	for _, key := range []string{"colors.sorted", "colors.hierarchy", "colors.demoted"} {
		cobra.CheckErr(v.BindEnv(key))
	}
}

// StringToColorHookFunc decodes color names into tree.Color values.
func StringToColorHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(tree.ColorNone) {
			return data, nil
		}
		return tree.ParseColor(data.(string))
	}
}

// Load decodes the configuration held by v.
func Load(v *viper.Viper) (*models.Config, error) {
	var cfg models.Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		StringToColorHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// NewLogger builds the stderr logger for the configured level.
func NewLogger(cfg *models.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else if cfg.LogLevel != "" {
		logger.Warnf("unknown log level %q, using warn", cfg.LogLevel)
	}
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// AddGlobalFlags registers the flags shared by every command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/datesort/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("data-dir", "", "Directory holding the outline database")
	cobra.CheckErr(viper.BindPFlag("data_dir", cmd.PersistentFlags().Lookup("data-dir")))
}

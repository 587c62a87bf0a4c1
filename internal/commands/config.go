package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys. Each is also a flag name and, upper-cased with the
// PRODNET_ prefix, an environment variable (log-level → PRODNET_LOG_LEVEL).
const (
	keyConfig       = "config"
	keyLogLevel     = "log-level"
	keyLogFormat    = "log-format"
	keyFormat       = "format"
	keyAll          = "all"
	keyPrune        = "prune"
	keySummedEdges  = "summed-edges"
	keyPivotTol     = "pivot-tolerance"
	keyLeftToRight  = "left-to-right"
	envPrefix       = "PRODNET"
	configName      = "prodnet"
	configType      = "yaml"
	defaultLogLevel = "warn"
)

// loadConfig builds the viper instance for one command invocation.
//
// Precedence, highest first: flags, PRODNET_* environment (a .env file in the
// working directory is loaded first), the config file, flag defaults.
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

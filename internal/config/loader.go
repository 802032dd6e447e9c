package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".pledgeviz"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix, e.g. PLEDGEVIZ_PLAYBACK_SPEED.
const envPrefix = "PLEDGEVIZ"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	v.SetDefault("csv.delimiter", DefaultDelimiter)

	v.SetDefault("playback.interval", DefaultPlaybackInterval)
	v.SetDefault("playback.step", DefaultPlaybackStep)
	v.SetDefault("playback.speed", DefaultPlaybackSpeed)
	v.SetDefault("playback.loop", DefaultPlaybackLoop)

	v.SetDefault("chart.points", DefaultChartPoints)
	v.SetDefault("chart.bucket_size", DefaultChartBucketSize)
	v.SetDefault("chart.proportional", DefaultChartProportional)
	v.SetDefault("chart.ladder_bucket", DefaultChartLadderBucket)
	v.SetDefault("chart.output", DefaultChartOutput)
	v.SetDefault("chart.colour_mode", DefaultChartColourMode)

	v.SetDefault("display.currency", DefaultCurrency)
	v.SetDefault("display.no_color", DefaultNoColor)
}

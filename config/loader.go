package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".gistview"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for gistview settings.
const envPrefix = "GISTVIEW"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// A missing config file is not an error; defaults are used.
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
	v.SetDefault("api.base_url", DefaultAPIBaseURL)
	v.SetDefault("http.timeout", DefaultHTTPTimeout)
	v.SetDefault("cache.size", DefaultCacheSize)
	v.SetDefault("highlighter", DefaultHighlighter)
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("render.workers", DefaultRenderWorkers)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")
}

// Package config loads gistview settings from file, environment and defaults.
package config

import (
	"errors"
	"time"
)

// Config is the top-level configuration for gistview.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	API         APIConfig    `mapstructure:"api"`
	HTTP        HTTPConfig   `mapstructure:"http"`
	Cache       CacheConfig  `mapstructure:"cache"`
	Highlighter string       `mapstructure:"highlighter"`
	Theme       string       `mapstructure:"theme"`
	Server      ServerConfig `mapstructure:"server"`
	Render      RenderConfig `mapstructure:"render"`
	Log         LogConfig    `mapstructure:"log"`
}

// APIConfig holds the gist provider endpoint.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// HTTPConfig holds outbound HTTP settings.
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds the in-memory gist cache size. Zero disables caching.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// RenderConfig holds batch rendering settings.
type RenderConfig struct {
	Workers int `mapstructure:"workers"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Highlighter names.
const (
	HighlighterBuiltin = "builtin"
	HighlighterChroma  = "chroma"
)

// Defaults.
const (
	DefaultAPIBaseURL    = "https://api.github.com/"
	DefaultHTTPTimeout   = 15 * time.Second
	DefaultCacheSize     = 32
	DefaultHighlighter   = HighlighterBuiltin
	DefaultTheme         = "dark"
	DefaultServerAddr    = "127.0.0.1:8080"
	DefaultRenderWorkers = 4
	DefaultLogLevel      = "info"
)

// Sentinel errors for configuration validation.
var (
	// ErrEmptyBaseURL indicates api.base_url is empty.
	ErrEmptyBaseURL = errors.New("api.base_url must not be empty")
	// ErrInvalidTimeout indicates http.timeout is not positive.
	ErrInvalidTimeout = errors.New("http.timeout must be positive")
	// ErrInvalidCacheSize indicates cache.size is negative.
	ErrInvalidCacheSize = errors.New("cache.size must be non-negative")
	// ErrInvalidHighlighter indicates an unknown highlighter name.
	ErrInvalidHighlighter = errors.New("highlighter must be builtin or chroma")
	// ErrInvalidTheme indicates an unknown theme name.
	ErrInvalidTheme = errors.New("theme must be dark or light")
	// ErrInvalidWorkers indicates render.workers is not positive.
	ErrInvalidWorkers = errors.New("render.workers must be positive")
	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("log.level must be debug, info, warn or error")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return ErrEmptyBaseURL
	}
	if c.HTTP.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Cache.Size < 0 {
		return ErrInvalidCacheSize
	}
	switch c.Highlighter {
	case HighlighterBuiltin, HighlighterChroma:
	default:
		return ErrInvalidHighlighter
	}
	switch c.Theme {
	case "dark", "light":
	default:
		return ErrInvalidTheme
	}
	if c.Render.Workers <= 0 {
		return ErrInvalidWorkers
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogLevel       = "RSSGEN_LOG_LEVEL"
	EnvLogFormat      = "RSSGEN_LOG_FORMAT"
	EnvGenerator      = "RSSGEN_GENERATOR"
	EnvXMLHeader      = "RSSGEN_XML_HEADER"
	EnvNormalizeDates = "RSSGEN_NORMALIZE_DATES"
)

// Config holds the rssgen settings that can come from the environment.
type Config struct {
	LogLevel  string
	LogFormat string

	// Generator replaces the default generator for definitions that name
	// none.
	Generator string

	// XMLHeader prefixes the document with the XML declaration.
	XMLHeader bool

	NormalizeDates bool
}

// Load reads envFile, when given, into the process environment without
// overriding variables that are already set, and builds a Config from the
// environment. Without envFile a .env file in the working directory is
// loaded if present.
func Load(envFile string) (*Config, error) {
	if len(envFile) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		LogLevel:  os.Getenv(EnvLogLevel),
		LogFormat: os.Getenv(EnvLogFormat),
		Generator: os.Getenv(EnvGenerator),
	}

	var err error
	if cfg.XMLHeader, err = boolEnv(EnvXMLHeader); err != nil {
		return nil, err
	}
	if cfg.NormalizeDates, err = boolEnv(EnvNormalizeDates); err != nil {
		return nil, err
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
}

// Validate checks the log format. Log levels are checked when the logger is
// built.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("%s must be json or text, got %q", EnvLogFormat, c.LogFormat)
	}
}

func boolEnv(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

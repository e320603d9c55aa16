package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"card-wrapped/internal/export"
	"card-wrapped/internal/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvLogLevel     = "WRAPPED_LOG_LEVEL"
	EnvLogFormat    = "WRAPPED_LOG_FORMAT"
	EnvOutputFormat = "WRAPPED_OUTPUT_FORMAT"
)

type Config struct {
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	OutputFormat string `yaml:"output_format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel:     zerolog.LevelInfoValue,
		LogFormat:    logger.FormatConsole,
		OutputFormat: export.FormatText,
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path, a .env file and finally the process environment. Without explicit
// envFiles a missing ./.env is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(EnvLogFormat, cfg.LogFormat)
	cfg.OutputFormat = getEnv(EnvOutputFormat, cfg.OutputFormat)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil || c.LogLevel == "" {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.LogFormat != logger.FormatConsole && c.LogFormat != logger.FormatJSON {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be one of [%s %s]", c.LogFormat, logger.FormatConsole, logger.FormatJSON))
	}

	if _, err := export.New(c.OutputFormat); err != nil {
		problems = append(problems, fmt.Sprintf("invalid output format '%s': must be one of %v", c.OutputFormat, export.Formats()))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() zerolog.Level {
	return logger.ParseLevel(c.LogLevel)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

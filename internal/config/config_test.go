package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearEnv(t *testing.T) {
	unsetEnv(t, EnvLogLevel)
	unsetEnv(t, EnvLogFormat)
	unsetEnv(t, EnvOutputFormat)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "")

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	configFile := writeFile(t, "wrapped.yaml", "log_level: warn\nlog_format: json\noutput_format: yaml\n")
	envFile := writeFile(t, ".env", "WRAPPED_OUTPUT_FORMAT=xlsx\n")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(configFile, envFile)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel, "environment beats the file")
	assert.Equal(t, "json", cfg.LogFormat, "file beats defaults")
	assert.Equal(t, "xlsx", cfg.OutputFormat, ".env fills the environment")
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "")

	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), envFile)
		assert.Error(t, err)
	})

	t.Run("malformed config file", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.yaml", "log_level: [unclosed"), envFile)
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("missing env file", func(t *testing.T) {
		_, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "failed to load env file")
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv(EnvOutputFormat, "pdf")
		_, err := Load("", envFile)
		assert.ErrorContains(t, err, "invalid output format 'pdf'")
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantErrs []string
	}{
		{
			name: "valid",
			cfg:  Config{LogLevel: "debug", LogFormat: "json", OutputFormat: "xlsx"},
		},
		{
			name:     "bad level",
			cfg:      Config{LogLevel: "loud", LogFormat: "console", OutputFormat: "json"},
			wantErrs: []string{"invalid log level 'loud'"},
		},
		{
			name:     "every field wrong",
			cfg:      Config{LogLevel: "", LogFormat: "xml", OutputFormat: "pdf"},
			wantErrs: []string{"invalid log level", "invalid log format 'xml'", "invalid output format 'pdf'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

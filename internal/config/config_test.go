package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/viant/dsutil/dates"
)

func TestLoadConfig(t *testing.T) {
	location := filepath.Join(t.TempDir(), "dsutil.yaml")
	content := `log_level: debug
input_formats:
  - MM/dd/yy
  - yyyy-MM-dd
output_format: MM/dd/yyyy
boundary: upper
delimiter: ";"
json_indent: 4
`
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))

	cfg, err := LoadConfig(location)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"MM/dd/yy", "yyyy-MM-dd"}, cfg.InputFormats)
	assert.Equal(t, "MM/dd/yyyy", cfg.OutputFormat)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, 4, cfg.JSONIndent)
	assert.Equal(t, dates.StandardDateFormat, cfg.DatePattern)

	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
	assert.Equal(t, dates.Upper, cfg.ParsedBoundary)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DSUTIL_DELIMITER", "|")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "|", cfg.Delimiter)
	assert.Equal(t, dates.StandardDateFormat, cfg.OutputFormat)
	assert.Equal(t, 2, cfg.JSONIndent)
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, dates.Lower, cfg.ParsedBoundary)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel:     "warn",
			OutputFormat: dates.StandardDateFormat,
			Boundary:     "lower",
			Delimiter:    ",",
		}
	}
	var testCases = []struct {
		description string
		update      func(cfg *Config)
		expect      error
	}{
		{description: "valid", update: func(cfg *Config) {}},
		{description: "unknown log level", update: func(cfg *Config) { cfg.LogLevel = "loud" }, expect: ErrUnknownLogLevel},
		{description: "empty delimiter", update: func(cfg *Config) { cfg.Delimiter = "" }, expect: ErrEmptyDelimiter},
		{description: "json and yaml", update: func(cfg *Config) { cfg.JSON, cfg.YAML = true, true }, expect: ErrConflictingOutput},
		{description: "negative indent", update: func(cfg *Config) { cfg.JSONIndent = -1 }, expect: ErrInvalidIndent},
		{description: "bad output pattern", update: func(cfg *Config) { cfg.OutputFormat = "yyyy-qq" }, expect: ErrInvalidPattern},
		{description: "bad input pattern", update: func(cfg *Config) { cfg.InputFormats = []string{"yyyy", "bb"} }, expect: ErrInvalidPattern},
	}
	for _, testCase := range testCases {
		cfg := valid()
		testCase.update(cfg)
		err := ValidateConfig(cfg)
		if testCase.expect == nil {
			assert.NoError(t, err, testCase.description)
			continue
		}
		assert.ErrorIs(t, err, testCase.expect, testCase.description)
	}

	cfg := valid()
	cfg.Boundary = "middle"
	assert.Error(t, ValidateConfig(cfg))
}

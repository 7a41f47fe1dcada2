// Package config loads command line settings from an optional YAML file and DSUTIL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/viant/dsutil/dates"
	ftime "github.com/viant/dsutil/format/time"
	"github.com/viant/dsutil/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"logLevel"`
	// InputFormats are the candidate patterns tried in order by convert when no input format flag is given.
	InputFormats []string `mapstructure:"input_formats" yaml:"input_formats" json:"inputFormats"`
	// OutputFormat is the pattern converted dates are rendered with.
	OutputFormat string `mapstructure:"output_format" yaml:"output_format" json:"outputFormat"`
	// Boundary is the default partial date boundary: lower, upper or upper_excluded.
	Boundary string `mapstructure:"boundary" yaml:"boundary" json:"boundary"`
	// Delimiter separates tokens for explode and implode.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter" json:"delimiter"`
	// JSON switches command output to JSON.
	JSON bool `mapstructure:"json" yaml:"json" json:"json"`
	// YAML switches command output to YAML.
	YAML bool `mapstructure:"yaml" yaml:"yaml" json:"yaml"`
	// JSONIndent is the indentation step of JSON output, 0 prints compact JSON.
	JSONIndent int `mapstructure:"json_indent" yaml:"json_indent" json:"jsonIndent"`
	// DatePattern renders time values in JSON output.
	DatePattern string `mapstructure:"date_pattern" yaml:"date_pattern" json:"datePattern"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `yaml:"-" json:"-"`
	// ParsedBoundary is the parsed partial date boundary.
	ParsedBoundary dates.TimeBoundary `yaml:"-" json:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".dsutil.yaml"
	// EnvPrefix prefixes environment overrides, for example DSUTIL_LOG_LEVEL.
	EnvPrefix = "DSUTIL"
	// DefaultDelimiter is used by explode and implode.
	DefaultDelimiter = ","
)

var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidPattern indicates that a configured date pattern does not compile.
	ErrInvalidPattern = errors.New("invalid date pattern")
	// ErrEmptyDelimiter indicates that the delimiter is empty.
	ErrEmptyDelimiter = errors.New("delimiter cannot be empty")
	// ErrConflictingOutput indicates that both JSON and YAML output are enabled.
	ErrConflictingOutput = errors.New("json and yaml output are mutually exclusive")
	// ErrInvalidIndent indicates that the JSON indent is negative.
	ErrInvalidIndent = errors.New("json_indent cannot be negative")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("input_formats", []string{})
	v.SetDefault("output_format", dates.StandardDateFormat)
	v.SetDefault("boundary", dates.Lower.String())
	v.SetDefault("delimiter", DefaultDelimiter)
	v.SetDefault("json", false)
	v.SetDefault("yaml", false)
	v.SetDefault("json_indent", 2)
	v.SetDefault("date_pattern", dates.StandardDateFormat)
}

// LoadConfig loads configuration settings from a YAML file.
// A missing default file is not an error, an explicitly named one is.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	explicit := configFilename != ""
	if !explicit {
		configFilename = DefaultConfigFilename
	}
	v.SetConfigFile(configFilename)
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var ok bool
	if cfg.ParsedLogLevel, ok = logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, cfg.LogLevel)
	}
	boundary, err := dates.ParseTimeBoundary(cfg.Boundary)
	if err != nil {
		return err
	}
	cfg.ParsedBoundary = boundary
	if cfg.Delimiter == "" {
		return ErrEmptyDelimiter
	}
	if cfg.JSON && cfg.YAML {
		return ErrConflictingOutput
	}
	if cfg.JSONIndent < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndent, cfg.JSONIndent)
	}
	patterns := append([]string{cfg.OutputFormat, cfg.DatePattern}, cfg.InputFormats...)
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if _, err := ftime.Compile(pattern); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
		}
	}
	return nil
}

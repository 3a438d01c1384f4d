package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/splitview/internal/config/loader"
	"github.com/dshills/splitview/internal/engine"
	"github.com/dshills/splitview/internal/engine/buffer"
	"github.com/dshills/splitview/internal/engine/history"
	"github.com/dshills/splitview/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SPLITVIEW_"

// LineEndingAuto detects the line ending of each buffer from its text.
const LineEndingAuto = "auto"

// Config holds every splitview setting.
type Config struct {
	History HistoryConfig `toml:"history"`
	Buffer  BufferConfig  `toml:"buffer"`
	Log     LogConfig     `toml:"log"`
}

// HistoryConfig configures undo history.
type HistoryConfig struct {
	// MaxEntries is the number of undo groups kept per buffer.
	MaxEntries int `toml:"max_entries"`
}

// BufferConfig configures opened buffers.
type BufferConfig struct {
	// LineEnding is lf, crlf, cr or auto.
	LineEnding string `toml:"line_ending"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `toml:"level"`
	Prefix string `toml:"prefix"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		History: HistoryConfig{MaxEntries: history.DefaultMaxEntries},
		Buffer:  BufferConfig{LineEnding: LineEndingAuto},
		Log:     LogConfig{Level: "info", Prefix: "splitview"},
	}
}

// Load builds a configuration from the defaults, the TOML file at path and
// the SPLITVIEW_ environment variables. A missing file, or an empty path,
// leaves the defaults in place.
func Load(fsys loader.FileSystem, path string) (*Config, error) {
	var fileConfig map[string]any
	if path != "" {
		var err error
		fileConfig, err = loader.NewTOMLLoader(fsys, path).Load()
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	envConfig, err := loader.NewEnvLoader(EnvPrefix).Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	return fromMap(loader.DeepMerge(fileConfig, envConfig))
}

// Parse builds a configuration from the defaults and TOML data.
// Source names the data in errors.
func Parse(source string, data []byte) (*Config, error) {
	m, err := loader.Parse(source, data)
	if err != nil {
		return nil, err
	}
	return fromMap(m)
}

// fromMap decodes m over the defaults and validates the result.
func fromMap(m map[string]any) (*Config, error) {
	cfg := Default()
	if len(m) > 0 {
		data, err := toml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("encoding settings: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decoding settings: %w: %w", ErrTypeMismatch, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting holds a usable value.
func (c *Config) Validate() error {
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("history.max_entries must be positive, got %d: %w", c.History.MaxEntries, ErrValidationFailed)
	}
	if _, _, err := c.lineEnding(); err != nil {
		return err
	}
	if _, ok := logging.LookupLevel(c.Log.Level); !ok {
		return fmt.Errorf("log.level %q is not a level: %w", c.Log.Level, ErrValidationFailed)
	}
	return nil
}

// lineEnding returns the configured line ending. The boolean is false when
// the line ending is detected per buffer.
func (c *Config) lineEnding() (buffer.LineEnding, bool, error) {
	name := strings.ToLower(c.Buffer.LineEnding)
	if name == LineEndingAuto || name == "" {
		return buffer.LineEndingLF, false, nil
	}
	le, ok := buffer.ParseLineEnding(name)
	if !ok {
		return le, false, fmt.Errorf("buffer.line_ending %q is not lf, crlf, cr or auto: %w", c.Buffer.LineEnding, ErrValidationFailed)
	}
	return le, true, nil
}

// NewLogger creates the logger described by the configuration.
func (c *Config) NewLogger(w io.Writer) *logging.Logger {
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(c.Log.Level),
		Output: w,
		Prefix: c.Log.Prefix,
	})
}

// EngineOptions returns the engine options described by the configuration.
func (c *Config) EngineOptions(logger *logging.Logger) []engine.Option {
	opts := []engine.Option{
		engine.WithMaxUndoEntries(c.History.MaxEntries),
		engine.WithLogger(logger),
	}

	if le, fixed, err := c.lineEnding(); err == nil && fixed {
		opts = append(opts, engine.WithLineEnding(le))
	}
	return opts
}

package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/dshills/splitview/internal/engine"
	"github.com/dshills/splitview/internal/engine/history"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.History.MaxEntries != history.DefaultMaxEntries {
		t.Errorf("MaxEntries = %d, want %d", cfg.History.MaxEntries, history.DefaultMaxEntries)
	}
	if cfg.Buffer.LineEnding != LineEndingAuto {
		t.Errorf("LineEnding = %q, want auto", cfg.Buffer.LineEnding)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(fstest.MapFS{}, "splitview.toml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	fsys := fstest.MapFS{
		"splitview.toml": {Data: []byte(`
[history]
max_entries = 20

[buffer]
line_ending = "crlf"
`)},
	}

	cfg, err := Load(fsys, "splitview.toml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.History.MaxEntries != 20 {
		t.Errorf("MaxEntries = %d, want 20", cfg.History.MaxEntries)
	}
	if cfg.Buffer.LineEnding != "crlf" {
		t.Errorf("LineEnding = %q, want crlf", cfg.Buffer.LineEnding)
	}
	if cfg.Log.Prefix != "splitview" {
		t.Errorf("unset settings should keep defaults, got prefix %q", cfg.Log.Prefix)
	}
}

func TestLoad_Include(t *testing.T) {
	fsys := fstest.MapFS{
		"base.toml":      {Data: []byte("[log]\nprefix = \"base\"\n")},
		"splitview.toml": {Data: []byte("\"@include\" = \"base.toml\"\n[log]\nlevel = \"warn\"\n")},
	}

	cfg, err := Load(fsys, "splitview.toml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Prefix != "base" || cfg.Log.Level != "warn" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("SPLITVIEW_LOG_LEVEL", "debug")
	t.Setenv("SPLITVIEW_HISTORY_MAX_ENTRIES", "5")

	fsys := fstest.MapFS{
		"splitview.toml": {Data: []byte("[log]\nlevel = \"error\"\n")},
	}

	cfg, err := Load(fsys, "splitview.toml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.History.MaxEntries != 5 {
		t.Errorf("MaxEntries = %d, want 5", cfg.History.MaxEntries)
	}
}

func TestLoad_EmptyPathReadsEnvironmentOnly(t *testing.T) {
	t.Setenv("SPLITVIEW_BUFFER_LINE_ENDING", "cr")

	cfg, err := Load(fstest.MapFS{}, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Buffer.LineEnding != "cr" {
		t.Errorf("LineEnding = %q, want cr", cfg.Buffer.LineEnding)
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse("inline.toml", []byte("[history\n"))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Path != "inline.toml" {
		t.Errorf("Path = %q, want inline.toml", perr.Path)
	}
}

func TestParse_TypeMismatch(t *testing.T) {
	_, err := Parse("inline.toml", []byte("[history]\nmax_entries = \"many\"\n"))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero max entries", func(c *Config) { c.History.MaxEntries = 0 }},
		{"negative max entries", func(c *Config) { c.History.MaxEntries = -4 }},
		{"unknown line ending", func(c *Config) { c.Buffer.LineEnding = "dos" }},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrValidationFailed) {
				t.Errorf("expected ErrValidationFailed, got %v", err)
			}
		})
	}

	cfg := Default()
	cfg.Buffer.LineEnding = "CRLF"
	cfg.Log.Level = "Warning"
	if err := cfg.Validate(); err != nil {
		t.Errorf("names should be case-insensitive: %v", err)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.History.MaxEntries = 3
	cfg.Buffer.LineEnding = "crlf"

	e := engine.New(cfg.EngineOptions(cfg.NewLogger(&bytes.Buffer{}))...)
	h := e.OpenBuffer("", "a\nb")

	text, err := e.Text(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "a\r\nb" {
		t.Errorf("expected CRLF text, got %q", text)
	}

	doc, _ := e.Buffer(h)
	if doc.History().MaxEntries() != 3 {
		t.Errorf("MaxEntries = %d, want 3", doc.History().MaxEntries())
	}
}

func TestEngineOptions_AutoDetects(t *testing.T) {
	cfg := Default()

	e := engine.New(cfg.EngineOptions(cfg.NewLogger(&bytes.Buffer{}))...)
	h := e.OpenBuffer("", "a\r\nb")

	if text, _ := e.Text(h); text != "a\r\nb" {
		t.Errorf("expected detected CRLF, got %q", text)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"
	cfg.Log.Prefix = "test"

	var out bytes.Buffer
	cfg.NewLogger(&out).Debug("hello %d", 1)

	if !strings.Contains(out.String(), "[DEBUG] test: hello 1") {
		t.Errorf("unexpected log output %q", out.String())
	}
}

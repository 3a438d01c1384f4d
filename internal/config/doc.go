// Package config loads the settings of the splitview editing core.
//
// Settings come from three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← SPLITVIEW_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← splitview.toml (with @include)
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// A config file looks like:
//
//	[history]
//	max_entries = 1000
//
//	[buffer]
//	line_ending = "auto"   # lf | crlf | cr | auto
//
//	[log]
//	level = "info"
//	prefix = "splitview"
//
// # Basic Usage
//
//	cfg, err := config.Load(loader.DefaultFS(), "splitview.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger := cfg.NewLogger(os.Stderr)
//	e := engine.New(cfg.EngineOptions(logger)...)
package config

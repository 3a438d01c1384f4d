// Package main is the entry point for splitview, which replays scripted
// multi-client editing sessions against the editing core.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/splitview/internal/config"
	"github.com/dshills/splitview/internal/config/loader"
	"github.com/dshills/splitview/internal/engine"
	"github.com/dshills/splitview/internal/logging"
	"github.com/dshills/splitview/internal/replay"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	configPath  string
	scriptPath  string
	format      string
	logLevel    string
	showVersion bool
	showHelp    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "splitview %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	format, err := replay.ParseFormat(opts.format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := config.Load(loader.DefaultFS(), opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		if _, ok := logging.LookupLevel(opts.logLevel); !ok {
			fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			return 1
		}
		cfg.Log.Level = opts.logLevel
	}

	logger := cfg.NewLogger(stderr)

	script, err := readScript(opts.scriptPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	e := engine.New(cfg.EngineOptions(logger)...)
	runner := replay.NewRunner(e, logger)
	if err := runner.Run(ctx, script); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := replay.Write(stdout, format, runner.Dump()); err != nil {
		fmt.Fprintf(stderr, "Error: failed to write state: %v\n", err)
		return 1
	}
	return 0
}

// readScript decodes the script at path, or stdin when path is empty or "-".
func readScript(path string, stdin io.Reader) (*replay.Script, error) {
	if path == "" || path == "-" {
		return replay.Decode(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	return replay.Decode(f)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("splitview", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.scriptPath, "script", "", "Path to replay script (default stdin)")
	fs.StringVar(&opts.scriptPath, "s", "", "Path to replay script (shorthand)")
	fs.StringVar(&opts.format, "format", "yaml", "Output format (yaml, json)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&opts.showHelp, "help", false, "Show help message")
	fs.BoolVar(&opts.showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "splitview - multi-client editing core\n\n")
		fmt.Fprintf(stderr, "Usage: splitview [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  splitview -s session.yaml            Replay a script\n")
		fmt.Fprintf(stderr, "  splitview -format json < session.yaml Replay from stdin, dump JSON\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showHelp {
		fs.Usage()
		return opts, flag.ErrHelp
	}
	return opts, nil
}

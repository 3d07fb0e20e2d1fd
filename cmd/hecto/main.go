// Package main is the entry point for the hecto editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/dshills/hecto/internal/app"
	"github.com/dshills/hecto/internal/config"
	"github.com/dshills/hecto/internal/input"
	"github.com/dshills/hecto/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitPanic = 2
)

// options holds the command line.
type options struct {
	configPath string
	backend    string
	logLevel   string
	logFile    string
	filename   string
}

func main() {
	os.Exit(run())
}

func run() (code int) {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration:\n%v\n", err)
		return exitError
	}

	logger, err := app.NewLogger(app.LoggerConfig{
		Level: app.ParseLogLevel(cfg.Log.Level),
		File:  cfg.Log.File,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	defer func() { _ = logger.Sync() }()

	mapper, err := input.NewMapper([]input.Binding{
		{Keys: cfg.Keys.Save, Command: input.Command{Kind: input.CommandSave}, Description: "save"},
		{Keys: cfg.Keys.Quit, Command: input.Command{Kind: input.CommandQuit}, Description: "quit"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	term, err := backend.New(cfg.UI.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return exitError
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return exitError
	}

	// Restore the terminal on every exit path, including panics.
	defer term.Shutdown()
	defer func() {
		if r := recover(); r != nil {
			term.Shutdown()
			logger.Error("%v", app.NewRecoveredPanicError(r, string(debug.Stack())))
			fmt.Fprintf(os.Stderr, "Error: panic: %v\n", r)
			code = exitPanic
		}
	}()

	logger.Info("starting hecto %s (backend %s, file %q)", version, cfg.UI.Backend, opts.filename)

	fg, bg := cfg.StatusColors()
	editor := app.New(term, app.Options{
		Filename:         opts.filename,
		Version:          version,
		Mapper:           mapper,
		Logger:           logger,
		StatusTimeout:    cfg.StatusTimeout(),
		StatusForeground: fg,
		StatusBackground: bg,
	})

	if err := editor.Run(); err != nil {
		term.Shutdown()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// apply overrides configuration values given on the command line.
func (o options) apply(cfg *config.Config) {
	if o.backend != "" {
		cfg.UI.Backend = o.backend
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.backend, "backend", "", "Terminal backend (tcell, ansi)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Hecto - a minimal terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: hecto [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-s  save (asks for a name if the file has none)\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-q  quit\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hecto                       Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  hecto notes.txt             Open a file\n")
		fmt.Fprintf(os.Stderr, "  hecto -backend ansi x.txt   Use the raw ANSI driver\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(exitOK)
	}

	if showVersion {
		fmt.Printf("Hecto %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(exitOK)
	}

	if flag.NArg() > 0 {
		opts.filename = flag.Arg(0)
	}
	return opts
}

// Package main is the entry point for the CodeForge playground.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sadvi2004/CodeForge/internal/app"
	"github.com/Sadvi2004/CodeForge/internal/config"
	"github.com/Sadvi2004/CodeForge/internal/config/watcher"
	"github.com/Sadvi2004/CodeForge/internal/renderer"
	"github.com/Sadvi2004/CodeForge/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds parsed command-line flags.
type options struct {
	ConfigPath string
	overrides
}

// overrides are flag values layered over the loaded configuration.
// Empty fields leave the setting alone.
type overrides struct {
	LogLevel  string
	ExportDir string
	Preview   string
}

// apply sets every non-empty override on cfg and revalidates it.
func (o overrides) apply(cfg *config.Config) error {
	for _, kv := range [][2]string{
		{"log.level", o.LogLevel},
		{"export.dir", o.ExportDir},
		{"preview.path", o.Preview},
	} {
		if kv[1] == "" {
			continue
		}
		if err := cfg.Set(kv[0], kv[1]); err != nil {
			return err
		}
	}
	return cfg.Validate()
}

// watchConfig reloads the config file at path on change, reapplies the
// flag overrides and hands the result to post. The file may not exist yet.
// An empty path watches nothing and returns a nil watcher.
func watchConfig(path string, o overrides, post config.ReloadFunc, wopts ...watcher.Option) (*watcher.Watcher, error) {
	if path == "" {
		return nil, nil
	}
	return config.Watch(path, func(c *config.Config, err error) {
		if err == nil {
			err = o.apply(c)
		}
		if err != nil {
			post(nil, err)
			return
		}
		post(c, nil)
	}, wopts...)
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err == nil {
		err = opts.apply(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// The terminal belongs to the editor, so logs go to a file or nowhere.
	logOut, err := app.OpenLogFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		return 1
	}
	defer logOut.Close()

	logCfg := app.DefaultLoggerConfig()
	logCfg.Output = logOut
	logger := app.NewLogger(logCfg)

	// Errors are printed only after the terminal has been restored.
	if err := serve(cfg, opts, logger); err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("shutdown")
	return 0
}

// serve runs the editor until the user quits or a signal arrives.
func serve(cfg *config.Config, opts options, logger *app.Logger) error {
	application, err := app.New(app.Options{Config: cfg, Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer term.Shutdown()

	ui, err := renderer.NewUI(application, term)
	if err != nil {
		return err
	}

	w, err := watchConfig(opts.ConfigPath, opts.overrides, ui.PostReload)
	if err != nil {
		logger.Warn("config watch disabled: %v", err)
	} else if w != nil {
		defer w.Close()
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("event loop: %w", err)
	}
	return nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.ExportDir, "export-dir", "", "Directory exported ZIP archives are written to")
	flag.StringVar(&opts.Preview, "preview", "", "Path of the live preview HTML file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "CodeForge - terminal HTML/CSS/JS playground\n\n")
		fmt.Fprintf(os.Stderr, "Usage: codeforge [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %sSECTION_KEY overrides a setting, e.g. %sEDITOR_INDENT_WIDTH=4\n",
			config.EnvPrefix, config.EnvPrefix)
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  codeforge                          Start with defaults\n")
		fmt.Fprintf(os.Stderr, "  codeforge -c ~/.codeforge.toml     Use a config file\n")
		fmt.Fprintf(os.Stderr, "  codeforge -export-dir ~/Downloads  Save ZIPs to Downloads\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("CodeForge %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	if opts.LogLevel != "" {
		if _, ok := app.ParseLogLevel(opts.LogLevel); !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	return opts
}

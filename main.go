// sysbar is a terminal status bar for host system resources.
//
// It samples CPU load, memory, and disk usage every two seconds and shows
// them as compact slots, with an on-demand detail view. When the session
// comes in over SSH it also probes filesystem response time every thirty
// seconds.
//
// Usage:
//
//	sysbar [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/sysbar/config.yaml)
//	-once           Print one status line and exit
//	-json           Print one detail snapshot as JSON and exit
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/sysbar/config"
	"gitlab.com/tinyland/lab/sysbar/display/tui"
	"gitlab.com/tinyland/lab/sysbar/metrics"
	"gitlab.com/tinyland/lab/sysbar/monitor"
	"gitlab.com/tinyland/lab/sysbar/statusbar"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file (default: ~/.config/sysbar/config.yaml)")
		runOnce     = flag.Bool("once", false, "Print one status line and exit")
		runJSON     = flag.Bool("json", false, "Print one detail snapshot as JSON and exit")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("sysbar %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	level := cfg.SlogLevel()
	if *verbose {
		level = slog.LevelDebug
	}
	logger, closeLog, err := buildLogger(cfg, level, *runOnce || *runJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	provider := metrics.NewSystemProvider(logger)
	opts := monitor.Options{
		SampleInterval:  cfg.SampleInterval(),
		LatencyInterval: cfg.LatencyInterval(),
		ProbePause:      cfg.ProbePause(),
		ProbePath:       cfg.ProbePath(),
		Logger:          logger,
	}

	if *runJSON {
		os.Exit(printSnapshot(ctx, provider, opts))
	}
	if *runOnce {
		os.Exit(printOnce(ctx, provider, opts))
	}

	bar := statusbar.NewBar()
	defer bar.Dispose()

	tui.SetAccent(cfg.Theme.Accent)
	app := tui.NewApp(bar, logger)
	mon := monitor.New(provider, app, bar, opts)

	mon.Start(ctx)
	defer mon.Stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sysbar: %v\n", err)
		os.Exit(1)
	}
}

// buildLogger builds the process logger. In TUI mode stderr is owned by the
// alt screen, so without a log file configured output is discarded.
func buildLogger(cfg *config.Config, level slog.Level, inline bool) (*slog.Logger, func(), error) {
	noop := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, noop, err
		}
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		return logger, func() { f.Close() }, nil
	}

	if inline {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return logger, noop, nil
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
	return logger, noop, nil
}

// printOnce runs a single sampling pass and prints the resulting status line.
func printOnce(ctx context.Context, provider metrics.Provider, opts monitor.Options) int {
	bar := statusbar.NewBar()
	defer bar.Dispose()

	mon := monitor.New(provider, &statusbar.NopHost{}, bar, opts)
	mon.Sample(ctx)

	var parts []string
	for _, v := range bar.Views() {
		if !v.Visible || v.Text == "" {
			continue
		}
		parts = append(parts, v.Text)
	}
	line := strings.Join(parts, " │ ")

	// Trim to the terminal width so the line never wraps in prompt hooks.
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		if r := []rune(line); len(r) > w {
			line = string(r[:w])
		}
	}
	fmt.Println(line)
	return 0
}

// printSnapshot fetches one detail snapshot and prints it as indented JSON.
func printSnapshot(ctx context.Context, provider metrics.Provider, opts monitor.Options) int {
	bar := statusbar.NewBar()
	defer bar.Dispose()

	mon := monitor.New(provider, &statusbar.NopHost{}, bar, opts)
	snap, err := mon.DetailSnapshot(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sysbar: %v\n", err)
		return 1
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "sysbar: %v\n", err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}

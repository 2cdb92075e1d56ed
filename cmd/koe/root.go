// Package main provides the CLI entrypoint for koe.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/koehook/koe/internal/audit"
	"github.com/koehook/koe/internal/config"
	"github.com/koehook/koe/internal/deliver"
	"github.com/koehook/koe/internal/hook"
	"github.com/koehook/koe/internal/notify"
	"github.com/koehook/koe/internal/rules"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger
)

// rootCmd is the hook entrypoint: it reads one JSON event from stdin
// and produces best-effort audible feedback for it.
var rootCmd = &cobra.Command{
	Use:   "koe",
	Short: "Audible feedback hook for AI coding assistants",
	Long: `koe is a hook handler that announces coding-assistant activity.

It reads a single hook event as JSON on stdin, matches it against a
built-in rule table, and plays a sound and/or speaks a short Japanese
description through whichever audio backends exist on this machine.

Wire it into the assistant's hook configuration; running it without a
subcommand enters hook mode and waits for the event on stdin.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	// The hook must never confuse the host with usage text or cobra's
	// own error output on stderr-adjacent paths.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(globalOpts.configPath)
		if err != nil {
			// A broken config file must not take the hook down:
			// fall back to defaults and say so once logging is up.
			cfg = config.DefaultConfig()
			setupLogger()
			logger.Warn("config unusable, using defaults", "error", err)
			return nil
		}
		setupLogger()
		return nil
	},
	RunE: runHook,
}

// runHook executes one hook-mode invocation.
func runHook(cmd *cobra.Command, args []string) error {
	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		// A broken pipe is an environment problem, not bad input;
		// stay quiet and let the host continue.
		logger.Warn("reading stdin failed", "error", err)
		return nil
	}

	var notifier hook.Notifier
	if cfg.Notify.Enabled {
		notifier = notify.New(logger)
	}

	h := hook.New(cfg,
		rules.NewMatcher(),
		deliver.NewDefault(cfg, logger),
		audit.NewSink(config.AuditPath(), logger),
		notifier,
		logger,
	)

	if code := h.Handle(input); code != hook.ExitOK {
		os.Exit(code)
	}
	return nil
}

// Execute runs the root command. The exit-code policy lives here: a
// cobra-level failure (bad flags) exits 1, everything else exits 0
// through the handler's own contract.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/koe/config.toml)")
}

// setupLogger configures the global slog logger. Logs go to stderr so
// stdout stays clean for the host tool, plus an optional rotating file.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose || (cfg != nil && cfg.Debug) {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if cfg != nil && cfg.Log.File != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: 3,
		})
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// Command renamer computes a statistical duration acceptance window for a
// batch of media files, filters outliers (ads, previews, corrupt
// recordings), and emits a shell-consumable rename plan on stdout.
//
// It never moves a file itself: review the plan, then pipe it to a shell.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/renamer/internal/check"
	"github.com/backmassage/renamer/internal/config"
	"github.com/backmassage/renamer/internal/logging"
	"github.com/backmassage/renamer/internal/pipeline"
	"github.com/backmassage/renamer/internal/probe"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "1.0.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "renamer: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var (
		colorFlag  string
		configPath string
	)

	cmd := &cobra.Command{
		Use:     "renamer [flags] <directory>...",
		Short:   "Duration-outlier filter and batch renamer for episodic media",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &cfg, colorFlag, configPath)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.IntVar(&cfg.ExcludeAfter, "exclude-after", 0,
		"count of expected entries per directory; entries beyond it are skipped")
	f.StringArrayVar(&cfg.Excludes, "exclude", nil,
		"relative path glob to exclude (repeatable)")
	f.IntVar(&cfg.Offset, "offset", 0,
		"episode index offset from zero if some episodes should be skipped")
	f.StringVarP(&cfg.MinDuration, "min-duration", "m", "",
		"minimum clip duration (e.g. 300, 5m, '2 minutes'); calculated automatically if unset")
	f.Float64VarP(&cfg.Confidence, "confidence", "z", cfg.Confidence,
		"confidence level for expected durations; 0<x<1")
	f.StringVar(&cfg.InputRegex, "input-regex", "",
		"regex applied to relative paths; captured groups feed --output-format; non-matches are skipped")
	f.StringVarP(&cfg.OutputDir, "output", "o", "",
		"base output directory")
	f.StringVar(&cfg.OutputFormat, "output-format", cfg.OutputFormat,
		"destination path template with {0}, {name}, {index}, {offset_index}, {extension}")
	f.IntVar(&cfg.Expect, "expect", -1,
		"expected number of kept episodes; errors if the final count differs")
	f.BoolVar(&cfg.ExcludeMax, "max", false,
		"also exclude excessively long episodes per the --confidence setting")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	f.StringVarP(&cfg.LogFile, "log", "l", "", "append diagnostics to file")
	f.StringVar(&colorFlag, "color", string(config.ColorAuto), "colored logs: auto | always | never")
	f.BoolVarP(&cfg.CheckOnly, "check", "c", false, "run system diagnostics and exit")
	f.StringVar(&configPath, "config", "", "config file (default: per-user config dir)")

	return cmd
}

func run(cmd *cobra.Command, args []string, cfg *config.Config, colorFlag, configPath string) error {
	// Phase 1: Bootstrap — resolve configuration before the logger exists.
	// Precedence: flags > config file > built-in defaults.
	explicit := configPath != ""
	if !explicit {
		configPath = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadFile(configPath, explicit)
	if err != nil {
		return err
	}
	cfg.ColorMode = config.ColorMode(colorFlag)
	fileCfg.Apply(cfg, cmd.Flags().Changed)
	cfg.Directories = args

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Phase 2: Logger available.
	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return fmt.Errorf("system check failed")
		}
		return nil
	}

	// Fail fast if ffprobe is unavailable.
	if err := check.CheckDeps(); err != nil {
		return err
	}

	// Phase 3: Signal handling — cancel the context on SIGINT/SIGTERM so
	// the scan stops between files instead of mid-probe.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, aborting…")
		cancel()
	}()

	// Phase 4: Run the pipeline (scan → interval → filter → plan).
	// Errors propagate to main for the stderr diagnostic and non-zero exit.
	_, err = pipeline.Run(ctx, cfg, log, probe.FFProbe{}, os.Stdout)
	return err
}

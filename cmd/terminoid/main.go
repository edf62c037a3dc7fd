// terminoid is a breakout game for the terminal.
//
// Usage:
//
//	terminoid            - Play the game
//	terminoid config     - Print the effective configuration as YAML
//	terminoid keys       - List the key bindings
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--width, --height     - Playfield size overrides
//	--tick <ms>           - Tick period override
//	--log-file <path>     - Write logs to a file (default: no logging)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/terminoid/internal/config"
	"github.com/vovakirdan/terminoid/internal/core"
	"github.com/vovakirdan/terminoid/internal/game"
	"github.com/vovakirdan/terminoid/internal/platform/tui"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagTickMS     int
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "terminoid",
	Short: "Terminoid - break blocks in your terminal",
	Long: `Terminoid is a breakout game played in the terminal.

Bounce the ball off the paddle to clear all 40 blocks.
Once half the blocks are gone the paddle shrinks to half its width.

Examples:
  terminoid
  terminoid --difficulty easy
  terminoid --tick 64 --log-file terminoid.log
  terminoid config > ~/.terminoid/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Playfield width (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Playfield height (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick", 0, "Tick period in milliseconds (0 = from config)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}

// effectiveConfig loads the config file and applies the preset and flag overrides.
func effectiveConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagWidth > 0 {
		cfg.Playfield.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Playfield.Height = flagHeight
	}
	if flagTickMS > 0 {
		cfg.Tick.PeriodMS = flagTickMS
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the session logger. The game owns the terminal, so logs
// only go to a file; without --log-file they are discarded.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "terminoid",
		Level:           level,
	})
	return logger, closer, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("terminoid needs an interactive terminal")
	}

	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	tpl := game.NewTemplate(cfg)

	rc := core.DefaultConfig()
	rc.TickPeriod = cfg.TickPeriod()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	// Warn early if the terminal cannot fit the playfield
	minW, minH := tui.MinSize(tpl.Playfield())
	if rc.ScreenW < minW || rc.ScreenH < minH {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: terminal is %dx%d, terminoid needs at least %dx%d\n", rc.ScreenW, rc.ScreenH, minW, minH)
		logger.Warn("terminal too small", "width", rc.ScreenW, "height", rc.ScreenH, "need_width", minW, "need_height", minH)
	}

	logger.Info("starting", "width", cfg.Playfield.Width, "height", cfg.Playfield.Height,
		"lives", cfg.Lives, "difficulty", flagDifficulty)

	if err := tui.Run(tpl, rc, logger); err != nil {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

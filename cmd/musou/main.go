// musou is a single-screen arcade shooter. It runs in a desktop window, in the
// terminal, or as an SSH server that gives every session its own game.
//
// Usage:
//
//	musou                - Play in a window
//	musou term           - Play in the current terminal
//	musou serve          - Start SSH server for remote play
//	musou config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--seed <value>        - RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/musou/internal/config"
	"github.com/vovakirdan/musou/internal/games/musou"
	"github.com/vovakirdan/musou/internal/platform/window"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
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
	Use:   "musou",
	Short: "Musou - shoot the enemies, dodge the bombs",
	Long: `Musou is a single-screen arcade shooter. Steer the bird, fire beams at
the enemies descending from the top and spend your score on power-ups.

Window controls:
  Arrows        - Move
  Left Shift    - Boost (hold), Space with it fires the spread
  Space         - Fire
  Enter         - Gravity field
  S             - Shield
  E             - EMP
  Right Shift   - Hyper mode
  Esc           - Quit

Examples:
  musou
  musou --difficulty hard
  musou term
  musou serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game config from --config and --difficulty.
func loadConfig(logger *log.Logger) (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	logger.Debug("config loaded", "source", src, "difficulty", preset)
	return cfg, nil
}

// newLogger writes to --log-file, or to fallback when no file is given. The
// returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "musou",
	})
	return logger, closer, nil
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	w := window.New(musou.New(cfg), window.Options{
		Title:    "Musou",
		ArenaW:   int(cfg.Arena.Width),
		ArenaH:   int(cfg.Arena.Height),
		TickRate: cfg.Arena.TickRate,
		Seed:     flagSeed,
	}, logger)
	return w.Run()
}

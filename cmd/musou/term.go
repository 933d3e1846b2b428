package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/musou/internal/core"
	"github.com/vovakirdan/musou/internal/games/musou"
	"github.com/vovakirdan/musou/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play in the current terminal. The arena is scaled to the terminal size.

Terminals report key presses but not releases, so movement keys count as held
for a few ticks after the last repeat.

Controls:
  Arrows        - Move (shift+arrows to boost)
  Space         - Fire
  X             - Spread shot
  Enter         - Gravity field
  S             - Shield
  E             - EMP
  H             - Hyper mode
  Q/Esc         - Quit

Logs go to --log-file only; the terminal belongs to the game.`,
	RunE: runTerm,
}

func runTerm(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Arena.TickRate,
		Seed:     flagSeed,
	}
	return tui.Run(musou.New(cfg), runtime, logger)
}

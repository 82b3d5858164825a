package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. Without a variant, a picker is shown.

Controls:
  Mouse      - Move the paddle
  Left/A/H   - Nudge paddle left
  Right/D/L  - Nudge paddle right
  R          - Restart (after the session ends)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Examples:
  breakout play
  breakout play rounds
  breakout play paddle --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	variant := ""
	if len(args) > 0 {
		variant = args[0]
	} else {
		picked, err := tui.RunVariantPicker(core.RuntimeConfig{ScreenW: width, ScreenH: height})
		if err != nil {
			return err
		}
		if picked == "" {
			return nil // User quit the picker
		}
		variant = picked
	}

	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'breakout variants' to see them", variant)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(variant)
	if err != nil {
		return err
	}

	game, closeGame, err := newGame(variant, cfg, logger)
	if err != nil {
		return err
	}
	defer closeGame()

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Runtime.TickRate,
	}
	return tui.Run(game, runtime, logger)
}

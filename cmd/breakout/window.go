package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/window"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Start the game in a desktop window at the surface resolution.

Controls:
  Mouse         - Move the paddle
  Left/A        - Nudge paddle left
  Right/D       - Nudge paddle right
  R             - Restart (after the session ends)
  F             - Toggle fullscreen
  Q/Esc         - Quit

Examples:
  breakout window
  breakout window bricks --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	variant := config.DefaultVariant
	if len(args) > 0 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'breakout variants' to see them", variant)
	}

	logger, closeLog, err := newLogger(os.Stderr)
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

	return window.Run(game, cfg.Runtime.TickRate, logger)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// newLogger builds the process logger. Without a log file, logs go to
// fallback; the terminal frontend passes io.Discard so the screen stays clean.
// The returned close function releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the configuration for a variant and validates it.
func loadConfig(variant string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyVariant(&cfg, variant); err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newGame creates the game for a variant and attaches sound unless muted.
// The returned close function stops audio.
func newGame(variant string, cfg config.Config, logger *log.Logger) (*breakout.Game, func(), error) {
	g, err := registry.Create(variant, registry.Options{Config: cfg, Logger: logger})
	if err != nil {
		return nil, nil, err
	}
	game, ok := g.(*breakout.Game)
	if !ok {
		return nil, nil, fmt.Errorf("variant %q is not a breakout game", variant)
	}

	if flagMute {
		return game, func() {}, nil
	}

	player := audio.NewPlayer()
	if err := player.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return game, func() {}, nil
	}
	game.Session().Subscribe(player.Handle)
	return game, player.Close, nil
}

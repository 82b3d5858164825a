package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the configuration",
	Long: `Without arguments, prints the built-in configuration as YAML. Save it to
~/.arcade/configs/breakout.yaml or pass it with --config to customize the game.

With a variant, prints the configuration that variant runs with: the loaded
file (--config or the search path) plus the variant preset and --fps.

Examples:
  breakout config > my-breakout.yaml
  breakout config bricks
  breakout config rounds --config ./my-breakout.yaml --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeConfig(os.Stdout, args)
	},
}

func writeConfig(w io.Writer, args []string) error {
	if len(args) == 0 {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

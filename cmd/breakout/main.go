// breakout is a single-paddle ball-and-brick game for the terminal and the
// desktop.
//
// Usage:
//
//	breakout variants           - List available variants
//	breakout play [variant]     - Play in the terminal (picker when omitted)
//	breakout window [variant]   - Play in a desktop window
//	breakout config [variant]   - Print the default or resolved configuration
//
// Global flags:
//
//	--fps <rate>          - Override the configured tick rate
//	--config <path>       - Path to a custom config YAML
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--mute                - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball, break the bricks",
	Long: `Breakout is a single-paddle ball-and-brick game. The ball bounces off
the walls, the ceiling, the paddle and the bricks; dropping it to the floor
puts it back in the middle and rebuilds the wall.

Available commands:
  variants - Show all variants
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the default configuration

Examples:
  breakout play
  breakout play bricks --fps 30
  breakout window paddle --mute
  breakout config > my-breakout.yaml
  breakout play --config ./my-breakout.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

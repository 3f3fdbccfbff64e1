// breakout is a single-screen block-breaking game for the terminal.
//
// Usage:
//
//	breakout                 - Play a game
//	breakout config          - Print the effective configuration as YAML
//
// Flags:
//
//	--config <path>      - Custom game config YAML
//	--renderer <name>    - tui (Bubble Tea, default) or tcell
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--debug              - Log at debug level
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exitAbandoned is the exit status after the player quits mid-game.
const exitAbandoned = 130

var (
	flagConfig   string
	flagRenderer string
	flagLogFile  string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errAbandoned) {
			os.Exit(exitAbandoned)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Break every block in your terminal",
	Long: `Breakout is a terminal block-breaking game. Bounce the ball off the
paddle to break all the blocks; let it fall past the paddle and you lose.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Q/Ctrl+C   - Quit

Examples:
  breakout
  breakout --renderer tcell
  breakout --config ./my-breakout.yaml
  breakout --log-file breakout.log --debug
  breakout config > my-breakout.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagRenderer, "renderer", rendererTUI, "Renderer: tui or tcell")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(configCmd)
}

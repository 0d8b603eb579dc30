// arkanoid is a block breaker for the terminal.
//
// Usage:
//
//	arkanoid list              - List game modes
//	arkanoid play              - Play a game
//	arkanoid menu              - Start menu to pick modes interactively
//	arkanoid serve             - Start SSH server for remote play
//	arkanoid scores [game]     - Show best runs for a mode
//	arkanoid stats             - Show per-mode statistics
//	arkanoid replay <file>     - Re-simulate a recorded run
//	arkanoid levels            - List or check level files
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.arkanoid/scores.db)
//	--log <path>         - Append logs to a file (interactive commands)
//	--log-level <level>  - Minimum log level (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/logging"

	// Import games to register them
	_ "github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - Break blocks in your terminal",
	Long: `Arkanoid is a terminal block breaker. Bounce the ball off your paddle,
clear every breakable block and keep the ball in play.

Available commands:
  list     - Show game modes
  play     - Play directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  stats    - View per-mode statistics
  replay   - Re-simulate a recorded run
  levels   - List or check level files

Examples:
  arkanoid play
  arkanoid play --level 3 --difficulty hard
  arkanoid menu
  arkanoid serve --ssh :2222
  arkanoid scores arkanoid_endless`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Append logs to this file (interactive commands)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(levelsCmd)
}

// runtimeConfig sizes the screen to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// fileLogger opens the --log file. The terminal belongs to the game, so
// interactive commands never log to stderr.
func fileLogger() (*log.Logger, io.Closer) {
	logger, closer, err := logging.OpenFile(flagLogFile, "arkanoid", flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closer
}

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Best runs
  Q            - Quit

Examples:
  arkanoid menu
  arkanoid menu --fps 30
  arkanoid menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	// Shares the play flags for config, difficulty and levels
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applySettings(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: scores disabled: %v\n", err)
		store = nil
	}
	logger, logCloser := fileLogger()
	defer func() {
		if store != nil {
			store.Close()
		}
		logCloser.Close()
	}()

	cfg := runtimeConfig()
	for {
		var again bool
		if cfg, again, err = menuRound(cfg, store, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		if !again {
			return
		}
	}
}

// menuRound shows the title screen once and plays whatever it leads to.
// again is false when the player asked to quit.
func menuRound(cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) (_ core.RuntimeConfig, again bool, err error) {
	res, err := tui.RunMenu(store, cfg)
	if err != nil {
		return cfg, false, err
	}
	cfg = res.Config

	switch {
	case res.Quit || (res.GameID == "" && !res.WantsScoreboard):
		return cfg, false, nil
	case res.WantsScoreboard:
		back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return cfg, back, err
	}

	// Settings are reloaded every round so edited level files show up.
	gameCfg, lvls, err := arkanoid.LoadSettings()
	if err != nil {
		return cfg, false, err
	}
	sel, cfg, err := tui.RunArkanoidModeSelector(levelNames(lvls), cfg)
	if err != nil || sel == nil {
		return cfg, true, err
	}
	if err := playSelection(*sel, gameCfg, lvls, cfg, store, logger, ""); err != nil {
		return cfg, true, fmt.Errorf("run game: %w", err)
	}
	return cfg, true, nil
}

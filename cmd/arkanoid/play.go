package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/replay"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLevel      int
	flagEndless    bool
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Arkanoid",
	Long: `Start a game. Without --level or --endless a mode selector is shown.

Controls:
  Left/Right, A/D  - Move paddle (the mouse works too)
  Space/Up/Click   - Launch the ball
  Enter            - Next level after a win
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Ball starts slow, speeds up with score and time
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arkanoid play
  arkanoid play --level 2
  arkanoid play --endless --difficulty hard
  arkanoid play --levels ./my-levels
  arkanoid play --config ./my-arkanoid.yaml --record run.rec`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start on this level (1-based)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the run to this file for 'arkanoid replay'")
}

// applySettings hands the play flags to the game package.
func applySettings() error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	arkanoid.SetConfigPath(flagConfig)
	arkanoid.SetDifficultyPreset(flagDifficulty)
	arkanoid.SetLevelsDir(flagLevelsDir)
	return nil
}

func levelNames(lvls []levels.Level) []string {
	names := make([]string, len(lvls))
	for i, l := range lvls {
		names[i] = l.Name
	}
	return names
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := applySettings(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, lvls, err := arkanoid.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := runtimeConfig()

	var selection *tui.ArkanoidSelection
	if flagLevel == 0 && !flagEndless {
		// Show the mode/level selector
		sel, updatedCfg, selErr := tui.RunArkanoidModeSelector(levelNames(lvls), rt)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		rt = updatedCfg

		// User pressed back or quit
		if sel == nil {
			return
		}
		selection = sel
	} else {
		selection = &tui.ArkanoidSelection{Level: flagLevel}
		if flagEndless {
			selection.Mode = tui.ArkanoidModeEndless
		}
	}

	if selection.Level > len(lvls) {
		fmt.Fprintf(os.Stderr, "Error: level %d out of range (1-%d)\n", selection.Level, len(lvls))
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger, logCloser := fileLogger()

	runErr := playSelection(*selection, gameCfg, lvls, rt, store, logger, flagRecord)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	logCloser.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playSelection runs one game for a menu selection. A non-empty recordPath
// captures every tick for later replay.
func playSelection(sel tui.ArkanoidSelection, gameCfg config.ArkanoidConfig, lvls []levels.Level,
	rt core.RuntimeConfig, store *storage.Store, logger *log.Logger, recordPath string,
) error {
	mode := arkanoid.ModeCampaign
	if sel.Mode == tui.ArkanoidModeEndless {
		mode = arkanoid.ModeEndless
	}
	start := max(sel.Level-1, 0)
	game := arkanoid.NewWithLevels(mode, gameCfg, lvls, start)

	player := audio.New(gameCfg.Audio, logger)
	defer player.Close()

	opts := tui.Options{
		Store:    store,
		Audio:    player,
		Logger:   logger,
		Player:   os.Getenv("USER"),
		MaxDelta: time.Duration(gameCfg.Gameplay.MaxDelta * float64(time.Second)),
		MoveHold: time.Duration(gameCfg.Gameplay.MoveHoldMs) * time.Millisecond,
	}

	var rec *replay.Recorder
	if recordPath != "" {
		var err error
		rec, err = replay.Create(recordPath, replay.Header{
			GameID:     game.ID(),
			StartLevel: start,
			Recorded:   time.Now().Unix(),
			Config:     gameCfg,
			Levels:     lvls,
		})
		if err != nil {
			return err
		}
		opts.Recorder = rec
	}

	logger.Info("game started", "game", game.ID(), "level", start+1, "levels", len(lvls))
	runErr := tui.Run(game, rt, opts)

	if rec != nil {
		closeErr := rec.Close()
		if closeErr == nil {
			fmt.Printf("Recorded %d frames to %s\n", rec.Frames(), recordPath)
		}
		runErr = errors.Join(runErr, closeErr)
	}
	return runErr
}

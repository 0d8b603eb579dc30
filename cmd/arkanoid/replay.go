package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run",
	Long: `Re-run a recording made with 'arkanoid play --record' without a terminal
and print how it ended. The same recording always produces the same state
hash, which makes recordings usable as regression fixtures.

Examples:
  arkanoid play --record run.rec
  arkanoid replay run.rec`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	rec, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res, err := replay.Play(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var played time.Duration
	for _, f := range rec.Frames {
		played += f.Duration()
	}

	fmt.Printf("Game:     %s\n", rec.Header.GameID)
	fmt.Printf("Recorded: %s\n", time.Unix(rec.Header.Recorded, 0).Format("2006-01-02 15:04"))
	fmt.Printf("Frames:   %d (%s)\n", res.Ticks, played.Round(time.Millisecond))
	fmt.Printf("Score:    %d\n", res.State.Score)
	fmt.Printf("Lives:    %d\n", res.State.Lives)
	fmt.Printf("Level:    %d/%d\n", res.State.Level+1, len(rec.Header.Levels))
	fmt.Printf("Outcome:  %s\n", res.Outcome())
	fmt.Printf("Hash:     %016x\n", res.Hash)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List or check level files",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels of a campaign",
	Long: `List the built-in levels, or the levels in --dir, in campaign order.

Examples:
  arkanoid levels list
  arkanoid levels list --dir ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevelsList,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parse each file (.lvl, .json, .yaml or .yml) and report errors.
Exits non-zero if any file is invalid.

Examples:
  arkanoid levels check ./my-levels/01_intro.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runLevelsCheck,
}

var flagLevelsListDir string

func init() {
	levelsListCmd.Flags().StringVar(&flagLevelsListDir, "dir", "", "Directory of level files (default: built-in levels)")
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsCheckCmd)
}

func runLevelsList(_ *cobra.Command, _ []string) {
	loader := levels.Builtin()
	if flagLevelsListDir != "" {
		loader = levels.Dir(flagLevelsListDir)
	}

	lvls, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-3s  %-16s  %-20s  %-7s  %s\n", "#", "ID", "Name", "Size", "Blocks")
	fmt.Printf("  %-3s  %-16s  %-20s  %-7s  %s\n", "-", "--", "----", "----", "------")
	for i, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Cols(), l.Rows())
		fmt.Printf("  %-3d  %-16s  %-20s  %-7s  %d\n", i+1, l.ID, l.Name, size, l.Breakable())
	}
}

func runLevelsCheck(_ *cobra.Command, args []string) {
	failed := 0
	for _, p := range args {
		l, err := levels.LoadPath(p)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", p, err)
			failed++
			continue
		}
		if l.Breakable() == 0 {
			fmt.Printf("WARN  %s: no breakable blocks, the level ends on its first tick\n", p)
			continue
		}
		fmt.Printf("ok    %s (%s, %d blocks)\n", p, l.Name, l.Breakable())
	}

	if failed > 0 {
		os.Exit(1)
	}
}

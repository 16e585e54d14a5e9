package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacmaze/internal/config"
	"github.com/vovakirdan/pacmaze/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games, maze sources and difficulty presets",
	Long: `Shows what can be passed to 'pacmaze play': the registered games,
the --maze sources and the --difficulty presets with the tick timing each
one produces from the default tuning.`,
	Run: func(cmd *cobra.Command, args []string) {
		printCatalog(os.Stdout)
	},
}

var mazeSources = []struct {
	name, desc string
}{
	{config.MazeClassic, "the reference 28x31 maze"},
	{config.MazeGenerated, "a random maze, reproducible with --seed"},
}

func printCatalog(w io.Writer) {
	fmt.Fprintln(w, "Games:")
	for _, g := range registry.List() {
		fmt.Fprintf(w, "  %-10s %s\n", g.ID, g.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Mazes (--maze):")
	for _, m := range mazeSources {
		fmt.Fprintf(w, "  %-10s %s\n", m.name, m.desc)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Difficulty (--difficulty):")
	for _, p := range config.Presets {
		cfg := config.DefaultPacmanConfig()
		config.ApplyPreset(&cfg, p)
		mv := cfg.Movement
		fmt.Fprintf(w, "  %-10s start %dms, fastest %dms, x%.2f per move, x%.2f per stall\n",
			p, mv.BaseIntervalMS, mv.MinIntervalMS, mv.SpeedUp, mv.SlowDown)
	}
}

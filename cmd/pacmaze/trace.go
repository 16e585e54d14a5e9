package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacmaze/internal/core"
	"github.com/vovakirdan/pacmaze/internal/games/pacman"
	"github.com/vovakirdan/pacmaze/internal/games/pacman/engine"
)

var (
	flagMoves       string
	flagFrames      int
	flagTraceConfig string
	flagTraceMaze   string
	flagTraceDiff   string
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Run the game headless and print a snapshot per tick",
	Long: `Run the game without a terminal UI. Each entry of --moves is requested
before one engine tick, in order; once the list runs out the actor keeps
going on its own. One snapshot line is printed per tick.

Moves are comma separated: R, L, U, D or right, left, up, down.

Examples:
  pacmaze trace --moves R,R,U --frames 120
  pacmaze trace --maze generated --seed 7 --frames 600`,
	Run: runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&flagMoves, "moves", "", "Comma separated directions, one per tick")
	traceCmd.Flags().IntVar(&flagFrames, "frames", 300, "Number of host frames to simulate")
	traceCmd.Flags().StringVar(&flagTraceConfig, "config", "", "Path to custom game config YAML")
	traceCmd.Flags().StringVar(&flagTraceMaze, "maze", "", "Maze source: classic or generated")
	traceCmd.Flags().StringVar(&flagTraceDiff, "difficulty", "", "Difficulty preset")
}

func runTrace(cmd *cobra.Command, args []string) {
	moves, err := parseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFrames <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --frames must be positive")
		os.Exit(1)
	}

	pacman.SetConfigPath(flagTraceConfig)
	pacman.SetMazeSource(flagTraceMaze)
	pacman.SetDifficultyPreset(flagTraceDiff)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game := pacman.New()
	game.Reset(cfg)
	trace(os.Stdout, game, moves, flagFrames)
}

// parseMoves splits a comma separated list of directions.
func parseMoves(s string) ([]engine.Direction, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	moves := make([]engine.Direction, 0, len(parts))
	for i, p := range parts {
		d, err := engine.ParseDirection(p)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// trace steps the game for the given number of frames and writes one
// snapshot per tick. A move stays requested until a tick consumes it.
func trace(w io.Writer, game *pacman.Game, moves []engine.Direction, frames int) {
	fmt.Fprintf(w, "start %s\n", game.Snapshot())

	next := 0
	for range frames {
		in := core.NewInputFrame()
		if next < len(moves) {
			in.Set(engine.ActionForDirection(moves[next]))
		}
		res := game.Step(in)
		if !res.Ticked {
			continue
		}
		next++
		fmt.Fprintln(w, game.Snapshot())
		if res.State.Cleared {
			return
		}
	}
}

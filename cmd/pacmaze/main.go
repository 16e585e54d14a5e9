// pacmaze is a terminal maze-runner: steer the actor through the maze and
// collect every dot and power pellet.
//
// Usage:
//
//	pacmaze play [game]      - Play in the terminal
//	pacmaze list             - List available games
//	pacmaze trace            - Run headless and print per-tick snapshots
//	pacmaze rules            - Show how to play
//	pacmaze serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pacmaze/internal/games/pacman"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacmaze",
	Short: "Pac-Maze - Eat your way through a maze in the terminal",
	Long: `Pac-Maze is a terminal maze game. Steer the actor through the maze,
eat every dot and power pellet, and keep moving: the actor speeds up while
it runs freely and slows down when it bumps into walls.

Available commands:
  play     - Play the game
  list     - Show all available games
  trace    - Headless run printing per-tick snapshots
  rules    - How to play
  serve    - Start SSH server for remote play

Examples:
  pacmaze play
  pacmaze play --difficulty hard --maze generated
  pacmaze trace --moves R,R,U --frames 120
  pacmaze serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(serveCmd)
}

// envDefault returns the environment value for key, or fallback.
func envDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

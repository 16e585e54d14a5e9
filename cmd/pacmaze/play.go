package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pacmaze/internal/config"
	"github.com/vovakirdan/pacmaze/internal/core"
	"github.com/vovakirdan/pacmaze/internal/games/pacman"
	"github.com/vovakirdan/pacmaze/internal/platform/tui"
	"github.com/vovakirdan/pacmaze/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMaze       string
	flagLogPath    string
	flagDebug      bool
	flagSetup      bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to pacman.

Controls:
  Arrows/WASD/HJKL - Steer
  Mouse drag       - Steer by swipe direction
  P/Space          - Pause
  R                - Restart with a new seed
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ticks, gentle speed-up
  normal - Tuning as configured
  hard   - Faster ticks, harsher wall penalty
  fixed  - Constant speed, no adaptation

Environment:
  PACMAZE_CONFIG, PACMAZE_DIFFICULTY and PACMAZE_LOG supply defaults for
  --config, --difficulty and --log. A .env file in the working directory
  is loaded first.

Examples:
  pacmaze play
  pacmaze play --difficulty hard
  pacmaze play --maze generated --seed 42
  pacmaze play --setup
  pacmaze play --config ./my-maze.yaml --log ./pacmaze.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML (env PACMAZE_CONFIG)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (env PACMAZE_DIFFICULTY)")
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Maze source: classic or generated (default from config)")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write logs to this file (env PACMAZE_LOG)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log turns and collections")
	playCmd.Flags().BoolVar(&flagSetup, "setup", false, "Pick maze and difficulty from a menu before playing")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := pacman.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacmaze list' to see available games.")
		os.Exit(1)
	}

	configPath := flagConfig
	if !cmd.Flags().Changed("config") {
		configPath = envDefault("PACMAZE_CONFIG", "")
	}
	difficulty := flagDifficulty
	if !cmd.Flags().Changed("difficulty") {
		difficulty = envDefault("PACMAZE_DIFFICULTY", "")
	}
	logPath := flagLogPath
	if !cmd.Flags().Changed("log") {
		logPath = envDefault("PACMAZE_LOG", "")
	}

	if _, err := config.ParsePreset(difficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagMaze != "" && flagMaze != config.MazeClassic && flagMaze != config.MazeGenerated {
		fmt.Fprintf(os.Stderr, "Error: unknown maze %q (use %s or %s)\n", flagMaze, config.MazeClassic, config.MazeGenerated)
		os.Exit(1)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger, closeLog, err := openLogger(logPath, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	pacman.SetLogger(logger)
	pacman.SetConfigPath(configPath)
	pacman.SetDifficultyPreset(difficulty)
	pacman.SetMazeSource(flagMaze)

	if flagSetup && gameID == pacman.ID {
		initial := tui.SetupSelection{Maze: flagMaze}
		if p, perr := config.ParsePreset(difficulty); perr == nil {
			initial.Difficulty = p
		}
		selection, selErr := tui.RunSetupSelector(cfg, initial)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if selection == nil {
			return
		}
		pacman.SetMazeSource(selection.Maze)
		pacman.SetDifficultyPreset(string(selection.Difficulty))
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

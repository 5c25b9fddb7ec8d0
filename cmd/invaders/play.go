package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing. The game defaults to "invaders"; "invaders_compat" lets
a bullet that destroys an enemy still hit the player in the same tick.

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 health, slower enemies, progresses from lowest level
  normal - Start at 30% difficulty, progresses to max
  hard   - 2 health, faster enemies, starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play invaders_compat --config ./my-invaders.yaml
  invaders play --log-file /tmp/invaders.log --verbose`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

// checkGameFlags validates --config and --difficulty before any game is created.
func checkGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadInvaders(flagConfig); err != nil {
			return err
		}
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := invaders.IDExclusive
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available games.")
		os.Exit(1)
	}

	if err := checkGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogFile(flagLogFile, "invaders")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil { //#nosec G115 -- fd fits int
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Set config path and difficulty before creation
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, cfg, logger); runErr != nil {
		logger.Error("game exited", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

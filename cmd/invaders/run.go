package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/replay"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a scripted input sequence headlessly",
	Long: `Plays a YAML input script against a fresh game with a fixed time step
and prints the final state and its snapshot hash. The same script and config
always produce the same hash.

Script format:
  tick_rate: 60          # ticks per second, dt = 1/tick_rate
  policy: exclusive      # optional: exclusive or compat
  frames:
    - {repeat: 30, left: true, fire: 1}
    - {repeat: 60, right: true}

Examples:
  invaders run sweep.yaml
  invaders run sweep.yaml --difficulty fixed --verbose`,
	Args: cobra.ExactArgs(1),
	Run:  runScript,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	runCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runScript(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, "run")

	if err := checkGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	script, err := replay.LoadScript(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyInvadersPreset(&cfg, preset)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := replay.NewRunner(cfg, logger).Run(ctx, script)
	if err != nil {
		logger.Error("run failed", "error", err)
		stop()
		os.Exit(1)
	}

	fmt.Println(resultTable(res).View())
}

// resultTable lays out a run summary as a two-column table.
func resultTable(res replay.Result) table.Model {
	rows := []table.Row{
		{"run", res.RunID.String()},
		{"game", res.GameID},
		{"ticks", strconv.Itoa(res.Ticks)},
		{"phase", res.Phase},
		{"score", strconv.Itoa(res.State.Score)},
		{"health", strconv.Itoa(res.State.Health)},
		{"fired", strconv.Itoa(res.Events.Fired)},
		{"destroyed", strconv.Itoa(res.Events.Destroyed)},
		{"player hits", strconv.Itoa(res.Events.PlayerHits)},
		{"culled", strconv.Itoa(res.Events.Culled)},
		{"reversals", strconv.Itoa(res.Events.Flips)},
		{"hash", fmt.Sprintf("%016x", res.Hash)},
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Field", Width: 12},
			{Title: "Value", Width: 36},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	t.Blur()
	return t
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default configuration",
	Long: `Prints the embedded default YAML configuration. Save it to
~/.arcade/configs/invaders.yaml or pass it with --config to customize play.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	gameID := "invaders"
	if len(args) == 1 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no default config for %q\n", gameID)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

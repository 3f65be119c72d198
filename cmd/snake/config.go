package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-ultra/internal/config"
)

var flagConfigDifficulty string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would use, as YAML. The search order is
--config, ~/.snake/configs/snake.yaml, ./configs/snake.yaml, then the built-in defaults.

Examples:
  snake config
  snake config --difficulty fixed
  snake config > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigDifficulty, "difficulty", "", "Apply a difficulty preset before printing")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if preset := parseDifficulty(flagConfigDifficulty); preset != "" {
		config.ApplySnakePreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

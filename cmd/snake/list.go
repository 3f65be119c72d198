package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-ultra/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty presets",
	Long:  `Shows every difficulty preset with its starting speed.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	fmt.Println("Difficulty presets:")
	fmt.Println()

	fmt.Printf("  %-7s  %-6s  %s\n", "Name", "Speed", "Description")
	fmt.Printf("  %-7s  %-6s  %s\n", "----", "-----", "-----------")

	for _, p := range config.Presets() {
		speed := fmt.Sprintf("%dms", config.SpeedForPreset(p))
		fmt.Printf("  %-7s  %-6s  %s\n", p, speed, p.Describe())
	}

	fmt.Println()
	fmt.Println("Run 'snake play --difficulty <name>' to pick one.")
}

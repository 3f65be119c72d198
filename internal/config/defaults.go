package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			CanvasSize: 400,
			CellSize:   20,
		},
		Speed: SpeedConfig{
			BaseMS:      100,
			MinMS:       50,
			LevelStepMS: 5,
		},
		Scoring: ScoringConfig{
			NormalFood:     10,
			BonusKindFood:  50,
			TimedBonus:     100,
			PointsPerLevel: 50,
		},
		Food: FoodConfig{
			BonusKindChance:  0.2,
			BonusTagChance:   0.2,
			BonusSpawnChance: 0.1,
			BonusDelayMS:     5000,
			BonusTicks:       100,
		},
		PowerUps: PowerUpConfig{
			Chance:      0.15,
			ShieldTicks: 50,
			SpeedTicks:  30,
		},
		Particles: ParticleConfig{
			Count:     8,
			Life:      20,
			Spread:    4,
			MinSize:   2,
			SizeRange: 4,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
			Theme:   "modern",
		},
		Assistant: AssistantConfig{
			Tips:           true,
			AdviceEverySec: 5,
			AdviceChance:   0.05,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

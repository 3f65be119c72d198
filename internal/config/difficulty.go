package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. The empty string is not a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// SpeedForPreset returns the base tick interval in milliseconds for a preset.
func SpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 150
	case DifficultyHard:
		return 60
	default:
		return 100
	}
}

// Describe returns a one-line description used by the CLI and menus.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "relaxed start, speeds up with each level"
	case DifficultyNormal:
		return "classic pace, speeds up with each level"
	case DifficultyHard:
		return "fast start, speeds up with each level"
	case DifficultyFixed:
		return "classic pace, no level speed-up"
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables level speed-ups.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Speed.BaseMS = SpeedForPreset(preset)
	if IsFixedPreset(preset) {
		cfg.Speed.LevelStepMS = 0
	}
}

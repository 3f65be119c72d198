// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake engine.
package config

// SnakeConfig contains all tunable configuration for the snake game.
type SnakeConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Speed     SpeedConfig     `yaml:"speed"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Food      FoodConfig      `yaml:"food"`
	PowerUps  PowerUpConfig   `yaml:"power_ups"`
	Particles ParticleConfig  `yaml:"particles"`
	Audio     AudioConfig     `yaml:"audio"`
	Assistant AssistantConfig `yaml:"assistant"`
}

// GridConfig defines the playfield. TileCount = CanvasSize / CellSize.
type GridConfig struct {
	CanvasSize int `yaml:"canvas_size"` // Playfield edge in pixels
	CellSize   int `yaml:"cell_size"`   // Pixel size of each tile
}

// TileCount returns the number of cells along each edge of the square grid.
func (g GridConfig) TileCount() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.CanvasSize / g.CellSize
}

// SpeedConfig defines the tick interval and its level progression.
type SpeedConfig struct {
	BaseMS      int `yaml:"base_ms"`       // Interval at level 1
	MinMS       int `yaml:"min_ms"`        // Floor for level speed-ups
	LevelStepMS int `yaml:"level_step_ms"` // Interval reduction per level gained
}

// ScoringConfig defines points per event and the level threshold.
type ScoringConfig struct {
	NormalFood     int `yaml:"normal_food"`
	BonusKindFood  int `yaml:"bonus_kind_food"`
	TimedBonus     int `yaml:"timed_bonus"`
	PointsPerLevel int `yaml:"points_per_level"`
}

// FoodConfig defines food roll probabilities and the timed bonus lifecycle.
type FoodConfig struct {
	BonusKindChance  float64 `yaml:"bonus_kind_chance"`  // P(kind = bonus)
	BonusTagChance   float64 `yaml:"bonus_tag_chance"`   // P(visual tag = bonus), independent of kind
	BonusSpawnChance float64 `yaml:"bonus_spawn_chance"` // P(timed bonus scheduled) per food respawn
	BonusDelayMS     int     `yaml:"bonus_delay_ms"`     // Simulated delay before the bonus appears
	BonusTicks       int     `yaml:"bonus_ticks"`        // Ticks the bonus stays on the board
}

// PowerUpConfig defines power-up activation and durations.
type PowerUpConfig struct {
	Chance      float64 `yaml:"chance"`       // P(power-up) per normal food eaten
	ShieldTicks int     `yaml:"shield_ticks"` // Shield duration
	SpeedTicks  int     `yaml:"speed_ticks"`  // Speed boost duration
}

// ParticleConfig defines the eat burst effect.
type ParticleConfig struct {
	Count     int     `yaml:"count"`      // Particles per burst
	Life      int     `yaml:"life"`       // Initial life in ticks
	Spread    float64 `yaml:"spread"`     // Velocity range per axis, centered on zero
	MinSize   float64 `yaml:"min_size"`   // Smallest particle size in pixels
	SizeRange float64 `yaml:"size_range"` // Random size added on top of MinSize
}

// AudioConfig defines sound defaults used until settings are persisted.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	Theme   string  `yaml:"theme"` // "retro", "modern" or "aggressive"
}

// AssistantConfig defines tips and periodic advice.
type AssistantConfig struct {
	Tips           bool    `yaml:"tips"`
	AdviceEverySec int     `yaml:"advice_every_sec"`
	AdviceChance   float64 `yaml:"advice_chance"`
}

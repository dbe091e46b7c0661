// Package config provides YAML-based game configuration loading and
// difficulty preset management for the racer.
package config

// RacerConfig contains all configuration for the racer.
type RacerConfig struct {
	Difficulty DifficultyPreset                  `yaml:"difficulty"`
	Presets    map[DifficultyPreset]PresetConfig `yaml:"presets"`
	Playfield  PlayfieldConfig                   `yaml:"playfield"`
	Player     PlayerConfig                      `yaml:"player"`
	Obstacle   ObstacleConfig                    `yaml:"obstacle"`
	Coin       CoinConfig                        `yaml:"coin"`
	Gameplay   GameplayConfig                    `yaml:"gameplay"`
	Input      InputConfig                       `yaml:"input"`
}

// PresetConfig holds the speed and spawn-rate constants selected by a
// difficulty preset.
type PresetConfig struct {
	ObstacleSpeed         float64 `yaml:"obstacle_speed"`          // Pixels per tick
	CoinSpeed             float64 `yaml:"coin_speed"`              // Pixels per tick
	ObstacleSpawnInterval int     `yaml:"obstacle_spawn_interval"` // Ticks between obstacles, 0 disables
	CoinSpawnInterval     int     `yaml:"coin_spawn_interval"`     // Ticks between coins, 0 disables
	SpeedPerPoint         float64 `yaml:"speed_per_point"`         // Added to fall speed per point scored
}

// PlayfieldConfig is the fixed-size area entities move within.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player car.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Pixels moved per step
	BottomMargin float64 `yaml:"bottom_margin"` // Gap below the car at start
	Vertical     bool    `yaml:"vertical"`      // Allow up/down movement
	Color        string  `yaml:"color"`
	Sprite       string  `yaml:"sprite"` // Optional text-art file
}

// ObstacleConfig defines falling obstacles.
type ObstacleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
	Sprite string  `yaml:"sprite"`
}

// CoinConfig defines collectible coins.
type CoinConfig struct {
	Enabled bool    `yaml:"enabled"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Color   string  `yaml:"color"`
}

// GameplayConfig selects the rule variant.
type GameplayConfig struct {
	// Lives > 0 enables the life-based variant: each hit costs a life and
	// the run ends at zero. Lives == 0 is the classic one-hit variant.
	Lives int `yaml:"lives"`
}

// InputConfig selects how directional input moves the player.
type InputConfig struct {
	Policy    InputPolicy `yaml:"policy"`
	HoldTicks int         `yaml:"hold_ticks"` // Continuous policy: ticks a hold survives without a repeat
}

// InputPolicy is either hold-to-move or tap-to-step.
type InputPolicy string

const (
	InputContinuous InputPolicy = "continuous"
	InputDiscrete   InputPolicy = "discrete"
)

// ParseInputPolicy resolves a policy name. Unknown values fall back to
// InputDiscrete.
func ParseInputPolicy(s string) InputPolicy {
	switch InputPolicy(s) {
	case InputContinuous:
		return InputContinuous
	default:
		return InputDiscrete
	}
}

// ActivePreset returns the constants for the configured difficulty,
// falling back to normal and then to the built-in table.
func (c RacerConfig) ActivePreset() PresetConfig {
	if p, ok := c.Presets[c.Difficulty]; ok {
		return p
	}
	if p, ok := c.Presets[DifficultyNormal]; ok {
		return p
	}
	return builtinPresets[DifficultyNormal]
}

package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the hardcoded racer configuration.
// Values mirror defaults/racer.yaml.
func DefaultRacerConfig() RacerConfig {
	presets := make(map[DifficultyPreset]PresetConfig, len(builtinPresets))
	for k, v := range builtinPresets {
		presets[k] = v
	}

	return RacerConfig{
		Difficulty: DifficultyNormal,
		Presets:    presets,
		Playfield: PlayfieldConfig{
			Width:  400,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       80,
			Speed:        6,
			BottomMargin: 20,
			Vertical:     true,
			Color:        "bright_green",
		},
		Obstacle: ObstacleConfig{
			Width:  50,
			Height: 80,
			Color:  "red",
		},
		Coin: CoinConfig{
			Enabled: true,
			Width:   20,
			Height:  20,
			Color:   "yellow",
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Input: InputConfig{
			Policy:    InputContinuous,
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRacerYAML
}

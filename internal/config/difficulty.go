package config

import "strings"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Difficulties lists the presets in menu order.
var Difficulties = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// builtinPresets backs any preset missing from a loaded config.
var builtinPresets = map[DifficultyPreset]PresetConfig{
	DifficultyEasy: {
		ObstacleSpeed:         3,
		CoinSpeed:             2,
		ObstacleSpawnInterval: 120,
		CoinSpawnInterval:     150,
		SpeedPerPoint:         0,
	},
	DifficultyNormal: {
		ObstacleSpeed:         5,
		CoinSpeed:             3,
		ObstacleSpawnInterval: 100,
		CoinSpawnInterval:     180,
		SpeedPerPoint:         0.05,
	},
	DifficultyHard: {
		ObstacleSpeed:         7,
		CoinSpeed:             4,
		ObstacleSpawnInterval: 60,
		CoinSpawnInterval:     240,
		SpeedPerPoint:         0.1,
	},
}

// ParseDifficulty resolves a preset name. Unknown or empty names fall back
// to DifficultyNormal.
func ParseDifficulty(name string) DifficultyPreset {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyNormal
	}
}

// Next returns the preset after d, wrapping around.
func (d DifficultyPreset) Next() DifficultyPreset {
	return d.shift(1)
}

// Prev returns the preset before d, wrapping around.
func (d DifficultyPreset) Prev() DifficultyPreset {
	return d.shift(-1)
}

func (d DifficultyPreset) shift(by int) DifficultyPreset {
	idx := 1
	for i, p := range Difficulties {
		if p == d {
			idx = i
			break
		}
	}
	n := len(Difficulties)
	return Difficulties[((idx+by)%n+n)%n]
}

// Speed returns the fall speed for the given score: the preset base plus
// score times the per-point multiplier.
func (p PresetConfig) Speed(base float64, score int) float64 {
	return base + float64(score)*p.SpeedPerPoint
}

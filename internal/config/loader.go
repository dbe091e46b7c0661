package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacer loads the racer configuration and normalizes it.
// Search order: customPath -> ~/.racer/configs/racer.yaml -> ./configs/racer.yaml -> embedded default
func LoadRacer(customPath string) (RacerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("racer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "racer.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRacerYAML)
	if err != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so a partial file
// only overrides the keys it names, then normalizes the result. Presets are
// merged per key as well: a preset that names only obstacle_speed keeps the
// builtin intervals.
func Parse(data []byte) (RacerConfig, error) {
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacerConfig{}, err
	}

	var raw struct {
		Presets map[DifficultyPreset]yaml.Node `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return RacerConfig{}, err
	}
	presets := DefaultRacerConfig().Presets
	for name, node := range raw.Presets {
		p := builtinPresets[ParseDifficulty(string(name))]
		if err := node.Decode(&p); err != nil {
			return RacerConfig{}, fmt.Errorf("preset %s: %w", name, err)
		}
		presets[name] = p
	}
	cfg.Presets = presets

	cfg.Normalize()
	return cfg, nil
}

// Normalize replaces unusable values with defaults so the simulation never
// has to validate its inputs. Unknown difficulty becomes normal and an
// unknown input policy becomes discrete. A spawn interval of 0 disables that
// spawn kind; a negative one falls back to the builtin preset.
//
// Normalize builds a new Presets map instead of writing to the existing one,
// so copies of a config can be normalized from several goroutines.
func (c *RacerConfig) Normalize() {
	def := DefaultRacerConfig()

	c.Difficulty = ParseDifficulty(string(c.Difficulty))
	c.Input.Policy = ParseInputPolicy(string(c.Input.Policy))
	if c.Input.HoldTicks < 0 {
		c.Input.HoldTicks = 0
	}

	presets := make(map[DifficultyPreset]PresetConfig, len(Difficulties))
	for _, name := range Difficulties {
		builtin := builtinPresets[name]
		p, ok := c.Presets[name]
		if !ok {
			presets[name] = builtin
			continue
		}
		if p.ObstacleSpeed < 0 {
			p.ObstacleSpeed = 0
		}
		if p.CoinSpeed < 0 {
			p.CoinSpeed = 0
		}
		if p.SpeedPerPoint < 0 {
			p.SpeedPerPoint = 0
		}
		if p.ObstacleSpawnInterval < 0 {
			p.ObstacleSpawnInterval = builtin.ObstacleSpawnInterval
		}
		if p.CoinSpawnInterval < 0 {
			p.CoinSpawnInterval = builtin.CoinSpawnInterval
		}
		presets[name] = p
	}
	c.Presets = presets

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		c.Playfield = def.Playfield
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		c.Player.Width, c.Player.Height = def.Player.Width, def.Player.Height
	}
	if c.Player.Speed <= 0 {
		c.Player.Speed = def.Player.Speed
	}
	if c.Player.BottomMargin < 0 {
		c.Player.BottomMargin = 0
	}
	if c.Obstacle.Width <= 0 || c.Obstacle.Height <= 0 {
		c.Obstacle.Width, c.Obstacle.Height = def.Obstacle.Width, def.Obstacle.Height
	}
	if c.Coin.Width <= 0 || c.Coin.Height <= 0 {
		c.Coin.Width, c.Coin.Height = def.Coin.Width, def.Coin.Height
	}
	if c.Gameplay.Lives < 0 {
		c.Gameplay.Lives = 0
	}
}

// ApplyDifficulty selects a preset by name. An empty name keeps the
// configured difficulty; an unknown name selects normal.
func (c *RacerConfig) ApplyDifficulty(name string) {
	if name == "" {
		return
	}
	c.Difficulty = ParseDifficulty(name)
}

// Marshal encodes the config back to YAML.
func Marshal(cfg RacerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racer", "configs", filename)
}

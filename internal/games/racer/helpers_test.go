package racer

import (
	"errors"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// fixedRandom always returns the same value.
type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

// seqRandom returns vals in order, then repeats the last one.
type seqRandom struct {
	vals []float64
	i    int
}

func (s *seqRandom) Float64() float64 {
	v := s.vals[len(s.vals)-1]
	if s.i < len(s.vals) {
		v = s.vals[s.i]
	}
	s.i++
	return v
}

type memStore struct {
	best    int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memStore) LoadBestScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.best, nil
}

func (m *memStore) SaveBestScore(score int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves = append(m.saves, score)
	m.best = score
	return nil
}

var errStore = errors.New("store unavailable")

// testConfig returns a 400x600 playfield with the simple variant, no coins,
// discrete input, and a stationary obstacle every 100 ticks.
func testConfig() config.RacerConfig {
	cfg := config.DefaultRacerConfig()
	cfg.Difficulty = config.DifficultyNormal
	cfg.Presets[config.DifficultyNormal] = config.PresetConfig{
		ObstacleSpeed:         0,
		ObstacleSpawnInterval: 100,
	}
	cfg.Coin.Enabled = false
	cfg.Gameplay.Lives = 0
	cfg.Input.Policy = config.InputDiscrete
	return cfg
}

func withPreset(cfg config.RacerConfig, p config.PresetConfig) config.RacerConfig {
	cfg.Presets[cfg.Difficulty] = p
	return cfg
}

func tickN(s *Session, n int) Delta {
	var d Delta
	for i := 0; i < n; i++ {
		d = s.Tick(core.NewInputFrame())
	}
	return d
}

// runUntilStopped ticks until the session leaves Running or limit ticks pass.
func runUntilStopped(s *Session, limit int) []Delta {
	var deltas []Delta
	for i := 0; i < limit && s.Running(); i++ {
		deltas = append(deltas, s.Tick(core.NewInputFrame()))
	}
	return deltas
}

// rect returns an obstacle-sized rectangle at (x, y).
func rect(x, y float64) core.Rect {
	return core.NewRect(x, y, 50, 80)
}

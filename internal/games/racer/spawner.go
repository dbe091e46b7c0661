package racer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// RandomSource is any uniform [0,1) generator. *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Spawner creates obstacles and coins at the top of the playfield.
type Spawner struct {
	rng    RandomSource
	fieldW float64

	obstacleW, obstacleH float64
	coinW, coinH         float64
}

// NewSpawner creates a spawner for a playfield of the given width.
func NewSpawner(rng RandomSource, fieldW float64, obstacleSize, coinSize [2]float64) *Spawner {
	return &Spawner{
		rng:       rng,
		fieldW:    fieldW,
		obstacleW: obstacleSize[0],
		obstacleH: obstacleSize[1],
		coinW:     coinSize[0],
		coinH:     coinSize[1],
	}
}

// NewSeededSpawner is NewSpawner backed by a math/rand source.
func NewSeededSpawner(seed int64, fieldW float64, obstacleSize, coinSize [2]float64) *Spawner {
	return NewSpawner(rand.New(rand.NewSource(seed)), fieldW, obstacleSize, coinSize)
}

// Reseed replaces the random source.
func (s *Spawner) Reseed(rng RandomSource) {
	s.rng = rng
}

// MaybeSpawnObstacle returns a new obstacle when frame is a multiple of
// interval. The obstacle starts fully above the visible area.
func (s *Spawner) MaybeSpawnObstacle(frame, interval int, speed float64) (Obstacle, bool) {
	if !due(frame, interval) {
		return Obstacle{}, false
	}
	return Obstacle{
		Rect:  core.NewRect(s.randomX(s.obstacleW), -s.obstacleH, s.obstacleW, s.obstacleH),
		Speed: speed,
	}, true
}

// MaybeSpawnCoin is MaybeSpawnObstacle for coins, with its own interval.
func (s *Spawner) MaybeSpawnCoin(frame, interval int, speed float64) (Coin, bool) {
	if !due(frame, interval) {
		return Coin{}, false
	}
	return Coin{
		Rect:  core.NewRect(s.randomX(s.coinW), -s.coinH, s.coinW, s.coinH),
		Speed: speed,
	}, true
}

// randomX picks a whole-pixel x in [0, fieldW-width].
func (s *Spawner) randomX(width float64) float64 {
	span := s.fieldW - width
	if span <= 0 {
		return 0
	}
	x := math.Floor(s.rng.Float64() * span)
	return core.ClampF(x, 0, span)
}

func due(frame, interval int) bool {
	return interval > 0 && frame > 0 && frame%interval == 0
}

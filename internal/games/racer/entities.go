// Package racer implements a lane-dodging driving game.
// The player steers a car around obstacles falling down a fixed-size
// playfield; every obstacle that leaves the bottom edge scores a point.
package racer

import (
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Player is the car controlled by the user.
type Player struct {
	core.Rect
	Speed float64 // Pixels moved per step
}

// Obstacle is a falling car the player must avoid.
type Obstacle struct {
	core.Rect
	Speed float64 // Base downward velocity in pixels per tick
}

// Coin is a falling collectible. Coins never cost lives.
type Coin struct {
	core.Rect
	Speed float64
}

// pruneObstacles drops obstacles below the playfield and returns how many
// were removed. Order of the survivors is preserved.
func pruneObstacles(obstacles []Obstacle, height float64) ([]Obstacle, int) {
	kept := obstacles[:0]
	for _, o := range obstacles {
		if o.Y > height {
			continue
		}
		kept = append(kept, o)
	}
	return kept, len(obstacles) - len(kept)
}

// pruneCoins drops coins below the playfield.
func pruneCoins(coins []Coin, height float64) []Coin {
	kept := coins[:0]
	for _, c := range coins {
		if c.Y > height {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

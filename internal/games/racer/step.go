package racer

import (
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Delta summarizes what one tick changed. Hosts use it for feedback
// (flash, bell) and to decide whether to schedule the next tick.
type Delta struct {
	Frame          int  // Frame count after the tick
	Spawned        int  // Obstacles created
	CoinsSpawned   int  // Coins created
	Passed         int  // Obstacles that left the playfield (points scored)
	CoinsCollected int  // Coins picked up
	Hits           int  // Lives lost
	Over           bool // The run ended during this tick
	NewBest        bool // The run ended with a new best score
}

// Tick advances a running session by one frame. Actions in the frame are
// added to the input buffer before it is drained. Ticks outside the
// running state change nothing and return an empty Delta.
//
// Order: frame count, input, movement, pruning and scoring, spawning,
// obstacle collisions, coin collisions.
func (s *Session) Tick(in core.InputFrame) Delta {
	if s.state != StateRunning {
		return Delta{}
	}

	s.frame++
	d := Delta{Frame: s.frame}

	s.input.Feed(in)
	s.applyInput(s.input.Drain())

	for i := range s.obstacles {
		s.obstacles[i].Y += s.preset.Speed(s.obstacles[i].Speed, s.score)
	}
	for i := range s.coins {
		s.coins[i].Y += s.preset.Speed(s.coins[i].Speed, s.score)
	}

	fieldH := s.cfg.Playfield.Height
	var passed int
	s.obstacles, passed = pruneObstacles(s.obstacles, fieldH)
	s.score += passed
	d.Passed = passed
	s.coins = pruneCoins(s.coins, fieldH)

	if o, ok := s.spawner.MaybeSpawnObstacle(s.frame, s.preset.ObstacleSpawnInterval, s.preset.ObstacleSpeed); ok {
		s.obstacles = append(s.obstacles, o)
		d.Spawned++
	}
	if s.cfg.Coin.Enabled {
		if c, ok := s.spawner.MaybeSpawnCoin(s.frame, s.preset.CoinSpawnInterval, s.preset.CoinSpeed); ok {
			s.coins = append(s.coins, c)
			d.CoinsSpawned++
		}
	}

	if s.collideObstacles(&d) {
		return d
	}
	s.collectCoins(&d)

	return d
}

// applyInput moves the player one step per move, clamping after each.
func (s *Session) applyInput(moves []Move) {
	fieldW, fieldH := s.cfg.Playfield.Width, s.cfg.Playfield.Height
	for _, m := range moves {
		s.player.X += float64(m.DX) * s.player.Speed
		if s.cfg.Player.Vertical {
			s.player.Y += float64(m.DY) * s.player.Speed
		}
		s.player.Rect = s.player.Rect.ClampTo(fieldW, fieldH)
	}
}

// collideObstacles runs the obstacle collision pass and reports whether the
// run ended.
func (s *Session) collideObstacles(d *Delta) bool {
	if s.cfg.Gameplay.Lives <= 0 {
		for _, o := range s.obstacles {
			if core.Overlaps(s.player.Rect, o.Rect) {
				d.Over = true
				d.NewBest = s.finish()
				return true
			}
		}
		return false
	}

	kept := s.obstacles[:0]
	for i, o := range s.obstacles {
		if !core.Overlaps(s.player.Rect, o.Rect) {
			kept = append(kept, o)
			continue
		}
		s.lives--
		s.lastHit = s.frame
		d.Hits++
		if s.lives <= 0 {
			// Keep the rest of the field as it was for the game-over screen.
			kept = append(kept, s.obstacles[i+1:]...)
			s.obstacles = kept
			d.Over = true
			d.NewBest = s.finish()
			return true
		}
	}
	s.obstacles = kept
	return false
}

func (s *Session) collectCoins(d *Delta) {
	kept := s.coins[:0]
	for _, c := range s.coins {
		if core.Overlaps(s.player.Rect, c.Rect) {
			s.coinCount++
			d.CoinsCollected++
			continue
		}
		kept = append(kept, c)
	}
	s.coins = kept
}

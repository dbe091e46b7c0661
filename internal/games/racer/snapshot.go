package racer

import (
	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Snapshot is a read-only copy of the session for renderers and tests.
type Snapshot struct {
	Frame      int
	State      State
	Difficulty config.DifficultyPreset
	FieldW     float64
	FieldH     float64
	Player     core.Rect
	Obstacles  []core.Rect
	Coins      []core.Rect
	Score      int
	BestScore  int
	Lives      int  // Remaining lives; meaningful when LivesMode is set
	LivesMode  bool // Life-based variant
	CoinCount  int
	CoinsOn    bool
	LastHit    int // Frame of the most recent life lost, 0 if none
	Vertical   bool
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]core.Rect, len(s.obstacles))
	for i, o := range s.obstacles {
		obstacles[i] = o.Rect
	}
	coins := make([]core.Rect, len(s.coins))
	for i, c := range s.coins {
		coins[i] = c.Rect
	}

	return Snapshot{
		Frame:      s.frame,
		State:      s.state,
		Difficulty: s.cfg.Difficulty,
		FieldW:     s.cfg.Playfield.Width,
		FieldH:     s.cfg.Playfield.Height,
		Player:     s.player.Rect,
		Obstacles:  obstacles,
		Coins:      coins,
		Score:      s.score,
		BestScore:  s.bestScore,
		Lives:      s.lives,
		LivesMode:  s.cfg.Gameplay.Lives > 0,
		CoinCount:  s.coinCount,
		CoinsOn:    s.cfg.Coin.Enabled,
		LastHit:    s.lastHit,
		Vertical:   s.cfg.Player.Vertical,
	}
}

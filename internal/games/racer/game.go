package racer

import (
	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// GameID is the key the racer's scores are stored under.
const GameID = "racer"

// Game binds a session to its skins and maps platform actions onto the
// session lifecycle. Hosts talk to Game; tests usually talk to Session.
type Game struct {
	session *Session
	skins   Skins
}

// New creates a game for cfg. Sprites that fail to load fall back to solid
// fills and are reported through the session logger.
func New(cfg config.RacerConfig, opts ...Option) *Game {
	s := NewSession(cfg, opts...)
	cfg = s.Config()

	g := &Game{session: s}
	g.skins = Skins{
		Player:   g.resolve(cfg.Player.Sprite, FillSkin{Rune: '█', Color: color(cfg.Player.Color, core.ColorBrightGreen)}),
		Obstacle: g.resolve(cfg.Obstacle.Sprite, FillSkin{Rune: '▓', Color: color(cfg.Obstacle.Color, core.ColorRed)}),
		Coin:     FillSkin{Rune: '●', Color: color(cfg.Coin.Color, core.ColorYellow)},
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Speed Racer"
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Skins returns the resolved entity appearance.
func (g *Game) Skins() Skins {
	return g.skins
}

// Handle applies one action immediately. Directions steer while running
// and pick the difficulty on the start and game-over screens.
func (g *Game) Handle(a core.Action) {
	s := g.session
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		switch s.State() {
		case StateRunning:
			s.Input().Press(a)
		case StateIdle, StateOver:
			if a == core.ActionLeft {
				s.SetDifficulty(string(s.Difficulty().Prev()))
			} else if a == core.ActionRight {
				s.SetDifficulty(string(s.Difficulty().Next()))
			}
		}
	case core.ActionStart:
		switch s.State() {
		case StateIdle, StateOver:
			s.Start()
		case StatePaused:
			s.Resume()
		}
	case core.ActionPause:
		s.TogglePause()
	}
}

// Step handles the frame's non-directional actions, then advances the
// simulation one tick. Directions in the frame reach the input buffer
// through Tick.
func (g *Game) Step(in core.InputFrame) Delta {
	for _, a := range []core.Action{core.ActionStart, core.ActionPause} {
		if in.Has(a) {
			g.Handle(a)
		}
	}
	return g.session.Tick(in)
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	Render(g.session.Snapshot(), dst, g.skins)
}

func (g *Game) resolve(path string, fallback FillSkin) Skin {
	skin, err := ResolveSkin(path, fallback)
	if err != nil {
		g.session.logger.Warn("sprite unavailable, using fill", "path", path, "error", err)
	}
	return skin
}

func color(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

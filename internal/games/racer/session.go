package racer

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// BestScoreStore persists the single best-score value across sessions.
type BestScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}

// Option configures a Session.
type Option func(*Session)

// WithStore sets where the best score is loaded from and saved to.
func WithStore(store BestScoreStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRandom sets the spawn position source.
func WithRandom(rng RandomSource) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSeed seeds a math/rand spawn source.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// Session is the mutable state of one player's runs, owned by the caller.
// It is not safe for concurrent use: the host must serialize Tick with
// input and lifecycle calls.
type Session struct {
	cfg    config.RacerConfig
	preset config.PresetConfig

	state     State
	player    Player
	obstacles []Obstacle
	coins     []Coin

	score     int
	bestScore int
	lives     int
	coinCount int
	frame     int
	lastHit   int // Frame of the most recent life lost, 0 if none

	input   *InputBuffer
	spawner *Spawner
	rng     RandomSource
	store   BestScoreStore
	logger  *log.Logger
}

// NewSession creates an idle session and loads the persisted best score.
// A failed load leaves the best score at zero.
func NewSession(cfg config.RacerConfig, opts ...Option) *Session {
	cfg.Normalize()

	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1))
	}

	s.input = NewInputBuffer(cfg.Input.Policy, cfg.Input.HoldTicks)
	s.spawner = NewSpawner(s.rng, cfg.Playfield.Width,
		[2]float64{cfg.Obstacle.Width, cfg.Obstacle.Height},
		[2]float64{cfg.Coin.Width, cfg.Coin.Height},
	)
	s.preset = cfg.ActivePreset()
	s.placePlayer()

	if s.store != nil {
		best, err := s.store.LoadBestScore()
		if err != nil {
			s.logger.Warn("could not load best score", "error", err)
		} else if best > 0 {
			s.bestScore = best
		}
	}

	return s
}

// Config returns the normalized configuration.
func (s *Session) Config() config.RacerConfig {
	return s.cfg
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Running reports whether ticks currently advance the simulation. Hosts use
// it to decide whether to schedule another tick.
func (s *Session) Running() bool {
	return s.state == StateRunning
}

// Score returns the score of the current or last run.
func (s *Session) Score() int {
	return s.score
}

// BestScore returns the best score known to this session.
func (s *Session) BestScore() int {
	return s.bestScore
}

// Input returns the buffer input handlers write to between ticks.
func (s *Session) Input() *InputBuffer {
	return s.input
}

// Difficulty returns the selected preset name.
func (s *Session) Difficulty() config.DifficultyPreset {
	return s.cfg.Difficulty
}

// SetDifficulty selects a preset for the next Start. Unknown names select
// normal.
func (s *Session) SetDifficulty(name string) {
	s.cfg.Difficulty = config.ParseDifficulty(name)
}

// Start begins a new run from any state. Score, entities, frame count,
// lives and coins are reset and the player returns to bottom-center.
func (s *Session) Start() {
	s.preset = s.cfg.ActivePreset()
	s.obstacles = s.obstacles[:0]
	s.coins = s.coins[:0]
	s.score = 0
	s.frame = 0
	s.coinCount = 0
	s.lastHit = 0
	s.lives = s.cfg.Gameplay.Lives
	s.input.Reset()
	s.placePlayer()

	s.setState(StateRunning)
}

// Pause freezes a running session. It is a no-op in any other state, so
// pausing twice is the same as pausing once.
func (s *Session) Pause() {
	if s.state != StateRunning {
		return
	}
	s.input.Reset()
	s.setState(StatePaused)
}

// Resume continues a paused session from the same frame, without catching
// up on the time spent paused.
func (s *Session) Resume() {
	if s.state != StatePaused {
		return
	}
	s.input.Reset()
	s.setState(StateRunning)
}

// TogglePause pauses a running session or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.Pause()
	case StatePaused:
		s.Resume()
	}
}

// Stop ends the current run as if it had crashed, persisting the best
// score. It returns false when there was no run to stop.
func (s *Session) Stop() bool {
	if s.state != StateRunning && s.state != StatePaused {
		return false
	}
	s.finish()
	return true
}

// Reseed replaces the spawn position source for subsequent runs.
func (s *Session) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.spawner.Reseed(s.rng)
}

// finish moves the session to Over and persists the best score. It reports
// whether a new best was set.
func (s *Session) finish() bool {
	s.input.Reset()
	s.setState(StateOver)

	if s.score <= s.bestScore {
		return false
	}
	s.bestScore = s.score
	if s.store != nil {
		if err := s.store.SaveBestScore(s.bestScore); err != nil {
			s.logger.Warn("could not save best score", "score", s.bestScore, "error", err)
		} else {
			s.logger.Debug("best score saved", "score", s.bestScore)
		}
	}
	return true
}

func (s *Session) setState(next State) {
	if s.state == next {
		return
	}
	s.logger.Debug("session state", "from", s.state, "to", next, "frame", s.frame, "score", s.score)
	s.state = next
}

// placePlayer puts the car at bottom-center of the playfield.
func (s *Session) placePlayer() {
	w, h := s.cfg.Player.Width, s.cfg.Player.Height
	fieldW, fieldH := s.cfg.Playfield.Width, s.cfg.Playfield.Height
	rect := core.NewRect(fieldW/2-w/2, fieldH-h-s.cfg.Player.BottomMargin, w, h)
	s.player = Player{
		Rect:  rect.ClampTo(fieldW, fieldH),
		Speed: s.cfg.Player.Speed,
	}
}

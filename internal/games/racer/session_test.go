package racer

import (
	"testing"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

func TestNewSessionIsIdle(t *testing.T) {
	s := NewSession(testConfig())

	if s.State() != StateIdle {
		t.Fatalf("state = %v, want idle", s.State())
	}
	d := s.Tick(core.NewInputFrame())
	if d != (Delta{}) {
		t.Errorf("idle tick returned %+v, want empty delta", d)
	}
	if snap := s.Snapshot(); snap.Frame != 0 {
		t.Errorf("idle tick advanced frame to %d", snap.Frame)
	}
}

func TestStartPlacesPlayerAtBottomCenter(t *testing.T) {
	s := NewSession(testConfig())
	s.Start()

	p := s.Snapshot().Player
	want := core.NewRect(180, 500, 40, 80)
	if p != want {
		t.Errorf("player = %+v, want %+v", p, want)
	}
}

func TestSpawnOnlyAtIntervalMultiples(t *testing.T) {
	s := NewSession(testConfig(), WithRandom(fixedRandom(0.5)))
	s.Start()

	for frame := 1; frame <= 99; frame++ {
		if d := s.Tick(core.NewInputFrame()); d.Spawned != 0 {
			t.Fatalf("spawned on frame %d", frame)
		}
	}

	d := s.Tick(core.NewInputFrame())
	if d.Frame != 100 || d.Spawned != 1 {
		t.Fatalf("frame 100 delta = %+v, want one spawn", d)
	}

	snap := s.Snapshot()
	if len(snap.Obstacles) != 1 {
		t.Fatalf("obstacles = %d, want 1", len(snap.Obstacles))
	}
	o := snap.Obstacles[0]
	if o.Y != -80 {
		t.Errorf("obstacle y = %v, want -80", o.Y)
	}
	if o.X != 175 {
		t.Errorf("obstacle x = %v, want floor(0.5*350) = 175", o.X)
	}

	tickN(s, 150)
	if got := len(s.Snapshot().Obstacles); got != 2 {
		t.Errorf("obstacles after 250 ticks = %d, want 2", got)
	}
}

func TestSpawnedObstacleFallsOnNextTick(t *testing.T) {
	cfg := withPreset(testConfig(), config.PresetConfig{
		ObstacleSpeed:         1,
		ObstacleSpawnInterval: 100,
	})
	s := NewSession(cfg, WithRandom(fixedRandom(0)))
	s.Start()

	tickN(s, 100)
	if y := s.Snapshot().Obstacles[0].Y; y != -80 {
		t.Fatalf("y after spawn = %v, want -80", y)
	}
	tickN(s, 1)
	if y := s.Snapshot().Obstacles[0].Y; y != -79 {
		t.Errorf("y after tick 101 = %v, want -79", y)
	}
}

func TestPruningAndScoreMonotonic(t *testing.T) {
	cfg := withPreset(testConfig(), config.PresetConfig{
		ObstacleSpeed:         50,
		ObstacleSpawnInterval: 5,
	})
	// x = 0 keeps every obstacle clear of the centered player.
	s := NewSession(cfg, WithRandom(fixedRandom(0)))
	s.Start()

	prev, passed := 0, 0
	for i := 0; i < 1000; i++ {
		d := s.Tick(core.NewInputFrame())
		passed += d.Passed
		snap := s.Snapshot()
		for _, o := range snap.Obstacles {
			if o.Y > snap.FieldH {
				t.Fatalf("frame %d: obstacle at y=%v below playfield", snap.Frame, o.Y)
			}
		}
		if snap.Score < prev {
			t.Fatalf("frame %d: score decreased %d -> %d", snap.Frame, prev, snap.Score)
		}
		prev = snap.Score
	}

	if !s.Running() {
		t.Fatal("session ended without a collision")
	}
	if prev == 0 || prev != passed {
		t.Errorf("score = %d, passed = %d; want equal and positive", prev, passed)
	}
}

func TestSpeedGrowsWithScore(t *testing.T) {
	cfg := withPreset(testConfig(), config.PresetConfig{
		ObstacleSpeed:         50,
		ObstacleSpawnInterval: 5,
		SpeedPerPoint:         1,
	})
	s := NewSession(cfg, WithRandom(fixedRandom(0)))
	s.Start()

	for s.Score() == 0 {
		s.Tick(core.NewInputFrame())
	}
	before := s.Snapshot().Obstacles[0].Y
	score := s.Score()
	s.Tick(core.NewInputFrame())
	after := s.Snapshot().Obstacles[0].Y
	if got, want := after-before, 50+float64(score); got != want {
		t.Errorf("fall per tick = %v, want %v", got, want)
	}
}

func TestSingleLifeCollisionEndsRun(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		wantBest  int
		wantSaves int
	}{
		{"new best", 2, 3, 1},
		{"below best", 5, 5, 0},
		{"equal best", 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := withPreset(testConfig(), config.PresetConfig{
				ObstacleSpeed:         20,
				ObstacleSpawnInterval: 10,
			})
			// Three obstacles hug the left wall, then they line up with the car.
			rng := &seqRandom{vals: []float64{0, 0, 0, 0.5}}
			store := &memStore{best: tt.stored}
			s := NewSession(cfg, WithRandom(rng), WithStore(store))
			s.Start()

			deltas := runUntilStopped(s, 1000)
			last := deltas[len(deltas)-1]

			if s.State() != StateOver || !last.Over {
				t.Fatalf("state = %v, last delta = %+v; want over", s.State(), last)
			}
			if s.Score() != 3 {
				t.Errorf("score = %d, want 3", s.Score())
			}
			if s.BestScore() != tt.wantBest {
				t.Errorf("best = %d, want %d", s.BestScore(), tt.wantBest)
			}
			if len(store.saves) != tt.wantSaves {
				t.Errorf("saves = %v, want %d", store.saves, tt.wantSaves)
			}
			if last.NewBest != (tt.wantSaves == 1) {
				t.Errorf("NewBest = %v", last.NewBest)
			}

			frame := s.Snapshot().Frame
			tickN(s, 10)
			if s.Snapshot().Frame != frame {
				t.Error("ticks after game over advanced the frame")
			}
		})
	}
}

func TestTouchingEdgesCollide(t *testing.T) {
	cfg := withPreset(testConfig(), config.PresetConfig{
		ObstacleSpeed:         20,
		ObstacleSpawnInterval: 10,
	})
	s := NewSession(cfg, WithRandom(fixedRandom(0.5)))
	s.Start()

	// Spawned at y=-80 on frame 10, the bottom edge reaches the car's top
	// edge (y=500) after 25 moves.
	tickN(s, 34)
	if !s.Running() {
		t.Fatalf("run ended early at frame %d", s.Snapshot().Frame)
	}
	d := tickN(s, 1)
	if !d.Over || d.Frame != 35 {
		t.Errorf("delta = %+v, want over on frame 35", d)
	}
}

func TestLivesVariant(t *testing.T) {
	cfg := withPreset(testConfig(), config.PresetConfig{
		ObstacleSpeed:         20,
		ObstacleSpawnInterval: 10,
	})
	cfg.Gameplay.Lives = 2
	s := NewSession(cfg, WithRandom(fixedRandom(0.5)))
	s.Start()

	d := tickN(s, 35)
	if d.Hits != 1 || d.Over {
		t.Fatalf("frame 35 delta = %+v, want one hit", d)
	}
	snap := s.Snapshot()
	if snap.Lives != 1 || snap.LastHit != 35 || !snap.LivesMode {
		t.Errorf("after first hit: lives=%d lastHit=%d livesMode=%v", snap.Lives, snap.LastHit, snap.LivesMode)
	}
	for _, o := range snap.Obstacles {
		if o.Overlaps(snap.Player) {
			t.Error("colliding obstacle was not removed")
		}
	}

	deltas := runUntilStopped(s, 100)
	last := deltas[len(deltas)-1]
	if !last.Over || last.Hits != 1 {
		t.Errorf("final delta = %+v, want over after a hit", last)
	}
	if s.State() != StateOver || s.Snapshot().Lives != 0 {
		t.Errorf("state = %v lives = %d", s.State(), s.Snapshot().Lives)
	}
}

func TestCoinsCollected(t *testing.T) {
	cfg := withPreset(testConfig(), config.PresetConfig{
		CoinSpeed:         20,
		CoinSpawnInterval: 10,
	})
	cfg.Coin.Enabled = true
	s := NewSession(cfg, WithRandom(fixedRandom(0.5)))
	s.Start()

	collected := 0
	for i := 0; i < 100; i++ {
		collected += s.Tick(core.NewInputFrame()).CoinsCollected
	}

	snap := s.Snapshot()
	if snap.CoinCount != 7 || collected != 7 {
		t.Errorf("coins = %d (deltas %d), want 7", snap.CoinCount, collected)
	}
	if snap.Score != 0 {
		t.Errorf("coins changed score to %d", snap.Score)
	}
	if !s.Running() {
		t.Error("coin pickup ended the run")
	}
}

func TestCoinsDisabled(t *testing.T) {
	cfg := withPreset(testConfig(), config.PresetConfig{
		CoinSpeed:         20,
		CoinSpawnInterval: 10,
	})
	s := NewSession(cfg)
	s.Start()
	tickN(s, 100)
	if n := len(s.Snapshot().Coins); n != 0 {
		t.Errorf("coins = %d with coins disabled", n)
	}
}

func TestPauseIsIdempotent(t *testing.T) {
	s := NewSession(testConfig())
	s.Start()
	tickN(s, 5)

	s.Pause()
	s.Pause()
	if s.State() != StatePaused {
		t.Fatalf("state = %v, want paused", s.State())
	}
	if d := s.Tick(core.NewInputFrame()); d != (Delta{}) {
		t.Errorf("paused tick returned %+v", d)
	}

	s.Resume()
	if s.State() != StateRunning {
		t.Fatalf("state = %v, want running", s.State())
	}
	if d := s.Tick(core.NewInputFrame()); d.Frame != 6 {
		t.Errorf("frame after resume = %d, want 6", d.Frame)
	}

	s.Resume()
	if s.State() != StateRunning {
		t.Errorf("resume while running changed state to %v", s.State())
	}
}

func TestPauseNoOpOutsideRunning(t *testing.T) {
	s := NewSession(testConfig())
	s.Pause()
	s.TogglePause()
	if s.State() != StateIdle {
		t.Errorf("pause in idle moved to %v", s.State())
	}

	s.Start()
	s.Stop()
	s.Pause()
	if s.State() != StateOver {
		t.Errorf("pause in over moved to %v", s.State())
	}
}

func TestStop(t *testing.T) {
	cfg := withPreset(testConfig(), config.PresetConfig{
		ObstacleSpeed:         50,
		ObstacleSpawnInterval: 5,
	})
	store := &memStore{}
	s := NewSession(cfg, WithRandom(fixedRandom(0)), WithStore(store))

	if s.Stop() {
		t.Error("Stop in idle reported true")
	}

	s.Start()
	tickN(s, 100)
	s.Pause()
	score := s.Score()
	if !s.Stop() {
		t.Fatal("Stop while paused reported false")
	}
	if s.State() != StateOver {
		t.Errorf("state = %v, want over", s.State())
	}
	if s.Stop() {
		t.Error("second Stop reported true")
	}
	if len(store.saves) != 1 || store.saves[0] != score {
		t.Errorf("saves = %v, want [%d]", store.saves, score)
	}
}

func TestStartResets(t *testing.T) {
	cfg := withPreset(testConfig(), config.PresetConfig{
		ObstacleSpeed:         50,
		ObstacleSpawnInterval: 5,
	})
	cfg.Coin.Enabled = true
	cfg.Gameplay.Lives = 3
	s := NewSession(cfg, WithRandom(fixedRandom(0)))
	s.Start()
	s.Input().Press(core.ActionLeft)
	tickN(s, 200)
	s.Input().Press(core.ActionRight)

	s.Start()
	snap := s.Snapshot()
	if snap.Frame != 0 || snap.Score != 0 || snap.CoinCount != 0 || snap.Lives != 3 {
		t.Errorf("after restart: %+v", snap)
	}
	if len(snap.Obstacles) != 0 || len(snap.Coins) != 0 {
		t.Error("entities survived restart")
	}
	if snap.Player.X != 180 || snap.Player.Y != 500 {
		t.Errorf("player at (%v,%v), want (180,500)", snap.Player.X, snap.Player.Y)
	}
	s.Tick(core.NewInputFrame())
	if x := s.Snapshot().Player.X; x != 180 {
		t.Errorf("input pressed before restart moved the player to x=%v", x)
	}
}

func TestBestScoreLoad(t *testing.T) {
	s := NewSession(testConfig(), WithStore(&memStore{best: 42}))
	if s.BestScore() != 42 {
		t.Errorf("best = %d, want 42", s.BestScore())
	}

	s = NewSession(testConfig(), WithStore(&memStore{loadErr: errStore}))
	if s.BestScore() != 0 {
		t.Errorf("best after load error = %d, want 0", s.BestScore())
	}
}

func TestBestScoreSaveFailureIsNotFatal(t *testing.T) {
	cfg := withPreset(testConfig(), config.PresetConfig{
		ObstacleSpeed:         50,
		ObstacleSpawnInterval: 5,
	})
	s := NewSession(cfg, WithRandom(fixedRandom(0)), WithStore(&memStore{saveErr: errStore}))
	s.Start()
	tickN(s, 100)
	s.Stop()

	if s.BestScore() != s.Score() || s.Score() == 0 {
		t.Errorf("best = %d score = %d", s.BestScore(), s.Score())
	}
}

func TestSetDifficulty(t *testing.T) {
	s := NewSession(testConfig())
	s.SetDifficulty("hard")
	if s.Difficulty() != config.DifficultyHard {
		t.Errorf("difficulty = %v", s.Difficulty())
	}
	s.SetDifficulty("insane")
	if s.Difficulty() != config.DifficultyNormal {
		t.Errorf("unknown difficulty = %v, want normal", s.Difficulty())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		cfg := config.DefaultRacerConfig()
		g := New(cfg, WithSeed(12345))
		g.Handle(core.ActionStart)
		for i := 0; i < 3000 && g.Session().Running(); i++ {
			in := core.NewInputFrame()
			in.Set(Autopilot(g.Session().Snapshot()))
			g.Step(in)
		}
		return g.Session().Snapshot()
	}

	a, b := run(), run()
	if a.Frame != b.Frame || a.Score != b.Score || a.CoinCount != b.CoinCount || a.Player != b.Player {
		t.Errorf("runs differ: frame %d/%d score %d/%d coins %d/%d",
			a.Frame, b.Frame, a.Score, b.Score, a.CoinCount, b.CoinCount)
	}
}

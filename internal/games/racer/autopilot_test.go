package racer

import (
	"testing"

	"github.com/vovakirdan/tui-racer/internal/core"
)

func TestAutopilot(t *testing.T) {
	player := core.NewRect(180, 500, 40, 80)
	base := Snapshot{
		State:  StateRunning,
		FieldW: 400,
		FieldH: 600,
		Player: player,
	}

	tests := []struct {
		name      string
		obstacles []core.Rect
		coins     []core.Rect
		playerX   float64
		want      core.Action
	}{
		{"clear road", nil, nil, 180, core.ActionNone},
		{"threat right of center", []core.Rect{rect(190, 300)}, nil, 180, core.ActionLeft},
		{"threat left of center", []core.Rect{rect(160, 300)}, nil, 180, core.ActionRight},
		{"threat far above", []core.Rect{rect(180, -80)}, nil, 180, core.ActionNone},
		{"threat in another lane", []core.Rect{rect(0, 300)}, nil, 180, core.ActionNone},
		{"pinned to left wall", []core.Rect{rect(10, 300)}, nil, 0, core.ActionRight},
		{"pinned to right wall", []core.Rect{rect(340, 300)}, nil, 360, core.ActionLeft},
		{"coin to the left", nil, []core.Rect{core.NewRect(50, 100, 20, 20)}, 180, core.ActionLeft},
		{"coin aligned", nil, []core.Rect{core.NewRect(190, 100, 20, 20)}, 180, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base
			snap.Player.X = tt.playerX
			snap.Obstacles = tt.obstacles
			snap.Coins = tt.coins
			if got := Autopilot(snap); got != tt.want {
				t.Errorf("Autopilot = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAutopilotIdle(t *testing.T) {
	if got := Autopilot(Snapshot{State: StateOver}); got != core.ActionNone {
		t.Errorf("Autopilot over = %v, want none", got)
	}
}

package racer

import (
	"github.com/vovakirdan/tui-racer/internal/core"
)

const (
	autopilotMargin = 6 // Horizontal clearance kept around threats, in pixels
	autopilotSlack  = 4 // Distance to a coin treated as aligned
)

// Autopilot picks a steering action for the headless simulator. It dodges
// the lowest obstacle in the car's lane within half a playfield and
// otherwise drifts toward the nearest coin above the car.
func Autopilot(snap Snapshot) core.Action {
	if snap.State != StateRunning {
		return core.ActionNone
	}
	p := snap.Player
	horizon := p.Y - snap.FieldH/2

	var threat core.Rect
	found := false
	for _, o := range snap.Obstacles {
		if o.Bottom() < horizon || o.Y > p.Bottom() {
			continue
		}
		if o.Right()+autopilotMargin < p.X || o.X > p.Right()+autopilotMargin {
			continue
		}
		if !found || o.Bottom() > threat.Bottom() {
			threat, found = o, true
		}
	}

	if found {
		px, _ := p.Center()
		tx, _ := threat.Center()
		roomLeft := threat.X
		roomRight := snap.FieldW - threat.Right()
		goLeft := px < tx
		if goLeft && roomLeft < p.W+autopilotMargin {
			goLeft = false
		} else if !goLeft && roomRight < p.W+autopilotMargin {
			goLeft = true
		}
		if goLeft {
			return core.ActionLeft
		}
		return core.ActionRight
	}

	var target core.Rect
	found = false
	for _, c := range snap.Coins {
		if c.Y > p.Bottom() {
			continue
		}
		if !found || c.Bottom() > target.Bottom() {
			target, found = c, true
		}
	}
	if !found {
		return core.ActionNone
	}
	px, _ := p.Center()
	cx, _ := target.Center()
	switch {
	case cx < px-autopilotSlack:
		return core.ActionLeft
	case cx > px+autopilotSlack:
		return core.ActionRight
	}
	return core.ActionNone
}

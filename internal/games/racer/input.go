package racer

import (
	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Move is one player displacement in units of the player's speed.
type Move struct {
	DX, DY int
}

// InputBuffer queues directional intents between ticks so input handlers
// never touch the player directly. The session drains it at the start of
// every tick.
//
// Under InputDiscrete every press yields exactly one step. Under
// InputContinuous a press asserts the direction until Release, or until
// holdTicks ticks pass without a repeat press (terminals send no key-up).
type InputBuffer struct {
	policy    config.InputPolicy
	holdTicks int

	presses []core.Action        // discrete queue, in arrival order
	held    map[core.Action]int  // continuous: remaining ticks, -1 = until released
	tapped  map[core.Action]bool // continuous: pressed since the last drain
}

// NewInputBuffer creates a buffer for the given policy.
func NewInputBuffer(policy config.InputPolicy, holdTicks int) *InputBuffer {
	return &InputBuffer{
		policy:    config.ParseInputPolicy(string(policy)),
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		tapped:    make(map[core.Action]bool),
	}
}

// Policy returns the active input policy.
func (b *InputBuffer) Policy() config.InputPolicy {
	return b.policy
}

// Press records a directional intent. Non-directional actions are ignored.
func (b *InputBuffer) Press(a core.Action) {
	if !a.IsMove() {
		return
	}
	if b.policy == config.InputDiscrete {
		b.presses = append(b.presses, a)
		return
	}

	// A new direction on an axis replaces the opposite one.
	delete(b.held, opposite(a))
	remaining := b.holdTicks
	if remaining <= 0 {
		remaining = -1
	}
	b.held[a] = remaining
	b.tapped[a] = true
}

// Release ends a continuous hold. It has no effect on discrete presses
// already queued.
func (b *InputBuffer) Release(a core.Action) {
	delete(b.held, a)
}

// Feed presses every directional action in the frame, once per count.
func (b *InputBuffer) Feed(frame core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		for i := 0; i < frame.Count(a); i++ {
			b.Press(a)
		}
	}
}

// Reset drops all pending and held input.
func (b *InputBuffer) Reset() {
	b.presses = b.presses[:0]
	clear(b.held)
	clear(b.tapped)
}

// Drain returns the moves to apply this tick and advances hold timers.
func (b *InputBuffer) Drain() []Move {
	if b.policy == config.InputDiscrete {
		if len(b.presses) == 0 {
			return nil
		}
		moves := make([]Move, 0, len(b.presses))
		for _, a := range b.presses {
			moves = append(moves, direction(a))
		}
		b.presses = b.presses[:0]
		return moves
	}

	var m Move
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		_, isHeld := b.held[a]
		if !isHeld && !b.tapped[a] {
			continue
		}
		d := direction(a)
		m.DX += d.DX
		m.DY += d.DY
	}
	clear(b.tapped)

	for a, remaining := range b.held {
		if remaining < 0 {
			continue
		}
		remaining--
		if remaining <= 0 {
			delete(b.held, a)
			continue
		}
		b.held[a] = remaining
	}

	if m == (Move{}) {
		return nil
	}
	return []Move{m}
}

func direction(a core.Action) Move {
	switch a {
	case core.ActionLeft:
		return Move{DX: -1}
	case core.ActionRight:
		return Move{DX: 1}
	case core.ActionUp:
		return Move{DY: -1}
	case core.ActionDown:
		return Move{DY: 1}
	default:
		return Move{}
	}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	default:
		return core.ActionNone
	}
}

// Package intent captures player input as a persistent controller and the
// per-tick snapshot derived from it. Two of the controller's fields are
// pre-input buffers (a short window during which a tap is remembered before
// it is consumed); the rest are plain continuous or held state.
package intent

import (
	"math"

	"charability/internal/timer"
)

// DeadZone is the minimum magnitude a continuous axis (look angle, move
// direction) must exceed to be considered "active" by exit-logic checks.
const DeadZone = 0.01

// Active reports whether a continuous axis value is outside the dead zone.
func Active(v float64) bool { return math.Abs(v) > DeadZone }

// Controller is the host-owned, persistent record of player input. JumpOnce
// and DodgeOnce are pre-input timers: a tap starts them flowing, and they
// stay "active" for a short buffering window even if the engine has not yet
// consumed them.
type Controller struct {
	LookAngle     float64
	MoveDirection float64
	JumpOnce      timer.Tiny
	JumpKeep      bool
	DodgeOnce     timer.Tiny
	BlockKeep     bool
	AttackOnce    bool
	AttackKeep    bool
}

// PreInput is a per-tick copy of a pre-input timer's activity, consumable at
// most once per tick without mutating the host's persistent timer directly.
type PreInput struct {
	active bool
}

// Active reports whether the buffered command is still available this tick.
func (p PreInput) Active() bool { return p.active }

// Deactivate marks the buffered command consumed for the rest of this tick.
func (p *PreInput) Deactivate() { p.active = false }

// ConsumeActive returns whether the command was active, and deactivates it.
func (p *PreInput) ConsumeActive() bool {
	was := p.active
	p.Deactivate()
	return was
}

// Snapshot is the immutable-per-tick view of a Controller that the engine
// actually reads and (for pre-inputs) consumes.
type Snapshot struct {
	LookAngle     float64
	MoveDirection float64
	JumpOnce      PreInput
	JumpKeep      bool
	DodgeOnce     PreInput
	BlockKeep     bool
	AttackOnce    bool
	AttackKeep    bool
}

// MoveActive reports whether MoveDirection is outside the dead zone.
func (s Snapshot) MoveActive() bool { return Active(s.MoveDirection) }

// LookActive reports whether LookAngle is outside the dead zone.
func (s Snapshot) LookActive() bool { return Active(s.LookAngle) }

// Snapshot captures the controller's current state for one tick.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		LookAngle:     c.LookAngle,
		MoveDirection: c.MoveDirection,
		JumpOnce:      PreInput{active: c.JumpOnce.InTime()},
		JumpKeep:      c.JumpKeep,
		DodgeOnce:     PreInput{active: c.DodgeOnce.InTime()},
		BlockKeep:     c.BlockKeep,
		AttackOnce:    c.AttackOnce,
		AttackKeep:    c.AttackKeep,
	}
}

// EchoFrom propagates "this buffered command was consumed" from a snapshot
// that the engine processed back onto the controller's persistent timers,
// so a tap isn't replayed across multiple ticks once it has fired.
func (c *Controller) EchoFrom(s Snapshot) {
	if !s.JumpOnce.Active() {
		c.JumpOnce.Final()
	}
	if !s.DodgeOnce.Active() {
		c.DodgeOnce.Final()
	}
}

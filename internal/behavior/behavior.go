// Package behavior implements the continuous-locomotion state machine:
// mutually exclusive behaviours (on floor, in air, climbing, ...) that each
// own the character's raw physics output while they are current.
package behavior

import (
	"charability/internal/mode"
	"charability/internal/motiondata"
	"charability/internal/sim"
)

// Param is the physics-tick input a behaviour's entry test and physics step
// are evaluated against.
type Param = sim.PhyParam

// FrameParam is the render-tick input a behaviour's anim selection is
// evaluated against.
type FrameParam = sim.FrameParam

// PhyEff is the physics output a behaviour produces while current.
type PhyEff = sim.PhyEff

// FrameEff is the render output a behaviour produces while current.
type FrameEff = sim.FrameEff

// Behaviour is one locomotion mode: floor running, airborne, wall climbing,
// or a forced-stop fallback.
type Behaviour interface {
	// WillEnter reports whether this behaviour wants to become current,
	// given this tick's physics facts.
	WillEnter(p *Param) bool
	OnEnter(p *Param)
	OnExit(p *Param)
	TickFrame(p *FrameParam) FrameEff
	ProcessPhysics(p *Param, data *motiondata.Data) PhyEff
	// MotionMode reports the coarse mode this behaviour corresponds to.
	MotionMode() mode.Mode
}

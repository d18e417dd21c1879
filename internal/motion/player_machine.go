// Package motion composes the action machine and the behaviour machine into
// the single per-character entry point: PlayerMachine.
package motion

import (
	"charability/internal/action"
	"charability/internal/behavior"
	"charability/internal/mode"
	"charability/internal/motiondata"
	"charability/internal/sim"
)

// PlayerMachine owns one character's action machine, behaviour machine, and
// the motion-mode/action-duration bookkeeping that ties them together each
// tick.
type PlayerMachine struct {
	Action    *action.Machine
	Behaviour *behavior.Machine

	motionMode     mode.Mode
	actionDuration float64
}

// NewPlayerMachine returns a machine with the given action and behaviour
// machines, starting in mode.Motionless with zero action duration.
func NewPlayerMachine(a *action.Machine, b *behavior.Machine) *PlayerMachine {
	return &PlayerMachine{Action: a, Behaviour: b, motionMode: mode.Motionless}
}

// ProcessPhysics runs one physics tick in the canonical order: derive and
// record the motion-mode transition, advance action duration, run the
// action machine's event/logic transitions against the pre-transition
// param, then run the behaviour machine's physics-then-transition step,
// and finally aggregate both machines' PhyEffs.
//
// Action sees the param before the behaviour machine has consumed any
// pre-input; behaviour runs after, and pre-input echo (done by the host
// from phy.Instructions) happens last, so it observes final state.
func (m *PlayerMachine) ProcessPhysics(phy *sim.PhyParam) sim.PhyEff {
	newMode := phy.MotionMode()
	phy.Inner.Motion = sim.TransitionTuple{Valid: true, Old: m.motionMode, New: newMode}
	m.motionMode = newMode

	m.actionDuration += phy.Delta
	phy.Inner.ActionDuration = m.actionDuration
	phy.Inner.HasActionDuration = true

	actionEff, actionUpdated := m.Action.TickAndUpdate(phy)
	if actionUpdated {
		m.actionDuration = 0
	}

	behaviourEff, _ := m.Behaviour.ProcessAndUpdate(phy)

	return aggregatePhyEff(actionEff, behaviourEff)
}

// TickFrame runs one render tick: behaviour frame tick first, then the
// action machine's anim advance, then aggregates. The action's anim wins
// when it names a legal animation; otherwise the behaviour's is used.
func (m *PlayerMachine) TickFrame(frame *sim.FrameParam) sim.FrameEff {
	behaviourEff, haveBehaviour := m.Behaviour.TickFrame(frame)
	actionAnim := m.Action.TickFrame(frame)

	if actionAnim != "" {
		return sim.FrameEff{AnimName: actionAnim, SpecialEff: behaviourEff.SpecialEff}
	}
	if haveBehaviour {
		return behaviourEff
	}
	return sim.FrameEff{}
}

// aggregatePhyEff combines the action machine's per-anim PhyEff with the
// behaviour machine's computed PhyEff. The action's payload is data-only
// and zero-valued when the current anim has none configured, in which case
// the behaviour's live physics computation is authoritative.
func aggregatePhyEff(actionEff, behaviourEff sim.PhyEff) sim.PhyEff {
	if actionEff == (sim.PhyEff{}) {
		return behaviourEff
	}
	return actionEff
}

// MotionMode returns the motion mode computed on the most recent physics
// tick.
func (m *PlayerMachine) MotionMode() mode.Mode { return m.motionMode }

// SetMotionData replaces the behaviour machine's movement constants.
func (m *PlayerMachine) SetMotionData(data *motiondata.Data) { m.Behaviour.SetData(data) }

package action

import "charability/internal/mode"

// LogicKind classifies an ExitLogic variant.
type LogicKind int

const (
	// AnimFinished fires once the current anim reports finished.
	AnimFinished LogicKind = iota
	// MoveAfter fires when movement input is active and the current action
	// has been running for longer than a threshold duration.
	MoveAfter
	// JumpAfter fires when a buffered jump is active and the current action
	// has been running for longer than a threshold duration.
	JumpAfter
	// AttackWhen fires when an attack instruction arrives while a specific
	// anim is playing (a combo window).
	AttackWhen
	// MotionOnlyAllowed fires on any tick whose current motion mode is not
	// the specific mode this action requires.
	MotionOnlyAllowed
)

// ExitLogic is one condition under which the current action transitions to
// Next, evaluated only when no event-driven transition fired this tick.
type ExitLogic struct {
	Kind   LogicKind
	Anim   string
	After  float64
	Motion mode.Mode
}

// ShouldExit evaluates the condition against this tick's parameters.
func (l ExitLogic) ShouldExit(p *Param) bool {
	switch l.Kind {
	case AnimFinished:
		return p.AnimFinished && p.AnimName == l.Anim
	case MoveAfter:
		return p.Instructions.MoveActive() && p.Inner.HasActionDuration && p.Inner.ActionDuration > l.After
	case JumpAfter:
		return p.Instructions.JumpOnce.Active() && p.Inner.HasActionDuration && p.Inner.ActionDuration > l.After
	case AttackWhen:
		return p.Instructions.AttackOnce && p.AnimName == l.Anim
	case MotionOnlyAllowed:
		return p.Inner.Motion.Valid && p.Inner.Motion.New != l.Motion
	default:
		return false
	}
}

// LogicTransition pairs an ExitLogic with the action it leads to.
type LogicTransition struct {
	Logic ExitLogic
	Next  string
}

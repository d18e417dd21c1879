package action

import "charability/internal/sim"

// Param is the physics-tick input an action's exit logic and per-anim
// physics are evaluated against.
type Param = sim.PhyParam

// FrameParam is the render-tick input anim advancement is evaluated
// against.
type FrameParam = sim.FrameParam

// PhyEff is the physics output an action contributes for its current anim.
type PhyEff = sim.PhyEff

// Definition is an immutable description of one named discrete action: what
// motion-scoped events enter and exit it, what logic conditions exit it,
// how it compares in priority against others, and what anim/physics it
// drives.
type Definition struct {
	Name string

	// EventEnter lists every motion-scoped event that can transition into
	// this action from elsewhere (the global inverse-index route).
	EventEnter []MotionEvent
	// EventExit maps a motion-scoped event fired while this action is
	// current directly to the next action's name (the local route, tried
	// before the global one).
	EventExit map[MotionEvent]string
	// LogicExit is evaluated in order, only if no event fired this tick.
	LogicExit []LogicTransition

	// Priority governs switch eligibility via the default rule: an action
	// may switch to another of equal or higher priority.
	Priority int
	// SwitchRelation overrides the default priority rule for specific
	// target actions by name.
	SwitchRelation map[string]bool

	AnimFirst   string
	AnimNext    map[string]string
	AnimPhysics map[string]PhyEff
}

// NextByEvent looks up the local (same-action) transition for e.
func (d *Definition) NextByEvent(e MotionEvent) (string, bool) {
	next, ok := d.EventExit[e]
	return next, ok
}

// CanSwitchTo reports whether this action permits switching directly to
// other: an explicit override if present, else other must be of equal or
// higher priority.
func (d *Definition) CanSwitchTo(other *Definition) bool {
	if v, ok := d.SwitchRelation[other.Name]; ok {
		return v
	}
	return other.Priority >= d.Priority
}

// Package sim holds the parameter and effect types shared by the action and
// behaviour machines and the player machine that composes them: the
// physics-tick input (PhyParam), the render-tick input (FrameParam), and
// the two machines' output effects.
package sim

import (
	"charability/internal/intent"
	"charability/internal/mode"
)

// Signals are one-shot, externally-raised events consumed at most once,
// the tick they are set.
type Signals struct {
	Hit   bool
	BeHit bool
}

// TransitionTuple records the motion mode before (Old) and after (New) this
// tick's derivation; Old equals New when the mode did not change. Valid is
// false until a PlayerMachine has filled the tuple in for this tick, in which
// case Old/New are meaningless.
type TransitionTuple struct {
	Valid bool
	Old   mode.Mode
	New   mode.Mode
}

// InnerParam is state the engine itself maintains across ticks, rather than
// state supplied by the host: the motion-mode transition detected this tick,
// and how long the current action has been running.
type InnerParam struct {
	Motion            TransitionTuple
	ActionDuration    float64
	HasActionDuration bool
}

// PhyParam is the full input to one physics tick: host-supplied physical
// facts and player intent, plus engine-maintained inner state.
type PhyParam struct {
	Delta           float64
	AnimFinished    bool
	AnimName        string
	BehaviourCutOut bool

	XVelocity        float64
	YFlyUp           bool
	CanJumpOnWall    bool
	IsOnFloor        bool
	CanClimb         bool
	ShouldClimb      bool
	CharacterLanding bool

	Signals      Signals
	Instructions intent.Snapshot

	Inner InnerParam
}

// MotionMode derives this tick's coarse motion mode from physics facts.
func (p *PhyParam) MotionMode() mode.Mode {
	return mode.From(mode.Facts{
		BehaviourCutOut: p.BehaviourCutOut,
		ShouldClimb:     p.ShouldClimb,
		IsOnFloor:       p.IsOnFloor,
	})
}

// FrameParam is the input to one render tick: only objective facts, never
// player intent, since anim selection must not depend on subjective state
// that hasn't gone through the action/behaviour machines.
type FrameParam struct {
	Delta        float64
	AnimFinished bool
	AnimName     string
	XVelocity    float64
	YFlyUp       bool
}

// PhyEff is a physics output: target velocity and the acceleration used to
// approach it, per axis. Acceleration of +Inf means "snap immediately".
type PhyEff struct {
	XVelocity     float64
	XAcceleration float64
	YVelocity     float64
	YAcceleration float64
}

// FrameEff is a render output: which animation to play, and an optional
// one-shot special effect tag (e.g. "double_jump", "jump_on_wall").
type FrameEff struct {
	AnimName   string
	SpecialEff string
}

package behavior

import (
	"math"

	"charability/internal/mode"
	"charability/internal/motiondata"
	"charability/internal/timer"
)

const (
	runOrIdleThreshold = 0.1
	landingDelay       = 0.1
)

// OnFloor is the grounded locomotion behaviour: running, idling, and a
// brief landing-recovery window entered right after touching down.
type OnFloor struct {
	runAnim, idleAnim, landingAnim string
	landingTimer                  timer.Tiny
}

// NewOnFloor returns an OnFloor behaviour with the given anim names.
func NewOnFloor(runAnim, idleAnim, landingAnim string) *OnFloor {
	return &OnFloor{runAnim: runAnim, idleAnim: idleAnim, landingAnim: landingAnim, landingTimer: timer.New(landingDelay)}
}

func (o *OnFloor) WillEnter(p *Param) bool { return p.IsOnFloor }

func (o *OnFloor) OnEnter(p *Param) {}
func (o *OnFloor) OnExit(p *Param)  {}

// TickFrame only reads the landing timer; ProcessPhysics is what advances it
// and reacts to CharacterLanding, since landing is a physics-tick fact.
func (o *OnFloor) TickFrame(p *FrameParam) FrameEff {
	if o.landingTimer.InTime() {
		return FrameEff{AnimName: o.landingAnim}
	}
	if math.Abs(p.XVelocity) < runOrIdleThreshold {
		return FrameEff{AnimName: o.idleAnim}
	}
	return FrameEff{AnimName: o.runAnim}
}

func (o *OnFloor) ProcessPhysics(p *Param, data *motiondata.Data) PhyEff {
	o.landingTimer.Add(p.Delta)
	if p.CharacterLanding {
		o.landingTimer.Start()
	}
	if p.Instructions.JumpOnce.ConsumeActive() {
		return motiondata.Jump(data, p.Instructions.MoveDirection)
	}
	return motiondata.Run(data, p.Instructions.MoveDirection)
}

func (o *OnFloor) MotionMode() mode.Mode { return mode.OnFloor }

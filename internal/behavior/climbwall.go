package behavior

import (
	"charability/internal/mode"
	"charability/internal/motiondata"
	"charability/internal/timer"
)

const climbBeginTime = 0.2

// ClimbWall is the wall-climb behaviour: a brief begin-anim window followed
// by a steady climbing slide. Entry is gated on the raw "can climb" contact
// fact, which is distinct from the should-climb fact mode derivation uses,
// since the vector math behind "is this surface climbable" belongs to the
// host, not this engine.
type ClimbWall struct {
	climbBeginAnim, climbingAnim string
	beginning                    timer.Tiny
}

// NewClimbWall returns a ClimbWall behaviour with the given anim names.
func NewClimbWall(climbBeginAnim, climbingAnim string) *ClimbWall {
	return &ClimbWall{
		climbBeginAnim: climbBeginAnim,
		climbingAnim:   climbingAnim,
		beginning:      timer.New(climbBeginTime),
	}
}

func (c *ClimbWall) WillEnter(p *Param) bool { return p.CanClimb }

func (c *ClimbWall) OnEnter(p *Param) { c.beginning.Start() }
func (c *ClimbWall) OnExit(p *Param)  {}

func (c *ClimbWall) TickFrame(p *FrameParam) FrameEff {
	c.beginning.Add(p.Delta)
	if c.beginning.InTime() {
		return FrameEff{AnimName: c.climbBeginAnim}
	}
	return FrameEff{AnimName: c.climbingAnim}
}

func (c *ClimbWall) ProcessPhysics(p *Param, data *motiondata.Data) PhyEff {
	if p.Instructions.JumpOnce.ConsumeActive() {
		return motiondata.Jump(data, p.Instructions.MoveDirection)
	}
	return motiondata.Climb(data, p.Instructions.MoveDirection)
}

func (c *ClimbWall) MotionMode() mode.Mode { return mode.ClimbWall }

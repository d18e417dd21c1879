package behavior

import (
	"charability/internal/mode"
	"charability/internal/motiondata"
)

// Common is the general forced-stop fallback: entered directly whenever the
// engine raises BehaviourCutOut (an action forcing a behaviour refresh),
// regardless of the motion-mode transition. It can also serve as a minimal
// template for new behaviours.
type Common struct {
	anim string
}

// NewCommon returns a Common behaviour that plays anim while current.
func NewCommon(anim string) *Common { return &Common{anim: anim} }

func (c *Common) WillEnter(p *Param) bool { return p.BehaviourCutOut }
func (c *Common) OnEnter(p *Param)        {}
func (c *Common) OnExit(p *Param)         {}
func (c *Common) TickFrame(p *FrameParam) FrameEff {
	return FrameEff{AnimName: c.anim}
}
func (c *Common) ProcessPhysics(p *Param, data *motiondata.Data) PhyEff {
	return motiondata.Stop(data, p.Instructions.MoveDirection)
}
func (c *Common) MotionMode() mode.Mode { return mode.FreeStat }

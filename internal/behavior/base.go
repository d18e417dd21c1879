package behavior

import (
	"charability/internal/mode"
	"charability/internal/motiondata"
)

// Base is a free-movement behaviour that enters whenever this tick's motion
// mode is FreeStat. Unlike Common, it still reacts to jump
// input rather than forcing a stop; useful as a minimal always-movable
// fallback and in tests.
type Base struct{}

// NewBase returns a Base behaviour.
func NewBase() *Base { return &Base{} }

func (b *Base) WillEnter(p *Param) bool {
	return p.Inner.Motion.Valid && p.Inner.Motion.New == mode.FreeStat
}
func (b *Base) OnEnter(p *Param)        {}
func (b *Base) OnExit(p *Param)         {}
func (b *Base) TickFrame(p *FrameParam) FrameEff {
	return FrameEff{}
}
func (b *Base) ProcessPhysics(p *Param, data *motiondata.Data) PhyEff {
	if p.Instructions.JumpKeep {
		return motiondata.Jump(data, p.Instructions.MoveDirection)
	}
	return motiondata.Falling(data, p.Instructions.MoveDirection)
}
func (b *Base) MotionMode() mode.Mode { return mode.FreeStat }

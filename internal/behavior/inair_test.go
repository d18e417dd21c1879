package behavior

import (
	"testing"

	"charability/internal/motiondata"
)

func TestInAirWillEnterWhenNotOnFloor(t *testing.T) {
	a := NewInAir("jump", "fall", "wall", "double", 0.3, 1)
	if a.WillEnter(&Param{IsOnFloor: true}) {
		t.Fatalf("expected not to enter while on floor")
	}
	if !a.WillEnter(&Param{IsOnFloor: false}) {
		t.Fatalf("expected to enter while airborne")
	}
}

func TestInAirOnEnterStartsCoyoteOnlyWhenFalling(t *testing.T) {
	a := NewInAir("jump", "fall", "wall", "double", 0.3, 1)
	a.OnEnter(&Param{YFlyUp: false})
	if !a.coyoteTimer.InTime() {
		t.Fatalf("expected coyote timer running after walking off a ledge")
	}

	b := NewInAir("jump", "fall", "wall", "double", 0.3, 1)
	b.OnEnter(&Param{YFlyUp: true})
	if b.coyoteTimer.InTime() {
		t.Fatalf("expected no coyote time when already rising")
	}
	if !b.jumpHigherTimer.InTime() {
		t.Fatalf("expected jump-higher timer running when entering while rising")
	}
}

func TestInAirCoyoteJumpConsumesJumpOnceAndGrantsImpulse(t *testing.T) {
	a := NewInAir("jump", "fall", "wall", "double", 0.3, 1)
	a.OnEnter(&Param{YFlyUp: false})

	data := &motiondata.Data{JumpVelocity: 9}
	p := &Param{Delta: 0.01}
	p.Instructions.JumpOnce = activeJumpOnce()

	eff := a.ProcessPhysics(p, data)
	if eff.YVelocity != 9 {
		t.Fatalf("expected jump impulse during coyote window, got %+v", eff)
	}
	if p.Instructions.JumpOnce.Active() {
		t.Fatalf("expected jump once consumed on a successful coyote jump")
	}
}

func TestInAirDoubleJumpRespectsBudget(t *testing.T) {
	a := NewInAir("jump", "fall", "wall", "double", 0.3, 1)
	a.OnEnter(&Param{YFlyUp: true}) // no coyote time available

	data := &motiondata.Data{JumpVelocity: 5}

	p1 := &Param{Delta: 0.01}
	p1.Instructions.JumpOnce = activeJumpOnce()
	eff1 := a.ProcessPhysics(p1, data)
	if eff1.YVelocity != 5 {
		t.Fatalf("expected first double jump to succeed, got %+v", eff1)
	}

	p2 := &Param{Delta: 0.01}
	p2.Instructions.JumpOnce = activeJumpOnce()
	eff2 := a.ProcessPhysics(p2, data)
	if eff2.YVelocity == 5 {
		t.Fatalf("expected double-jump budget exhausted, should fall back to falling")
	}
}

func TestInAirFallsBackToFallingWhenNoJumpIntent(t *testing.T) {
	a := NewInAir("jump", "fall", "wall", "double", 0.3, 0)
	a.OnEnter(&Param{YFlyUp: false})
	data := &motiondata.Data{FallVelocity: -20, Gravity: 30}

	p := &Param{Delta: 1.0} // let coyote time elapse
	eff := a.ProcessPhysics(p, data)
	if eff.YVelocity != -20 {
		t.Fatalf("expected falling PhyEff, got %+v", eff)
	}
}

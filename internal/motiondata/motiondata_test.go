package motiondata

import (
	"math"
	"testing"

	"charability/internal/sim"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func testData() *Data {
	return &Data{
		RunXVelocity: 200, RunXResistance: 1200, RunXAcceleration: 1000,
		AirXVelocity: 150, AirXResistance: 600, AirXAcceleration: 400,
		Gravity: 980, FallVelocity: 600,
		JumpGravity: 618, JumpVelocity: -200,
		ClimbVelocity: 80,
	}
}

func TestMoveTowardNeverOvershoots(t *testing.T) {
	if got := MoveToward(0, 10, 3); !almostEqual(got, 3) {
		t.Fatalf("got %v, want 3", got)
	}
	if got := MoveToward(8, 10, 5); !almostEqual(got, 10) {
		t.Fatalf("got %v, want 10 (clamped at target)", got)
	}
	if got := MoveToward(10, 0, 3); !almostEqual(got, 7) {
		t.Fatalf("got %v, want 7", got)
	}
}

func TestApplyVelocityInfiniteAccelerationSnaps(t *testing.T) {
	a := &Attribute{X: 500, Y: 500}
	a.ApplyVelocity(1.0/60.0, sim.PhyEff{XVelocity: 0, XAcceleration: math.Inf(1), YVelocity: 0, YAcceleration: math.Inf(1)})
	if !almostEqual(a.X, 0) || !almostEqual(a.Y, 0) {
		t.Fatalf("expected immediate snap to zero, got %+v", a)
	}
}

func TestRunUsesAccelerationWhenDirectionActive(t *testing.T) {
	d := testData()
	eff := Run(d, 1.0)
	if eff.XAcceleration != d.RunXAcceleration {
		t.Fatalf("expected acceleration while actively moving, got %v", eff.XAcceleration)
	}
	if !almostEqual(eff.XVelocity, d.RunXVelocity) {
		t.Fatalf("got %v, want %v", eff.XVelocity, d.RunXVelocity)
	}
}

func TestRunUsesResistanceWhenDirectionIdle(t *testing.T) {
	d := testData()
	eff := Run(d, 0)
	if eff.XAcceleration != d.RunXResistance {
		t.Fatalf("expected resistance while idle, got %v", eff.XAcceleration)
	}
	if !almostEqual(eff.XVelocity, 0) {
		t.Fatalf("expected zero target velocity at idle, got %v", eff.XVelocity)
	}
}

func TestFallingUsesFullGravity(t *testing.T) {
	d := testData()
	eff := Falling(d, 0)
	if eff.YVelocity != d.FallVelocity || eff.YAcceleration != d.Gravity {
		t.Fatalf("unexpected falling eff: %+v", eff)
	}
}

func TestJumpingUsesLoweredGravity(t *testing.T) {
	d := testData()
	eff := Jumping(d, 0)
	if eff.YAcceleration != d.JumpGravity {
		t.Fatalf("expected jump gravity, got %v", eff.YAcceleration)
	}
}

func TestJumpIsInstantaneousImpulse(t *testing.T) {
	d := testData()
	eff := Jump(d, 0)
	if !almostEqual(eff.YVelocity, d.JumpVelocity) {
		t.Fatalf("got %v, want %v", eff.YVelocity, d.JumpVelocity)
	}
	if !math.IsInf(eff.YAcceleration, 1) {
		t.Fatalf("expected infinite acceleration for instantaneous jump")
	}
}

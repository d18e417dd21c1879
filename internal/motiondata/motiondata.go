// Package motiondata holds the tunable movement constants a character is
// built from and the factory functions that turn (constants, direction)
// into a concrete PhyEff for each locomotion behaviour.
package motiondata

import (
	"math"

	"charability/internal/intent"
	"charability/internal/sim"
)

// Data is the full set of movement tuning constants for one character.
type Data struct {
	RunXVelocity     float64
	RunXResistance   float64
	RunXAcceleration float64

	AirXVelocity     float64
	AirXResistance   float64
	AirXAcceleration float64

	Gravity      float64
	FallVelocity float64

	JumpGravity  float64
	JumpVelocity float64

	ClimbVelocity float64
}

// MoveToward returns current advanced toward target by at most step, never
// overshooting.
func MoveToward(current, target, step float64) float64 {
	switch {
	case current < target:
		v := current + step
		if v > target {
			v = target
		}
		return v
	case current > target:
		v := current - step
		if v < target {
			v = target
		}
		return v
	default:
		return target
	}
}

// Attribute is a 2D physical quantity (position or velocity) integrated by
// applying a PhyEff over a tick.
type Attribute struct {
	X, Y float64
}

// ApplyVelocity advances a by eff over delta seconds, approaching each
// axis's target velocity at the rate eff's acceleration specifies.
func (a *Attribute) ApplyVelocity(delta float64, eff sim.PhyEff) {
	a.X = MoveToward(a.X, eff.XVelocity, delta*eff.XAcceleration)
	a.Y = MoveToward(a.Y, eff.YVelocity, delta*eff.YAcceleration)
}

func horizontalAccel(direction, resistance, acceleration float64) float64 {
	if intent.Active(direction) {
		return acceleration
	}
	return resistance
}

// Stop returns a PhyEff that snaps horizontal and vertical velocity to zero
// immediately.
func Stop(d *Data, _ float64) sim.PhyEff {
	return sim.PhyEff{XAcceleration: math.Inf(1), YAcceleration: math.Inf(1)}
}

// Run returns a grounded horizontal-move PhyEff with no vertical component.
func Run(d *Data, direction float64) sim.PhyEff {
	return sim.PhyEff{
		XVelocity:     direction * d.RunXVelocity,
		XAcceleration: horizontalAccel(direction, d.RunXResistance, d.RunXAcceleration),
		YAcceleration: math.Inf(1),
	}
}

func airMove(d *Data, direction float64) sim.PhyEff {
	return sim.PhyEff{
		XVelocity:     direction * d.AirXVelocity,
		XAcceleration: horizontalAccel(direction, d.AirXResistance, d.AirXAcceleration),
	}
}

// Falling returns an airborne PhyEff under full gravity toward fall
// velocity.
func Falling(d *Data, direction float64) sim.PhyEff {
	eff := airMove(d, direction)
	eff.YVelocity = d.FallVelocity
	eff.YAcceleration = d.Gravity
	return eff
}

// Jumping returns an airborne PhyEff under lowered gravity, used while a
// jump is being sustained (holding the jump input).
func Jumping(d *Data, direction float64) sim.PhyEff {
	eff := airMove(d, direction)
	eff.YVelocity = d.FallVelocity
	eff.YAcceleration = d.JumpGravity
	return eff
}

// Jump returns the instantaneous upward-impulse PhyEff fired the tick a
// jump begins.
func Jump(d *Data, direction float64) sim.PhyEff {
	eff := airMove(d, direction)
	eff.YVelocity = d.JumpVelocity
	eff.YAcceleration = math.Inf(1)
	return eff
}

// Climb returns a constant-velocity vertical PhyEff for climbing a wall.
func Climb(d *Data, direction float64) sim.PhyEff {
	eff := airMove(d, direction)
	eff.YVelocity = d.ClimbVelocity
	eff.YAcceleration = math.Inf(1)
	return eff
}

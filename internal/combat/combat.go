// Package combat implements the combat unit aggregate: health and its
// layered shields, resource pools, and the damage-type routing table that
// spends a single incoming effect across several props in order.
package combat

import (
	"context"

	"charability/internal/attr"
	"charability/internal/effect"
	"charability/internal/prop"
	"charability/internal/telemetry"
)

// DamageType selects which props absorb an incoming effect, and in what
// order.
type DamageType int

const (
	KarmaTruth DamageType = iota
	PhysicsShear
	PhysicsImpact
	MagickaArcane
	BrokeShieldDefence
	BrokeShieldArcane
)

// IsHurt reports whether this damage type targets health (possibly through
// shields) rather than only a shield-break notification.
func (d DamageType) IsHurt() bool {
	switch d {
	case BrokeShieldDefence, BrokeShieldArcane:
		return false
	default:
		return true
	}
}

// DamageInfo is the result of routing an incoming effect through HurtExternal.
type DamageInfo struct {
	// Broken reports whether the last prop the effect touched was driven to
	// its floor.
	Broken bool
	// Damage is the absolute magnitude of the incoming effect, before
	// absorption — it may exceed the actual health lost when a kill
	// overshoots remaining health.
	Damage float64
	// reachedLast reports whether routing reached the final prop of the
	// damage type's chain (health, for the hurt types).
	reachedLast bool
}

// IsDead reports whether this result represents a lethal blow: the routed
// chain bottomed out and the damage type actually targets health.
func (i DamageInfo) IsDead(d DamageType) bool { return i.Broken && i.reachedLast && d.IsHurt() }

// Config supplies every origin value a Unit is built from. Computing these
// origins (gear totals, level scaling, ...) is outside this package.
type Config struct {
	HealthMax, MagickaMax, StaminaMax float64
	EntropyMax, ElectricMax           float64
	Strength, Belief                  float64
	WeaponSharp, WeaponMass           float64
	ArmorHard, ArmorSoft, ArmorMass   float64
}

// Unit aggregates every numeric pool and attribute a combat participant
// needs: health plus its three shield layers, magicka and stamina, the two
// bar-style resources, and the inherent/addition attributes a host damage
// formula reads from.
type Unit struct {
	Health           *prop.Dyn
	ShieldSubstitute *prop.Dyn
	ShieldDefence    *prop.Dyn
	ShieldArcane     *prop.Dyn
	Magicka          *prop.Dyn
	Stamina          *prop.Dyn
	BarEntropy       *prop.Dyn
	BarElectric      *prop.Dyn

	Strength *attr.Dyn
	Belief   *attr.Dyn

	WeaponSharp *attr.Dyn
	WeaponMass  *attr.Dyn
	ArmorHard   *attr.Dyn
	ArmorSoft   *attr.Dyn
	ArmorMass   *attr.Dyn

	publisher telemetry.Publisher
}

// SetPublisher attaches a telemetry publisher used to report damage/break
// events. A nil publisher restores the no-op default.
func (u *Unit) SetPublisher(p telemetry.Publisher) {
	if p == nil {
		p = telemetry.NopPublisher{}
	}
	u.publisher = p
}

// New builds a Unit with every pool full and no shields installed.
func New(cfg Config) *Unit {
	return &Unit{
		Health:           prop.NewByMax(cfg.HealthMax),
		ShieldSubstitute: prop.NewByMax(0),
		ShieldDefence:    prop.NewByMax(0),
		ShieldArcane:     prop.NewByMax(0),
		Magicka:          prop.NewByMax(cfg.MagickaMax),
		Stamina:          prop.NewByMax(cfg.StaminaMax),
		BarEntropy:       prop.NewByMax(cfg.EntropyMax),
		BarElectric:      prop.NewByMax(cfg.ElectricMax),

		Strength: attr.New(cfg.Strength),
		Belief:   attr.New(cfg.Belief),

		WeaponSharp: attr.New(cfg.WeaponSharp),
		WeaponMass:  attr.New(cfg.WeaponMass),
		ArmorHard:   attr.New(cfg.ArmorHard),
		ArmorSoft:   attr.New(cfg.ArmorSoft),
		ArmorMass:   attr.New(cfg.ArmorMass),

		publisher: telemetry.NopPublisher{},
	}
}

func (u *Unit) propsFor(d DamageType) []*prop.Dyn {
	switch d {
	case KarmaTruth:
		return []*prop.Dyn{u.Health}
	case PhysicsShear:
		return []*prop.Dyn{u.ShieldDefence, u.ShieldSubstitute, u.Health}
	case PhysicsImpact:
		return []*prop.Dyn{u.ShieldSubstitute, u.Health}
	case MagickaArcane:
		return []*prop.Dyn{u.ShieldArcane, u.ShieldSubstitute, u.Health}
	case BrokeShieldDefence:
		return []*prop.Dyn{u.ShieldDefence}
	case BrokeShieldArcane:
		return []*prop.Dyn{u.ShieldArcane}
	default:
		return nil
	}
}

func (u *Unit) baseFor(d DamageType) *prop.Dyn {
	switch d {
	case BrokeShieldDefence:
		return u.ShieldDefence
	case BrokeShieldArcane:
		return u.ShieldArcane
	default:
		return u.Health
	}
}

// HurtExternal converts instant against the damage type's base prop,
// scales by damageScale, then walks the type's ordered prop list, applying
// the remaining raw value as a flat add to each prop in turn and carrying
// forward only what that prop did not absorb. It stops as soon as the value
// is fully absorbed, so Broken reflects the last prop actually touched —
// not any prop further down the chain that the damage never reached.
//
// damageScale is supplied by the caller; this package does not compute
// armor/resistance formulas.
func (u *Unit) HurtExternal(damageType DamageType, instant prop.InstantEffect, damageScale float64) DamageInfo {
	base := u.baseFor(damageType)
	raw := base.RawValue(instant) * damageScale
	remaining := raw

	info := DamageInfo{Damage: absFloat(raw)}
	props := u.propsFor(damageType)
	for idx, p := range props {
		result := p.UseInstEffect(prop.InstantEffect{
			Kind: prop.CurVal,
			Rec:  effect.Record{From: instant.Rec.From, Name: instant.Rec.Name, Value: remaining},
		})
		info.Broken = p.Current() <= p.Min()
		info.reachedLast = idx == len(props)-1
		remaining -= result.Delta
		if remaining == 0 {
			break
		}
	}

	u.publisher.Publish(context.Background(), telemetry.Event{Type: telemetry.CombatDamaged, Category: telemetry.CategoryCombat, Payload: info})
	if info.IsDead(damageType) {
		u.publisher.Publish(context.Background(), telemetry.Event{Type: telemetry.CombatBroken, Category: telemetry.CategoryCombat, Payload: info})
	}
	return info
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ProcessTime advances every pool and attribute by delta.
func (u *Unit) ProcessTime(delta float64) {
	u.Health.ProcessTime(delta)
	u.ShieldSubstitute.ProcessTime(delta)
	u.ShieldDefence.ProcessTime(delta)
	u.ShieldArcane.ProcessTime(delta)
	u.Magicka.ProcessTime(delta)
	u.Stamina.ProcessTime(delta)
	u.BarEntropy.ProcessTime(delta)
	u.BarElectric.ProcessTime(delta)

	u.Strength.ProcessTime(delta)
	u.Belief.ProcessTime(delta)
	u.WeaponSharp.ProcessTime(delta)
	u.WeaponMass.ProcessTime(delta)
	u.ArmorHard.ProcessTime(delta)
	u.ArmorSoft.ProcessTime(delta)
	u.ArmorMass.ProcessTime(delta)
}

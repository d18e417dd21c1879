package combat

import (
	"charability/internal/effect"
	"charability/internal/prop"
)

// InitHealthRecoveryEff installs passive health regeneration as a percentage
// of max health per period, e.g. 1% of max every second.
func (u *Unit) InitHealthRecoveryEff(from, name effect.Name, maxPercentPerPeriod, period float64) {
	u.Health.PutPeriodEffect(prop.NewPeriodEffect(
		prop.PeriodCurMaxPer,
		effect.Record{From: from, Name: name, Value: maxPercentPerPeriod},
		effect.NewPeriodic(period, 0),
		0,
	))
}

// InitStaminaRecoveryEff installs stamina regeneration as a flat amount per
// period, after an initial wait (typically reset whenever stamina is
// spent, so recovery only resumes once the character stops acting).
func (u *Unit) InitStaminaRecoveryEff(from, name effect.Name, valuePerPeriod, period, wait float64) {
	u.Stamina.PutPeriodEffect(prop.NewPeriodEffect(
		prop.PeriodCurVal,
		effect.Record{From: from, Name: name, Value: valuePerPeriod},
		effect.NewPeriodic(period, wait),
		0,
	))
}

// InitMagickaRecoveryEff installs magicka drift as a flat amount per period
// after an initial wait. A negative valuePerPeriod models magicka that
// depletes over time rather than regenerates.
func (u *Unit) InitMagickaRecoveryEff(from, name effect.Name, valuePerPeriod, period, wait float64) {
	u.Magicka.PutPeriodEffect(prop.NewPeriodEffect(
		prop.PeriodCurVal,
		effect.Record{From: from, Name: name, Value: valuePerPeriod},
		effect.NewPeriodic(period, wait),
		0,
	))
}

// InitArmorShieldEff installs the character's current armor hardness as a
// flat, infinite MaxVal effect on shield_defence, and refreshes it so the
// shield's max immediately reflects the installed armor. Re-reads
// ArmorHard.Current() each call, so it must be called again after armor
// changes to take effect.
func (u *Unit) InitArmorShieldEff(from, name effect.Name) {
	u.ShieldDefence.PutDurEffect(prop.DurEffect{
		Kind: prop.MaxVal,
		Rec:  effect.Record{From: from, Name: name, Value: u.ArmorHard.Current()},
		Dur:  effect.NewInfinite(),
	})
	u.ShieldDefence.Refresh()
	u.ShieldDefence.FillToMax()
}

// InitArcaneShieldEff installs a flat, infinite MaxVal effect on
// shield_arcane from an arbitrary caller-supplied value (e.g. a belief-based
// formula computed by the host).
func (u *Unit) InitArcaneShieldEff(from, name effect.Name, value float64) {
	u.ShieldArcane.PutDurEffect(prop.DurEffect{
		Kind: prop.MaxVal,
		Rec:  effect.Record{From: from, Name: name, Value: value},
		Dur:  effect.NewInfinite(),
	})
	u.ShieldArcane.Refresh()
	u.ShieldArcane.FillToMax()
}

// InitSubstituteShieldEff installs a flat, infinite MaxVal effect on
// shield_substitute.
func (u *Unit) InitSubstituteShieldEff(from, name effect.Name, value float64) {
	u.ShieldSubstitute.PutDurEffect(prop.DurEffect{
		Kind: prop.MaxVal,
		Rec:  effect.Record{From: from, Name: name, Value: value},
		Dur:  effect.NewInfinite(),
	})
	u.ShieldSubstitute.Refresh()
	u.ShieldSubstitute.FillToMax()
}

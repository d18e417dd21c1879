package combat

import (
	"math"
	"testing"

	"charability/internal/effect"
	"charability/internal/prop"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func newTestUnit() *Unit {
	return New(Config{HealthMax: 80, MagickaMax: 50, StaminaMax: 50, EntropyMax: 10, ElectricMax: 10})
}

func TestHurtExternalKarmaTruthIgnoresShields(t *testing.T) {
	u := newTestUnit()
	u.ArmorHard.SetOrigin(25)
	u.InitArmorShieldEff("gear", "plate") // shield_defence max/current = armor_hard

	info := u.HurtExternal(KarmaTruth, prop.InstantEffect{Kind: prop.CurVal, Rec: effect.Record{Name: "truth", Value: -10}}, 1)
	if !almostEqual(u.Health.Current(), 70) {
		t.Fatalf("expected health 70, got %v", u.Health.Current())
	}
	if info.Broken {
		t.Fatalf("did not expect broken")
	}
	if !almostEqual(info.Damage, 10) {
		t.Fatalf("expected damage magnitude 10, got %v", info.Damage)
	}
}

func TestHurtExternalPhysicsShearRoutesThroughShieldsThenHealth(t *testing.T) {
	u := newTestUnit()
	u.ArmorHard.SetOrigin(11)
	u.InitArmorShieldEff("gear", "plate")
	// shield_substitute stays at max 0.

	info := u.HurtExternal(PhysicsShear, prop.InstantEffect{Kind: prop.CurVal, Rec: effect.Record{Name: "cut", Value: -15}}, 1)

	if !almostEqual(u.ShieldDefence.Current(), 0) {
		t.Fatalf("expected shield_defence drained to 0, got %v", u.ShieldDefence.Current())
	}
	if !almostEqual(u.ShieldSubstitute.Current(), 0) {
		t.Fatalf("expected shield_substitute untouched at 0, got %v", u.ShieldSubstitute.Current())
	}
	if !almostEqual(u.Health.Current(), 76) {
		t.Fatalf("expected health 76 (80 - 4 remainder), got %v", u.Health.Current())
	}
	if info.Broken {
		t.Fatalf("health was not driven to its floor, expected not broken")
	}
}

func TestHurtExternalBreaksDefenceShieldWhenFullyAbsorbed(t *testing.T) {
	u := newTestUnit()
	u.ArmorHard.SetOrigin(20)
	u.InitArmorShieldEff("gear", "plate")

	info := u.HurtExternal(PhysicsShear, prop.InstantEffect{Kind: prop.CurVal, Rec: effect.Record{Name: "cut", Value: -20}}, 1)

	if !almostEqual(u.ShieldDefence.Current(), 0) {
		t.Fatalf("expected shield fully drained, got %v", u.ShieldDefence.Current())
	}
	if !almostEqual(u.Health.Current(), 80) {
		t.Fatalf("expected health untouched, got %v", u.Health.Current())
	}
	if !info.Broken {
		t.Fatalf("expected shield_defence reported broken since it absorbed the full blow")
	}
	if info.IsDead(PhysicsShear) {
		t.Fatalf("a broken shield is not a lethal blow against health")
	}
}

func TestHurtExternalDamageScaleAppliesBeforeRouting(t *testing.T) {
	u := newTestUnit()
	info := u.HurtExternal(KarmaTruth, prop.InstantEffect{Kind: prop.CurVal, Rec: effect.Record{Name: "truth", Value: -10}}, 2.0)
	if !almostEqual(u.Health.Current(), 60) {
		t.Fatalf("expected health 60 after doubled damage, got %v", u.Health.Current())
	}
	if !almostEqual(info.Damage, 20) {
		t.Fatalf("expected scaled damage magnitude 20, got %v", info.Damage)
	}
}

func TestHurtExternalLethalBlowIsDead(t *testing.T) {
	u := newTestUnit()
	info := u.HurtExternal(KarmaTruth, prop.InstantEffect{Kind: prop.CurVal, Rec: effect.Record{Name: "truth", Value: -1000}}, 1)
	if !almostEqual(u.Health.Current(), 0) {
		t.Fatalf("expected health floored at 0, got %v", u.Health.Current())
	}
	if !info.IsDead(KarmaTruth) {
		t.Fatalf("expected lethal blow reported dead")
	}
}

func TestInitHealthRecoveryEffRegeneratesAsPercentOfMax(t *testing.T) {
	u := newTestUnit()
	u.HurtExternal(KarmaTruth, prop.InstantEffect{Kind: prop.CurVal, Rec: effect.Record{Name: "dmg", Value: -80}}, 1)
	u.InitHealthRecoveryEff("regen", "health_regen", 0.1, 1.0) // 10% of 80 = 8 per second

	u.ProcessTime(1.0)
	if !almostEqual(u.Health.Current(), 8) {
		t.Fatalf("expected health regenerated to 8, got %v", u.Health.Current())
	}
}

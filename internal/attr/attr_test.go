package attr

import (
	"math"
	"testing"

	"charability/internal/effect"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCombinationFormula(t *testing.T) {
	d := New(100)
	d.PutOrStackEffect(NewEffect(BasicAdd, effect.Record{Name: "gear", Value: 20}, effect.NewInfinite()))
	d.PutOrStackEffect(NewEffect(BasicPercent, effect.Record{Name: "buff1", Value: 0.1}, effect.NewInfinite()))
	d.PutOrStackEffect(NewEffect(FinalPercent, effect.Record{Name: "buff2", Value: 0.2}, effect.NewInfinite()))
	d.PutOrStackEffect(NewEffect(FinalMulti, effect.Record{Name: "crit", Value: 1.5}, effect.NewInfinite()))

	want := (100 + 20) * 1.1 * 1.2 * 1.5
	if !almostEqual(d.Current(), want) {
		t.Fatalf("got %v, want %v", d.Current(), want)
	}
}

func TestStackScalesAdditiveLinearly(t *testing.T) {
	d := New(10)
	dur := effect.NewInfinite()
	dur.MaxStack = 5
	dur.Stack = 3
	d.PutOrStackEffect(NewEffect(BasicAdd, effect.Record{Name: "poison", Value: 2}, dur))

	want := 10 + 2*3
	if !almostEqual(d.Current(), float64(want)) {
		t.Fatalf("got %v, want %v", d.Current(), want)
	}
}

func TestStackScalesFinalMultiExponentially(t *testing.T) {
	d := New(10)
	dur := effect.NewInfinite()
	dur.Stack = 2
	d.PutOrStackEffect(NewEffect(FinalMulti, effect.Record{Name: "rage", Value: 2}, dur))

	want := 10 * math.Pow(2, 2)
	if !almostEqual(d.Current(), want) {
		t.Fatalf("got %v, want %v", d.Current(), want)
	}
}

func TestProcessTimeExpiresAndRefreshes(t *testing.T) {
	d := New(100)
	d.PutOrStackEffect(NewEffect(BasicAdd, effect.Record{Name: "shield", Value: 50}, effect.NewSpan(2)))
	if !almostEqual(d.Current(), 150) {
		t.Fatalf("expected 150 before expiry, got %v", d.Current())
	}

	d.ProcessTime(1.0)
	if !almostEqual(d.Current(), 150) {
		t.Fatalf("expected still active mid-duration, got %v", d.Current())
	}

	d.ProcessTime(1.5)
	if !almostEqual(d.Current(), 100) {
		t.Fatalf("expected effect expired and removed, got %v", d.Current())
	}
}

func TestProcessTimeStacksPeriodicEffect(t *testing.T) {
	d := New(0)
	dur := effect.NewPeriodic(1.0, 0)
	dur.MaxStack = 10
	d.PutOrStackEffect(NewEffect(BasicAdd, effect.Record{Name: "ember", Value: 1}, dur))

	d.ProcessTime(3.4)
	e, _ := d.Get("ember")
	if e.Dur.Stack != 4 {
		t.Fatalf("expected stack of 4 (1 initial + 3 periods elapsed), got %d", e.Dur.Stack)
	}
	if !almostEqual(d.Current(), 4) {
		t.Fatalf("expected current to reflect 4 stacks, got %v", d.Current())
	}
}

// Get is a small test helper exposing the underlying container lookup.
func (d *Dyn) Get(name effect.Name) (*Effect, bool) {
	return d.effects.Get(name)
}

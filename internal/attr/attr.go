// Package attr implements DynAttr: a base numeric value combined with a set
// of named, stacking, time-limited modifiers into a single current value.
package attr

import (
	"context"
	"math"

	"charability/internal/effect"
	"charability/internal/telemetry"
)

// Kind classifies how an Effect combines into a Dyn's current value.
type Kind int

const (
	// BasicAdd contributes to the flat-sum term before percent scaling.
	BasicAdd Kind = iota
	// FinalMulti contributes to a trailing product term; combine sparingly,
	// stacking several of these compounds multiplicatively.
	FinalMulti
	// BasicPercent contributes to the first percent-scaling term.
	BasicPercent
	// FinalPercent contributes to the second, outer percent-scaling term.
	FinalPercent
)

// Effect is a single named modifier installed on a Dyn.
type Effect struct {
	effect.Fields
	Kind Kind
}

// NewEffect builds an Effect ready to install via Dyn.PutOrStackEffect.
func NewEffect(kind Kind, rec effect.Record, dur effect.Duration) *Effect {
	return &Effect{Fields: effect.Fields{Rec: rec, Dur: dur}, Kind: kind}
}

// Nature classifies the effect relative to its kind's neutral baseline: 0
// for the additive kinds, 1 for FinalMulti (a multiplier of 1 changes
// nothing).
func (e *Effect) Nature() effect.Nature {
	baseline := 0.0
	if e.Kind == FinalMulti {
		baseline = 1.0
	}
	return effect.NatureOf(e.Rec.Value, baseline)
}

// Dyn is a base value ("origin") combined with installed effects into a
// cached "current" value, following:
//
//	current = (origin + Σ basic_add) × (1 + Σ basic_percent) × (1 + Σ final_percent) × Π final_multi
//
// Each effect's contribution scales with its stack count: linearly for the
// additive kinds, as value^stack for FinalMulti.
type Dyn struct {
	origin    float64
	current   float64
	effects   *effect.Container[*Effect]
	publisher telemetry.Publisher
}

// New returns a Dyn with no installed effects and current equal to origin.
func New(origin float64) *Dyn {
	return &Dyn{origin: origin, current: origin, effects: effect.NewContainer[*Effect](), publisher: telemetry.NopPublisher{}}
}

// SetPublisher attaches a telemetry publisher. A nil publisher restores the
// no-op default.
func (d *Dyn) SetPublisher(p telemetry.Publisher) {
	if p == nil {
		p = telemetry.NopPublisher{}
	}
	d.publisher = p
}

// Origin returns the uncombined base value.
func (d *Dyn) Origin() float64 { return d.origin }

// SetOrigin replaces the base value and recombines.
func (d *Dyn) SetOrigin(origin float64) {
	d.origin = origin
	d.Refresh()
}

// Current returns the last-combined value.
func (d *Dyn) Current() float64 { return d.current }

// PutOrStackEffect installs e, stacking onto an existing effect of the same
// name per the container's rule, and recombines.
func (d *Dyn) PutOrStackEffect(e *Effect) {
	_, existed := d.effects.Get(e.Rec.Name)
	d.effects.PutOrStack(e)
	d.Refresh()

	eventType := telemetry.EffectApplied
	if existed {
		eventType = telemetry.EffectStacked
	}
	d.publisher.Publish(context.Background(), telemetry.Event{
		Type:     eventType,
		Category: telemetry.CategoryEffect,
		Payload:  e.Rec,
	})
}

// RemoveEffect removes the named effect, if present, and recombines.
func (d *Dyn) RemoveEffect(name effect.Name) {
	d.effects.Remove(name)
	d.Refresh()
}

// Refresh recomputes Current from scratch by folding every installed effect
// in deterministic (lexicographic by name) order.
func (d *Dyn) Refresh() {
	var basicAdd, basicPercent, finalPercent float64
	finalMulti := 1.0
	for _, name := range d.effects.SnapshotKeys() {
		e, _ := d.effects.Get(name)
		stack := float64(e.Dur.Stack)
		switch e.Kind {
		case BasicAdd:
			basicAdd += e.Rec.Value * stack
		case BasicPercent:
			basicPercent += e.Rec.Value * stack
		case FinalPercent:
			finalPercent += e.Rec.Value * stack
		case FinalMulti:
			finalMulti *= math.Pow(e.Rec.Value, stack)
		}
	}
	d.current = (d.origin + basicAdd) * (1 + basicPercent) * (1 + finalPercent) * finalMulti
}

// ProcessTime advances every installed effect's life by delta. Expired
// effects are removed; periodic effects gain a stack for every whole period
// effect.PeriodsElapsed counts in this call's advance (clamped to MaxStack). Current is recombined only if
// something actually changed.
func (d *Dyn) ProcessTime(delta float64) {
	changed := false
	for _, name := range d.effects.SnapshotKeys() {
		e, ok := d.effects.Get(name)
		if !ok {
			continue
		}
		before := e.Dur.Life
		e.Dur.Life += delta
		if e.Dur.Expired() {
			rec := e.Rec
			d.effects.Remove(name)
			changed = true
			d.publisher.Publish(context.Background(), telemetry.Event{Type: telemetry.EffectExpired, Category: telemetry.CategoryEffect, Payload: rec})
			continue
		}
		if periods := effect.PeriodsElapsed(before, e.Dur.Life, e.Dur.Wait, e.Dur.Period); periods > 0 {
			e.Dur.Stack = e.Dur.ClampStack(e.Dur.Stack + periods)
			changed = true
			d.publisher.Publish(context.Background(), telemetry.Event{Type: telemetry.PeriodicTick, Category: telemetry.CategoryEffect, Payload: e.Rec})
		}
	}
	if changed {
		d.Refresh()
	}
}

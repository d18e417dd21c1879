// Package prop implements DynProp: a bounded numeric pool (health, stamina,
// magicka, ...) whose min and max are themselves DynAttrs, combined with
// instant, duration, and periodic effects.
package prop

import (
	"context"

	"charability/internal/attr"
	"charability/internal/effect"
	"charability/internal/telemetry"
)

// InstantKind classifies a one-shot application against current.
type InstantKind int

const (
	// CurVal adds a flat value to current.
	CurVal InstantKind = iota
	// CurPer adds value × current to current.
	CurPer
	// CurMaxPer adds value × max to current.
	CurMaxPer
)

// InstantEffect is a one-shot value applied against a Dyn's current value.
type InstantEffect struct {
	Kind InstantKind
	Rec  effect.Record
}

// DurKind classifies a persistent effect installed onto the min or max
// DynAttr rather than onto current directly.
type DurKind int

const (
	// MaxVal installs a BasicAdd effect on max.
	MaxVal DurKind = iota
	// MaxPer installs a BasicPercent effect on max.
	MaxPer
	// MinVal installs a BasicAdd effect on min.
	MinVal
)

// DurEffect is a persistent effect routed onto min or max.
type DurEffect struct {
	Kind DurKind
	Rec  effect.Record
	Dur  effect.Duration
}

// PeriodKind classifies how a periodic effect converts each elapsed period
// into an instant application.
type PeriodKind int

const (
	PeriodCurVal PeriodKind = iota
	PeriodCurPer
	PeriodCurMaxPer
	// PeriodCurValToVal steps current toward Target by the per-tick amount
	// instead of applying a flat delta, so it never overshoots the target.
	PeriodCurValToVal
)

// PeriodEffect is a recurring effect that converts elapsed periods into
// InstantEffect applications.
type PeriodEffect struct {
	effect.Fields
	Kind   PeriodKind
	Target float64 // only meaningful for PeriodCurValToVal
}

// NewPeriodEffect builds a PeriodEffect ready to install via PutPeriodEffect.
func NewPeriodEffect(kind PeriodKind, rec effect.Record, dur effect.Duration, target float64) *PeriodEffect {
	return &PeriodEffect{Fields: effect.Fields{Rec: rec, Dur: dur}, Kind: kind, Target: target}
}

// AlterResult carries both the raw magnitude an instant effect computed and
// the actual bounded change applied to current. Damage routing across
// shields needs both: Value to know how much was "spent", Delta to know how
// much the pool actually moved.
type AlterResult struct {
	Value float64
	Delta float64
}

// Clamped reports whether the applied change was reduced by the [min, max]
// bound.
func (r AlterResult) Clamped() bool { return r.Value != r.Delta }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dyn is a bounded current value between a min and max DynAttr.
type Dyn struct {
	min, max  *attr.Dyn
	current   float64
	periodic  *effect.Container[*PeriodEffect]
	publisher telemetry.Publisher
}

// New returns a Dyn with explicit current, max, and min origins.
func New(current, max, min float64) *Dyn {
	d := &Dyn{min: attr.New(min), max: attr.New(max), periodic: effect.NewContainer[*PeriodEffect](), publisher: telemetry.NopPublisher{}}
	d.current = clamp(current, d.Min(), d.Max())
	return d
}

// SetPublisher attaches a telemetry publisher, propagating it to the min and
// max DynAttrs too. A nil publisher restores the no-op default.
func (d *Dyn) SetPublisher(p telemetry.Publisher) {
	if p == nil {
		p = telemetry.NopPublisher{}
	}
	d.publisher = p
	d.min.SetPublisher(p)
	d.max.SetPublisher(p)
}

// NewByMax returns a Dyn starting full, with min at 0.
func NewByMax(max float64) *Dyn {
	return New(max, max, 0)
}

// Min returns the current combined floor.
func (d *Dyn) Min() float64 { return d.min.Current() }

// Max returns the current combined ceiling.
func (d *Dyn) Max() float64 { return d.max.Current() }

// MinAttr exposes the underlying floor DynAttr for installing MinVal effects
// directly, or for read-only inspection.
func (d *Dyn) MinAttr() *attr.Dyn { return d.min }

// MaxAttr exposes the underlying ceiling DynAttr.
func (d *Dyn) MaxAttr() *attr.Dyn { return d.max }

// Current returns the bounded current value.
func (d *Dyn) Current() float64 { return d.current }

func (d *Dyn) fixCurrent() {
	d.current = clamp(d.current, d.Min(), d.Max())
}

// RawValue computes what an InstantEffect would contribute, without applying
// it. Used by combat routing to scale a raw effect before walking it across
// several props.
func (d *Dyn) RawValue(e InstantEffect) float64 {
	switch e.Kind {
	case CurVal:
		return e.Rec.Value
	case CurPer:
		return e.Rec.Value * d.current
	case CurMaxPer:
		return e.Rec.Value * d.Max()
	}
	return 0
}

// UseInstEffect applies e to current, clamped to [min, max].
func (d *Dyn) UseInstEffect(e InstantEffect) AlterResult {
	v := d.RawValue(e)
	before := d.current
	d.current = clamp(d.current+v, d.Min(), d.Max())
	result := AlterResult{Value: v, Delta: d.current - before}
	if result.Clamped() {
		d.publisher.Publish(context.Background(), telemetry.Event{Type: telemetry.PropClamped, Category: telemetry.CategoryProp, Payload: result})
	}
	return result
}

// UseInstEffectIfEnough applies e only if doing so would not take current
// below floor; otherwise it is a no-op and ok is false. Used for costs
// (stamina, magicka) that must not be paid partially.
func (d *Dyn) UseInstEffectIfEnough(e InstantEffect, floor float64) (result AlterResult, ok bool) {
	v := d.RawValue(e)
	if d.current+v < floor {
		return AlterResult{}, false
	}
	return d.UseInstEffect(e), true
}

// PutDurEffect installs a persistent effect onto min or max.
func (d *Dyn) PutDurEffect(e DurEffect) {
	switch e.Kind {
	case MaxVal:
		d.max.PutOrStackEffect(attr.NewEffect(attr.BasicAdd, e.Rec, e.Dur))
	case MaxPer:
		d.max.PutOrStackEffect(attr.NewEffect(attr.BasicPercent, e.Rec, e.Dur))
	case MinVal:
		d.min.PutOrStackEffect(attr.NewEffect(attr.BasicAdd, e.Rec, e.Dur))
	}
	d.fixCurrent()
}

// PutPeriodEffect installs a recurring effect, stacking onto an existing
// effect of the same name.
func (d *Dyn) PutPeriodEffect(e *PeriodEffect) {
	d.periodic.PutOrStack(e)
}

// FillToMax sets current to the combined max. Used when installing a fresh
// shield layer, which should start at full capacity rather than wherever
// current happened to be before the layer existed.
func (d *Dyn) FillToMax() {
	d.current = d.Max()
}

// Refresh recombines min and max and re-clamps current. Call after directly
// mutating MinAttr/MaxAttr.
func (d *Dyn) Refresh() {
	d.min.Refresh()
	d.max.Refresh()
	d.fixCurrent()
}

// ProcessTime advances min, max, and every periodic effect by delta,
// converting elapsed periods into instant applications against current.
func (d *Dyn) ProcessTime(delta float64) {
	d.max.ProcessTime(delta)
	d.min.ProcessTime(delta)
	d.fixCurrent()

	for _, name := range d.periodic.SnapshotKeys() {
		e, ok := d.periodic.Get(name)
		if !ok {
			continue
		}
		before := e.Dur.Life
		e.Dur.Life += delta
		if e.Dur.Expired() {
			d.periodic.Remove(name)
			continue
		}
		periods := effect.PeriodsElapsed(before, e.Dur.Life, e.Dur.Wait, e.Dur.Period)
		if periods <= 0 {
			continue
		}
		d.applyPeriod(e, periods)
	}
}

func (d *Dyn) applyPeriod(e *PeriodEffect, periods int) {
	perTick := e.Rec.Value * float64(e.Dur.Stack) * float64(periods)
	rec := effect.Record{From: e.Rec.From, Name: e.Rec.Name, Value: perTick}
	switch e.Kind {
	case PeriodCurVal:
		d.UseInstEffect(InstantEffect{Kind: CurVal, Rec: rec})
	case PeriodCurPer:
		d.UseInstEffect(InstantEffect{Kind: CurPer, Rec: rec})
	case PeriodCurMaxPer:
		d.UseInstEffect(InstantEffect{Kind: CurMaxPer, Rec: rec})
	case PeriodCurValToVal:
		step := MoveTowardDelta(d.current, e.Target, perTick)
		d.UseInstEffect(InstantEffect{Kind: CurVal, Rec: effect.Record{From: e.Rec.From, Name: e.Rec.Name, Value: step}})
	}
}

// MoveTowardDelta returns the signed step that advances source toward target
// by at most |step|, without overshoot and preserving the sign semantics of
// "approach" vs "recede" when step is negative (used to drain current away
// from target rather than toward it).
func MoveTowardDelta(source, target, step float64) float64 {
	delta := target - source
	switch {
	case step > 0:
		if delta > 0 {
			return min(delta, step)
		}
		if delta < 0 {
			return max(delta, -step)
		}
		return 0
	case step < 0:
		if delta >= 0 {
			return step
		}
		return -step
	default:
		return 0
	}
}

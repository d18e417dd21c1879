// Package telemetry is the engine's event log: a typed Event published
// through a Publisher interface, routed to pluggable Sinks. The engine
// itself never logs (it is a synchronous hot-path library); components
// accept an optional Publisher and, if one is given, publish structured
// events for effect/prop/combat/action/behaviour occurrences so a host can
// observe the engine without coupling the hot path to any one backend.
package telemetry

import (
	"context"
	"time"
)

// EventType names one kind of telemetry event.
type EventType string

const (
	EffectApplied    EventType = "effect.applied"
	EffectStacked    EventType = "effect.stacked"
	EffectExpired    EventType = "effect.expired"
	PeriodicTick     EventType = "effect.periodic_tick"
	PropClamped      EventType = "prop.clamped"
	CombatDamaged    EventType = "combat.damaged"
	CombatBroken     EventType = "combat.broken"
	ActionTransition EventType = "action.transition"
	BehaviourEntered EventType = "behaviour.entered"
)

// Severity expresses the importance of a telemetry event.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

// Category groups events by subsystem for filtering.
type Category string

const (
	CategoryEffect    Category = "effect"
	CategoryProp      Category = "prop"
	CategoryCombat    Category = "combat"
	CategoryAction    Category = "action"
	CategoryBehaviour Category = "behaviour"
)

// EntityKind differentiates the actors an event can reference.
type EntityKind string

const (
	EntityCharacter EntityKind = "character"
	EntityEffect    EntityKind = "effect"
)

// EntityRef identifies an actor involved in an event.
type EntityRef struct {
	ID   string
	Kind EntityKind
}

// Event describes one semantic occurrence within a tick.
type Event struct {
	Type     EventType
	Tick     uint64
	Time     time.Time
	Actor    EntityRef
	Severity Severity
	Category Category
	Payload  any
	Extra    map[string]any
}

// Publisher emits telemetry events without blocking the simulation loop.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// NopPublisher drops all events; it is the zero-cost default every
// component falls back to when constructed without a Publisher.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, Event) {}

// WithFields attaches static metadata to every event emitted by base.
func WithFields(base Publisher, fields map[string]any) Publisher {
	if base == nil {
		return NopPublisher{}
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &fieldsPublisher{base: base, fields: copied}
}

type fieldsPublisher struct {
	base   Publisher
	fields map[string]any
}

func (p *fieldsPublisher) Publish(ctx context.Context, event Event) {
	if len(p.fields) > 0 {
		if event.Extra == nil {
			event.Extra = make(map[string]any, len(p.fields))
		}
		for k, v := range p.fields {
			if _, exists := event.Extra[k]; !exists {
				event.Extra[k] = v
			}
		}
	}
	p.base.Publish(ctx, event)
}

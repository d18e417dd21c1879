// Package catalog loads action.Definition values from designer-authored JSON
// documents, the construction-time path spec.md's "action records" describes
// in the abstract. It never runs in the hot path: the engine itself only
// ever sees the *action.Definition values a catalog resolves into.
package catalog

import "charability/internal/sim"

// MotionEventDocument names a motion-scoped event by its string event and
// motion kinds, as authored in JSON rather than as the engine's int enums.
type MotionEventDocument struct {
	Event  string `json:"event" jsonschema:"title=Event,description=One of the eight base instruction/signal event names.,enum=jump,enum=jumpHigher,enum=dodge,enum=block,enum=attack,enum=attackHeavier,enum=hit,enum=beHit"`
	Motion string `json:"motion" jsonschema:"title=Motion mode,description=Coarse motion mode this event is scoped to, or 'any' for every mode.,enum=any,enum=freeStat,enum=motionless,enum=onFloor,enum=inAir,enum=underWater,enum=climbWall"`
}

// EventExitDocument pairs a motion-scoped event with the action it leads to
// while this entry is current.
type EventExitDocument struct {
	MotionEventDocument
	Next string `json:"next" jsonschema:"title=Next action,description=Name of the action entered when this event fires.,minLength=1"`
}

// LogicExitDocument is one JSON-authored exit condition. Anim, After, and
// Motion are only meaningful for the logic kinds that use them.
type LogicExitDocument struct {
	Kind   string  `json:"kind" jsonschema:"title=Logic kind,enum=animFinished,enum=moveAfter,enum=jumpAfter,enum=attackWhen,enum=motionOnlyAllowed"`
	Anim   string  `json:"anim,omitempty" jsonschema:"description=Anim name consulted by animFinished/attackWhen"`
	After  float64 `json:"after,omitempty" jsonschema:"description=Duration threshold consulted by moveAfter/jumpAfter"`
	Motion string  `json:"motion,omitempty" jsonschema:"description=Motion mode consulted by motionOnlyAllowed"`
	Next   string  `json:"next" jsonschema:"title=Next action,minLength=1"`
}

// PhyEffDocument mirrors sim.PhyEff with JSON Schema annotations, kept as a
// distinct type so the engine's hot-path struct never carries tooling tags.
type PhyEffDocument struct {
	XVelocity     float64 `json:"xVelocity,omitempty"`
	XAcceleration float64 `json:"xAcceleration,omitempty" jsonschema:"description=Use a very large number to request an immediate snap."`
	YVelocity     float64 `json:"yVelocity,omitempty"`
	YAcceleration float64 `json:"yAcceleration,omitempty"`
}

func (p PhyEffDocument) toPhyEff() sim.PhyEff {
	return sim.PhyEff{
		XVelocity:     p.XVelocity,
		XAcceleration: p.XAcceleration,
		YVelocity:     p.YVelocity,
		YAcceleration: p.YAcceleration,
	}
}

// EntryDocument is a single designer-authored action as it appears on disk.
// Exported so the schema generator can reflect over the exact contract
// shared with designers and editor tooling.
type EntryDocument struct {
	Name           string                    `json:"name" jsonschema:"title=Action name,pattern=^[a-z][a-zA-Z0-9_]*$,minLength=1,required"`
	Priority       int                       `json:"priority,omitempty" jsonschema:"description=Default switch-eligibility rank; higher or equal wins ties."`
	SwitchRelation map[string]bool           `json:"switchRelation,omitempty" jsonschema:"description=Per-target overrides of the default priority rule, keyed by target action name."`
	EventEnter     []MotionEventDocument     `json:"eventEnter,omitempty"`
	EventExit      []EventExitDocument       `json:"eventExit,omitempty"`
	LogicExit      []LogicExitDocument       `json:"logicExit,omitempty"`
	AnimFirst      string                    `json:"animFirst" jsonschema:"required,minLength=1"`
	AnimNext       map[string]string         `json:"animNext,omitempty"`
	AnimPhysics    map[string]PhyEffDocument `json:"animPhysics,omitempty"`
}

// FileDefinitions is the on-disk shape of one catalog file: an array of
// entries, the canonical format designers author.
type FileDefinitions []EntryDocument

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"charability/internal/action"
	"charability/internal/mode"
)

var eventNames = map[string]action.Event{
	"jump":          action.JumpInstruction,
	"jumpHigher":    action.JumpHigherInstruction,
	"dodge":         action.DodgeInstruction,
	"block":         action.BlockInstruction,
	"attack":        action.AttackInstruction,
	"attackHeavier": action.AttackHeavierInstruction,
	"hit":           action.HitSignal,
	"beHit":         action.BeHitSignal,
}

var modeNames = map[string]mode.Mode{
	"freeStat":   mode.FreeStat,
	"motionless": mode.Motionless,
	"onFloor":    mode.OnFloor,
	"inAir":      mode.InAir,
	"underWater": mode.UnderWater,
	"climbWall":  mode.ClimbWall,
}

var logicKindNames = map[string]action.LogicKind{
	"animFinished":      action.AnimFinished,
	"moveAfter":         action.MoveAfter,
	"jumpAfter":         action.JumpAfter,
	"attackWhen":        action.AttackWhen,
	"motionOnlyAllowed": action.MotionOnlyAllowed,
}

func parseEvent(name string) (action.Event, error) {
	e, ok := eventNames[name]
	if !ok {
		return 0, fmt.Errorf("catalog: unknown event %q", name)
	}
	return e, nil
}

func parseMotionEvents(doc MotionEventDocument) ([]action.MotionEvent, error) {
	e, err := parseEvent(doc.Event)
	if err != nil {
		return nil, err
	}
	if doc.Motion == "any" || doc.Motion == "" {
		return action.AllMotions(e), nil
	}
	m, ok := modeNames[doc.Motion]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown motion mode %q", doc.Motion)
	}
	return []action.MotionEvent{{Event: e, Motion: m}}, nil
}

func parseLogicKind(name string) (action.LogicKind, error) {
	k, ok := logicKindNames[name]
	if !ok {
		return 0, fmt.Errorf("catalog: unknown logic kind %q", name)
	}
	return k, nil
}

func parseMotion(name string) (mode.Mode, error) {
	if name == "" {
		return mode.FreeStat, nil
	}
	m, ok := modeNames[name]
	if !ok {
		return 0, fmt.Errorf("catalog: unknown motion mode %q", name)
	}
	return m, nil
}

// Resolver turns a set of EntryDocuments into action.Definition values,
// validating that every textual action-name reference (eventExit/logicExit
// targets, switchRelation keys) resolves within the same set (animNext maps
// anim names, which are not checked) —
// the otherwise-silent runtime stall spec.md accepts becomes a load-time
// error here, matching the teacher's catalog.Resolver pattern of surfacing
// structural mistakes before they ever reach the hot path.
type Resolver struct {
	names   map[string]struct{}
	entries map[string]EntryDocument
}

// NewResolver builds a Resolver from entries already decoded, rejecting
// duplicate names up front.
func NewResolver(entries []EntryDocument) (*Resolver, error) {
	r := &Resolver{names: make(map[string]struct{}, len(entries)), entries: make(map[string]EntryDocument, len(entries))}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog: entry missing name")
		}
		if _, dup := r.names[name]; dup {
			return nil, fmt.Errorf("catalog: duplicate action name %q", name)
		}
		r.names[name] = struct{}{}
		r.entries[name] = e
	}
	return r, nil
}

// Load reads and decodes a JSON catalog file, then builds a Resolver.
func Load(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var docs FileDefinitions
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return NewResolver(docs)
}

func (r *Resolver) resolveTarget(name string) error {
	if _, ok := r.names[name]; !ok {
		return fmt.Errorf("catalog: dangling reference to action %q", name)
	}
	return nil
}

func (r *Resolver) resolveEntry(e EntryDocument) (*action.Definition, error) {
	d := &action.Definition{
		Name:           e.Name,
		Priority:       e.Priority,
		SwitchRelation: e.SwitchRelation,
		AnimFirst:      e.AnimFirst,
		AnimNext:       e.AnimNext,
	}

	for target := range e.SwitchRelation {
		if err := r.resolveTarget(target); err != nil {
			return nil, fmt.Errorf("action %q: %w", e.Name, err)
		}
	}
	for target := range e.AnimNext {
		_ = target // anim names are not action names; no cross-reference to validate here
	}

	for _, doc := range e.EventEnter {
		evs, err := parseMotionEvents(doc)
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", e.Name, err)
		}
		d.EventEnter = append(d.EventEnter, evs...)
	}

	if len(e.EventExit) > 0 {
		d.EventExit = make(map[action.MotionEvent]string, len(e.EventExit))
		for _, doc := range e.EventExit {
			if err := r.resolveTarget(doc.Next); err != nil {
				return nil, fmt.Errorf("action %q: %w", e.Name, err)
			}
			evs, err := parseMotionEvents(doc.MotionEventDocument)
			if err != nil {
				return nil, fmt.Errorf("action %q: %w", e.Name, err)
			}
			for _, ev := range evs {
				d.EventExit[ev] = doc.Next
			}
		}
	}

	for _, doc := range e.LogicExit {
		if err := r.resolveTarget(doc.Next); err != nil {
			return nil, fmt.Errorf("action %q: %w", e.Name, err)
		}
		kind, err := parseLogicKind(doc.Kind)
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", e.Name, err)
		}
		motion, err := parseMotion(doc.Motion)
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", e.Name, err)
		}
		d.LogicExit = append(d.LogicExit, action.LogicTransition{
			Logic: action.ExitLogic{Kind: kind, Anim: doc.Anim, After: doc.After, Motion: motion},
			Next:  doc.Next,
		})
	}

	if len(e.AnimPhysics) > 0 {
		d.AnimPhysics = make(map[string]action.PhyEff, len(e.AnimPhysics))
		for anim, peff := range e.AnimPhysics {
			d.AnimPhysics[anim] = peff.toPhyEff()
		}
	}

	return d, nil
}

// Resolve validates every entry's references and returns the fully resolved
// action.Definition set, sorted by name for deterministic iteration by
// callers that range over the result.
func (r *Resolver) Resolve() ([]*action.Definition, error) {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]*action.Definition, 0, len(names))
	for _, name := range names {
		d, err := r.resolveEntry(r.entries[name])
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// InstallInto registers every resolved action.Definition into m.
func InstallInto(m *action.Machine, defs []*action.Definition) {
	for _, d := range defs {
		m.Add(d)
	}
}

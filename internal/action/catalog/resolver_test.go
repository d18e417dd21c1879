package catalog

import (
	"strings"
	"testing"
)

func sampleEntries() []EntryDocument {
	return []EntryDocument{
		{
			Name:      "idle",
			AnimFirst: "idle_anim",
			EventExit: []EventExitDocument{
				{MotionEventDocument: MotionEventDocument{Event: "jump", Motion: "onFloor"}, Next: "jump"},
			},
		},
		{
			Name:        "jump",
			AnimFirst:   "jump_anim",
			Priority:    1,
			AnimPhysics: map[string]PhyEffDocument{"jump_anim": {YVelocity: 8}},
			LogicExit: []LogicExitDocument{
				{Kind: "animFinished", Anim: "jump_anim", Next: "idle"},
			},
		},
	}
}

func TestResolverResolvesValidCatalog(t *testing.T) {
	r, err := NewResolver(sampleEntries())
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	defs, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if defs[0].Name != "idle" || defs[1].Name != "jump" {
		t.Fatalf("expected sorted [idle jump], got [%s %s]", defs[0].Name, defs[1].Name)
	}
	if defs[1].AnimPhysics["jump_anim"].YVelocity != 8 {
		t.Fatalf("expected jump_anim physics to carry through, got %+v", defs[1].AnimPhysics)
	}
}

func TestResolverRejectsDuplicateNames(t *testing.T) {
	entries := append(sampleEntries(), EntryDocument{Name: "idle", AnimFirst: "other"})
	if _, err := NewResolver(entries); err == nil {
		t.Fatalf("expected duplicate name error")
	}
}

func TestResolverRejectsDanglingEventExit(t *testing.T) {
	entries := sampleEntries()
	entries[0].EventExit[0].Next = "does-not-exist"
	r, err := NewResolver(entries)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	_, err = r.Resolve()
	if err == nil || !strings.Contains(err.Error(), "dangling reference") {
		t.Fatalf("expected dangling reference error, got %v", err)
	}
}

func TestResolverRejectsDanglingLogicExit(t *testing.T) {
	entries := sampleEntries()
	entries[1].LogicExit[0].Next = "nowhere"
	r, err := NewResolver(entries)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	_, err = r.Resolve()
	if err == nil || !strings.Contains(err.Error(), "dangling reference") {
		t.Fatalf("expected dangling reference error, got %v", err)
	}
}

func TestResolverRejectsUnknownEvent(t *testing.T) {
	entries := sampleEntries()
	entries[0].EventExit[0].Event = "not-an-event"
	r, err := NewResolver(entries)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	if _, err := r.Resolve(); err == nil {
		t.Fatalf("expected unknown event error")
	}
}

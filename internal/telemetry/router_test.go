package telemetry

import (
	"context"
	"testing"
	"time"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type recordingSink struct {
	events []Event
}

func (s *recordingSink) Write(e Event) error {
	s.events = append(s.events, e)
	return nil
}
func (s *recordingSink) Close(context.Context) error { return nil }

func TestRouterForwardsEnabledSinksOnly(t *testing.T) {
	rec := &recordingSink{}
	cfg := Config{EnabledSinks: []string{"rec"}, BufferSize: 4, MinSeverity: SeverityDebug}
	r, err := NewRouter(cfg, fixedClock{}, nil, map[string]Sink{"rec": rec, "unused": &recordingSink{}})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	r.Publish(context.Background(), Event{Type: EffectApplied})
	if err := r.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if len(rec.events) != 1 || rec.events[0].Type != EffectApplied {
		t.Fatalf("expected one forwarded event, got %+v", rec.events)
	}
}

func TestRouterFiltersBelowMinSeverity(t *testing.T) {
	rec := &recordingSink{}
	cfg := Config{EnabledSinks: []string{"rec"}, BufferSize: 4, MinSeverity: SeverityWarn}
	r, _ := NewRouter(cfg, fixedClock{}, nil, map[string]Sink{"rec": rec})

	r.Publish(context.Background(), Event{Type: EffectApplied, Severity: SeverityInfo})
	r.Publish(context.Background(), Event{Type: CombatBroken, Severity: SeverityError})
	r.Close(context.Background())

	if len(rec.events) != 1 || rec.events[0].Type != CombatBroken {
		t.Fatalf("expected only the error-severity event, got %+v", rec.events)
	}
}

func TestWithFieldsAttachesExtraMetadata(t *testing.T) {
	rec := &recordingSink{}
	cfg := Config{EnabledSinks: []string{"rec"}, BufferSize: 4}
	r, _ := NewRouter(cfg, fixedClock{}, nil, map[string]Sink{"rec": rec})

	pub := WithFields(r, map[string]any{"region": "overworld"})
	pub.Publish(context.Background(), Event{Type: EffectApplied})
	r.Close(context.Background())

	if len(rec.events) != 1 {
		t.Fatalf("expected one event")
	}
	if rec.events[0].Extra["region"] != "overworld" {
		t.Fatalf("expected attached field, got %+v", rec.events[0].Extra)
	}
}

func TestNopPublisherDropsEverything(t *testing.T) {
	var p Publisher = NopPublisher{}
	p.Publish(context.Background(), Event{Type: EffectApplied}) // should not panic
}

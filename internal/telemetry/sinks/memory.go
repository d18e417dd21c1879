package sinks

import (
	"context"
	"sync"

	"charability/internal/telemetry"
)

// Memory collects events for assertions in tests.
type Memory struct {
	mu     sync.Mutex
	events []telemetry.Event
}

// NewMemory constructs an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{events: make([]telemetry.Event, 0)}
}

// Write implements telemetry.Sink.
func (m *Memory) Write(event telemetry.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

// Close implements telemetry.Sink.
func (m *Memory) Close(context.Context) error { return nil }

// Events returns a snapshot of collected events.
func (m *Memory) Events() []telemetry.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]telemetry.Event, len(m.events))
	copy(out, m.events)
	return out
}

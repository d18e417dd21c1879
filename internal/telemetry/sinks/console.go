// Package sinks provides Sink implementations for charability/internal/telemetry.
package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"charability/internal/telemetry"
)

// Console writes one line per event to an io.Writer.
type Console struct {
	logger *log.Logger
}

// NewConsole returns a Console sink writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{logger: log.New(w, "", log.LstdFlags)}
}

// Write implements telemetry.Sink.
func (s *Console) Write(event telemetry.Event) error {
	if s.logger == nil {
		return nil
	}
	s.logger.Printf("[%s] tick=%d actor=%s severity=%s%s", event.Type, event.Tick, formatEntity(event.Actor), formatSeverity(event.Severity), formatPayload(event.Payload))
	return nil
}

// Close implements telemetry.Sink.
func (s *Console) Close(context.Context) error { return nil }

func formatSeverity(sev telemetry.Severity) string {
	switch sev {
	case telemetry.SeverityDebug:
		return "debug"
	case telemetry.SeverityInfo:
		return "info"
	case telemetry.SeverityWarn:
		return "warn"
	case telemetry.SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func formatEntity(ref telemetry.EntityRef) string {
	if ref.ID == "" {
		return string(ref.Kind)
	}
	if ref.Kind == "" {
		return ref.ID
	}
	return fmt.Sprintf("%s:%s", ref.Kind, ref.ID)
}

func formatPayload(payload any) string {
	if payload == nil {
		return ""
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(" payload=%v", payload)
	}
	return fmt.Sprintf(" payload=%s", data)
}

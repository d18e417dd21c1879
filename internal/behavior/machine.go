package behavior

import (
	"context"

	"charability/internal/mode"
	"charability/internal/motiondata"
	"charability/internal/telemetry"
)

const noCurrent = -1

// Machine scans its registered behaviours in insertion order each tick and
// switches to the first one (other than the current one) that wants to
// enter.
type Machine struct {
	behaviours []Behaviour
	currentIdx int
	data       *motiondata.Data
	publisher  telemetry.Publisher
}

// NewMachine returns a machine with no current behaviour.
func NewMachine(data *motiondata.Data) *Machine {
	return &Machine{currentIdx: noCurrent, data: data, publisher: telemetry.NopPublisher{}}
}

// SetPublisher attaches a telemetry publisher reporting behaviour entries. A
// nil publisher restores the no-op default.
func (m *Machine) SetPublisher(p telemetry.Publisher) {
	if p == nil {
		p = telemetry.NopPublisher{}
	}
	m.publisher = p
}

// Add registers b. Order matters: Add earlier behaviours with broader entry
// conditions last, so more specific ones are tried first.
func (m *Machine) Add(b Behaviour) { m.behaviours = append(m.behaviours, b) }

// SetData replaces the movement constants used by ProcessPhysics.
func (m *Machine) SetData(data *motiondata.Data) { m.data = data }

// Current returns the active behaviour, or nil if none has entered yet.
func (m *Machine) Current() Behaviour {
	if m.currentIdx < 0 || m.currentIdx >= len(m.behaviours) {
		return nil
	}
	return m.behaviours[m.currentIdx]
}

func (m *Machine) fetchNext(p *Param) int {
	for i, b := range m.behaviours {
		if i == m.currentIdx {
			continue
		}
		if b.WillEnter(p) {
			return i
		}
	}
	return noCurrent
}

func (m *Machine) updateState(p *Param) bool {
	next := m.fetchNext(p)
	if next == noCurrent {
		return false
	}
	from := m.Current()
	if from != nil {
		from.OnExit(p)
	}
	m.currentIdx = next
	to := m.Current()
	if to != nil {
		to.OnEnter(p)
	}

	m.publisher.Publish(context.Background(), telemetry.Event{
		Type:     telemetry.BehaviourEntered,
		Category: telemetry.CategoryBehaviour,
		Payload:  struct{ From, To mode.Mode }{motionModeOf(from), motionModeOf(to)},
	})
	return true
}

func motionModeOf(b Behaviour) mode.Mode {
	if b == nil {
		return mode.Motionless
	}
	return b.MotionMode()
}

// TickFrame delegates to the current behaviour, if any.
func (m *Machine) TickFrame(p *FrameParam) (FrameEff, bool) {
	cur := m.Current()
	if cur == nil {
		return FrameEff{}, false
	}
	return cur.TickFrame(p), true
}

func (m *Machine) processPhysics(p *Param) (PhyEff, bool) {
	cur := m.Current()
	if cur == nil {
		return PhyEff{}, false
	}
	return cur.ProcessPhysics(p, m.data), true
}

// ProcessAndUpdate runs the current behaviour's physics step before
// evaluating entry/exit transitions, so a frame's physics always comes from
// the behaviour the character already owned at tick start.
func (m *Machine) ProcessAndUpdate(p *Param) (PhyEff, bool) {
	eff, ok := m.processPhysics(p)
	m.updateState(p)
	return eff, ok
}

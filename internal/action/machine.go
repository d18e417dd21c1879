package action

import (
	"context"

	"charability/internal/mode"
	"charability/internal/telemetry"
)

// eventListCapacity pre-sizes the per-tick event slice; there are at most
// eight base events, so this comfortably avoids reallocation.
const eventListCapacity = 10

// Machine is the discrete-action state machine: a registry of named
// actions, the currently active one, its currently playing anim, and the
// inverse index from motion-scoped event to candidate action names.
type Machine struct {
	actions        map[string]*Definition
	currentName    string
	currentAnim    string
	eventToActions map[MotionEvent][]string
	publisher      telemetry.Publisher
}

// NewMachine returns an empty machine.
func NewMachine() *Machine {
	return &Machine{
		actions:        make(map[string]*Definition),
		eventToActions: make(map[MotionEvent][]string),
		publisher:      telemetry.NopPublisher{},
	}
}

// SetPublisher attaches a telemetry publisher reporting action transitions.
// A nil publisher restores the no-op default.
func (m *Machine) SetPublisher(p telemetry.Publisher) {
	if p == nil {
		p = telemetry.NopPublisher{}
	}
	m.publisher = p
}

// Add registers d and indexes its EventEnter list.
func (m *Machine) Add(d *Definition) {
	for _, e := range d.EventEnter {
		m.eventToActions[e] = append(m.eventToActions[e], d.Name)
	}
	m.actions[d.Name] = d
}

// Init sets the starting action, if registered.
func (m *Machine) Init(name string) {
	if _, ok := m.actions[name]; ok {
		m.setAction(name)
	}
}

// Current returns the active action's name and currently playing anim.
func (m *Machine) Current() (name, anim string) { return m.currentName, m.currentAnim }

func (m *Machine) current() *Definition { return m.actions[m.currentName] }

func (m *Machine) setAction(name string) {
	from := m.currentName
	m.currentName = name
	if a, ok := m.actions[name]; ok {
		m.currentAnim = a.AnimFirst
	}
	m.publisher.Publish(context.Background(), telemetry.Event{
		Type:     telemetry.ActionTransition,
		Category: telemetry.CategoryAction,
		Payload:  struct{ From, To string }{from, name},
	})
}

func (m *Machine) nextByEventLocal(e MotionEvent) (string, bool) {
	cur := m.current()
	if cur == nil {
		return "", false
	}
	next, ok := cur.NextByEvent(e)
	if !ok {
		return "", false
	}
	if _, exists := m.actions[next]; !exists {
		return "", false
	}
	return next, true
}

func (m *Machine) nextByEventGlobal(e MotionEvent) (string, bool) {
	candidates, ok := m.eventToActions[e]
	if !ok {
		return "", false
	}
	cur := m.current()
	if cur == nil {
		if len(candidates) == 0 {
			return "", false
		}
		return candidates[0], true
	}
	for _, name := range candidates {
		cand, ok := m.actions[name]
		if !ok {
			continue
		}
		if cur.CanSwitchTo(cand) {
			return name, true
		}
	}
	return "", false
}

// nextByEvent tries the current action's own exit map first, falling back
// to the global inverse index only if nothing local matched.
func (m *Machine) nextByEvent(e MotionEvent) (string, bool) {
	if n, ok := m.nextByEventLocal(e); ok {
		return n, true
	}
	return m.nextByEventGlobal(e)
}

func (m *Machine) updateByEvent(e MotionEvent) bool {
	next, ok := m.nextByEvent(e)
	if !ok {
		return false
	}
	m.setAction(next)
	return true
}

func (m *Machine) nextByLogic(p *Param) (string, bool) {
	cur := m.current()
	if cur == nil {
		return "", false
	}
	for _, lt := range cur.LogicExit {
		if lt.Logic.ShouldExit(p) {
			if _, ok := m.actions[lt.Next]; ok {
				return lt.Next, true
			}
		}
	}
	return "", false
}

func (m *Machine) updateByLogic(p *Param) bool {
	next, ok := m.nextByLogic(p)
	if !ok {
		return false
	}
	m.setAction(next)
	return true
}

// genEvents lists this tick's fired base events in a fixed order: signals
// first, then instructions in PlayerInstructionCollection field order. This
// order matters because earlier events in the list win ties when more than
// one would fire a transition this tick.
func genEvents(p *Param) []Event {
	list := make([]Event, 0, eventListCapacity)
	if p.Signals.Hit {
		list = append(list, HitSignal)
	}
	if p.Signals.BeHit {
		list = append(list, BeHitSignal)
	}
	ins := p.Instructions
	if ins.JumpOnce.Active() {
		list = append(list, JumpInstruction)
	}
	if ins.JumpKeep {
		list = append(list, JumpHigherInstruction)
	}
	if ins.DodgeOnce.Active() {
		list = append(list, DodgeInstruction)
	}
	if ins.BlockKeep {
		list = append(list, BlockInstruction)
	}
	if ins.AttackOnce {
		list = append(list, AttackInstruction)
	}
	if ins.AttackKeep {
		list = append(list, AttackHeavierInstruction)
	}
	return list
}

func (m *Machine) tryUpdateByEvent(p *Param, motionNow mode.Mode) bool {
	for _, ev := range genEvents(p) {
		if m.updateByEvent(MotionEvent{Event: ev, Motion: motionNow}) {
			return true
		}
	}
	return false
}

// TickFrame advances the current anim if the previously playing anim just
// finished, returning whatever anim is now playing. If the engine reports a
// finished anim that isn't the one this action thinks is current, nothing
// advances — a deliberately accepted visual stall rather than guessing at
// recovery.
func (m *Machine) TickFrame(p *FrameParam) string {
	if p.AnimFinished && p.AnimName == m.currentAnim {
		if cur := m.current(); cur != nil {
			if next, ok := cur.AnimNext[m.currentAnim]; ok {
				m.currentAnim = next
			}
		}
	}
	return m.currentAnim
}

func (m *Machine) tickPhysics(p *Param) PhyEff {
	cur := m.current()
	if cur == nil {
		return PhyEff{}
	}
	return cur.AnimPhysics[p.AnimName]
}

// TickAndUpdate resolves this tick's PhyEff for the current action and anim,
// then tries an event-driven transition and, only if none fired, a
// logic-driven one. At most one transition happens per tick.
func (m *Machine) TickAndUpdate(p *Param) (PhyEff, bool) {
	eff := m.tickPhysics(p)

	updated := m.tryUpdateByEvent(p, p.MotionMode())
	if !updated {
		updated = m.updateByLogic(p)
	}
	return eff, updated
}

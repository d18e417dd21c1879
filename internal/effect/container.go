package effect

import "sort"

// Entry is implemented by every effect kind a Container can hold. Base
// exposes the shared record/duration pair so the container can apply the
// stacking and lifecycle rules generically across concrete effect kinds. E
// is expected to be a pointer type, so mutations through Base persist
// without re-inserting into the map.
type Entry interface {
	Base() *Fields
}

// Fields is embedded by every concrete effect type to satisfy Entry.
type Fields struct {
	Rec Record
	Dur Duration
}

// Base implements Entry for any type embedding Fields by value.
func (f *Fields) Base() *Fields { return f }

// Container is a name-keyed collection with at most one effect per name.
type Container[E Entry] struct {
	items map[Name]E
}

// NewContainer returns an empty container.
func NewContainer[E Entry]() *Container[E] {
	return &Container[E]{items: make(map[Name]E)}
}

// PutOrStack installs e. If an effect with the same name already exists, its
// value/origin is replaced by e's, its life is reset to 0, and its stack is
// increased by e's stack (clamped to MaxStack) rather than adding a sibling
// entry.
func (c *Container[E]) PutOrStack(e E) {
	incoming := e.Base()
	if existing, ok := c.items[incoming.Rec.Name]; ok {
		eb := existing.Base()
		eb.Rec.Value = incoming.Rec.Value
		eb.Rec.From = incoming.Rec.From
		eb.Dur.Life = 0
		eb.Dur.Stack = eb.Dur.ClampStack(eb.Dur.Stack + incoming.Dur.Stack)
		return
	}
	incoming.Dur.Life = 0
	incoming.Dur.Stack = incoming.Dur.ClampStack(incoming.Dur.Stack)
	c.items[incoming.Rec.Name] = e
}

// Get returns the effect stored under name, if any.
func (c *Container[E]) Get(name Name) (E, bool) {
	v, ok := c.items[name]
	return v, ok
}

// Remove deletes the effect stored under name, if any.
func (c *Container[E]) Remove(name Name) {
	delete(c.items, name)
}

// Len returns the number of effects currently stored.
func (c *Container[E]) Len() int { return len(c.items) }

// SnapshotKeys returns every stored name in lexicographic order: the
// deterministic traversal order combination and tick processing require
// whenever order is observable in floating-point results.
func (c *Container[E]) SnapshotKeys() []Name {
	keys := make([]Name, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

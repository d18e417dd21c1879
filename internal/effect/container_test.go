package effect

import "testing"

type stub struct {
	Fields
}

func newStub(name Name, value float64, dur Duration) *stub {
	return &stub{Fields{Rec: Record{Name: name, Value: value}, Dur: dur}}
}

func TestContainerPutOrStackInsertsNew(t *testing.T) {
	c := NewContainer[*stub]()
	c.PutOrStack(newStub("burn", 5, NewInfinite()))
	if c.Len() != 1 {
		t.Fatalf("expected one entry, got %d", c.Len())
	}
	e, ok := c.Get("burn")
	if !ok || e.Rec.Value != 5 || e.Dur.Stack != 1 {
		t.Fatalf("unexpected stored entry: %+v ok=%v", e, ok)
	}
}

func TestContainerPutOrStackCombinesSameName(t *testing.T) {
	c := NewContainer[*stub]()
	d := NewInfinite()
	d.MaxStack = 3
	c.PutOrStack(newStub("burn", 5, d))

	e, _ := c.Get("burn")
	e.Dur.Life = 2.5 // simulate elapsed time before the second application

	c.PutOrStack(newStub("burn", 7, d))

	got, ok := c.Get("burn")
	if !ok {
		t.Fatalf("expected entry to still exist")
	}
	if got.Rec.Value != 7 {
		t.Fatalf("expected value overwritten to 7, got %v", got.Rec.Value)
	}
	if got.Dur.Stack != 2 {
		t.Fatalf("expected stack 2, got %d", got.Dur.Stack)
	}
	if got.Dur.Life != 0 {
		t.Fatalf("expected life reset to 0 on stack, got %v", got.Dur.Life)
	}
	if c.Len() != 1 {
		t.Fatalf("expected a single entry after stacking, got %d", c.Len())
	}
}

func TestContainerPutOrStackClampsAtMaxStack(t *testing.T) {
	c := NewContainer[*stub]()
	d := NewInfinite()
	d.MaxStack = 2
	c.PutOrStack(newStub("burn", 1, d))
	c.PutOrStack(newStub("burn", 1, d))
	c.PutOrStack(newStub("burn", 1, d))

	got, _ := c.Get("burn")
	if got.Dur.Stack != 2 {
		t.Fatalf("expected stack clamped to 2, got %d", got.Dur.Stack)
	}
}

func TestContainerRemove(t *testing.T) {
	c := NewContainer[*stub]()
	c.PutOrStack(newStub("burn", 1, NewInfinite()))
	c.Remove("burn")
	if c.Len() != 0 {
		t.Fatalf("expected empty container after remove")
	}
}

func TestContainerSnapshotKeysSorted(t *testing.T) {
	c := NewContainer[*stub]()
	for _, name := range []Name{"zeta", "alpha", "mu"} {
		c.PutOrStack(newStub(name, 1, NewInfinite()))
	}
	keys := c.SnapshotKeys()
	want := []Name{"alpha", "mu", "zeta"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys not sorted: got %v", keys)
		}
	}
}

package arkanoid

import "testing"

func TestArenaInsertGetRemove(t *testing.T) {
	a := NewArena[string]()
	h1 := a.Insert("one")
	h2 := a.Insert("two")

	if a.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", a.Len())
	}
	if v, ok := a.Get(h1); !ok || *v != "one" {
		t.Errorf("Get(h1) = %v, %v", v, ok)
	}

	if !a.Remove(h1) {
		t.Fatal("Remove(h1) should succeed")
	}
	if a.Remove(h1) {
		t.Error("second Remove(h1) should report false")
	}
	if a.Contains(h1) {
		t.Error("removed handle should be stale")
	}
	if !a.Contains(h2) {
		t.Error("h2 should still be live")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", a.Len())
	}
}

func TestArenaSlotReuseInvalidatesOldHandle(t *testing.T) {
	a := NewArena[int]()
	old := a.Insert(1)
	a.Remove(old)
	fresh := a.Insert(2)

	if fresh.Index() != old.Index() {
		t.Fatalf("expected slot %d to be reused, got %d", old.Index(), fresh.Index())
	}
	if fresh.ID() == old.ID() {
		t.Error("reused slot must produce a different ID")
	}
	if _, ok := a.Get(old); ok {
		t.Error("old handle must not resolve to the new entity")
	}
	if v, ok := a.Get(fresh); !ok || *v != 2 {
		t.Errorf("Get(fresh) = %v, %v", v, ok)
	}
}

func TestArenaEachOrderAndCount(t *testing.T) {
	a := NewArena[int]()
	var hs []Handle
	for i := range 5 {
		hs = append(hs, a.Insert(i))
	}
	a.Remove(hs[1])
	a.Remove(hs[3])

	var got []int
	a.Each(func(_ Handle, v *int) {
		got = append(got, *v)
	})
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("Each visited %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each[%d] = %d, expected %d", i, got[i], want[i])
		}
	}

	even := a.Count(func(v *int) bool { return *v%2 == 0 })
	if even != 3 {
		t.Errorf("Count(even) = %d, expected 3", even)
	}

	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Len() after Clear = %d", a.Len())
	}
	for _, h := range hs {
		if a.Contains(h) {
			t.Errorf("handle %d survived Clear", h.ID())
		}
	}
}

func TestHandleIDRoundTrip(t *testing.T) {
	a := NewArena[int]()
	h := a.Insert(7)
	a.Remove(h)
	h = a.Insert(8)

	if h.ID() == 0 {
		t.Error("ID must never be zero")
	}
	back := HandleFromID(h.ID())
	if back != h {
		t.Errorf("HandleFromID(%d) = %+v, expected %+v", h.ID(), back, h)
	}
}

func TestArenaClearRefillsInSlotOrder(t *testing.T) {
	a := NewArena[int]()
	var old []Handle
	for i := range 4 {
		old = append(old, a.Insert(i))
	}
	a.Remove(old[2]) // A pending free slot must not jump the queue
	a.Clear()

	for i := range 5 {
		h := a.Insert(10 + i)
		if h.Index() != i {
			t.Errorf("insert %d landed in slot %d", i, h.Index())
		}
	}
	for _, h := range old {
		if a.Contains(h) {
			t.Errorf("handle %d survived Clear", h.ID())
		}
	}
	if a.Len() != 5 {
		t.Errorf("Len() = %d, expected 5", a.Len())
	}
}

package arkanoid

// Handle addresses an entity in an Arena. Handles stay valid until the
// entity is removed; after that they resolve to nothing, even if the slot
// is reused.
type Handle struct {
	index uint32
	gen   uint32
}

// ID packs the handle into a single integer for events. Zero is never a
// valid ID because generations start at one.
func (h Handle) ID() uint64 {
	return uint64(h.gen)<<32 | uint64(h.index)
}

// HandleFromID reverses Handle.ID.
func HandleFromID(id uint64) Handle {
	return Handle{index: uint32(id), gen: uint32(id >> 32)} //#nosec G115 -- unpacking
}

// Index returns the slot index.
func (h Handle) Index() int {
	return int(h.index)
}

type slot[T any] struct {
	value T
	gen   uint32
	alive bool
}

// Arena stores entities in stable slots addressed by generational handles.
// Iteration order is slot order, so it is deterministic for a given history
// of inserts and removals.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	a.live++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.alive = true
		return Handle{index: idx, gen: s.gen}
	}

	idx := uint32(len(a.slots)) //#nosec G115 -- arena never holds 2^32 entities
	a.slots = append(a.slots, slot[T]{value: v, gen: 1, alive: true})
	return Handle{index: idx, gen: 1}
}

// Get returns a pointer to the entity, or false for a stale handle.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.alive || s.gen != h.gen {
		return nil, false
	}
	return &s.value, true
}

// Contains reports whether the handle refers to a live entity.
func (a *Arena[T]) Contains(h Handle) bool {
	_, ok := a.Get(h)
	return ok
}

// Remove deletes the entity. Returns false if the handle was already stale.
func (a *Arena[T]) Remove(h Handle) bool {
	if !a.Contains(h) {
		return false
	}
	s := &a.slots[h.index]
	var zero T
	s.value = zero
	s.alive = false
	s.gen++
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.live
}

// Each calls fn for every live entity in slot order.
func (a *Arena[T]) Each(fn func(h Handle, v *T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive {
			fn(Handle{index: uint32(i), gen: s.gen}, &s.value) //#nosec G115 -- bounded by Insert
		}
	}
}

// Count returns how many live entities satisfy keep.
func (a *Arena[T]) Count(keep func(v *T) bool) int {
	n := 0
	a.Each(func(_ Handle, v *T) {
		if keep(v) {
			n++
		}
	})
	return n
}

// Clear removes every entity and invalidates all handles. Slots are reused
// from index zero upward, so a refilled arena iterates in insertion order.
func (a *Arena[T]) Clear() {
	var zero T
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive {
			s.value = zero
			s.alive = false
			s.gen++
		}
	}
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		a.free = append(a.free, uint32(i)) //#nosec G115 -- bounded by Insert
	}
	a.live = 0
}

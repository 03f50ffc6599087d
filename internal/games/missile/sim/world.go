package sim

// World owns every live entity. Iteration follows spawn order so that a run
// is reproducible from its seed and inputs.
type World struct {
	next     Handle
	byHandle map[Handle]*Entity
	order    []*Entity
	dirty    bool
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		byHandle: make(map[Handle]*Entity),
		order:    make([]*Entity, 0, 64),
	}
}

// Spawn adds e to the world and returns its new handle.
func (w *World) Spawn(e *Entity) Handle {
	w.next++
	e.Handle = w.next
	e.alive = true
	w.byHandle[e.Handle] = e
	w.order = append(w.order, e)
	return e.Handle
}

// Despawn removes the entity with handle h. It reports whether anything was
// removed; despawning a stale or unknown handle is a no-op.
func (w *World) Despawn(h Handle) bool {
	e, ok := w.byHandle[h]
	if !ok || !e.alive {
		return false
	}
	e.alive = false
	delete(w.byHandle, h)
	w.dirty = true
	return true
}

// Get returns the live entity with handle h, or nil.
func (w *World) Get(h Handle) *Entity {
	return w.byHandle[h]
}

// Each calls fn for every live entity of the given kind. Entities despawned
// while iterating are skipped from then on.
func (w *World) Each(k Kind, fn func(e *Entity)) {
	for _, e := range w.order {
		if e.alive && e.Kind == k {
			fn(e)
		}
	}
}

// Select returns the live entities accepted by keep.
func (w *World) Select(keep func(e *Entity) bool) []*Entity {
	var out []*Entity
	for _, e := range w.order {
		if e.alive && keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entities accepted by keep.
func (w *World) Count(keep func(e *Entity) bool) int {
	n := 0
	for _, e := range w.order {
		if e.alive && keep(e) {
			n++
		}
	}
	return n
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.byHandle)
}

// Compact drops despawned entities from the iteration order.
func (w *World) Compact() {
	if !w.dirty {
		return
	}
	live := w.order[:0]
	for _, e := range w.order {
		if e.alive {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(w.order); i++ {
		w.order[i] = nil
	}
	w.order = live
	w.dirty = false
}

// Live returns every live entity in spawn order.
func (w *World) Live() []*Entity {
	return w.Select(func(*Entity) bool { return true })
}

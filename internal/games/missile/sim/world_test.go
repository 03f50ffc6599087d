package sim

import (
	"slices"
	"testing"
)

func TestWorldDespawnIsIdempotent(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(&Entity{Kind: KindBlast})
	b := w.Spawn(&Entity{Kind: KindProjectile})

	if a == b {
		t.Fatal("handles must be unique")
	}
	if !w.Despawn(a) {
		t.Fatal("first despawn should succeed")
	}
	if w.Despawn(a) {
		t.Error("second despawn should be a no-op")
	}
	if w.Despawn(Handle(999)) {
		t.Error("unknown handle should be a no-op")
	}
	if w.Get(b) == nil || w.Len() != 1 {
		t.Error("unrelated entity affected by despawn")
	}
}

func TestWorldSkipsDespawnedDuringIteration(t *testing.T) {
	w := NewWorld()
	var hs []Handle
	for range 4 {
		hs = append(hs, w.Spawn(&Entity{Kind: KindProjectile}))
	}

	var seen []Handle
	w.Each(KindProjectile, func(e *Entity) {
		seen = append(seen, e.Handle)
		if e.Handle == hs[0] {
			w.Despawn(hs[2])
		}
	})
	if !slices.Equal(seen, []Handle{hs[0], hs[1], hs[3]}) {
		t.Errorf("visited %v", seen)
	}

	w.Compact()
	if got := len(w.Live()); got != 3 {
		t.Errorf("Live() = %d entities after compact, expected 3", got)
	}
	for i, e := range w.Live() {
		if e.Handle != []Handle{hs[0], hs[1], hs[3]}[i] {
			t.Errorf("compact broke spawn order at %d", i)
		}
	}
}

func TestQueueLatency(t *testing.T) {
	var q Queue[int]

	q.Send(1)
	if got := q.Drain(); len(got) != 0 {
		t.Errorf("event readable in the tick it was sent: %v", got)
	}

	q.swap()
	q.Post(2)
	if got := q.Drain(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Drain() = %v, expected [1 2]", got)
	}

	q.Send(3)
	q.swap()
	q.swap()
	if got := q.Drain(); len(got) != 0 {
		t.Errorf("undrained event survived a second tick: %v", got)
	}
}

func TestBusClear(t *testing.T) {
	var b Bus
	b.Score.Send(ScoreDelta{Points: 1})
	b.Blasts.Post(SpawnBlast{})
	b.Pickups.Send(SpawnPickup{})
	if b.Pending() != 3 {
		t.Fatalf("Pending() = %d, expected 3", b.Pending())
	}
	b.Clear()
	if b.Pending() != 0 {
		t.Errorf("Pending() = %d after clear", b.Pending())
	}
}

package sim

// Queue is a double-buffered event queue. Events sent during tick N become
// readable in tick N+1 and are dropped at the end of that tick whether or
// not anyone drained them.
type Queue[T any] struct {
	front []T // readable this tick
	back  []T // collecting for next tick
}

// Send queues an event for the next tick.
func (q *Queue[T]) Send(ev T) {
	q.back = append(q.back, ev)
}

// Post queues an event that is readable in the current tick. It is used for
// action-driven spawns that belong to the tick's own spawn stage.
func (q *Queue[T]) Post(ev T) {
	q.front = append(q.front, ev)
}

// Drain returns the readable events and empties the readable buffer.
func (q *Queue[T]) Drain() []T {
	out := q.front
	q.front = nil
	return out
}

// Pending returns the events queued for the next tick.
func (q *Queue[T]) Pending() []T {
	return q.back
}

// Len returns the number of events in both buffers.
func (q *Queue[T]) Len() int {
	return len(q.front) + len(q.back)
}

func (q *Queue[T]) swap() {
	q.front, q.back = q.back, q.front[:0]
}

func (q *Queue[T]) clear() {
	q.front = q.front[:0]
	q.back = q.back[:0]
}

// SpawnMissile requests a projectile. A zero Speed means the team default.
type SpawnMissile struct {
	Origin Vec2
	Target Vec2
	Team   Team
	Speed  float64
}

// SpawnBlast requests an explosion.
type SpawnBlast struct {
	Pos        Vec2
	Team       Team
	Multiplier float64
}

// SpawnDebris requests wreckage where a structure stood.
type SpawnDebris struct {
	X  float64
	Of StructureKind
}

// SpawnPickup requests a drifting pickup.
type SpawnPickup struct {
	Kind PickupKind
	Pos  Vec2
	Vel  Vec2
}

// ScoreDelta adds points to the running score.
type ScoreDelta struct {
	Points int
}

// BlastBonus sets the defender blast multiplier for a duration.
type BlastBonus struct {
	Multiplier float64
	Duration   float64
}

// SpeedBonus sets the defender projectile speed for a duration.
type SpeedBonus struct {
	Speed    float64
	Duration float64
}

// Bus holds one queue per internal event type.
type Bus struct {
	Missiles   Queue[SpawnMissile]
	Blasts     Queue[SpawnBlast]
	Debris     Queue[SpawnDebris]
	Pickups    Queue[SpawnPickup]
	Score      Queue[ScoreDelta]
	BlastBonus Queue[BlastBonus]
	SpeedBonus Queue[SpeedBonus]
}

// Advance flips every queue at the tick boundary.
func (b *Bus) Advance() {
	b.Missiles.swap()
	b.Blasts.swap()
	b.Debris.swap()
	b.Pickups.swap()
	b.Score.swap()
	b.BlastBonus.swap()
	b.SpeedBonus.swap()
}

// Clear drops every queued event.
func (b *Bus) Clear() {
	b.Missiles.clear()
	b.Blasts.clear()
	b.Debris.clear()
	b.Pickups.clear()
	b.Score.clear()
	b.BlastBonus.clear()
	b.SpeedBonus.clear()
}

// Pending returns the total number of events waiting in any queue.
func (b *Bus) Pending() int {
	return b.Missiles.Len() + b.Blasts.Len() + b.Debris.Len() + b.Pickups.Len() +
		b.Score.Len() + b.BlastBonus.Len() + b.SpeedBonus.Len()
}

// Package sim is the real-time simulation engine behind the missile defence game.
// It owns entities, timers, events and the state machine, and has no
// dependency on terminal, audio or storage code.
package sim

import "math"

// Vec2 is a point or displacement in world space. X grows right, Y grows up,
// and the origin sits at the centre of the viewport.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// DistSq returns the squared distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// circlesOverlap is the squared-distance circle test shared by every
// circle-vs-circle collision rule.
func circlesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	r := ra + rb
	return a.DistSq(b) < r*r
}

// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CenteredRect returns a w×h rectangle centered in a screen of sw×sh cells.
func CenteredRect(sw, sh, w, h int) Rect {
	return NewRect((sw-w)/2, (sh-h)/2, w, h)
}

// Viewport maps a centered world (y up, origin in the middle) onto a grid
// of terminal cells (y down, origin top-left).
type Viewport struct {
	HalfW, HalfH float64 // world half extents
	Cols, Rows   int     // cells available
}

// CellSize returns the world size of one cell on each axis.
func (v Viewport) CellSize() (w, h float64) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0
	}
	return 2 * v.HalfW / float64(v.Cols), 2 * v.HalfH / float64(v.Rows)
}

// ToCell projects a world point to the cell containing it. Points on the
// far edges land in the last row or column.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	cw, ch := v.CellSize()
	if cw == 0 || ch == 0 {
		return 0, 0
	}
	col = int(math.Floor((x + v.HalfW) / cw))
	row = int(math.Floor((v.HalfH - y) / ch))
	if col == v.Cols && x == v.HalfW {
		col--
	}
	if row == v.Rows && y == -v.HalfH {
		row--
	}
	return col, row
}

// ToWorld returns the world point at the center of a cell.
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	cw, ch := v.CellSize()
	x = -v.HalfW + (float64(col)+0.5)*cw
	y = v.HalfH - (float64(row)+0.5)*ch
	return x, y
}

// Cells converts a world distance along the x axis to a cell count.
func (v Viewport) Cells(d float64) float64 {
	cw, _ := v.CellSize()
	if cw == 0 {
		return 0
	}
	return d / cw
}

// Aspect returns how many cells wide a world-square region is per cell tall.
func (v Viewport) Aspect() float64 {
	cw, ch := v.CellSize()
	if cw == 0 {
		return 1
	}
	return ch / cw
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

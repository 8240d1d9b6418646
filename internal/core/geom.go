// Package core provides fundamental types and utilities for the demo.
// It has no host dependencies (no Bubble Tea, no Ebiten) so the simulation
// stays pure and testable.
package core

// Point is an integer position on the viewport, in pixels.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Vec is a 2D floating-point vector used for positions and velocities.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Point truncates both components toward zero.
func (v Vec) Point() Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

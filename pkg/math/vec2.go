// Package math provides the small vector, matrix and quaternion set the renderer needs.
package math

import "math"

// Vec2 is a 2D vector. Touch locations are reported as Vec2 in view pixels.
type Vec2 struct {
	X, Y float32
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Axis-aligned unit vectors.
var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// ApproxEqual reports whether every component of v is within eps of other.
func (v Vec3) ApproxEqual(other Vec3, eps float32) bool {
	return abs32(v.X-other.X) <= eps && abs32(v.Y-other.Y) <= eps && abs32(v.Z-other.Z) <= eps
}

// Vec4 is a 4-component vector. Vertex colors are stored as RGBA Vec4.
type Vec4 [4]float32

// Gray returns an opaque gray color with the given brightness.
func Gray(brightness float32) Vec4 {
	return Vec4{brightness, brightness, brightness, 1}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

package math

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Frustum returns a perspective projection for the given clip planes,
// matching glFrustum.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near

	return Mat4{
		2 * near / rl, 0, 0, 0,
		0, 2 * near / tb, 0, 0,
		(right + left) / rl, (top + bottom) / tb, -(far + near) / fn, -1,
		0, 0, -2 * far * near / fn, 0,
	}
}

// Ortho returns an orthographic projection matrix, matching glOrtho.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// UniformScale scales all three axes by s.
func UniformScale(s float32) Mat4 {
	return Scale(s, s, s)
}

// RotateZ returns a counterclockwise rotation around the Z axis.
// angle is in radians.
func RotateZ(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * math.Pi / 180
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// TransformVec3 transforms a point by this matrix (w=1), dividing by w when needed.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// Slice returns the matrix as a slice for uniform uploads.
func (m *Mat4) Slice() []float32 {
	return m[:]
}

// ApproxEqual reports whether all elements are within eps of other.
func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := range m {
		if abs32(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := float64(angle) / 2
	s := float32(math.Sin(halfAngle))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(halfAngle)),
	}
}

// QuatFromVectors returns the shortest-arc rotation that carries from onto to.
// When the vectors are opposite the arc is not unique; the result is a half
// turn about the axis X × from (or Y × from when from is parallel to X).
func QuatFromVectors(from, to Vec3) Quat {
	v0 := from.Normalize()
	v1 := to.Normalize()

	d := v0.Dot(v1)
	if d >= 1-1e-6 {
		return QuatIdentity()
	}
	if d <= -1+1e-6 {
		axis := UnitX.Cross(v0)
		if axis.Length() < 1e-6 {
			axis = UnitY.Cross(v0)
		}
		axis = axis.Normalize()
		return Quat{X: axis.X, Y: axis.Y, Z: axis.Z, W: 0}
	}

	c := v0.Cross(v1)
	s := float32(math.Sqrt(float64((1 + d) * 2)))
	return Quat{
		X: c.X / s,
		Y: c.Y / s,
		Z: c.Z / s,
		W: s / 2,
	}
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := float32(math.Sqrt(float64(q.Dot(q))))
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Negate returns -q, which encodes the same rotation.
func (q Quat) Negate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Slerp performs spherical linear interpolation between two quaternions.
// t is clamped to [0, 1]; the endpoints are returned exactly.
func (q Quat) Slerp(other Quat, t float32) Quat {
	if t <= 0 {
		return q
	}
	if t >= 1 {
		return other
	}

	dot := q.Dot(other)

	// Negate one side to take the shorter path
	if dot < 0 {
		other = other.Negate()
		dot = -dot
	}

	// Nearly parallel: lerp avoids dividing by sin(theta0) ~ 0
	if dot > 0.9995 {
		return Quat{
			X: q.X + t*(other.X-q.X),
			Y: q.Y + t*(other.Y-q.Y),
			Z: q.Z + t*(other.Z-q.Z),
			W: q.W + t*(other.W-q.W),
		}.Normalize()
	}

	theta0 := math.Acos(float64(dot))
	theta := theta0 * float64(t)
	sinTheta := math.Sin(theta)
	sinTheta0 := math.Sin(theta0)

	s0 := float32(math.Cos(theta) - float64(dot)*sinTheta/sinTheta0)
	s1 := float32(sinTheta / sinTheta0)

	return Quat{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMat4() Mat4 {
	q = q.Normalize()

	xx := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	yy := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	zz := q.Z * q.Z
	zw := q.Z * q.W

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0,
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw), 0,
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// ApproxEqual reports whether q and other encode the same rotation within eps.
// q and -q are treated as equal.
func (q Quat) ApproxEqual(other Quat, eps float32) bool {
	return abs32(abs32(q.Dot(other))-1) <= eps
}

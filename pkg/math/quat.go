package math

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
// axis must already be unit length; the result is not renormalized.
func QuatFromAxisAngle(axis Vec3, angle float32, t Trig) Quat {
	halfAngle := angle / 2
	s := t.Sin(halfAngle)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: t.Cos(halfAngle),
	}
}

// Conjugate returns the conjugate (the inverse of a unit quaternion).
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Mul multiplies two quaternions (combines rotations).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate rotates v by conjugation: q * (0, v) * q̄.
func (q Quat) Rotate(v Vec3) Vec3 {
	p := Quat{X: v.X, Y: v.Y, Z: v.Z}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vec3{r.X, r.Y, r.Z}
}

// RotateAbout rotates point p around pivot.
func (q Quat) RotateAbout(p, pivot Vec3) Vec3 {
	return q.Rotate(p.Sub(pivot)).Add(pivot)
}

// Slerp performs spherical linear interpolation between two quaternions
// along the shorter arc. f should be in range [0, 1].
func (q Quat) Slerp(other Quat, f float32, t Trig) Quat {
	if q.Dot(other) < 0 {
		other = Quat{X: -other.X, Y: -other.Y, Z: -other.Z, W: -other.W}
	}
	return q.SlerpArc(other, f, t)
}

// SlerpArc interpolates from q to other without the shorter-arc flip, so a
// half turn keeps the direction encoded in other. Inputs must not be
// antipodal.
func (q Quat) SlerpArc(other Quat, f float32, t Trig) Quat {
	dot := q.Dot(other)

	// Nearly parallel: fall back to normalized lerp to avoid dividing by ~0.
	if dot > 0.9995 {
		return Quat{
			X: q.X + f*(other.X-q.X),
			Y: q.Y + f*(other.Y-q.Y),
			Z: q.Z + f*(other.Z-q.Z),
			W: q.W + f*(other.W-q.W),
		}.Normalize(t)
	}

	theta0 := t.Acos(dot)
	theta := theta0 * f
	sinTheta := t.Sin(theta)
	sinTheta0 := t.Sin(theta0)

	s0 := t.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quat{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize(t Trig) Quat {
	length := t.Sqrt(q.Dot(q))
	if length < 0.0001 {
		return QuatIdentity()
	}
	inv := 1 / length
	return Quat{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

package geom

import "github.com/cwbudde/algo-turbomath/fastmath"

// Quaternion is a rotation quaternion in Hamilton convention with scalar
// part W. Only FromTwoUnitVectors and normalization guarantee unit norm;
// products accumulate drift until the caller renormalizes.
//
// The zero value is not a rotation; start from Identity.
type Quaternion struct {
	W, X, Y, Z float32
}

// Identity returns the quaternion of the null rotation.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternion returns the quaternion w + xi + yj + zk.
func NewQuaternion(w, x, y, z float32) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// FromTwoUnitVectors returns the shortest-arc rotation taking unit vector u
// onto unit vector v.
func FromTwoUnitVectors(u, v Vector) Quaternion {
	var q Quaternion
	q.SetFromTwoUnitVectors(u, v)
	return q
}

// SetFromTwoUnitVectors sets q to the shortest-arc rotation taking unit
// vector u onto unit vector v, using the half-angle construction so no
// trigonometric call is needed. Aligned vectors give the identity. Opposite
// vectors have no unique shortest arc and give NaN components.
func (q *Quaternion) SetFromTwoUnitVectors(u, v Vector) *Quaternion {
	d := u.Dot(v)
	if d >= 1 {
		*q = Identity()
		return q
	}

	invs := fastmath.InvSqrt(2 * (1 + d))
	xyz := u.Cross(v).Scale(invs)
	q.W = 0.5 / invs
	q.X = xyz.X
	q.Y = xyz.Y
	q.Z = xyz.Z
	return q.Normalize()
}

// SquaredNorm returns w² + x² + y² + z².
func (q Quaternion) SquaredNorm() float32 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Normalize scales q to unit norm in place.
func (q *Quaternion) Normalize() *Quaternion {
	recipNorm := fastmath.InvSqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	q.W *= recipNorm
	q.X *= recipNorm
	q.Y *= recipNorm
	q.Z *= recipNorm
	return q
}

// Normalized returns q scaled to unit norm.
func (q Quaternion) Normalized() Quaternion {
	q.Normalize()
	return q
}

// Mul returns the Hamilton product q ⊗ p, the rotation p followed by q.
// The result is not renormalized.
//
// Terms are summed left to right with p's components leading each product,
// so results are reproducible bit for bit against controllers that evaluate
// the same product as p*q.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{
		p.W*q.W - p.X*q.X - p.Y*q.Y - p.Z*q.Z,
		p.W*q.X + p.X*q.W - p.Y*q.Z + p.Z*q.Y,
		p.W*q.Y + p.X*q.Z + p.Y*q.W - p.Z*q.X,
		p.W*q.Z - p.X*q.Y + p.Y*q.X + p.Z*q.W,
	}
}

// MulInPlace performs q = q ⊗ p.
func (q *Quaternion) MulInPlace(p Quaternion) *Quaternion {
	*q = q.Mul(p)
	return q
}

// Rotate applies the rotation q to v. q must be a unit quaternion.
// The rotation matrix is expanded in closed form rather than built.
func (q Quaternion) Rotate(v Vector) Vector {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return Vector{
		(1-2*y*y-2*z*z)*v.X + 2*(x*y-w*z)*v.Y + 2*(x*z+w*y)*v.Z,
		2*(x*y+w*z)*v.X + (1-2*x*x-2*z*z)*v.Y + 2*(y*z-w*x)*v.Z,
		2*(x*z-w*y)*v.X + 2*(y*z+w*x)*v.Y + (1-2*x*x-2*y*y)*v.Z,
	}
}

// RotateFrame expresses v, given in the reference frame, in the frame
// rotated by q. It is the transpose of Rotate and equals
// q.Inverse().Rotate(v) for a unit q.
func (q Quaternion) RotateFrame(v Vector) Vector {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return Vector{
		(1-2*y*y-2*z*z)*v.X + 2*(x*y+w*z)*v.Y + 2*(x*z-w*y)*v.Z,
		2*(x*y-w*z)*v.X + (1-2*x*x-2*z*z)*v.Y + 2*(y*z+w*x)*v.Z,
		2*(x*z+w*y)*v.X + 2*(y*z-w*x)*v.Y + (1-2*x*x-2*y*y)*v.Z,
	}
}

// Inverse returns the conjugate of q, which is its inverse for a unit q.
func (q Quaternion) Inverse() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// Invert conjugates q in place.
func (q *Quaternion) Invert() *Quaternion {
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
	return q
}

// RPY returns the roll, pitch and yaw angles in radians of q for the ZYX
// (yaw, then pitch, then roll) convention.
//
// The pitch argument is passed to fastmath.Asin unclamped, so a q that has
// drifted off unit norm can push it past ±1 where Asin saturates at ±π/2.
// Roll and yaw degrade near gimbal lock at pitch ±π/2.
func (q Quaternion) RPY() (roll, pitch, yaw float32) {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	roll = fastmath.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	pitch = fastmath.Asin(2 * (w*y - z*x))
	yaw = fastmath.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return roll, pitch, yaw
}

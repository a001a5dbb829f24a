package geom

import "github.com/cwbudde/algo-turbomath/fastmath"

// Vector is a point or direction in 3D space. The zero value is the zero
// vector.
type Vector struct {
	X, Y, Z float32
}

// NewVector returns the vector (x, y, z).
func NewVector(x, y, z float32) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float32 {
	return 1 / fastmath.InvSqrt(v.X*v.X+v.Y*v.Y+v.Z*v.Z)
}

// SquaredNorm returns the squared Euclidean length of v.
func (v Vector) SquaredNorm() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize scales v to unit length in place. The zero vector has no
// direction and comes back NaN.
func (v *Vector) Normalize() *Vector {
	recipNorm := fastmath.InvSqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	v.X *= recipNorm
	v.Y *= recipNorm
	v.Z *= recipNorm
	return v
}

// Normalized returns v scaled to unit length.
func (v Vector) Normalized() Vector {
	recipNorm := fastmath.InvSqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	return Vector{v.X * recipNorm, v.Y * recipNorm, v.Z * recipNorm}
}

// Add returns v + u.
func (v Vector) Add(u Vector) Vector {
	return Vector{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// AddInPlace performs v += u.
func (v *Vector) AddInPlace(u Vector) *Vector {
	v.X += u.X
	v.Y += u.Y
	v.Z += u.Z
	return v
}

// Sub returns v - u.
func (v Vector) Sub(u Vector) Vector {
	return Vector{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// SubInPlace performs v -= u.
func (v *Vector) SubInPlace(u Vector) *Vector {
	v.X -= u.X
	v.Y -= u.Y
	v.Z -= u.Z
	return v
}

// Scale returns v * s.
func (v Vector) Scale(s float32) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// ScaleInPlace performs v *= s.
func (v *Vector) ScaleInPlace(s float32) *Vector {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// Div returns v / s. Dividing by zero yields IEEE infinities or NaN.
func (v Vector) Div(s float32) Vector {
	return Vector{v.X / s, v.Y / s, v.Z / s}
}

// DivInPlace performs v /= s.
func (v *Vector) DivInPlace(s float32) *Vector {
	v.X /= s
	v.Y /= s
	v.Z /= s
	return v
}

// Dot returns the dot product v · u.
func (v Vector) Dot(u Vector) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the right-handed cross product v × u.
func (v Vector) Cross(u Vector) Vector {
	return Vector{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

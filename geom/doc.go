// Package geom provides float32 3D vector and rotation quaternion value
// types for attitude estimation.
//
// Every operation comes in two forms where it makes sense: a value method
// that returns a new result (Add, Normalized, Mul) and a pointer method that
// updates the receiver and returns it (AddInPlace, Normalize, MulInPlace).
// Normalization goes through fastmath.InvSqrt, so unit length holds to
// roughly 1e-5, not to the last bit.
package geom

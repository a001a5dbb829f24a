// Package fastmath provides table-driven approximations of the scalar
// functions an attitude estimator needs on a microcontroller without a
// transcendental FPU unit.
//
// These approximations trade a small amount of accuracy for constant,
// branch-light execution time, making them suitable for the inner loop of a
// flight controller where math.Atan and friends are too slow.
//
// # Accuracy Characteristics
//
// InvSqrt: bit-level estimate plus two Newton-Raphson steps, <0.01% relative
// error for x > 0 (one step alone is ~0.17%)
//
// Atan, Atan2: 500-sample table over [0, 1] with range reduction, <0.002 rad
//
// Asin: 501-sample table over [0, 1], <0.002 rad except inside the final
// sample interval (0.998, 1), where the steep slope near π/2 is extrapolated
//
// Alt: 500-sample standard-atmosphere table for 69681..106598 Pa,
// decimetre resolution, 0 outside that band
//
// # Usage
//
// All functions are pure, allocation free and safe for concurrent use. Inputs
// are never validated: a non-positive radicand or an out-of-band pressure
// yields a defined but meaningless result rather than a panic. For
// applications requiring IEEE 754 precision, use the standard library math
// package instead.
package fastmath

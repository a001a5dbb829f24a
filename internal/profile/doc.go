// Package profile measures the error profile of the fastmath approximations
// against float64 references from the standard library.
//
// A Sweep samples one function uniformly over a domain; Run evaluates the
// approximation and the reference at every sample and summarizes the signed
// error. Sweeps are configured in YAML (see LoadConfig) and reports export
// as CSV (see WriteCSV).
package profile

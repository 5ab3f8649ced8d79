// SPDX-License-Identifier: MIT

package scalar

import "math"

// Angular and general-purpose constants. They are untyped; inside generic
// code convert them with Const[T].
const (
	Pi        = math.Pi
	PiHalf    = math.Pi / 2
	PiQuarter = math.Pi / 4
	TwoPi     = 2 * math.Pi
	OverPi    = 1 / math.Pi
	E         = math.E
	Sqrt2     = math.Sqrt2
)

// Tolerances for Close. Epsilon is the default; pick EpsilonLow for values
// that went through several lossy steps and EpsilonHigh for float64 work.
const (
	Epsilon     = 1e-5
	EpsilonLow  = 1e-3
	EpsilonHigh = 1e-7
)

// Const converts a float64 constant to T.
//
// Generic code cannot write T(0.5) when T may be an integer type, so every
// fractional constant goes through this helper. Integer T truncates.
func Const[T Number](c float64) T {
	return T(c)
}

// EpsilonOf returns Epsilon converted to T (0 for integer types).
func EpsilonOf[T Number]() T {
	return Const[T](Epsilon)
}

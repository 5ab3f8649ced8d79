// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is the scalar type set: any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsFloat reports whether T is a floating-point type.
//
// Integer division truncates 1/2 to 0; float division does not.
func IsFloat[T Number]() bool {
	var one, two T = 1, 2
	return one/two != 0
}

// Sq returns x*x.
func Sq[T Number](x T) T {
	return x * x
}

// Sign returns -1 for negative x and +1 otherwise.
// Zero, including negative zero, maps to +1. Unsigned types always give +1.
func Sign[T Number](x T) T {
	var one T = 1
	if x < 0 {
		return -one
	}
	return one
}

// FlipSign returns -x.
func FlipSign[T Number](x T) T {
	return -x
}

// Abs returns |x|.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Lerp interpolates linearly: from + ratio*(to-from).
// The ratio is not clamped; values outside [0,1] extrapolate.
func Lerp[T Number](from, to, ratio T) T {
	return from + ratio*(to-from)
}

// Clamp bounds v to [lo, hi].
//
// When lo >= hi the bounds are swapped instead of collapsing to lo, so
// Clamp(1.3, 2, 1) is 1.3.
func Clamp[T Number](v, lo, hi T) T {
	if lo >= hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Close reports whether |a-b| <= Epsilon.
func Close[T Number](a, b T) bool {
	return CloseEps(a, b, EpsilonOf[T]())
}

// CloseEps reports whether |a-b| <= eps. NaN operands are never close.
func CloseEps[T Number](a, b, eps T) bool {
	d := a - b
	if a < b {
		d = b - a // unsigned types must not wrap
	}
	return d <= eps
}

// RadToDeg converts radians to degrees.
func RadToDeg[T Number](rad T) T {
	return T(float64(rad) * 180 / math.Pi)
}

// DegToRad converts degrees to radians.
func DegToRad[T Number](deg T) T {
	return T(float64(deg) * math.Pi / 180)
}

// Floor rounds toward negative infinity. Identity for integers.
func Floor[T Number](x T) T {
	if !IsFloat[T]() {
		return x
	}
	if f, ok := any(x).(float32); ok {
		return T(math32.Floor(f))
	}
	return T(math.Floor(float64(x)))
}

// Ceil rounds toward positive infinity. Identity for integers.
func Ceil[T Number](x T) T {
	if !IsFloat[T]() {
		return x
	}
	if f, ok := any(x).(float32); ok {
		return T(math32.Ceil(f))
	}
	return T(math.Ceil(float64(x)))
}

// Round rounds half away from zero. Identity for integers.
func Round[T Number](x T) T {
	if !IsFloat[T]() {
		return x
	}
	if f, ok := any(x).(float32); ok {
		return T(math32.Round(f))
	}
	return T(math.Round(float64(x)))
}

// Frac returns |x| - Floor(|x|), which is never negative: Frac(-1.25) is 0.25.
func Frac[T Number](x T) T {
	a := Abs(x)
	return a - Floor(a)
}

// Mod returns the remainder of a/b with the sign of a: math.Mod for floats,
// truncated remainder for integers.
func Mod[T Number](a, b T) T {
	if !IsFloat[T]() {
		return a - (a/b)*b
	}
	if f, ok := any(a).(float32); ok {
		return T(math32.Mod(f, float32(b)))
	}
	return T(math.Mod(float64(a), float64(b)))
}

// IsFinite reports whether x is neither NaN nor infinite. Integers always are.
func IsFinite[T Number](x T) bool {
	if !IsFloat[T]() {
		return true
	}
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

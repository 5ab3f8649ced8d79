// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"reflect"

	"github.com/chewxy/math32"
)

// The transcendental helpers below keep float32 values in float32 through
// math32; everything else is evaluated in float64 and converted back.

// Sqrt returns the square root of x.
func Sqrt[T Number](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of rad.
func Sin[T Number](rad T) T {
	if f, ok := any(rad).(float32); ok {
		return T(math32.Sin(f))
	}
	return T(math.Sin(float64(rad)))
}

// Cos returns the cosine of rad.
func Cos[T Number](rad T) T {
	if f, ok := any(rad).(float32); ok {
		return T(math32.Cos(f))
	}
	return T(math.Cos(float64(rad)))
}

// Tan returns the tangent of rad.
func Tan[T Number](rad T) T {
	if f, ok := any(rad).(float32); ok {
		return T(math32.Tan(f))
	}
	return T(math.Tan(float64(rad)))
}

// Acos returns the arccosine of x in [0, Pi]. Arguments outside [-1, 1]
// give NaN.
func Acos[T Number](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Acos(f))
	}
	return T(math.Acos(float64(x)))
}

// MaxValue returns the largest finite value representable by T.
func MaxValue[T Number]() T {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int8:
		v := int64(math.MaxInt8)
		return T(v)
	case reflect.Int16:
		v := int64(math.MaxInt16)
		return T(v)
	case reflect.Int32:
		v := int64(math.MaxInt32)
		return T(v)
	case reflect.Int:
		v := int64(math.MaxInt)
		return T(v)
	case reflect.Int64:
		v := int64(math.MaxInt64)
		return T(v)
	case reflect.Uint8:
		v := uint64(math.MaxUint8)
		return T(v)
	case reflect.Uint16:
		v := uint64(math.MaxUint16)
		return T(v)
	case reflect.Uint32:
		v := uint64(math.MaxUint32)
		return T(v)
	case reflect.Uint, reflect.Uintptr:
		v := uint64(math.MaxUint)
		return T(v)
	case reflect.Uint64:
		v := uint64(math.MaxUint64)
		return T(v)
	case reflect.Float32:
		v := float64(math.MaxFloat32)
		return T(v)
	default:
		v := math.MaxFloat64
		return T(v)
	}
}

// Lowest returns the most negative finite value representable by T
// (0 for unsigned types, -MaxValue for floats).
func Lowest[T Number]() T {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int8:
		v := int64(math.MinInt8)
		return T(v)
	case reflect.Int16:
		v := int64(math.MinInt16)
		return T(v)
	case reflect.Int32:
		v := int64(math.MinInt32)
		return T(v)
	case reflect.Int:
		v := int64(math.MinInt)
		return T(v)
	case reflect.Int64:
		v := int64(math.MinInt64)
		return T(v)
	case reflect.Float32, reflect.Float64:
		return -MaxValue[T]()
	default:
		return zero
	}
}

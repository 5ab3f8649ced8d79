// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise kernels (ew*) shared by the three
//     matrix types, so Add/Sub/Scale/... are written once over the flat
//     column-major storage instead of once per field per type.
//
// Design:
//   - Every matrix exposes its storage as a slice through data(); the
//     kernels only see []T and never allocate.
//   - Loops run flat 0..n-1 in storage order.

package matrix

import (
	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/scalar"
)

// ewAdd computes dst[i] = a[i] + b[i].
func ewAdd[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// ewSub computes dst[i] = a[i] - b[i].
func ewSub[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ewMul computes dst[i] = a[i] * b[i].
func ewMul[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// ewDiv computes dst[i] = a[i] / b[i].
func ewDiv[T scalar.Number](dst, a, b []T, op string) {
	if assert.WarnOn {
		for _, x := range b {
			assert.Warn(x != 0, op, "division by zero")
		}
	}
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// ewScale computes dst[i] = a[i] * s.
func ewScale[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// ewDivScalar computes dst[i] = a[i] / s.
func ewDivScalar[T scalar.Number](dst, a []T, s T, op string) {
	assert.Warn(s != 0, op, "division by zero")
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// ewScalarDiv computes dst[i] = s / a[i].
func ewScalarDiv[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = s / a[i]
	}
}

func ewNeg[T scalar.Number](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

func ewAbs[T scalar.Number](dst, a []T) {
	for i := range dst {
		dst[i] = scalar.Abs(a[i])
	}
}

func ewEqual[T scalar.Number](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func ewCloseEps[T scalar.Number](a, b []T, eps T) bool {
	for i := range a {
		if !scalar.CloseEps(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func ewIsFinite[T scalar.Number](a []T) bool {
	for _, x := range a {
		if !scalar.IsFinite(x) {
			return false
		}
	}
	return true
}

func ewFill[T scalar.Number](dst []T, s T) {
	for i := range dst {
		dst[i] = s
	}
}

// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/yama/scalar"

// Vector is the method set shared by Vector2, Vector3 and Vector4 that
// dimension-agnostic code (box.Box) builds on. V is the vector type itself.
type Vector[V any, T scalar.Number] interface {
	comparable

	// Dim returns the number of components.
	Dim() int
	// At returns component i.
	At(i int) T
	Add(o V) V
	Sub(o V) V
	DivScalar(s T) V
	// Min and Max are component-wise.
	Min(o V) V
	Max(o V) V
	// Broadcast returns a vector of the same dimension with every component
	// set to s. The receiver's components are ignored.
	Broadcast(s T) V
	// Less orders vectors lexicographically.
	Less(o V) bool
	String() string
}

// compare orders two equally sized component lists lexicographically.
func compare[T scalar.Number](a, b []T) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// collinear reports whether a and b point along the same line.
//
// Per component: zero on both sides is ignored, zero on one side only means
// not collinear; the remaining components must share one ratio a[i]/b[i].
// Integers compare cross products so truncating division cannot fake a
// common ratio.
func collinear[T scalar.Number](a, b []T) bool {
	ref := -1
	for i := range a {
		az, bz := scalar.Close(a[i], 0), scalar.Close(b[i], 0)
		if az && bz {
			continue
		}
		if az || bz {
			return false
		}
		if ref < 0 {
			ref = i
			continue
		}
		if scalar.IsFloat[T]() {
			if !scalar.Close(a[i]/b[i], a[ref]/b[ref]) {
				return false
			}
		} else if a[i]*b[ref] != a[ref]*b[i] {
			return false
		}
	}
	return true
}

func isZero[T scalar.Number](c []T) bool {
	for _, x := range c {
		if !scalar.Close(x, 0) {
			return false
		}
	}
	return true
}

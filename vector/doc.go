// SPDX-License-Identifier: MIT

// Package vector provides the fixed-size vector types Vector2, Vector3 and
// Vector4 over any scalar.Number.
//
// Layout:
//
//	Each vector is a struct of N fields of the same scalar type in X, Y, Z, W
//	order with no padding, so a *Vector3[T] and a *[3]T are interchangeable.
//	This is what the raw interop functions rely on:
//
//	  - FromSliceN copies N scalars out of a buffer;
//	  - AttachToSliceN returns a *VectorN aliasing the buffer (no copy);
//	  - AttachToArrayN reinterprets a buffer as []VectorN (no copy);
//	  - (*VectorN).Slice returns the components as a []T aliasing the vector.
//
// Value semantics:
//
//	Arithmetic methods take value receivers and return a new vector.
//	The *Assign methods, Normalize and HomogenousNormalize mutate the
//	receiver and return it (or the previous length) for chaining.
//
// Subviews:
//
//	Shrinking accessors alias: (*Vector4).XYZ() returns a *Vector3 sharing the
//	first three components, so writes through it change the Vector4.
//	Extending and permuting accessors (XYZW, ZYX, Swizzle3, ...) always build
//	a fresh value.
//
// Preconditions are checked by package assert at the compiled-in level:
// indexing and short buffers are critical, a non-unit reflection normal is
// bad, dividing by zero or normalizing a zero vector is a warning.
package vector

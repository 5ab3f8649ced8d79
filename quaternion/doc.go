// SPDX-License-Identifier: MIT

// Package quaternion provides Quaternion, the rotation type of yama.
//
// A Quaternion[T] has the same memory layout as vector.Vector4[T]:
// X, Y, Z hold the vector part and W the scalar part. It represents a
// rotation only when its length is 1; non-unit values are valid
// intermediate results of the algebra (Add, Scale, Mul) but functions that
// consume a rotation (Rotate, ToAxisAngle, Slerp) assume unit length.
//
// Composition follows the Hamilton product: a.Mul(b) applied to a vector
// rotates by b first and then by a, the same order as matrix products.
//
// Numerical notes:
//
//	Slerp divides by sin(angle) with no fallback to Lerp when the inputs are
//	(nearly) equal or opposite; identical inputs produce NaN. Callers that
//	interpolate between close rotations should use Lerp.
//
//	ToAxisAngle returns the +Z axis when 1 - w² < scalar.Epsilon, where the
//	rotation axis is undefined.
package quaternion

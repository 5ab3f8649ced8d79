// SPDX-License-Identifier: MIT

// Package matrix provides fixed-size column-major matrices for 3D transforms.
//
// The matrix package provides:
//
//   - Matrix3x3: a linear transform (rotation, scale, shear).
//   - Matrix3x4: an affine transform, i.e. a linear 3×3 part plus a
//     translation column. The fourth row is implicitly [0 0 0 1].
//   - Matrix4x4: a general homogeneous transform. The last row may differ
//     from [0 0 0 1], so it can hold projections.
//
// Storage:
//
// Every matrix is a struct of exported scalar fields named M{row}{col},
// declared column by column. Columns(...) takes scalars in that storage
// order and Rows(...) takes them row by row; both produce byte-identical
// values for the same logical matrix. Columns alias the matching vector
// type in place:
//
//	m := matrix.Identity4[float32]()
//	m.Column(3).XYZ().Set(0, 5) // m.M03 == 5
//
// Conventions:
//
//   - Vectors are columns: transforms apply as M·v, and A.Mul(B) applies B
//     first and A second.
//   - "LH"/"RH" builders follow the left-handed and right-handed camera
//     conventions. Plain projections map depth to [0, 1]; the "Cube"
//     variants map it to [-1, 1].
//   - Names ending in 3 build a Matrix3x3, in 34 a Matrix3x4 and in 4 a
//     Matrix4x4 (e.g. RotationX3, RotationX34, RotationX4).
//
// Failure model:
//
// No function returns an error. Preconditions (normalized axes, non-zero
// divisors, in-range indices, non-degenerate bases) are checked by the
// assert package at the level chosen with build tags. With checks compiled
// out, violations produce NaN, Inf or zeros; test with IsFinite where that
// matters. Inverse of a singular matrix is one such case: it returns the
// zero determinant and a non-finite matrix.
//
// Complexity:
//
// Every operation is O(1) and allocation-free. All values are plain data
// and safe to share between goroutines while nobody writes to them.
package matrix

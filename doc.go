// SPDX-License-Identifier: MIT

// Package yama is a fixed-size linear algebra toolkit for 2D and 3D
// graphics, games and simulation: vectors, quaternions, 3×3, 3×4 and 4×4
// matrices and axis-aligned boxes, generic over any integer or float type.
//
// 🚀 What is yama?
//
//	A small set of plain value types that:
//		• store their components tightly packed (matrices column-major),
//		  so they can be handed to a graphics API byte for byte
//		• never allocate and never return errors
//		• check preconditions through build-tag assertion levels
//		• build every common transform: translation, scale, rotations,
//		  change of basis, look-at views, orthographic and perspective
//		  projections in both handedness conventions
//
// ✨ Why choose yama?
//
//   - Generic – one implementation for float32, float64 and the integers
//   - Predictable – value semantics, no hidden state, safe to share
//     between goroutines as long as nobody writes
//   - Interoperable – attach a vector or matrix to an existing []T
//     without copying
//
// Packages:
//
//	scalar/      Number constraint, constants, Close, Clamp, Lerp, rounding
//	assert/      assertion levels (build tags) and violation reporting
//	vector/      Vector2, Vector3, Vector4, swizzles and subviews
//	quaternion/  unit quaternion rotations, slerp
//	matrix/      Matrix3x3, Matrix3x4, Matrix4x4, transforms, projections
//	box/         axis-aligned boxes over any vector dimension
//	layout/      byte views and xxhash digests of values
//	cmd/yama/    CLI that prints matrices and evaluates YAML scenes
//	examples/    runnable programs: orbit camera, voxel bounds, instance upload
//
// This root package picks one preferred scalar type and offers short
// aliases for it:
//
//	v := yama.V3(1, 2, 3)                  // yama.Vector3 == vector.Vector3[yama.Preferred]
//	m := matrix.RotationY4[yama.Preferred](yama.Preferred(scalar.PiHalf))
//
// Preferred is float32 unless the module is built with -tags yama_double.
//
// Quick ASCII example of the matrix storage order:
//
//	Columns3(a, b, c, d, e, f, g, h, i)
//
//	    │ a d g │      memory: a b c d e f g h i
//	    │ b e h │
//	    │ c f i │
//
//	go get github.com/katalvlaran/yama
package yama

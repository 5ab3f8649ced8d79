// SPDX-License-Identifier: MIT

package yama

import (
	"github.com/katalvlaran/yama/box"
	"github.com/katalvlaran/yama/matrix"
	"github.com/katalvlaran/yama/quaternion"
	"github.com/katalvlaran/yama/vector"
)

// Aliases over Preferred. Points share the vector types; the separate
// names only document intent at call sites.
type (
	Vector2 = vector.Vector2[Preferred]
	Vector3 = vector.Vector3[Preferred]
	Vector4 = vector.Vector4[Preferred]

	Point2 = vector.Vector2[Preferred]
	Point3 = vector.Vector3[Preferred]
	Point4 = vector.Vector4[Preferred]

	Quaternion = quaternion.Quaternion[Preferred]

	Matrix3x3 = matrix.Matrix3x3[Preferred]
	Matrix3x4 = matrix.Matrix3x4[Preferred]
	Matrix4x4 = matrix.Matrix4x4[Preferred]

	Box2 = box.Box[Vector2, Preferred]
	Box3 = box.Box[Vector3, Preferred]
	Box4 = box.Box[Vector4, Preferred]
)

// V2 returns the Vector2 (x, y).
func V2(x, y Preferred) Vector2 { return vector.New2(x, y) }

// V3 returns the Vector3 (x, y, z).
func V3(x, y, z Preferred) Vector3 { return vector.New3(x, y, z) }

// V4 returns the Vector4 (x, y, z, w).
func V4(x, y, z, w Preferred) Vector4 { return vector.New4(x, y, z, w) }

// P2 returns the point (x, y).
func P2(x, y Preferred) Point2 { return vector.New2(x, y) }

// P3 returns the point (x, y, z).
func P3(x, y, z Preferred) Point3 { return vector.New3(x, y, z) }

// P4 returns the homogeneous point (x, y, z, w).
func P4(x, y, z, w Preferred) Point4 { return vector.New4(x, y, z, w) }

// Q returns the quaternion x·i + y·j + z·k + w.
func Q(x, y, z, w Preferred) Quaternion { return quaternion.XYZW(x, y, z, w) }

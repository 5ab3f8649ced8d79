// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/quaternion"
	"github.com/katalvlaran/yama/scalar"
	"github.com/katalvlaran/yama/vector"
)

// Transform builders. The 3×3 versions hold the formulas; the 3×4 and 4×4
// versions embed them with FromLinear34 and FromLinear4.

// ---------- translation ----------

// Translation34 returns the affine translation by (x, y, z).
func Translation34[T scalar.Number](x, y, z T) Matrix3x4[T] {
	m := Identity34[T]()
	m.M03, m.M13, m.M23 = x, y, z
	return m
}

// TranslationV34 returns the affine translation by v.
func TranslationV34[T scalar.Number](v vector.Vector3[T]) Matrix3x4[T] {
	return Translation34(v.X, v.Y, v.Z)
}

// Translation4 returns the homogeneous translation by (x, y, z).
func Translation4[T scalar.Number](x, y, z T) Matrix4x4[T] {
	return Translation34(x, y, z).Homogeneous()
}

// TranslationV4 returns the homogeneous translation by v.
func TranslationV4[T scalar.Number](v vector.Vector3[T]) Matrix4x4[T] {
	return Translation4(v.X, v.Y, v.Z)
}

// ---------- scaling ----------

// Scaling3 returns the scaling by x, y and z along the axes.
func Scaling3[T scalar.Number](x, y, z T) Matrix3x3[T] {
	return Matrix3x3[T]{M00: x, M11: y, M22: z}
}

// ScalingV3 returns the scaling by the components of v.
func ScalingV3[T scalar.Number](v vector.Vector3[T]) Matrix3x3[T] {
	return Scaling3(v.X, v.Y, v.Z)
}

// ScalingUniform3 returns the scaling by s along every axis.
func ScalingUniform3[T scalar.Number](s T) Matrix3x3[T] {
	return Scaling3(s, s, s)
}

// Scaling34 is Scaling3 as an affine matrix.
func Scaling34[T scalar.Number](x, y, z T) Matrix3x4[T] {
	return FromLinear34(Scaling3(x, y, z))
}

// ScalingV34 is ScalingV3 as an affine matrix.
func ScalingV34[T scalar.Number](v vector.Vector3[T]) Matrix3x4[T] {
	return FromLinear34(ScalingV3(v))
}

// ScalingUniform34 is ScalingUniform3 as an affine matrix.
func ScalingUniform34[T scalar.Number](s T) Matrix3x4[T] {
	return FromLinear34(ScalingUniform3(s))
}

// Scaling4 is Scaling3 as a homogeneous matrix.
func Scaling4[T scalar.Number](x, y, z T) Matrix4x4[T] {
	return FromLinear4(Scaling3(x, y, z))
}

// ScalingV4 is ScalingV3 as a homogeneous matrix.
func ScalingV4[T scalar.Number](v vector.Vector3[T]) Matrix4x4[T] {
	return FromLinear4(ScalingV3(v))
}

// ScalingUniform4 is ScalingUniform3 as a homogeneous matrix.
func ScalingUniform4[T scalar.Number](s T) Matrix4x4[T] {
	return FromLinear4(ScalingUniform3(s))
}

// ---------- rotation ----------

// RotationX3 returns the rotation by rad radians around +X.
func RotationX3[T scalar.Number](rad T) Matrix3x3[T] {
	c, s := scalar.Cos(rad), scalar.Sin(rad)
	return Rows3[T](
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotationY3 returns the rotation by rad radians around +Y.
func RotationY3[T scalar.Number](rad T) Matrix3x3[T] {
	c, s := scalar.Cos(rad), scalar.Sin(rad)
	return Rows3[T](
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotationZ3 returns the rotation by rad radians around +Z.
func RotationZ3[T scalar.Number](rad T) Matrix3x3[T] {
	c, s := scalar.Cos(rad), scalar.Sin(rad)
	return Rows3[T](
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// RotationNAxis3 returns the rotation by rad radians around the unit
// vector axis. A non-normalized axis is a bad-level violation; use
// RotationAxis3 when the axis is not known to be normalized.
func RotationNAxis3[T scalar.Number](axis vector.Vector3[T], rad T) Matrix3x3[T] {
	if assert.BadOn {
		assert.Bad(axis.IsNormalized(), "matrix.RotationNAxis", "axis is not normalized")
	}
	c, s := scalar.Cos(rad), scalar.Sin(rad)
	c1 := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	return Rows3(
		c+c1*x*x, c1*y*x-s*z, c1*z*x+s*y,
		c1*x*y+s*z, c+c1*y*y, c1*z*y-s*x,
		c1*x*z-s*y, c1*y*z+s*x, c+c1*z*z,
	)
}

// RotationAxis3 normalizes axis and returns RotationNAxis3.
func RotationAxis3[T scalar.Number](axis vector.Vector3[T], rad T) Matrix3x3[T] {
	return RotationNAxis3(axis.Normalized(), rad)
}

// RotationQuaternion3 returns the rotation described by the unit
// quaternion q.
func RotationQuaternion3[T scalar.Number](q quaternion.Quaternion[T]) Matrix3x3[T] {
	if assert.BadOn {
		assert.Bad(q.IsNormalized(), "matrix.RotationQuaternion", "quaternion is not normalized")
	}
	x2, y2, z2, w2 := q.X*q.X, q.Y*q.Y, q.Z*q.Z, q.W*q.W
	xy, xz, xw := 2*q.X*q.Y, 2*q.X*q.Z, 2*q.X*q.W
	yz, yw, zw := 2*q.Y*q.Z, 2*q.Y*q.W, 2*q.Z*q.W
	return Rows3(
		w2+x2-y2-z2, xy-zw, xz+yw,
		xy+zw, w2-x2+y2-z2, yz-xw,
		xz-yw, yz+xw, w2-x2-y2+z2,
	)
}

// RotationVectors3 returns the shortest rotation taking the unit vector
// src onto the unit vector target.
//
// Behavior highlights:
//   - Coinciding vectors give Identity3.
//   - Opposite vectors give a half turn 2·o·oᵀ - I around an axis o
//     orthogonal to src.
func RotationVectors3[T scalar.Number](src, target vector.Vector3[T]) Matrix3x3[T] {
	if assert.BadOn {
		assert.Bad(src.IsNormalized(), "matrix.RotationVectors", "src is not normalized")
		assert.Bad(target.IsNormalized(), "matrix.RotationVectors", "target is not normalized")
	}

	axis := src.Cross(target)
	if l := axis.Length(); l > scalar.EpsilonOf[T]() {
		var one T = 1
		return RotationNAxis3(axis.DivScalar(l), scalar.Acos(scalar.Clamp(src.Dot(target), -one, one)))
	}
	if src.Close(target) {
		return Identity3[T]()
	}

	o := src.GetOrthogonal().Normalized()
	return Rows3(
		2*o.X*o.X-1, 2*o.Y*o.X, 2*o.Z*o.X,
		2*o.X*o.Y, 2*o.Y*o.Y-1, 2*o.Z*o.Y,
		2*o.X*o.Z, 2*o.Y*o.Z, 2*o.Z*o.Z-1,
	)
}

// RotationX34 is RotationX3 as an affine matrix.
func RotationX34[T scalar.Number](rad T) Matrix3x4[T] { return FromLinear34(RotationX3(rad)) }

// RotationY34 is RotationY3 as an affine matrix.
func RotationY34[T scalar.Number](rad T) Matrix3x4[T] { return FromLinear34(RotationY3(rad)) }

// RotationZ34 is RotationZ3 as an affine matrix.
func RotationZ34[T scalar.Number](rad T) Matrix3x4[T] { return FromLinear34(RotationZ3(rad)) }

// RotationNAxis34 is RotationNAxis3 as an affine matrix.
func RotationNAxis34[T scalar.Number](axis vector.Vector3[T], rad T) Matrix3x4[T] {
	return FromLinear34(RotationNAxis3(axis, rad))
}

// RotationAxis34 is RotationAxis3 as an affine matrix.
func RotationAxis34[T scalar.Number](axis vector.Vector3[T], rad T) Matrix3x4[T] {
	return FromLinear34(RotationAxis3(axis, rad))
}

// RotationQuaternion34 is RotationQuaternion3 as an affine matrix.
func RotationQuaternion34[T scalar.Number](q quaternion.Quaternion[T]) Matrix3x4[T] {
	return FromLinear34(RotationQuaternion3(q))
}

// RotationVectors34 is RotationVectors3 as an affine matrix.
func RotationVectors34[T scalar.Number](src, target vector.Vector3[T]) Matrix3x4[T] {
	return FromLinear34(RotationVectors3(src, target))
}

// RotationX4 is RotationX3 as a homogeneous matrix.
func RotationX4[T scalar.Number](rad T) Matrix4x4[T] { return FromLinear4(RotationX3(rad)) }

// RotationY4 is RotationY3 as a homogeneous matrix.
func RotationY4[T scalar.Number](rad T) Matrix4x4[T] { return FromLinear4(RotationY3(rad)) }

// RotationZ4 is RotationZ3 as a homogeneous matrix.
func RotationZ4[T scalar.Number](rad T) Matrix4x4[T] { return FromLinear4(RotationZ3(rad)) }

// RotationNAxis4 is RotationNAxis3 as a homogeneous matrix.
func RotationNAxis4[T scalar.Number](axis vector.Vector3[T], rad T) Matrix4x4[T] {
	return FromLinear4(RotationNAxis3(axis, rad))
}

// RotationAxis4 is RotationAxis3 as a homogeneous matrix.
func RotationAxis4[T scalar.Number](axis vector.Vector3[T], rad T) Matrix4x4[T] {
	return FromLinear4(RotationAxis3(axis, rad))
}

// RotationQuaternion4 is RotationQuaternion3 as a homogeneous matrix.
func RotationQuaternion4[T scalar.Number](q quaternion.Quaternion[T]) Matrix4x4[T] {
	return FromLinear4(RotationQuaternion3(q))
}

// RotationVectors4 is RotationVectors3 as a homogeneous matrix.
func RotationVectors4[T scalar.Number](src, target vector.Vector3[T]) Matrix4x4[T] {
	return FromLinear4(RotationVectors3(src, target))
}

// ---------- change of basis ----------

// BasisTransform34 returns the transform expressing points in the frame
// with origin o and axes e1, e2, e3: each output coordinate is the
// projection of p - o on one axis. Linearly dependent axes are a
// bad-level violation.
func BasisTransform34[T scalar.Number](o, e1, e2, e3 vector.Vector3[T]) Matrix3x4[T] {
	m := Rows34(
		e1.X, e1.Y, e1.Z, -e1.Dot(o),
		e2.X, e2.Y, e2.Z, -e2.Dot(o),
		e3.X, e3.Y, e3.Z, -e3.Dot(o),
	)
	if assert.BadOn {
		assert.Bad(!scalar.Close(m.Determinant(), 0), "matrix.BasisTransform", "linearly dependent basis")
	}
	return m
}

// BasisTransform4 is BasisTransform34 as a homogeneous matrix.
func BasisTransform4[T scalar.Number](o, e1, e2, e3 vector.Vector3[T]) Matrix4x4[T] {
	return BasisTransform34(o, e1, e2, e3).Homogeneous()
}

// ---------- quaternion extraction ----------

// ToQuaternion returns the unit quaternion of the rotation m.
//
// Implementation:
//   - Stage 1: pick the largest of the trace and the three diagonal
//     elements so the square root below stays well away from zero.
//   - Stage 2: that component comes from the square root, the other three
//     from sums and differences of off-diagonal pairs divided by it.
//
// m must be orthonormal with determinant +1; scale or shear is not removed.
func (m Matrix3x3[T]) ToQuaternion() quaternion.Quaternion[T] {
	trace := m.M00 + m.M11 + m.M22
	switch {
	case trace > 0:
		s := 2 * scalar.Sqrt(trace+1)
		return quaternion.XYZW((m.M21-m.M12)/s, (m.M02-m.M20)/s, (m.M10-m.M01)/s, s/4)
	case m.M00 > m.M11 && m.M00 > m.M22:
		s := 2 * scalar.Sqrt(1+m.M00-m.M11-m.M22)
		return quaternion.XYZW(s/4, (m.M01+m.M10)/s, (m.M02+m.M20)/s, (m.M21-m.M12)/s)
	case m.M11 > m.M22:
		s := 2 * scalar.Sqrt(1+m.M11-m.M00-m.M22)
		return quaternion.XYZW((m.M01+m.M10)/s, s/4, (m.M12+m.M21)/s, (m.M02-m.M20)/s)
	default:
		s := 2 * scalar.Sqrt(1+m.M22-m.M00-m.M11)
		return quaternion.XYZW((m.M02+m.M20)/s, (m.M12+m.M21)/s, s/4, (m.M10-m.M01)/s)
	}
}

// ToQuaternion returns the unit quaternion of the linear part of m.
func (m Matrix3x4[T]) ToQuaternion() quaternion.Quaternion[T] {
	return m.Linear().ToQuaternion()
}

// ToQuaternion returns the unit quaternion of the upper-left 3×3 block.
func (m Matrix4x4[T]) ToQuaternion() quaternion.Quaternion[T] {
	return m.Linear().ToQuaternion()
}

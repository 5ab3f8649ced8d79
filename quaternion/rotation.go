// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/scalar"
	"github.com/katalvlaran/yama/vector"
)

// RotationNAxis returns the rotation by rad radians around the unit vector
// axis. The axis is trusted to be normalized; use RotationAxis otherwise.
func RotationNAxis[T scalar.Number](axis vector.Vector3[T], rad T) Quaternion[T] {
	if assert.BadOn {
		assert.Bad(axis.IsNormalized(), "quaternion.RotationNAxis", "axis is not normalized")
	}
	half := rad / 2
	s := scalar.Sin(half)
	return Quaternion[T]{axis.X * s, axis.Y * s, axis.Z * s, scalar.Cos(half)}
}

// RotationAxis returns the rotation by rad radians around axis, which is
// normalized first.
func RotationAxis[T scalar.Number](axis vector.Vector3[T], rad T) Quaternion[T] {
	return RotationNAxis(axis.Normalized(), rad)
}

// RotationX returns the rotation by rad radians around +X.
func RotationX[T scalar.Number](rad T) Quaternion[T] {
	half := rad / 2
	return Quaternion[T]{X: scalar.Sin(half), W: scalar.Cos(half)}
}

// RotationY returns the rotation by rad radians around +Y.
func RotationY[T scalar.Number](rad T) Quaternion[T] {
	half := rad / 2
	return Quaternion[T]{Y: scalar.Sin(half), W: scalar.Cos(half)}
}

// RotationZ returns the rotation by rad radians around +Z.
func RotationZ[T scalar.Number](rad T) Quaternion[T] {
	half := rad / 2
	return Quaternion[T]{Z: scalar.Sin(half), W: scalar.Cos(half)}
}

// RotationVectors returns the shortest rotation taking the unit vector src
// onto the unit vector target.
//
// Coinciding vectors give Identity. Opposite vectors have no unique
// shortest rotation; the result is a half turn around an axis orthogonal
// to src.
func RotationVectors[T scalar.Number](src, target vector.Vector3[T]) Quaternion[T] {
	if assert.BadOn {
		assert.Bad(src.IsNormalized(), "quaternion.RotationVectors", "src is not normalized")
		assert.Bad(target.IsNormalized(), "quaternion.RotationVectors", "target is not normalized")
	}

	d := src.Dot(target)
	c := src.Cross(target)
	if d < 0 && c.Length() <= scalar.EpsilonOf[T]() {
		return RotationNAxis(src.GetOrthogonal().Normalized(), scalar.Const[T](scalar.Pi))
	}

	// (sinθ·n, 1 + cosθ) normalizes to (sin(θ/2)·n, cos(θ/2)), exact for
	// tiny θ. Coinciding vectors give (0, 0, 0, 2), i.e. Identity.
	return Quaternion[T]{c.X, c.Y, c.Z, 1 + d}.Normalized()
}

// ToAxisAngle returns the rotation axis and the angle in [0, 2π].
// Near identity the axis is undefined and (0, 0, 1) is returned.
func (q Quaternion[T]) ToAxisAngle() (axis vector.Vector3[T], angle T) {
	angle = 2 * scalar.Acos(q.W)
	scale := 1 - scalar.Sq(q.W)
	if scale < scalar.EpsilonOf[T]() {
		return vector.UnitZ3[T](), angle
	}
	inv := 1 / scalar.Sqrt(scale)
	return vector.Vector3[T]{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}, angle
}

// Rotate applies the rotation q to v:
//
//	c1 = q.xyz × v
//	c2 = q.xyz × c1
//	v' = v + 2·(w·c1 + c2)
func (q Quaternion[T]) Rotate(v vector.Vector3[T]) vector.Vector3[T] {
	c1 := vector.Vector3[T]{
		X: q.Y*v.Z - q.Z*v.Y,
		Y: q.Z*v.X - q.X*v.Z,
		Z: q.X*v.Y - q.Y*v.X,
	}
	c2 := vector.Vector3[T]{
		X: -scalar.Sq(q.Y)*v.X - scalar.Sq(q.Z)*v.X + q.X*q.Y*v.Y + q.X*q.Z*v.Z,
		Y: q.X*q.Y*v.X - scalar.Sq(q.X)*v.Y - scalar.Sq(q.Z)*v.Y + q.Y*q.Z*v.Z,
		Z: q.X*q.Z*v.X + q.Y*q.Z*v.Y - scalar.Sq(q.X)*v.Z - scalar.Sq(q.Y)*v.Z,
	}
	return v.Add(c1.Scale(q.W).Add(c2).Scale(2))
}

// Lerp interpolates linearly and renormalizes the result. The ratio is not
// clamped.
func Lerp[T scalar.Number](from, to Quaternion[T], ratio T) Quaternion[T] {
	return from.Add(to.Sub(from).Scale(ratio)).Normalized()
}

// Slerp interpolates along the great arc between from and to.
//
// It has no small-angle fallback: when from and to are equal (or opposite)
// sin(angle) is 0 and the result is NaN.
func Slerp[T scalar.Number](from, to Quaternion[T], ratio T) Quaternion[T] {
	angle := scalar.Acos(from.Dot(to))
	a := scalar.Sin((1 - ratio) * angle)
	b := scalar.Sin(ratio * angle)
	s := scalar.Sin(angle)
	return Quaternion[T]{
		X: (from.X*a + to.X*b) / s,
		Y: (from.Y*a + to.Y*b) / s,
		Z: (from.Z*a + to.Z*b) / s,
		W: (from.W*a + to.W*b) / s,
	}
}

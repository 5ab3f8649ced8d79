// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/scalar"
	"github.com/katalvlaran/yama/vector"
)

// Projection and view builders for Matrix4x4.
//
// Naming:
//   - LH builders look down +Z, RH builders look down -Z.
//   - Without Cube the depth range maps to [0, 1] (Direct3D, Vulkan, Metal);
//     with Cube it maps to [-1, 1] (OpenGL).
//   - The (width, height) forms are centered on the view axis; the Frustum
//     forms take explicit left, right, bottom and top planes.
//
// Degenerate planes (near == far, near == 0 for perspectives) are bad-level
// violations.

// depthRange holds the z-row coefficients of a projection: z' = a·z + b
// (orthographic) or z' = (a·z + b)/(sign·z) (perspective).
type depthRange[T scalar.Number] struct {
	a, b T
}

func checkDepth[T scalar.Number](op string, near, far T) {
	if assert.BadOn {
		assert.Bad(!scalar.Close(far, near), op, "near and far planes coincide")
	}
}

func checkPerspective[T scalar.Number](op string, near, far T) {
	if assert.BadOn {
		assert.Bad(!scalar.Close(far, near), op, "near and far planes coincide")
		assert.Bad(!scalar.Close(near, 0), op, "near plane is at zero distance")
	}
}

// orthoDepth returns the z row of an orthographic projection.
func orthoDepth[T scalar.Number](near, far T, rh, cube bool) depthRange[T] {
	d := far - near
	var r depthRange[T]
	if cube {
		r = depthRange[T]{a: 2 / d, b: -(near + far) / d}
	} else {
		r = depthRange[T]{a: 1 / d, b: -near / d}
	}
	if rh {
		r.a = -r.a
	}
	return r
}

// perspectiveDepth returns the z row of a perspective projection.
func perspectiveDepth[T scalar.Number](near, far T, rh, cube bool) depthRange[T] {
	d := far - near
	var r depthRange[T]
	if cube {
		r = depthRange[T]{a: (far + near) / d, b: -(2 * (far * near / d))}
	} else {
		r = depthRange[T]{a: far / d, b: -(far * near) / d}
	}
	if rh {
		r.a = -r.a
	}
	return r
}

func ortho[T scalar.Number](l, r, b, t, near, far T, rh, cube bool) Matrix4x4[T] {
	w, h := r-l, t-b
	z := orthoDepth(near, far, rh, cube)
	return Rows4(
		2/w, 0, 0, -(l+r)/w,
		0, 2/h, 0, -(t+b)/h,
		0, 0, z.a, z.b,
		0, 0, 0, 1,
	)
}

func perspective[T scalar.Number](l, r, b, t, near, far T, rh, cube bool) Matrix4x4[T] {
	w, h := r-l, t-b
	z := perspectiveDepth(near, far, rh, cube)
	var dir T = 1
	if rh {
		dir = -dir
	}
	return Rows4(
		2*near/w, 0, 0, -(l+r)/w,
		0, 2*near/h, 0, -(t+b)/h,
		0, 0, z.a, z.b,
		0, 0, dir, 0,
	)
}

func perspectiveFov[T scalar.Number](fovy, aspect, near, far T, rh, cube bool) Matrix4x4[T] {
	yScale := 1 / scalar.Tan(fovy/2)
	xScale := yScale / aspect
	z := perspectiveDepth(near, far, rh, cube)
	var dir T = 1
	if rh {
		dir = -dir
	}
	return Rows4(
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, z.a, z.b,
		0, 0, dir, 0,
	)
}

// ---------- orthographic ----------

// OrthoLH returns a left-handed orthographic projection of a width×height
// view volume centered on +Z, depth mapped to [0, 1].
func OrthoLH[T scalar.Number](width, height, near, far T) Matrix4x4[T] {
	checkDepth("matrix.OrthoLH", near, far)
	return ortho(-width/2, width/2, -height/2, height/2, near, far, false, false)
}

// OrthoLHFrustum is OrthoLH with explicit side planes.
func OrthoLHFrustum[T scalar.Number](left, right, bottom, top, near, far T) Matrix4x4[T] {
	checkDepth("matrix.OrthoLHFrustum", near, far)
	return ortho(left, right, bottom, top, near, far, false, false)
}

// OrthoLHCube is OrthoLH with depth mapped to [-1, 1].
func OrthoLHCube[T scalar.Number](width, height, near, far T) Matrix4x4[T] {
	checkDepth("matrix.OrthoLHCube", near, far)
	return ortho(-width/2, width/2, -height/2, height/2, near, far, false, true)
}

// OrthoLHCubeFrustum is OrthoLHCube with explicit side planes.
func OrthoLHCubeFrustum[T scalar.Number](left, right, bottom, top, near, far T) Matrix4x4[T] {
	checkDepth("matrix.OrthoLHCubeFrustum", near, far)
	return ortho(left, right, bottom, top, near, far, false, true)
}

// OrthoRH returns a right-handed orthographic projection looking down -Z,
// depth mapped to [0, 1].
func OrthoRH[T scalar.Number](width, height, near, far T) Matrix4x4[T] {
	checkDepth("matrix.OrthoRH", near, far)
	return ortho(-width/2, width/2, -height/2, height/2, near, far, true, false)
}

// OrthoRHFrustum is OrthoRH with explicit side planes.
func OrthoRHFrustum[T scalar.Number](left, right, bottom, top, near, far T) Matrix4x4[T] {
	checkDepth("matrix.OrthoRHFrustum", near, far)
	return ortho(left, right, bottom, top, near, far, true, false)
}

// OrthoRHCube is OrthoRH with depth mapped to [-1, 1].
func OrthoRHCube[T scalar.Number](width, height, near, far T) Matrix4x4[T] {
	checkDepth("matrix.OrthoRHCube", near, far)
	return ortho(-width/2, width/2, -height/2, height/2, near, far, true, true)
}

// OrthoRHCubeFrustum is OrthoRHCube with explicit side planes.
func OrthoRHCubeFrustum[T scalar.Number](left, right, bottom, top, near, far T) Matrix4x4[T] {
	checkDepth("matrix.OrthoRHCubeFrustum", near, far)
	return ortho(left, right, bottom, top, near, far, true, true)
}

// ---------- perspective ----------

// PerspectiveLH returns a left-handed perspective projection whose near
// plane is width×height, depth mapped to [0, 1].
func PerspectiveLH[T scalar.Number](width, height, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveLH", near, far)
	return perspective(-width/2, width/2, -height/2, height/2, near, far, false, false)
}

// PerspectiveLHFrustum is PerspectiveLH with explicit near-plane edges.
func PerspectiveLHFrustum[T scalar.Number](left, right, bottom, top, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveLHFrustum", near, far)
	return perspective(left, right, bottom, top, near, far, false, false)
}

// PerspectiveLHCube is PerspectiveLH with depth mapped to [-1, 1].
func PerspectiveLHCube[T scalar.Number](width, height, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveLHCube", near, far)
	return perspective(-width/2, width/2, -height/2, height/2, near, far, false, true)
}

// PerspectiveLHCubeFrustum is PerspectiveLHCube with explicit near-plane
// edges.
func PerspectiveLHCubeFrustum[T scalar.Number](left, right, bottom, top, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveLHCubeFrustum", near, far)
	return perspective(left, right, bottom, top, near, far, false, true)
}

// PerspectiveRH returns a right-handed perspective projection looking down
// -Z, depth mapped to [0, 1].
func PerspectiveRH[T scalar.Number](width, height, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveRH", near, far)
	return perspective(-width/2, width/2, -height/2, height/2, near, far, true, false)
}

// PerspectiveRHFrustum is PerspectiveRH with explicit near-plane edges.
func PerspectiveRHFrustum[T scalar.Number](left, right, bottom, top, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveRHFrustum", near, far)
	return perspective(left, right, bottom, top, near, far, true, false)
}

// PerspectiveRHCube is PerspectiveRH with depth mapped to [-1, 1].
func PerspectiveRHCube[T scalar.Number](width, height, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveRHCube", near, far)
	return perspective(-width/2, width/2, -height/2, height/2, near, far, true, true)
}

// PerspectiveRHCubeFrustum is PerspectiveRHCube with explicit near-plane
// edges.
func PerspectiveRHCubeFrustum[T scalar.Number](left, right, bottom, top, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveRHCubeFrustum", near, far)
	return perspective(left, right, bottom, top, near, far, true, true)
}

// PerspectiveFovLH returns a left-handed perspective projection with a
// vertical field of view of fovy radians and the given width/height
// aspect ratio. It equals PerspectiveLH with height = 2·near·tan(fovy/2).
func PerspectiveFovLH[T scalar.Number](fovy, aspect, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveFovLH", near, far)
	return perspectiveFov(fovy, aspect, near, far, false, false)
}

// PerspectiveFovLHCube is PerspectiveFovLH with depth mapped to [-1, 1].
func PerspectiveFovLHCube[T scalar.Number](fovy, aspect, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveFovLHCube", near, far)
	return perspectiveFov(fovy, aspect, near, far, false, true)
}

// PerspectiveFovRH is the right-handed PerspectiveFovLH.
func PerspectiveFovRH[T scalar.Number](fovy, aspect, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveFovRH", near, far)
	return perspectiveFov(fovy, aspect, near, far, true, false)
}

// PerspectiveFovRHCube is PerspectiveFovRH with depth mapped to [-1, 1].
func PerspectiveFovRHCube[T scalar.Number](fovy, aspect, near, far T) Matrix4x4[T] {
	checkPerspective("matrix.PerspectiveFovRHCube", near, far)
	return perspectiveFov(fovy, aspect, near, far, true, true)
}

// ---------- view ----------

// LookTowardsLH returns a left-handed view matrix for a camera at eye
// looking along dir.
//
// Implementation:
//   - Stage 1: front = normalize(dir), right = normalize(up × front).
//   - Stage 2: up is rebuilt as front × right, so the hint only needs to
//     be non-parallel to dir, not orthogonal to it.
//   - Stage 3: BasisTransform4(eye, right, up, front).
func LookTowardsLH[T scalar.Number](eye, dir, up vector.Vector3[T]) Matrix4x4[T] {
	if assert.BadOn {
		assert.Bad(!dir.IsZero(), "matrix.LookTowards", "direction is zero")
		assert.Bad(!up.IsZero(), "matrix.LookTowards", "up vector is zero")
	}
	front := dir.Normalized()
	right := up.Cross(front).Normalized()
	up2 := front.Cross(right)
	return BasisTransform4(eye, right, up2, front)
}

// LookTowardsRH returns a right-handed view matrix for a camera at eye
// looking along dir.
func LookTowardsRH[T scalar.Number](eye, dir, up vector.Vector3[T]) Matrix4x4[T] {
	return LookTowardsLH(eye, dir.Neg(), up)
}

// LookAtLH returns a left-handed view matrix for a camera at eye looking
// at the point at.
func LookAtLH[T scalar.Number](eye, at, up vector.Vector3[T]) Matrix4x4[T] {
	return LookTowardsLH(eye, at.Sub(eye), up)
}

// LookAtRH returns a right-handed view matrix for a camera at eye looking
// at the point at.
func LookAtRH[T scalar.Number](eye, at, up vector.Vector3[T]) Matrix4x4[T] {
	return LookTowardsLH(eye, eye.Sub(at), up)
}

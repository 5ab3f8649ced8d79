// SPDX-License-Identifier: MIT

package quaternion

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/scalar"
	"github.com/katalvlaran/yama/vector"
)

// Quaternion is x·i + y·j + z·k + w.
type Quaternion[T scalar.Number] struct {
	X, Y, Z, W T
}

// XYZW returns the quaternion with the given components.
func XYZW[T scalar.Number](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{X: x, Y: y, Z: z, W: w}
}

// Identity returns (0, 0, 0, 1), the rotation that does nothing.
func Identity[T scalar.Number]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// Uniform returns (s, s, s, s).
func Uniform[T scalar.Number](s T) Quaternion[T] {
	return Quaternion[T]{s, s, s, s}
}

// Zero returns (0, 0, 0, 0).
func Zero[T scalar.Number]() Quaternion[T] {
	return Quaternion[T]{}
}

// FromVector4 reinterprets (x, y, z, w) as a quaternion.
func FromVector4[T scalar.Number](v vector.Vector4[T]) Quaternion[T] {
	return Quaternion[T]{v.X, v.Y, v.Z, v.W}
}

// FromSlice copies the first four scalars of s in x, y, z, w order.
func FromSlice[T scalar.Number](s []T) Quaternion[T] {
	assert.Length(len(s), 4, "quaternion.FromSlice")
	return Quaternion[T]{s[0], s[1], s[2], s[3]}
}

// AttachToSlice returns a quaternion aliasing the first four scalars of s.
func AttachToSlice[T scalar.Number](s []T) *Quaternion[T] {
	assert.Length(len(s), 4, "quaternion.AttachToSlice")
	return (*Quaternion[T])(unsafe.Pointer(unsafe.SliceData(s)))
}

// AttachToArray reinterprets s as len(s)/4 quaternions without copying.
func AttachToArray[T scalar.Number](s []T) []Quaternion[T] {
	assert.Critical(len(s)%4 == 0, "quaternion.AttachToArray", "buffer length is not a multiple of 4")
	if len(s) < 4 {
		return nil
	}
	return unsafe.Slice((*Quaternion[T])(unsafe.Pointer(unsafe.SliceData(s))), len(s)/4)
}

// Cast converts every component to U.
func Cast[U, T scalar.Number](q Quaternion[T]) Quaternion[U] {
	return Quaternion[U]{U(q.X), U(q.Y), U(q.Z), U(q.W)}
}

// At returns component i (x, y, z, w order).
func (q Quaternion[T]) At(i int) T {
	assert.Index(i, 4, "quaternion.Quaternion.At")
	return (*[4]T)(unsafe.Pointer(&q))[i]
}

// Slice returns the components as a slice aliasing q.
func (q *Quaternion[T]) Slice() []T {
	return (*[4]T)(unsafe.Pointer(q))[:]
}

// AsVector4 returns the components as a vector.
func (q Quaternion[T]) AsVector4() vector.Vector4[T] {
	return vector.Vector4[T]{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// Vec returns a view of the vector part (x, y, z).
func (q *Quaternion[T]) Vec() *vector.Vector3[T] {
	return (*vector.Vector3[T])(unsafe.Pointer(q))
}

// ---------- algebra ----------

// Add returns q + o.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

// Sub returns q - o.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W}
}

// Neg returns -q. It represents the same rotation as q.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, -q.W}
}

// Scale returns q * s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// DivScalar returns q / s.
func (q Quaternion[T]) DivScalar(s T) Quaternion[T] {
	assert.Warn(s != 0, "quaternion.Quaternion.DivScalar", "division by zero")
	return Quaternion[T]{q.X / s, q.Y / s, q.Z / s, q.W / s}
}

// Mul returns the Hamilton product q·o. As a rotation it applies o first.
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Div returns q·o⁻¹.
func (q Quaternion[T]) Div(o Quaternion[T]) Quaternion[T] {
	ls := o.LengthSq()
	assert.Warn(!scalar.Close(ls, 0), "quaternion.Quaternion.Div", "dividing by a zero-length quaternion")
	return Quaternion[T]{
		X: (-q.W*o.X + q.X*o.W - q.Y*o.Z + q.Z*o.Y) / ls,
		Y: (-q.W*o.Y + q.X*o.Z + q.Y*o.W - q.Z*o.X) / ls,
		Z: (-q.W*o.Z - q.X*o.Y + q.Y*o.X + q.Z*o.W) / ls,
		W: (q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z) / ls,
	}
}

// MulAssign sets q to q·o and returns q.
func (q *Quaternion[T]) MulAssign(o Quaternion[T]) *Quaternion[T] {
	*q = q.Mul(o)
	return q
}

// Conjugate returns (-x, -y, -z, w).
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns Conjugate / LengthSq. For unit quaternions it equals the
// conjugate.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	ls := q.LengthSq()
	assert.Warn(!scalar.Close(ls, 0), "quaternion.Quaternion.Inverse", "inverting a zero-length quaternion")
	return Quaternion[T]{-q.X / ls, -q.Y / ls, -q.Z / ls, q.W / ls}
}

// Dot returns the 4D dot product.
func (q Quaternion[T]) Dot(o Quaternion[T]) T {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// LengthSq returns the squared length.
func (q Quaternion[T]) LengthSq() T {
	return q.Dot(q)
}

// Length returns the length.
func (q Quaternion[T]) Length() T {
	return scalar.Sqrt(q.LengthSq())
}

// Normalize scales q to unit length in place and returns the prior length.
func (q *Quaternion[T]) Normalize() T {
	l := q.Length()
	assert.Warn(l != 0, "quaternion.Quaternion.Normalize", "normalizing a zero-length quaternion")
	q.X /= l
	q.Y /= l
	q.Z /= l
	q.W /= l
	return l
}

// Normalized returns q scaled to unit length.
func (q Quaternion[T]) Normalized() Quaternion[T] {
	q.Normalize()
	return q
}

// IsNormalized reports whether the length is within scalar.Epsilon of 1.
func (q Quaternion[T]) IsNormalized() bool {
	return scalar.Close(q.Length(), 1)
}

// Equal reports exact equality.
func (q Quaternion[T]) Equal(o Quaternion[T]) bool {
	return q == o
}

// Close reports whether every component is within scalar.Epsilon of o's.
func (q Quaternion[T]) Close(o Quaternion[T]) bool {
	return q.CloseEps(o, scalar.EpsilonOf[T]())
}

// CloseEps reports whether every component is within eps of o's.
func (q Quaternion[T]) CloseEps(o Quaternion[T], eps T) bool {
	return q.AsVector4().CloseEps(o.AsVector4(), eps)
}

// IsFinite reports whether no component is NaN or infinite.
func (q Quaternion[T]) IsFinite() bool {
	return q.AsVector4().IsFinite()
}

// String formats q as "(x, y, z, w)".
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/scalar"
)

// Vector2 is a 2-component vector.
type Vector2[T scalar.Number] struct {
	X, Y T
}

// New2 returns the vector (x, y).
func New2[T scalar.Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Uniform2 returns (s, s).
func Uniform2[T scalar.Number](s T) Vector2[T] {
	return Vector2[T]{s, s}
}

// Zero2 returns (0, 0).
func Zero2[T scalar.Number]() Vector2[T] {
	return Vector2[T]{}
}

// UnitX2 returns (1, 0).
func UnitX2[T scalar.Number]() Vector2[T] {
	return Vector2[T]{X: 1}
}

// UnitY2 returns (0, 1).
func UnitY2[T scalar.Number]() Vector2[T] {
	return Vector2[T]{Y: 1}
}

// FromSlice2 copies the first two scalars of s.
func FromSlice2[T scalar.Number](s []T) Vector2[T] {
	assert.Length(len(s), 2, "vector.FromSlice2")
	return Vector2[T]{s[0], s[1]}
}

// AttachToSlice2 returns a vector aliasing the first two scalars of s.
func AttachToSlice2[T scalar.Number](s []T) *Vector2[T] {
	assert.Length(len(s), 2, "vector.AttachToSlice2")
	return (*Vector2[T])(unsafe.Pointer(unsafe.SliceData(s)))
}

// AttachToArray2 reinterprets s as len(s)/2 consecutive vectors without
// copying.
func AttachToArray2[T scalar.Number](s []T) []Vector2[T] {
	assert.Critical(len(s)%2 == 0, "vector.AttachToArray2", "buffer length is not a multiple of 2")
	if len(s) < 2 {
		return nil
	}
	return unsafe.Slice((*Vector2[T])(unsafe.Pointer(unsafe.SliceData(s))), len(s)/2)
}

// Cast2 converts every component to U.
func Cast2[U, T scalar.Number](v Vector2[T]) Vector2[U] {
	return Vector2[U]{U(v.X), U(v.Y)}
}

// Dim returns 2.
func (v Vector2[T]) Dim() int { return 2 }

// At returns component i.
func (v Vector2[T]) At(i int) T {
	assert.Index(i, 2, "vector.Vector2.At")
	return (*[2]T)(unsafe.Pointer(&v))[i]
}

// Set assigns component i and returns v.
func (v *Vector2[T]) Set(i int, s T) *Vector2[T] {
	*v.Ptr(i) = s
	return v
}

// Ptr returns a pointer to component i.
func (v *Vector2[T]) Ptr(i int) *T {
	assert.Index(i, 2, "vector.Vector2.Ptr")
	return &(*[2]T)(unsafe.Pointer(v))[i]
}

// Slice returns the components as a slice aliasing v.
func (v *Vector2[T]) Slice() []T {
	return (*[2]T)(unsafe.Pointer(v))[:]
}

// Array returns a copy of the components.
func (v Vector2[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

func (v Vector2[T]) Front() T { return v.X }
func (v Vector2[T]) Back() T  { return v.Y }

// Broadcast returns (s, s).
func (Vector2[T]) Broadcast(s T) Vector2[T] {
	return Uniform2(s)
}

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vector2[T]) Neg() Vector2[T]             { return Vector2[T]{-v.X, -v.Y} }
func (v Vector2[T]) Scale(s T) Vector2[T]        { return Vector2[T]{v.X * s, v.Y * s} }
func (v Vector2[T]) Mul(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X * o.X, v.Y * o.Y} }

// DivScalar returns v / s.
func (v Vector2[T]) DivScalar(s T) Vector2[T] {
	assert.Warn(s != 0, "vector.Vector2.DivScalar", "division by zero")
	return Vector2[T]{v.X / s, v.Y / s}
}

// ScalarDiv returns (s/x, s/y).
func (v Vector2[T]) ScalarDiv(s T) Vector2[T] {
	return Vector2[T]{s / v.X, s / v.Y}
}

// Div divides component-wise.
func (v Vector2[T]) Div(o Vector2[T]) Vector2[T] {
	assert.Warn(o.X != 0 && o.Y != 0, "vector.Vector2.Div", "division by zero")
	return Vector2[T]{v.X / o.X, v.Y / o.Y}
}

// Mod returns the component-wise remainder.
func (v Vector2[T]) Mod(o Vector2[T]) Vector2[T] {
	assert.Warn(o.X != 0 && o.Y != 0, "vector.Vector2.Mod", "division by zero")
	return Vector2[T]{scalar.Mod(v.X, o.X), scalar.Mod(v.Y, o.Y)}
}

func (v *Vector2[T]) AddAssign(o Vector2[T]) *Vector2[T] { *v = v.Add(o); return v }
func (v *Vector2[T]) SubAssign(o Vector2[T]) *Vector2[T] { *v = v.Sub(o); return v }
func (v *Vector2[T]) ScaleAssign(s T) *Vector2[T]        { *v = v.Scale(s); return v }
func (v *Vector2[T]) DivScalarAssign(s T) *Vector2[T]    { *v = v.DivScalar(s); return v }
func (v *Vector2[T]) MulAssign(o Vector2[T]) *Vector2[T] { *v = v.Mul(o); return v }
func (v *Vector2[T]) DivAssign(o Vector2[T]) *Vector2[T] { *v = v.Div(o); return v }

func (v Vector2[T]) Abs() Vector2[T]   { return Vector2[T]{scalar.Abs(v.X), scalar.Abs(v.Y)} }
func (v Vector2[T]) Floor() Vector2[T] { return Vector2[T]{scalar.Floor(v.X), scalar.Floor(v.Y)} }
func (v Vector2[T]) Ceil() Vector2[T]  { return Vector2[T]{scalar.Ceil(v.X), scalar.Ceil(v.Y)} }
func (v Vector2[T]) Round() Vector2[T] { return Vector2[T]{scalar.Round(v.X), scalar.Round(v.Y)} }
func (v Vector2[T]) Frac() Vector2[T]  { return Vector2[T]{scalar.Frac(v.X), scalar.Frac(v.Y)} }
func (v Vector2[T]) Sign() Vector2[T]  { return Vector2[T]{scalar.Sign(v.X), scalar.Sign(v.Y)} }

// Clamp bounds every component to the matching [lo, hi] components.
func (v Vector2[T]) Clamp(lo, hi Vector2[T]) Vector2[T] {
	return Vector2[T]{scalar.Clamp(v.X, lo.X, hi.X), scalar.Clamp(v.Y, lo.Y, hi.Y)}
}

func (v Vector2[T]) Min(o Vector2[T]) Vector2[T] { return Vector2[T]{min(v.X, o.X), min(v.Y, o.Y)} }
func (v Vector2[T]) Max(o Vector2[T]) Vector2[T] { return Vector2[T]{max(v.X, o.X), max(v.Y, o.Y)} }

// Lerp2 interpolates from + ratio*(to-from) per component, unclamped.
func Lerp2[T scalar.Number](from, to Vector2[T], ratio T) Vector2[T] {
	return from.Add(to.Sub(from).Scale(ratio))
}

// Dot returns the dot product.
func (v Vector2[T]) Dot(o Vector2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// CrossMagnitude returns the z component of the 3D cross product of
// (v, 0) and (o, 0): the signed area of the parallelogram they span.
func (v Vector2[T]) CrossMagnitude(o Vector2[T]) T {
	return v.X*o.Y - v.Y*o.X
}

func (v Vector2[T]) LengthSq() T        { return v.Dot(v) }
func (v Vector2[T]) Length() T          { return scalar.Sqrt(v.LengthSq()) }
func (v Vector2[T]) ManhattanLength() T { return scalar.Abs(v.X) + scalar.Abs(v.Y) }

func (v Vector2[T]) DistanceSq(o Vector2[T]) T { return v.Sub(o).LengthSq() }
func (v Vector2[T]) Distance(o Vector2[T]) T   { return scalar.Sqrt(v.DistanceSq(o)) }

// Normalize scales v to unit length in place and returns the length it had.
func (v *Vector2[T]) Normalize() T {
	l := v.Length()
	assert.Warn(l != 0, "vector.Vector2.Normalize", "normalizing a zero-length vector")
	v.X /= l
	v.Y /= l
	return l
}

// Normalized returns v scaled to unit length.
func (v Vector2[T]) Normalized() Vector2[T] {
	v.Normalize()
	return v
}

// IsNormalized reports whether the length is within scalar.Epsilon of 1.
func (v Vector2[T]) IsNormalized() bool {
	return scalar.Close(v.Length(), 1)
}

// IsNormalizedEps reports whether the length is within eps of 1.
func (v Vector2[T]) IsNormalizedEps(eps T) bool {
	return scalar.CloseEps(v.Length(), 1, eps)
}

// HomogenousNormalize divides X by Y and sets Y to 1.
func (v *Vector2[T]) HomogenousNormalize() *Vector2[T] {
	assert.Warn(v.Y != 0, "vector.Vector2.HomogenousNormalize", "y is zero")
	v.X /= v.Y
	v.Y = 1
	return v
}

// Reflection reflects v across the line with the unit normal n.
func (v Vector2[T]) Reflection(n Vector2[T]) Vector2[T] {
	if assert.BadOn {
		assert.Bad(n.IsNormalized(), "vector.Vector2.Reflection", "normal is not normalized")
	}
	dd := 2 * v.Dot(n)
	return Vector2[T]{v.X - dd*n.X, v.Y - dd*n.Y}
}

// GetOrthogonal returns v rotated by 90 degrees counterclockwise: (-y, x).
func (v Vector2[T]) GetOrthogonal() Vector2[T] {
	assert.Warn(!v.IsZero(), "vector.Vector2.GetOrthogonal", "zero vector has no orthogonal")
	return Vector2[T]{-v.Y, v.X}
}

func (v Vector2[T]) Product() T { return v.X * v.Y }
func (v Vector2[T]) Sum() T     { return v.X + v.Y }

// Equal reports exact component equality.
func (v Vector2[T]) Equal(o Vector2[T]) bool {
	return v == o
}

// Close reports whether every component is within scalar.Epsilon of o's.
func (v Vector2[T]) Close(o Vector2[T]) bool {
	return v.CloseEps(o, scalar.EpsilonOf[T]())
}

// CloseEps reports whether every component is within eps of o's.
func (v Vector2[T]) CloseEps(o Vector2[T], eps T) bool {
	return scalar.CloseEps(v.X, o.X, eps) && scalar.CloseEps(v.Y, o.Y, eps)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector2[T]) IsFinite() bool {
	return scalar.IsFinite(v.X) && scalar.IsFinite(v.Y)
}

// IsZero reports whether every component is within scalar.Epsilon of 0.
func (v Vector2[T]) IsZero() bool {
	c := v.Array()
	return isZero(c[:])
}

// Orthogonal2 reports whether dot(a, b) is within scalar.Epsilon of 0.
func Orthogonal2[T scalar.Number](a, b Vector2[T]) bool {
	return scalar.Close(a.Dot(b), 0)
}

// Collinear2 reports whether a and b lie on one line through the origin.
func Collinear2[T scalar.Number](a, b Vector2[T]) bool {
	ca, cb := a.Array(), b.Array()
	return collinear(ca[:], cb[:])
}

// Compare orders v and o lexicographically.
func (v Vector2[T]) Compare(o Vector2[T]) int {
	a, b := v.Array(), o.Array()
	return compare(a[:], b[:])
}

// Less reports whether v sorts before o.
func (v Vector2[T]) Less(o Vector2[T]) bool {
	return v.Compare(o) < 0
}

// String formats v as "(x, y)".
func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

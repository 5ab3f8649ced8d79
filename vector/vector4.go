// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/scalar"
)

// Vector4 is a 4-component vector, typically a homogeneous coordinate.
type Vector4[T scalar.Number] struct {
	X, Y, Z, W T
}

// New4 returns the vector (x, y, z, w).
func New4[T scalar.Number](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

// Uniform4 returns (s, s, s, s).
func Uniform4[T scalar.Number](s T) Vector4[T] {
	return Vector4[T]{s, s, s, s}
}

// Zero4 returns (0, 0, 0, 0).
func Zero4[T scalar.Number]() Vector4[T] {
	return Vector4[T]{}
}

func UnitX4[T scalar.Number]() Vector4[T] { return Vector4[T]{X: 1} }
func UnitY4[T scalar.Number]() Vector4[T] { return Vector4[T]{Y: 1} }
func UnitZ4[T scalar.Number]() Vector4[T] { return Vector4[T]{Z: 1} }
func UnitW4[T scalar.Number]() Vector4[T] { return Vector4[T]{W: 1} }

// FromSlice4 copies the first four scalars of s.
func FromSlice4[T scalar.Number](s []T) Vector4[T] {
	assert.Length(len(s), 4, "vector.FromSlice4")
	return Vector4[T]{s[0], s[1], s[2], s[3]}
}

// AttachToSlice4 returns a vector aliasing the first four scalars of s.
func AttachToSlice4[T scalar.Number](s []T) *Vector4[T] {
	assert.Length(len(s), 4, "vector.AttachToSlice4")
	return (*Vector4[T])(unsafe.Pointer(unsafe.SliceData(s)))
}

// AttachToArray4 reinterprets s as len(s)/4 consecutive vectors without
// copying.
func AttachToArray4[T scalar.Number](s []T) []Vector4[T] {
	assert.Critical(len(s)%4 == 0, "vector.AttachToArray4", "buffer length is not a multiple of 4")
	if len(s) < 4 {
		return nil
	}
	return unsafe.Slice((*Vector4[T])(unsafe.Pointer(unsafe.SliceData(s))), len(s)/4)
}

// Cast4 converts every component to U.
func Cast4[U, T scalar.Number](v Vector4[T]) Vector4[U] {
	return Vector4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)}
}

// Dim returns 4.
func (v Vector4[T]) Dim() int { return 4 }

// At returns component i.
func (v Vector4[T]) At(i int) T {
	assert.Index(i, 4, "vector.Vector4.At")
	return (*[4]T)(unsafe.Pointer(&v))[i]
}

// Set assigns component i and returns v.
func (v *Vector4[T]) Set(i int, s T) *Vector4[T] {
	*v.Ptr(i) = s
	return v
}

// Ptr returns a pointer to component i.
func (v *Vector4[T]) Ptr(i int) *T {
	assert.Index(i, 4, "vector.Vector4.Ptr")
	return &(*[4]T)(unsafe.Pointer(v))[i]
}

// Slice returns the components as a slice aliasing v.
func (v *Vector4[T]) Slice() []T {
	return (*[4]T)(unsafe.Pointer(v))[:]
}

// Array returns a copy of the components.
func (v Vector4[T]) Array() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}

func (v Vector4[T]) Front() T { return v.X }
func (v Vector4[T]) Back() T  { return v.W }

// Broadcast returns (s, s, s, s).
func (Vector4[T]) Broadcast(s T) Vector4[T] {
	return Uniform4(s)
}

// Add returns v + o.
func (v Vector4[T]) Add(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o.
func (v Vector4[T]) Sub(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Neg returns -v.
func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns v * s.
func (v Vector4[T]) Scale(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// DivScalar returns v / s.
func (v Vector4[T]) DivScalar(s T) Vector4[T] {
	assert.Warn(s != 0, "vector.Vector4.DivScalar", "division by zero")
	return Vector4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// ScalarDiv returns s divided by every component.
func (v Vector4[T]) ScalarDiv(s T) Vector4[T] {
	return Vector4[T]{s / v.X, s / v.Y, s / v.Z, s / v.W}
}

// Mul multiplies component-wise.
func (v Vector4[T]) Mul(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Div divides component-wise.
func (v Vector4[T]) Div(o Vector4[T]) Vector4[T] {
	assert.Warn(o.X != 0 && o.Y != 0 && o.Z != 0 && o.W != 0, "vector.Vector4.Div", "division by zero")
	return Vector4[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// Mod returns the component-wise remainder.
func (v Vector4[T]) Mod(o Vector4[T]) Vector4[T] {
	assert.Warn(o.X != 0 && o.Y != 0 && o.Z != 0 && o.W != 0, "vector.Vector4.Mod", "division by zero")
	return Vector4[T]{scalar.Mod(v.X, o.X), scalar.Mod(v.Y, o.Y), scalar.Mod(v.Z, o.Z), scalar.Mod(v.W, o.W)}
}

func (v *Vector4[T]) AddAssign(o Vector4[T]) *Vector4[T] { *v = v.Add(o); return v }
func (v *Vector4[T]) SubAssign(o Vector4[T]) *Vector4[T] { *v = v.Sub(o); return v }
func (v *Vector4[T]) ScaleAssign(s T) *Vector4[T]        { *v = v.Scale(s); return v }
func (v *Vector4[T]) DivScalarAssign(s T) *Vector4[T]    { *v = v.DivScalar(s); return v }
func (v *Vector4[T]) MulAssign(o Vector4[T]) *Vector4[T] { *v = v.Mul(o); return v }
func (v *Vector4[T]) DivAssign(o Vector4[T]) *Vector4[T] { *v = v.Div(o); return v }

// Abs returns the component-wise absolute value.
func (v Vector4[T]) Abs() Vector4[T] {
	return Vector4[T]{scalar.Abs(v.X), scalar.Abs(v.Y), scalar.Abs(v.Z), scalar.Abs(v.W)}
}

// Floor rounds every component down.
func (v Vector4[T]) Floor() Vector4[T] {
	return Vector4[T]{scalar.Floor(v.X), scalar.Floor(v.Y), scalar.Floor(v.Z), scalar.Floor(v.W)}
}

// Ceil rounds every component up.
func (v Vector4[T]) Ceil() Vector4[T] {
	return Vector4[T]{scalar.Ceil(v.X), scalar.Ceil(v.Y), scalar.Ceil(v.Z), scalar.Ceil(v.W)}
}

// Round rounds every component half away from zero.
func (v Vector4[T]) Round() Vector4[T] {
	return Vector4[T]{scalar.Round(v.X), scalar.Round(v.Y), scalar.Round(v.Z), scalar.Round(v.W)}
}

// Frac returns |c| - floor(|c|) per component.
func (v Vector4[T]) Frac() Vector4[T] {
	return Vector4[T]{scalar.Frac(v.X), scalar.Frac(v.Y), scalar.Frac(v.Z), scalar.Frac(v.W)}
}

// Sign returns -1 or +1 per component.
func (v Vector4[T]) Sign() Vector4[T] {
	return Vector4[T]{scalar.Sign(v.X), scalar.Sign(v.Y), scalar.Sign(v.Z), scalar.Sign(v.W)}
}

// Clamp bounds every component to the matching [lo, hi] components.
func (v Vector4[T]) Clamp(lo, hi Vector4[T]) Vector4[T] {
	return Vector4[T]{
		scalar.Clamp(v.X, lo.X, hi.X),
		scalar.Clamp(v.Y, lo.Y, hi.Y),
		scalar.Clamp(v.Z, lo.Z, hi.Z),
		scalar.Clamp(v.W, lo.W, hi.W),
	}
}

// Min returns the component-wise minimum.
func (v Vector4[T]) Min(o Vector4[T]) Vector4[T] {
	return Vector4[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z), min(v.W, o.W)}
}

// Max returns the component-wise maximum.
func (v Vector4[T]) Max(o Vector4[T]) Vector4[T] {
	return Vector4[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z), max(v.W, o.W)}
}

// Lerp4 interpolates from + ratio*(to-from) per component, unclamped.
func Lerp4[T scalar.Number](from, to Vector4[T], ratio T) Vector4[T] {
	return from.Add(to.Sub(from).Scale(ratio))
}

// Dot returns the dot product.
func (v Vector4[T]) Dot(o Vector4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vector4[T]) LengthSq() T { return v.Dot(v) }
func (v Vector4[T]) Length() T   { return scalar.Sqrt(v.LengthSq()) }

// ManhattanLength returns the sum of absolute components.
func (v Vector4[T]) ManhattanLength() T {
	return scalar.Abs(v.X) + scalar.Abs(v.Y) + scalar.Abs(v.Z) + scalar.Abs(v.W)
}

func (v Vector4[T]) DistanceSq(o Vector4[T]) T { return v.Sub(o).LengthSq() }
func (v Vector4[T]) Distance(o Vector4[T]) T   { return scalar.Sqrt(v.DistanceSq(o)) }

// Normalize scales v to unit length in place and returns the length it had.
func (v *Vector4[T]) Normalize() T {
	l := v.Length()
	assert.Warn(l != 0, "vector.Vector4.Normalize", "normalizing a zero-length vector")
	v.X /= l
	v.Y /= l
	v.Z /= l
	v.W /= l
	return l
}

// Normalized returns v scaled to unit length.
func (v Vector4[T]) Normalized() Vector4[T] {
	v.Normalize()
	return v
}

// IsNormalized reports whether the length is within scalar.Epsilon of 1.
func (v Vector4[T]) IsNormalized() bool {
	return scalar.Close(v.Length(), 1)
}

// IsNormalizedEps reports whether the length is within eps of 1.
func (v Vector4[T]) IsNormalizedEps(eps T) bool {
	return scalar.CloseEps(v.Length(), 1, eps)
}

// HomogenousNormalize divides X, Y and Z by W and sets W to 1, turning a
// homogeneous coordinate back into a point.
func (v *Vector4[T]) HomogenousNormalize() *Vector4[T] {
	assert.Warn(v.W != 0, "vector.Vector4.HomogenousNormalize", "w is zero")
	v.X /= v.W
	v.Y /= v.W
	v.Z /= v.W
	v.W = 1
	return v
}

// Reflection reflects v across the hyperplane with the unit normal n.
func (v Vector4[T]) Reflection(n Vector4[T]) Vector4[T] {
	if assert.BadOn {
		assert.Bad(n.IsNormalized(), "vector.Vector4.Reflection", "normal is not normalized")
	}
	dd := 2 * v.Dot(n)
	return Vector4[T]{v.X - dd*n.X, v.Y - dd*n.Y, v.Z - dd*n.Z, v.W - dd*n.W}
}

// GetOrthogonal returns (-y, x, -w, z), which is orthogonal to v.
func (v Vector4[T]) GetOrthogonal() Vector4[T] {
	assert.Warn(!v.IsZero(), "vector.Vector4.GetOrthogonal", "zero vector has no orthogonal")
	return Vector4[T]{-v.Y, v.X, -v.W, v.Z}
}

func (v Vector4[T]) Product() T { return v.X * v.Y * v.Z * v.W }
func (v Vector4[T]) Sum() T     { return v.X + v.Y + v.Z + v.W }

// Equal reports exact component equality.
func (v Vector4[T]) Equal(o Vector4[T]) bool {
	return v == o
}

// Close reports whether every component is within scalar.Epsilon of o's.
func (v Vector4[T]) Close(o Vector4[T]) bool {
	return v.CloseEps(o, scalar.EpsilonOf[T]())
}

// CloseEps reports whether every component is within eps of o's.
func (v Vector4[T]) CloseEps(o Vector4[T], eps T) bool {
	return scalar.CloseEps(v.X, o.X, eps) &&
		scalar.CloseEps(v.Y, o.Y, eps) &&
		scalar.CloseEps(v.Z, o.Z, eps) &&
		scalar.CloseEps(v.W, o.W, eps)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector4[T]) IsFinite() bool {
	return scalar.IsFinite(v.X) && scalar.IsFinite(v.Y) && scalar.IsFinite(v.Z) && scalar.IsFinite(v.W)
}

// IsZero reports whether every component is within scalar.Epsilon of 0.
func (v Vector4[T]) IsZero() bool {
	c := v.Array()
	return isZero(c[:])
}

// Orthogonal4 reports whether dot(a, b) is within scalar.Epsilon of 0.
func Orthogonal4[T scalar.Number](a, b Vector4[T]) bool {
	return scalar.Close(a.Dot(b), 0)
}

// Collinear4 reports whether a and b lie on one line through the origin.
func Collinear4[T scalar.Number](a, b Vector4[T]) bool {
	ca, cb := a.Array(), b.Array()
	return collinear(ca[:], cb[:])
}

// Compare orders v and o lexicographically.
func (v Vector4[T]) Compare(o Vector4[T]) int {
	a, b := v.Array(), o.Array()
	return compare(a[:], b[:])
}

// Less reports whether v sorts before o.
func (v Vector4[T]) Less(o Vector4[T]) bool {
	return v.Compare(o) < 0
}

// String formats v as "(x, y, z, w)".
func (v Vector4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/scalar"
)

// Vector3 is a 3-component vector. Point3 code uses the same type.
type Vector3[T scalar.Number] struct {
	X, Y, Z T
}

// New3 returns the vector (x, y, z).
func New3[T scalar.Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Uniform3 returns (s, s, s).
func Uniform3[T scalar.Number](s T) Vector3[T] {
	return Vector3[T]{s, s, s}
}

// Zero3 returns (0, 0, 0).
func Zero3[T scalar.Number]() Vector3[T] {
	return Vector3[T]{}
}

// UnitX3 returns (1, 0, 0).
func UnitX3[T scalar.Number]() Vector3[T] {
	return Vector3[T]{X: 1}
}

// UnitY3 returns (0, 1, 0).
func UnitY3[T scalar.Number]() Vector3[T] {
	return Vector3[T]{Y: 1}
}

// UnitZ3 returns (0, 0, 1).
func UnitZ3[T scalar.Number]() Vector3[T] {
	return Vector3[T]{Z: 1}
}

// FromSlice3 copies the first three scalars of s.
func FromSlice3[T scalar.Number](s []T) Vector3[T] {
	assert.Length(len(s), 3, "vector.FromSlice3")
	return Vector3[T]{s[0], s[1], s[2]}
}

// AttachToSlice3 returns a vector aliasing the first three scalars of s.
// Writes through the result are visible in s and vice versa.
func AttachToSlice3[T scalar.Number](s []T) *Vector3[T] {
	assert.Length(len(s), 3, "vector.AttachToSlice3")
	return (*Vector3[T])(unsafe.Pointer(unsafe.SliceData(s)))
}

// AttachToArray3 reinterprets s as len(s)/3 consecutive vectors without
// copying. len(s) must be a multiple of 3.
func AttachToArray3[T scalar.Number](s []T) []Vector3[T] {
	assert.Critical(len(s)%3 == 0, "vector.AttachToArray3", "buffer length is not a multiple of 3")
	if len(s) < 3 {
		return nil
	}
	return unsafe.Slice((*Vector3[T])(unsafe.Pointer(unsafe.SliceData(s))), len(s)/3)
}

// Cast3 converts every component to U with Go conversion rules
// (float to integer truncates toward zero).
func Cast3[U, T scalar.Number](v Vector3[T]) Vector3[U] {
	return Vector3[U]{U(v.X), U(v.Y), U(v.Z)}
}

// Dim returns 3.
func (v Vector3[T]) Dim() int { return 3 }

// At returns component i. Index 3 and above is a critical violation.
func (v Vector3[T]) At(i int) T {
	assert.Index(i, 3, "vector.Vector3.At")
	return (*[3]T)(unsafe.Pointer(&v))[i]
}

// Set assigns component i and returns v.
func (v *Vector3[T]) Set(i int, s T) *Vector3[T] {
	*v.Ptr(i) = s
	return v
}

// Ptr returns a pointer to component i.
func (v *Vector3[T]) Ptr(i int) *T {
	assert.Index(i, 3, "vector.Vector3.Ptr")
	return &(*[3]T)(unsafe.Pointer(v))[i]
}

// Slice returns the components as a slice aliasing v.
func (v *Vector3[T]) Slice() []T {
	return (*[3]T)(unsafe.Pointer(v))[:]
}

// Array returns a copy of the components.
func (v Vector3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// Front returns X.
func (v Vector3[T]) Front() T { return v.X }

// Back returns Z.
func (v Vector3[T]) Back() T { return v.Z }

// Broadcast returns (s, s, s).
func (Vector3[T]) Broadcast(s T) Vector3[T] {
	return Uniform3(s)
}

// ---------- arithmetic ----------

// Add returns v + o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Scale returns v * s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar returns v / s.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	assert.Warn(s != 0, "vector.Vector3.DivScalar", "division by zero")
	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

// ScalarDiv returns (s/x, s/y, s/z).
func (v Vector3[T]) ScalarDiv(s T) Vector3[T] {
	return Vector3[T]{s / v.X, s / v.Y, s / v.Z}
}

// Mul multiplies component-wise.
func (v Vector3[T]) Mul(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div divides component-wise.
func (v Vector3[T]) Div(o Vector3[T]) Vector3[T] {
	assert.Warn(o.X != 0 && o.Y != 0 && o.Z != 0, "vector.Vector3.Div", "division by zero")
	return Vector3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// Mod returns the component-wise remainder (see scalar.Mod).
func (v Vector3[T]) Mod(o Vector3[T]) Vector3[T] {
	assert.Warn(o.X != 0 && o.Y != 0 && o.Z != 0, "vector.Vector3.Mod", "division by zero")
	return Vector3[T]{scalar.Mod(v.X, o.X), scalar.Mod(v.Y, o.Y), scalar.Mod(v.Z, o.Z)}
}

// AddAssign adds o to v in place.
func (v *Vector3[T]) AddAssign(o Vector3[T]) *Vector3[T] {
	*v = v.Add(o)
	return v
}

// SubAssign subtracts o from v in place.
func (v *Vector3[T]) SubAssign(o Vector3[T]) *Vector3[T] {
	*v = v.Sub(o)
	return v
}

// ScaleAssign multiplies v by s in place.
func (v *Vector3[T]) ScaleAssign(s T) *Vector3[T] {
	*v = v.Scale(s)
	return v
}

// DivScalarAssign divides v by s in place.
func (v *Vector3[T]) DivScalarAssign(s T) *Vector3[T] {
	*v = v.DivScalar(s)
	return v
}

// MulAssign multiplies v by o component-wise in place.
func (v *Vector3[T]) MulAssign(o Vector3[T]) *Vector3[T] {
	*v = v.Mul(o)
	return v
}

// DivAssign divides v by o component-wise in place.
func (v *Vector3[T]) DivAssign(o Vector3[T]) *Vector3[T] {
	*v = v.Div(o)
	return v
}

// ---------- component-wise functions ----------

// Abs returns the component-wise absolute value.
func (v Vector3[T]) Abs() Vector3[T] {
	return Vector3[T]{scalar.Abs(v.X), scalar.Abs(v.Y), scalar.Abs(v.Z)}
}

// Floor rounds every component down.
func (v Vector3[T]) Floor() Vector3[T] {
	return Vector3[T]{scalar.Floor(v.X), scalar.Floor(v.Y), scalar.Floor(v.Z)}
}

// Ceil rounds every component up.
func (v Vector3[T]) Ceil() Vector3[T] {
	return Vector3[T]{scalar.Ceil(v.X), scalar.Ceil(v.Y), scalar.Ceil(v.Z)}
}

// Round rounds every component half away from zero.
func (v Vector3[T]) Round() Vector3[T] {
	return Vector3[T]{scalar.Round(v.X), scalar.Round(v.Y), scalar.Round(v.Z)}
}

// Frac returns |c| - floor(|c|) per component.
func (v Vector3[T]) Frac() Vector3[T] {
	return Vector3[T]{scalar.Frac(v.X), scalar.Frac(v.Y), scalar.Frac(v.Z)}
}

// Sign returns -1 or +1 per component.
func (v Vector3[T]) Sign() Vector3[T] {
	return Vector3[T]{scalar.Sign(v.X), scalar.Sign(v.Y), scalar.Sign(v.Z)}
}

// Clamp bounds every component to the matching [lo, hi] components.
func (v Vector3[T]) Clamp(lo, hi Vector3[T]) Vector3[T] {
	return Vector3[T]{
		scalar.Clamp(v.X, lo.X, hi.X),
		scalar.Clamp(v.Y, lo.Y, hi.Y),
		scalar.Clamp(v.Z, lo.Z, hi.Z),
	}
}

// Min returns the component-wise minimum.
func (v Vector3[T]) Min(o Vector3[T]) Vector3[T] {
	return Vector3[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// Max returns the component-wise maximum.
func (v Vector3[T]) Max(o Vector3[T]) Vector3[T] {
	return Vector3[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// Lerp3 interpolates from + ratio*(to-from) per component, unclamped.
func Lerp3[T scalar.Number](from, to Vector3[T], ratio T) Vector3[T] {
	return from.Add(to.Sub(from).Scale(ratio))
}

// ---------- geometry ----------

// Dot returns the dot product.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns v × o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSq returns the squared length.
func (v Vector3[T]) LengthSq() T {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vector3[T]) Length() T {
	return scalar.Sqrt(v.LengthSq())
}

// ManhattanLength returns |x| + |y| + |z|.
func (v Vector3[T]) ManhattanLength() T {
	return scalar.Abs(v.X) + scalar.Abs(v.Y) + scalar.Abs(v.Z)
}

// DistanceSq returns the squared distance between v and o.
func (v Vector3[T]) DistanceSq(o Vector3[T]) T {
	return v.Sub(o).LengthSq()
}

// Distance returns the distance between v and o.
func (v Vector3[T]) Distance(o Vector3[T]) T {
	return scalar.Sqrt(v.DistanceSq(o))
}

// Normalize scales v to unit length in place and returns the length it had.
func (v *Vector3[T]) Normalize() T {
	l := v.Length()
	assert.Warn(l != 0, "vector.Vector3.Normalize", "normalizing a zero-length vector")
	v.X /= l
	v.Y /= l
	v.Z /= l
	return l
}

// Normalized returns v scaled to unit length.
func (v Vector3[T]) Normalized() Vector3[T] {
	v.Normalize()
	return v
}

// IsNormalized reports whether the length is within scalar.Epsilon of 1.
func (v Vector3[T]) IsNormalized() bool {
	return scalar.Close(v.Length(), 1)
}

// IsNormalizedEps reports whether the length is within eps of 1.
func (v Vector3[T]) IsNormalizedEps(eps T) bool {
	return scalar.CloseEps(v.Length(), 1, eps)
}

// HomogenousNormalize divides X and Y by Z and sets Z to 1.
func (v *Vector3[T]) HomogenousNormalize() *Vector3[T] {
	assert.Warn(v.Z != 0, "vector.Vector3.HomogenousNormalize", "z is zero")
	v.X /= v.Z
	v.Y /= v.Z
	v.Z = 1
	return v
}

// Reflection reflects v across the plane with the unit normal n:
// v - 2·dot(v,n)·n.
func (v Vector3[T]) Reflection(n Vector3[T]) Vector3[T] {
	if assert.BadOn {
		assert.Bad(n.IsNormalized(), "vector.Vector3.Reflection", "normal is not normalized")
	}
	dd := 2 * v.Dot(n)
	return Vector3[T]{v.X - dd*n.X, v.Y - dd*n.Y, v.Z - dd*n.Z}
}

// GetOrthogonal returns some vector orthogonal to v.
//
// With two or more non-zero components it returns (y·z/2, x·z/2, -x·y);
// with exactly one it moves that component to the next axis.
// The zero vector has no orthogonal and is reported as a warning.
func (v Vector3[T]) GetOrthogonal() Vector3[T] {
	c := v.Array()
	nonZeros, last := 0, 0
	for i, x := range c {
		if x != 0 {
			nonZeros++
			last = i
		}
	}
	assert.Warn(nonZeros > 0, "vector.Vector3.GetOrthogonal", "zero vector has no orthogonal")

	if nonZeros >= 2 {
		return Vector3[T]{v.Y * v.Z / 2, v.X * v.Z / 2, -v.X * v.Y}
	}
	var r [3]T
	r[(last+1)%3] = c[last]
	return Vector3[T]{r[0], r[1], r[2]}
}

// Product returns x·y·z.
func (v Vector3[T]) Product() T {
	return v.X * v.Y * v.Z
}

// Sum returns x+y+z.
func (v Vector3[T]) Sum() T {
	return v.X + v.Y + v.Z
}

// ---------- predicates ----------

// Equal reports exact component equality.
func (v Vector3[T]) Equal(o Vector3[T]) bool {
	return v == o
}

// Close reports whether every component is within scalar.Epsilon of o's.
func (v Vector3[T]) Close(o Vector3[T]) bool {
	return v.CloseEps(o, scalar.EpsilonOf[T]())
}

// CloseEps reports whether every component is within eps of o's.
func (v Vector3[T]) CloseEps(o Vector3[T], eps T) bool {
	return scalar.CloseEps(v.X, o.X, eps) &&
		scalar.CloseEps(v.Y, o.Y, eps) &&
		scalar.CloseEps(v.Z, o.Z, eps)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3[T]) IsFinite() bool {
	return scalar.IsFinite(v.X) && scalar.IsFinite(v.Y) && scalar.IsFinite(v.Z)
}

// IsZero reports whether every component is within scalar.Epsilon of 0.
func (v Vector3[T]) IsZero() bool {
	c := v.Array()
	return isZero(c[:])
}

// Orthogonal3 reports whether dot(a, b) is within scalar.Epsilon of 0.
func Orthogonal3[T scalar.Number](a, b Vector3[T]) bool {
	return scalar.Close(a.Dot(b), 0)
}

// Collinear3 reports whether a and b lie on one line through the origin.
// A component that is zero in exactly one of them makes them not collinear.
func Collinear3[T scalar.Number](a, b Vector3[T]) bool {
	ca, cb := a.Array(), b.Array()
	return collinear(ca[:], cb[:])
}

// Compare orders v and o lexicographically by X, then Y, then Z.
// It returns -1, 0 or +1 and suits slices.SortFunc.
func (v Vector3[T]) Compare(o Vector3[T]) int {
	a, b := v.Array(), o.Array()
	return compare(a[:], b[:])
}

// Less reports whether v sorts before o.
func (v Vector3[T]) Less(o Vector3[T]) bool {
	return v.Compare(o) < 0
}

// String formats v as "(x, y, z)".
func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

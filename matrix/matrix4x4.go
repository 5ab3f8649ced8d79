// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/scalar"
	"github.com/katalvlaran/yama/vector"
)

// Matrix4x4 is a homogeneous transform stored column by column. Unlike
// Matrix3x4 its last row is explicit, so it can hold projections.
type Matrix4x4[T scalar.Number] struct {
	M00, M10, M20, M30 T
	M01, M11, M21, M31 T
	M02, M12, M22, M32 T
	M03, M13, M23, M33 T
}

// Columns4 builds a matrix from scalars listed in storage order.
func Columns4[T scalar.Number](
	m00, m10, m20, m30,
	m01, m11, m21, m31,
	m02, m12, m22, m32,
	m03, m13, m23, m33 T,
) Matrix4x4[T] {
	return Matrix4x4[T]{
		m00, m10, m20, m30,
		m01, m11, m21, m31,
		m02, m12, m22, m32,
		m03, m13, m23, m33,
	}
}

// Rows4 builds a matrix from scalars listed row by row.
func Rows4[T scalar.Number](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) Matrix4x4[T] {
	return Matrix4x4[T]{
		m00, m10, m20, m30,
		m01, m11, m21, m31,
		m02, m12, m22, m32,
		m03, m13, m23, m33,
	}
}

// FromColumns4 builds a matrix whose columns are c0..c3.
func FromColumns4[T scalar.Number](c0, c1, c2, c3 vector.Vector4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{
		c0.X, c0.Y, c0.Z, c0.W,
		c1.X, c1.Y, c1.Z, c1.W,
		c2.X, c2.Y, c2.Z, c2.W,
		c3.X, c3.Y, c3.Z, c3.W,
	}
}

// FromLinear4 embeds the linear transform l with no translation.
func FromLinear4[T scalar.Number](l Matrix3x3[T]) Matrix4x4[T] {
	return FromLinear34(l).Homogeneous()
}

// Uniform4 returns a matrix with every element set to s.
func Uniform4[T scalar.Number](s T) Matrix4x4[T] {
	var m Matrix4x4[T]
	ewFill(m.data(), s)
	return m
}

// Zero4 returns the zero matrix.
func Zero4[T scalar.Number]() Matrix4x4[T] {
	return Matrix4x4[T]{}
}

// Identity4 returns the identity matrix.
func Identity4[T scalar.Number]() Matrix4x4[T] {
	return Matrix4x4[T]{M00: 1, M11: 1, M22: 1, M33: 1}
}

// FromSlice4 copies the first 16 scalars of s, read in storage order.
func FromSlice4[T scalar.Number](s []T) Matrix4x4[T] {
	assert.Length(len(s), 16, "matrix.FromSlice4")
	var m Matrix4x4[T]
	copy(m.data(), s)
	return m
}

// AttachToSlice4 returns a matrix aliasing the first 16 scalars of s.
func AttachToSlice4[T scalar.Number](s []T) *Matrix4x4[T] {
	assert.Length(len(s), 16, "matrix.AttachToSlice4")
	return (*Matrix4x4[T])(unsafe.Pointer(unsafe.SliceData(s)))
}

// AttachToArray4 reinterprets s as len(s)/16 consecutive matrices without
// copying. len(s) must be a multiple of 16.
func AttachToArray4[T scalar.Number](s []T) []Matrix4x4[T] {
	assert.Critical(len(s)%16 == 0, "matrix.AttachToArray4", "buffer length is not a multiple of 16")
	if len(s) < 16 {
		return nil
	}
	return unsafe.Slice((*Matrix4x4[T])(unsafe.Pointer(unsafe.SliceData(s))), len(s)/16)
}

// Cast4 converts every element to U with Go conversion rules.
func Cast4[U, T scalar.Number](m Matrix4x4[T]) Matrix4x4[U] {
	var r Matrix4x4[U]
	dst, src := r.data(), m.data()
	for i := range dst {
		dst[i] = U(src[i])
	}
	return r
}

func (m *Matrix4x4[T]) data() []T {
	return (*[16]T)(unsafe.Pointer(m))[:]
}

// ---------- access ----------

// At returns the element at storage index i (column-major).
func (m Matrix4x4[T]) At(i int) T {
	assert.Index(i, 16, "matrix.Matrix4x4.At")
	return m.data()[i]
}

// Set assigns the element at storage index i and returns m.
func (m *Matrix4x4[T]) Set(i int, s T) *Matrix4x4[T] {
	assert.Index(i, 16, "matrix.Matrix4x4.Set")
	m.data()[i] = s
	return m
}

// M returns the element at row, col.
func (m Matrix4x4[T]) M(row, col int) T {
	return m.Column(col).At(row)
}

// SetM assigns the element at row, col and returns m.
func (m *Matrix4x4[T]) SetM(row, col int, s T) *Matrix4x4[T] {
	m.Column(col).Set(row, s)
	return m
}

// Slice returns the 16 elements in storage order, aliasing m.
func (m *Matrix4x4[T]) Slice() []T {
	return m.data()
}

// Front returns the first stored element, M00.
func (m Matrix4x4[T]) Front() T { return m.M00 }

// Back returns the last stored element, M33.
func (m Matrix4x4[T]) Back() T { return m.M33 }

// Column returns column i as a vector aliasing m.
func (m *Matrix4x4[T]) Column(i int) *vector.Vector4[T] {
	assert.Index(i, 4, "matrix.Matrix4x4.Column")
	return vector.AttachToSlice4(m.data()[i*4:])
}

// ColumnVector2 returns the two elements of column col starting at row
// offset, aliasing m.
func (m *Matrix4x4[T]) ColumnVector2(col, offset int) *vector.Vector2[T] {
	assert.Bad(offset+2 <= 4, "matrix.Matrix4x4.ColumnVector2", "view reaches past the end of the column")
	return vector.AttachToSlice2(m.Column(col).Slice()[offset:])
}

// ColumnVector3 returns the three elements of column col starting at row
// offset, aliasing m.
func (m *Matrix4x4[T]) ColumnVector3(col, offset int) *vector.Vector3[T] {
	assert.Bad(offset+3 <= 4, "matrix.Matrix4x4.ColumnVector3", "view reaches past the end of the column")
	return vector.AttachToSlice3(m.Column(col).Slice()[offset:])
}

// RowVector returns a copy of row i.
func (m Matrix4x4[T]) RowVector(i int) vector.Vector4[T] {
	return vector.New4(m.M(i, 0), m.M(i, 1), m.M(i, 2), m.M(i, 3))
}

// RowVector2 returns a copy of two elements of row starting at column
// offset.
func (m Matrix4x4[T]) RowVector2(row, offset int) vector.Vector2[T] {
	assert.Bad(offset+2 <= 4, "matrix.Matrix4x4.RowVector2", "view reaches past the end of the row")
	return vector.New2(m.M(row, offset), m.M(row, offset+1))
}

// RowVector3 returns a copy of three elements of row starting at column
// offset.
func (m Matrix4x4[T]) RowVector3(row, offset int) vector.Vector3[T] {
	assert.Bad(offset+3 <= 4, "matrix.Matrix4x4.RowVector3", "view reaches past the end of the row")
	return vector.New3(m.M(row, offset), m.M(row, offset+1), m.M(row, offset+2))
}

// MainDiagonal returns (M00, M11, M22, M33).
func (m Matrix4x4[T]) MainDiagonal() vector.Vector4[T] {
	return vector.New4(m.M00, m.M11, m.M22, m.M33)
}

// MainDiagonal2 returns two diagonal elements starting at (offset, offset).
func (m Matrix4x4[T]) MainDiagonal2(offset int) vector.Vector2[T] {
	assert.Bad(offset+2 <= 4, "matrix.Matrix4x4.MainDiagonal2", "view reaches past the end of the diagonal")
	return vector.New2(m.M(offset, offset), m.M(offset+1, offset+1))
}

// MainDiagonal3 returns three diagonal elements starting at (offset, offset).
func (m Matrix4x4[T]) MainDiagonal3(offset int) vector.Vector3[T] {
	assert.Bad(offset+3 <= 4, "matrix.Matrix4x4.MainDiagonal3", "view reaches past the end of the diagonal")
	return vector.New3(m.M(offset, offset), m.M(offset+1, offset+1), m.M(offset+2, offset+2))
}

// Linear returns the upper-left 3×3 block.
func (m Matrix4x4[T]) Linear() Matrix3x3[T] {
	return m.Affine().Linear()
}

// Affine returns the upper three rows. The last row is dropped, so this
// loses information for projective matrices.
func (m Matrix4x4[T]) Affine() Matrix3x4[T] {
	return Matrix3x4[T]{
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
		m.M03, m.M13, m.M23,
	}
}

// ---------- element-wise arithmetic ----------

// Add returns m + o.
func (m Matrix4x4[T]) Add(o Matrix4x4[T]) Matrix4x4[T] {
	ewAdd(m.data(), m.data(), o.data())
	return m
}

// Sub returns m - o.
func (m Matrix4x4[T]) Sub(o Matrix4x4[T]) Matrix4x4[T] {
	ewSub(m.data(), m.data(), o.data())
	return m
}

// Neg returns -m.
func (m Matrix4x4[T]) Neg() Matrix4x4[T] {
	ewNeg(m.data(), m.data())
	return m
}

// Scale returns m·s.
func (m Matrix4x4[T]) Scale(s T) Matrix4x4[T] {
	ewScale(m.data(), m.data(), s)
	return m
}

// DivScalar returns m/s. Dividing by zero is a warn-level violation.
func (m Matrix4x4[T]) DivScalar(s T) Matrix4x4[T] {
	ewDivScalar(m.data(), m.data(), s, "matrix.Matrix4x4.DivScalar")
	return m
}

// ScalarDiv returns the matrix of s/m[i].
func (m Matrix4x4[T]) ScalarDiv(s T) Matrix4x4[T] {
	ewScalarDiv(m.data(), m.data(), s)
	return m
}

// MulComponents returns the element-wise product of m and o.
func (m Matrix4x4[T]) MulComponents(o Matrix4x4[T]) Matrix4x4[T] {
	ewMul(m.data(), m.data(), o.data())
	return m
}

// DivComponents returns the element-wise quotient of m and o.
func (m Matrix4x4[T]) DivComponents(o Matrix4x4[T]) Matrix4x4[T] {
	ewDiv(m.data(), m.data(), o.data(), "matrix.Matrix4x4.DivComponents")
	return m
}

// Abs returns the element-wise absolute value.
func (m Matrix4x4[T]) Abs() Matrix4x4[T] {
	ewAbs(m.data(), m.data())
	return m
}

// AddAssign sets m to m + o and returns m.
func (m *Matrix4x4[T]) AddAssign(o Matrix4x4[T]) *Matrix4x4[T] {
	*m = m.Add(o)
	return m
}

// SubAssign sets m to m - o and returns m.
func (m *Matrix4x4[T]) SubAssign(o Matrix4x4[T]) *Matrix4x4[T] {
	*m = m.Sub(o)
	return m
}

// ScaleAssign sets m to m·s and returns m.
func (m *Matrix4x4[T]) ScaleAssign(s T) *Matrix4x4[T] {
	*m = m.Scale(s)
	return m
}

// DivScalarAssign sets m to m/s and returns m.
func (m *Matrix4x4[T]) DivScalarAssign(s T) *Matrix4x4[T] {
	*m = m.DivScalar(s)
	return m
}

// ---------- products ----------

// Mul returns the matrix product m·o: o is applied first, then m.
func (m Matrix4x4[T]) Mul(o Matrix4x4[T]) Matrix4x4[T] {
	var r Matrix4x4[T]
	for c := 0; c < 4; c++ {
		*r.Column(c) = m.MulVec(*o.Column(c))
	}
	return r
}

// MulAssign sets m to m·o and returns m.
func (m *Matrix4x4[T]) MulAssign(o Matrix4x4[T]) *Matrix4x4[T] {
	*m = m.Mul(o)
	return m
}

// MulVec returns m·v.
func (m Matrix4x4[T]) MulVec(v vector.Vector4[T]) vector.Vector4[T] {
	return vector.Vector4[T]{
		X: m.M00*v.X + m.M01*v.Y + m.M02*v.Z + m.M03*v.W,
		Y: m.M10*v.X + m.M11*v.Y + m.M12*v.Z + m.M13*v.W,
		Z: m.M20*v.X + m.M21*v.Y + m.M22*v.Z + m.M23*v.W,
		W: m.M30*v.X + m.M31*v.Y + m.M32*v.Z + m.M33*v.W,
	}
}

// TransformCoord applies m to the point (v, 1) and divides by the
// resulting w. A zero w is not checked and yields Inf or NaN.
func (m Matrix4x4[T]) TransformCoord(v vector.Vector3[T]) vector.Vector3[T] {
	p := m.MulVec(v.XYZW(1))
	return vector.Vector3[T]{X: p.X / p.W, Y: p.Y / p.W, Z: p.Z / p.W}
}

// TransformNormal applies only the upper-left 3×3 block to the direction v.
func (m Matrix4x4[T]) TransformNormal(v vector.Vector3[T]) vector.Vector3[T] {
	return m.Linear().MulVec(v)
}

// ---------- structure ----------

// Transpose returns the transposed matrix.
func (m Matrix4x4[T]) Transpose() Matrix4x4[T] {
	return Rows4(
		m.M00, m.M10, m.M20, m.M30,
		m.M01, m.M11, m.M21, m.M31,
		m.M02, m.M12, m.M22, m.M32,
		m.M03, m.M13, m.M23, m.M33,
	)
}

// cofactors splits m into the quantities shared by Determinant and Inverse.
// a..d are the upper three rows of the columns, x..w the bottom row.
func (m Matrix4x4[T]) cofactors() (a, b, c, d, s, t, u, v vector.Vector3[T], x, y, z, w T) {
	a = *m.Column(0).XYZ()
	b = *m.Column(1).XYZ()
	c = *m.Column(2).XYZ()
	d = *m.Column(3).XYZ()
	x, y, z, w = m.M30, m.M31, m.M32, m.M33

	s = a.Cross(b)
	t = c.Cross(d)
	u = a.Scale(y).Sub(b.Scale(x))
	v = c.Scale(w).Sub(d.Scale(z))
	return
}

// Determinant returns det(m).
func (m Matrix4x4[T]) Determinant() T {
	_, _, _, _, s, t, u, v, _, _, _, _ := m.cofactors()
	return s.Dot(v) + t.Dot(u)
}

// Inverse returns the inverse of m and its determinant.
//
// Implementation:
//   - Stage 1: split the columns into 3-vectors a, b, c, d and the bottom
//     row x, y, z, w.
//   - Stage 2: with s = a×b, t = c×d, u = y·a - x·b, v = w·c - z·d the
//     determinant is s·v + t·u.
//   - Stage 3: the rows of the adjugate are built from cross products of
//     those vectors and divided by the determinant.
//
// A singular m gives det == 0 and a non-finite matrix; no check is made.
func (m Matrix4x4[T]) Inverse() (Matrix4x4[T], T) {
	a, b, c, d, s, t, u, v, x, y, z, w := m.cofactors()
	det := s.Dot(v) + t.Dot(u)

	r0 := b.Cross(v).Add(t.Scale(y))
	r1 := v.Cross(a).Sub(t.Scale(x))
	r2 := d.Cross(u).Add(s.Scale(w))
	r3 := u.Cross(c).Sub(s.Scale(z))

	inv := Rows4(
		r0.X, r0.Y, r0.Z, -b.Dot(t),
		r1.X, r1.Y, r1.Z, a.Dot(t),
		r2.X, r2.Y, r2.Z, -d.Dot(s),
		r3.X, r3.Y, r3.Z, c.Dot(s),
	)
	// no det == 0 check
	for i, e := range inv.data() {
		inv.data()[i] = e / det
	}
	return inv, det
}

// Invert replaces m with its inverse and returns the determinant.
func (m *Matrix4x4[T]) Invert() T {
	inv, det := m.Inverse()
	*m = inv
	return det
}

// ---------- comparison ----------

// Equal reports exact element-wise equality.
func (m Matrix4x4[T]) Equal(o Matrix4x4[T]) bool {
	return ewEqual(m.data(), o.data())
}

// Close reports element-wise equality within scalar.Epsilon.
func (m Matrix4x4[T]) Close(o Matrix4x4[T]) bool {
	return m.CloseEps(o, scalar.EpsilonOf[T]())
}

// CloseEps reports element-wise equality within eps.
func (m Matrix4x4[T]) CloseEps(o Matrix4x4[T], eps T) bool {
	return ewCloseEps(m.data(), o.data(), eps)
}

// IsFinite reports whether no element is NaN or infinite.
func (m Matrix4x4[T]) IsFinite() bool {
	return ewIsFinite(m.data())
}

// String renders the four columns.
func (m Matrix4x4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", *m.Column(0), *m.Column(1), *m.Column(2), *m.Column(3))
}

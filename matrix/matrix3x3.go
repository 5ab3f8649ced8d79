// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/scalar"
	"github.com/katalvlaran/yama/vector"
)

// Matrix3x3 is a 3×3 linear transform stored column by column.
type Matrix3x3[T scalar.Number] struct {
	M00, M10, M20 T
	M01, M11, M21 T
	M02, M12, M22 T
}

// Columns3 builds a matrix from scalars listed in storage order:
// first column top to bottom, then the second, then the third.
func Columns3[T scalar.Number](
	m00, m10, m20,
	m01, m11, m21,
	m02, m12, m22 T,
) Matrix3x3[T] {
	return Matrix3x3[T]{
		m00, m10, m20,
		m01, m11, m21,
		m02, m12, m22,
	}
}

// Rows3 builds a matrix from scalars listed row by row, the way the matrix
// is written on paper.
func Rows3[T scalar.Number](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 T,
) Matrix3x3[T] {
	return Matrix3x3[T]{
		m00, m10, m20,
		m01, m11, m21,
		m02, m12, m22,
	}
}

// FromColumns3 builds a matrix whose columns are c0, c1 and c2.
func FromColumns3[T scalar.Number](c0, c1, c2 vector.Vector3[T]) Matrix3x3[T] {
	return Matrix3x3[T]{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Uniform3 returns a matrix with every element set to s.
func Uniform3[T scalar.Number](s T) Matrix3x3[T] {
	var m Matrix3x3[T]
	ewFill(m.data(), s)
	return m
}

// Zero3 returns the zero matrix.
func Zero3[T scalar.Number]() Matrix3x3[T] {
	return Matrix3x3[T]{}
}

// Identity3 returns the identity matrix.
func Identity3[T scalar.Number]() Matrix3x3[T] {
	return Matrix3x3[T]{M00: 1, M11: 1, M22: 1}
}

// FromSlice3 copies the first 9 scalars of s, read in storage order.
func FromSlice3[T scalar.Number](s []T) Matrix3x3[T] {
	assert.Length(len(s), 9, "matrix.FromSlice3")
	var m Matrix3x3[T]
	copy(m.data(), s)
	return m
}

// AttachToSlice3 returns a matrix aliasing the first 9 scalars of s.
func AttachToSlice3[T scalar.Number](s []T) *Matrix3x3[T] {
	assert.Length(len(s), 9, "matrix.AttachToSlice3")
	return (*Matrix3x3[T])(unsafe.Pointer(unsafe.SliceData(s)))
}

// AttachToArray3 reinterprets s as len(s)/9 consecutive matrices without
// copying. len(s) must be a multiple of 9.
func AttachToArray3[T scalar.Number](s []T) []Matrix3x3[T] {
	assert.Critical(len(s)%9 == 0, "matrix.AttachToArray3", "buffer length is not a multiple of 9")
	if len(s) < 9 {
		return nil
	}
	return unsafe.Slice((*Matrix3x3[T])(unsafe.Pointer(unsafe.SliceData(s))), len(s)/9)
}

// Cast3 converts every element to U with Go conversion rules.
func Cast3[U, T scalar.Number](m Matrix3x3[T]) Matrix3x3[U] {
	var r Matrix3x3[U]
	dst, src := r.data(), m.data()
	for i := range dst {
		dst[i] = U(src[i])
	}
	return r
}

func (m *Matrix3x3[T]) data() []T {
	return (*[9]T)(unsafe.Pointer(m))[:]
}

// ---------- access ----------

// At returns the element at storage index i (column-major).
func (m Matrix3x3[T]) At(i int) T {
	assert.Index(i, 9, "matrix.Matrix3x3.At")
	return m.data()[i]
}

// Set assigns the element at storage index i and returns m.
func (m *Matrix3x3[T]) Set(i int, s T) *Matrix3x3[T] {
	assert.Index(i, 9, "matrix.Matrix3x3.Set")
	m.data()[i] = s
	return m
}

// M returns the element at row, col.
func (m Matrix3x3[T]) M(row, col int) T {
	return m.Column(col).At(row)
}

// SetM assigns the element at row, col and returns m.
func (m *Matrix3x3[T]) SetM(row, col int, s T) *Matrix3x3[T] {
	m.Column(col).Set(row, s)
	return m
}

// Slice returns the 9 elements in storage order, aliasing m.
func (m *Matrix3x3[T]) Slice() []T {
	return m.data()
}

// Front returns the first stored element, M00.
func (m Matrix3x3[T]) Front() T { return m.M00 }

// Back returns the last stored element, M22.
func (m Matrix3x3[T]) Back() T { return m.M22 }

// Column returns column i as a vector aliasing m.
func (m *Matrix3x3[T]) Column(i int) *vector.Vector3[T] {
	assert.Index(i, 3, "matrix.Matrix3x3.Column")
	return vector.AttachToSlice3(m.data()[i*3:])
}

// ColumnVector2 returns the two elements of column col starting at row
// offset, aliasing m.
func (m *Matrix3x3[T]) ColumnVector2(col, offset int) *vector.Vector2[T] {
	assert.Bad(offset+2 <= 3, "matrix.Matrix3x3.ColumnVector2", "view reaches past the end of the column")
	return vector.AttachToSlice2(m.Column(col).Slice()[offset:])
}

// RowVector returns a copy of row i.
func (m Matrix3x3[T]) RowVector(i int) vector.Vector3[T] {
	return vector.New3(m.M(i, 0), m.M(i, 1), m.M(i, 2))
}

// RowVector2 returns a copy of two elements of row starting at column
// offset.
func (m Matrix3x3[T]) RowVector2(row, offset int) vector.Vector2[T] {
	assert.Bad(offset+2 <= 3, "matrix.Matrix3x3.RowVector2", "view reaches past the end of the row")
	return vector.New2(m.M(row, offset), m.M(row, offset+1))
}

// MainDiagonal returns (M00, M11, M22).
func (m Matrix3x3[T]) MainDiagonal() vector.Vector3[T] {
	return vector.New3(m.M00, m.M11, m.M22)
}

// MainDiagonal2 returns two diagonal elements starting at (offset, offset).
func (m Matrix3x3[T]) MainDiagonal2(offset int) vector.Vector2[T] {
	assert.Bad(offset+2 <= 3, "matrix.Matrix3x3.MainDiagonal2", "view reaches past the end of the diagonal")
	return vector.New2(m.M(offset, offset), m.M(offset+1, offset+1))
}

// ---------- element-wise arithmetic ----------

// Add returns m + o.
func (m Matrix3x3[T]) Add(o Matrix3x3[T]) Matrix3x3[T] {
	ewAdd(m.data(), m.data(), o.data())
	return m
}

// Sub returns m - o.
func (m Matrix3x3[T]) Sub(o Matrix3x3[T]) Matrix3x3[T] {
	ewSub(m.data(), m.data(), o.data())
	return m
}

// Neg returns -m.
func (m Matrix3x3[T]) Neg() Matrix3x3[T] {
	ewNeg(m.data(), m.data())
	return m
}

// Scale returns m·s.
func (m Matrix3x3[T]) Scale(s T) Matrix3x3[T] {
	ewScale(m.data(), m.data(), s)
	return m
}

// DivScalar returns m/s. Dividing by zero is a warn-level violation.
func (m Matrix3x3[T]) DivScalar(s T) Matrix3x3[T] {
	ewDivScalar(m.data(), m.data(), s, "matrix.Matrix3x3.DivScalar")
	return m
}

// ScalarDiv returns the matrix of s/m[i].
func (m Matrix3x3[T]) ScalarDiv(s T) Matrix3x3[T] {
	ewScalarDiv(m.data(), m.data(), s)
	return m
}

// MulComponents returns the element-wise product of m and o.
func (m Matrix3x3[T]) MulComponents(o Matrix3x3[T]) Matrix3x3[T] {
	ewMul(m.data(), m.data(), o.data())
	return m
}

// DivComponents returns the element-wise quotient of m and o.
func (m Matrix3x3[T]) DivComponents(o Matrix3x3[T]) Matrix3x3[T] {
	ewDiv(m.data(), m.data(), o.data(), "matrix.Matrix3x3.DivComponents")
	return m
}

// Abs returns the element-wise absolute value.
func (m Matrix3x3[T]) Abs() Matrix3x3[T] {
	ewAbs(m.data(), m.data())
	return m
}

// AddAssign sets m to m + o and returns m.
func (m *Matrix3x3[T]) AddAssign(o Matrix3x3[T]) *Matrix3x3[T] {
	*m = m.Add(o)
	return m
}

// SubAssign sets m to m - o and returns m.
func (m *Matrix3x3[T]) SubAssign(o Matrix3x3[T]) *Matrix3x3[T] {
	*m = m.Sub(o)
	return m
}

// ScaleAssign sets m to m·s and returns m.
func (m *Matrix3x3[T]) ScaleAssign(s T) *Matrix3x3[T] {
	*m = m.Scale(s)
	return m
}

// DivScalarAssign sets m to m/s and returns m.
func (m *Matrix3x3[T]) DivScalarAssign(s T) *Matrix3x3[T] {
	*m = m.DivScalar(s)
	return m
}

// ---------- products ----------

// Mul returns the matrix product m·o.
func (m Matrix3x3[T]) Mul(o Matrix3x3[T]) Matrix3x3[T] {
	return Matrix3x3[T]{
		m.M00*o.M00 + m.M01*o.M10 + m.M02*o.M20,
		m.M10*o.M00 + m.M11*o.M10 + m.M12*o.M20,
		m.M20*o.M00 + m.M21*o.M10 + m.M22*o.M20,

		m.M00*o.M01 + m.M01*o.M11 + m.M02*o.M21,
		m.M10*o.M01 + m.M11*o.M11 + m.M12*o.M21,
		m.M20*o.M01 + m.M21*o.M11 + m.M22*o.M21,

		m.M00*o.M02 + m.M01*o.M12 + m.M02*o.M22,
		m.M10*o.M02 + m.M11*o.M12 + m.M12*o.M22,
		m.M20*o.M02 + m.M21*o.M12 + m.M22*o.M22,
	}
}

// MulAssign sets m to m·o and returns m.
func (m *Matrix3x3[T]) MulAssign(o Matrix3x3[T]) *Matrix3x3[T] {
	*m = m.Mul(o)
	return m
}

// MulVec returns m·v.
func (m Matrix3x3[T]) MulVec(v vector.Vector3[T]) vector.Vector3[T] {
	return vector.Vector3[T]{
		X: m.M00*v.X + m.M01*v.Y + m.M02*v.Z,
		Y: m.M10*v.X + m.M11*v.Y + m.M12*v.Z,
		Z: m.M20*v.X + m.M21*v.Y + m.M22*v.Z,
	}
}

// TransformNormal returns m·v. For a 3×3 matrix it is the same as MulVec.
func (m Matrix3x3[T]) TransformNormal(v vector.Vector3[T]) vector.Vector3[T] {
	return m.MulVec(v)
}

// ---------- structure ----------

// Transpose returns the transposed matrix.
func (m Matrix3x3[T]) Transpose() Matrix3x3[T] {
	return Rows3(
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
	)
}

// Determinant returns det(m).
func (m Matrix3x3[T]) Determinant() T {
	a, b, c := *m.Column(0), *m.Column(1), *m.Column(2)
	return a.Cross(b).Dot(c)
}

// Inverse returns the inverse of m and its determinant.
//
// Implementation:
//   - Rows of the inverse are b×c, c×a and a×b for columns a, b, c.
//   - Each is divided by det = (a×b)·c.
//
// A singular m gives det == 0 and a non-finite matrix; no check is made.
func (m Matrix3x3[T]) Inverse() (Matrix3x3[T], T) {
	a, b, c := *m.Column(0), *m.Column(1), *m.Column(2)
	r0 := b.Cross(c)
	r1 := c.Cross(a)
	r2 := a.Cross(b)
	det := r2.Dot(c)

	return Rows3(
		r0.X/det, r0.Y/det, r0.Z/det,
		r1.X/det, r1.Y/det, r1.Z/det,
		r2.X/det, r2.Y/det, r2.Z/det,
	), det
}

// Invert replaces m with its inverse and returns the determinant.
func (m *Matrix3x3[T]) Invert() T {
	inv, det := m.Inverse()
	*m = inv
	return det
}

// ---------- comparison ----------

// Equal reports exact element-wise equality.
func (m Matrix3x3[T]) Equal(o Matrix3x3[T]) bool {
	return ewEqual(m.data(), o.data())
}

// Close reports element-wise equality within scalar.Epsilon.
func (m Matrix3x3[T]) Close(o Matrix3x3[T]) bool {
	return m.CloseEps(o, scalar.EpsilonOf[T]())
}

// CloseEps reports element-wise equality within eps.
func (m Matrix3x3[T]) CloseEps(o Matrix3x3[T], eps T) bool {
	return ewCloseEps(m.data(), o.data(), eps)
}

// IsFinite reports whether no element is NaN or infinite.
func (m Matrix3x3[T]) IsFinite() bool {
	return ewIsFinite(m.data())
}

// String renders the columns: ((m00, m10, m20), (m01, ...), (...)).
func (m Matrix3x3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", *m.Column(0), *m.Column(1), *m.Column(2))
}

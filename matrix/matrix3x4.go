// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/scalar"
	"github.com/katalvlaran/yama/vector"
)

// Matrix3x4 is an affine transform: three rows, four columns, stored column
// by column. Column 3 is the translation. Products and inversion treat it
// as a 4×4 matrix whose last row is [0 0 0 1].
type Matrix3x4[T scalar.Number] struct {
	M00, M10, M20 T
	M01, M11, M21 T
	M02, M12, M22 T
	M03, M13, M23 T
}

// Columns34 builds a matrix from scalars listed in storage order.
func Columns34[T scalar.Number](
	m00, m10, m20,
	m01, m11, m21,
	m02, m12, m22,
	m03, m13, m23 T,
) Matrix3x4[T] {
	return Matrix3x4[T]{
		m00, m10, m20,
		m01, m11, m21,
		m02, m12, m22,
		m03, m13, m23,
	}
}

// Rows34 builds a matrix from scalars listed row by row.
func Rows34[T scalar.Number](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23 T,
) Matrix3x4[T] {
	return Matrix3x4[T]{
		m00, m10, m20,
		m01, m11, m21,
		m02, m12, m22,
		m03, m13, m23,
	}
}

// FromColumns34 builds a matrix whose columns are c0..c3.
func FromColumns34[T scalar.Number](c0, c1, c2, c3 vector.Vector3[T]) Matrix3x4[T] {
	return Matrix3x4[T]{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
		c3.X, c3.Y, c3.Z,
	}
}

// FromLinear34 returns the affine matrix with linear part l and no
// translation.
func FromLinear34[T scalar.Number](l Matrix3x3[T]) Matrix3x4[T] {
	return Matrix3x4[T]{
		l.M00, l.M10, l.M20,
		l.M01, l.M11, l.M21,
		l.M02, l.M12, l.M22,
		0, 0, 0,
	}
}

// Uniform34 returns a matrix with every element set to s.
func Uniform34[T scalar.Number](s T) Matrix3x4[T] {
	var m Matrix3x4[T]
	ewFill(m.data(), s)
	return m
}

// Zero34 returns the zero matrix.
func Zero34[T scalar.Number]() Matrix3x4[T] {
	return Matrix3x4[T]{}
}

// Identity34 returns the identity transform.
func Identity34[T scalar.Number]() Matrix3x4[T] {
	return Matrix3x4[T]{M00: 1, M11: 1, M22: 1}
}

// FromSlice34 copies the first 12 scalars of s, read in storage order.
func FromSlice34[T scalar.Number](s []T) Matrix3x4[T] {
	assert.Length(len(s), 12, "matrix.FromSlice34")
	var m Matrix3x4[T]
	copy(m.data(), s)
	return m
}

// AttachToSlice34 returns a matrix aliasing the first 12 scalars of s.
func AttachToSlice34[T scalar.Number](s []T) *Matrix3x4[T] {
	assert.Length(len(s), 12, "matrix.AttachToSlice34")
	return (*Matrix3x4[T])(unsafe.Pointer(unsafe.SliceData(s)))
}

// AttachToArray34 reinterprets s as len(s)/12 consecutive matrices without
// copying. len(s) must be a multiple of 12.
func AttachToArray34[T scalar.Number](s []T) []Matrix3x4[T] {
	assert.Critical(len(s)%12 == 0, "matrix.AttachToArray34", "buffer length is not a multiple of 12")
	if len(s) < 12 {
		return nil
	}
	return unsafe.Slice((*Matrix3x4[T])(unsafe.Pointer(unsafe.SliceData(s))), len(s)/12)
}

// Cast34 converts every element to U with Go conversion rules.
func Cast34[U, T scalar.Number](m Matrix3x4[T]) Matrix3x4[U] {
	var r Matrix3x4[U]
	dst, src := r.data(), m.data()
	for i := range dst {
		dst[i] = U(src[i])
	}
	return r
}

func (m *Matrix3x4[T]) data() []T {
	return (*[12]T)(unsafe.Pointer(m))[:]
}

// ---------- access ----------

// At returns the element at storage index i (column-major).
func (m Matrix3x4[T]) At(i int) T {
	assert.Index(i, 12, "matrix.Matrix3x4.At")
	return m.data()[i]
}

// Set assigns the element at storage index i and returns m.
func (m *Matrix3x4[T]) Set(i int, s T) *Matrix3x4[T] {
	assert.Index(i, 12, "matrix.Matrix3x4.Set")
	m.data()[i] = s
	return m
}

// M returns the element at row, col.
func (m Matrix3x4[T]) M(row, col int) T {
	return m.Column(col).At(row)
}

// SetM assigns the element at row, col and returns m.
func (m *Matrix3x4[T]) SetM(row, col int, s T) *Matrix3x4[T] {
	m.Column(col).Set(row, s)
	return m
}

// Slice returns the 12 elements in storage order, aliasing m.
func (m *Matrix3x4[T]) Slice() []T {
	return m.data()
}

// Front returns the first stored element, M00.
func (m Matrix3x4[T]) Front() T { return m.M00 }

// Back returns the last stored element, M23.
func (m Matrix3x4[T]) Back() T { return m.M23 }

// Column returns column i as a vector aliasing m. Column 3 is the
// translation.
func (m *Matrix3x4[T]) Column(i int) *vector.Vector3[T] {
	assert.Index(i, 4, "matrix.Matrix3x4.Column")
	return vector.AttachToSlice3(m.data()[i*3:])
}

// Translation returns a copy of the translation column.
func (m Matrix3x4[T]) Translation() vector.Vector3[T] {
	return vector.New3(m.M03, m.M13, m.M23)
}

// ColumnVector2 returns the two elements of column col starting at row
// offset, aliasing m.
func (m *Matrix3x4[T]) ColumnVector2(col, offset int) *vector.Vector2[T] {
	assert.Bad(offset+2 <= 3, "matrix.Matrix3x4.ColumnVector2", "view reaches past the end of the column")
	return vector.AttachToSlice2(m.Column(col).Slice()[offset:])
}

// RowVector returns a copy of row i.
func (m Matrix3x4[T]) RowVector(i int) vector.Vector4[T] {
	return vector.New4(m.M(i, 0), m.M(i, 1), m.M(i, 2), m.M(i, 3))
}

// RowVector2 returns a copy of two elements of row starting at column
// offset.
func (m Matrix3x4[T]) RowVector2(row, offset int) vector.Vector2[T] {
	assert.Bad(offset+2 <= 4, "matrix.Matrix3x4.RowVector2", "view reaches past the end of the row")
	return vector.New2(m.M(row, offset), m.M(row, offset+1))
}

// RowVector3 returns a copy of three elements of row starting at column
// offset.
func (m Matrix3x4[T]) RowVector3(row, offset int) vector.Vector3[T] {
	assert.Bad(offset+3 <= 4, "matrix.Matrix3x4.RowVector3", "view reaches past the end of the row")
	return vector.New3(m.M(row, offset), m.M(row, offset+1), m.M(row, offset+2))
}

// MainDiagonal returns (M00, M11, M22).
func (m Matrix3x4[T]) MainDiagonal() vector.Vector3[T] {
	return vector.New3(m.M00, m.M11, m.M22)
}

// MainDiagonal2 returns two diagonal elements starting at (offset, offset).
func (m Matrix3x4[T]) MainDiagonal2(offset int) vector.Vector2[T] {
	assert.Bad(offset+2 <= 3, "matrix.Matrix3x4.MainDiagonal2", "view reaches past the end of the diagonal")
	return vector.New2(m.M(offset, offset), m.M(offset+1, offset+1))
}

// Linear returns the 3×3 linear part, dropping the translation.
func (m Matrix3x4[T]) Linear() Matrix3x3[T] {
	return Matrix3x3[T]{
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
	}
}

// Homogeneous returns the 4×4 matrix with m as its upper three rows and
// [0 0 0 1] as its last.
func (m Matrix3x4[T]) Homogeneous() Matrix4x4[T] {
	return Matrix4x4[T]{
		m.M00, m.M10, m.M20, 0,
		m.M01, m.M11, m.M21, 0,
		m.M02, m.M12, m.M22, 0,
		m.M03, m.M13, m.M23, 1,
	}
}

// ---------- element-wise arithmetic ----------

// Add returns m + o.
func (m Matrix3x4[T]) Add(o Matrix3x4[T]) Matrix3x4[T] {
	ewAdd(m.data(), m.data(), o.data())
	return m
}

// Sub returns m - o.
func (m Matrix3x4[T]) Sub(o Matrix3x4[T]) Matrix3x4[T] {
	ewSub(m.data(), m.data(), o.data())
	return m
}

// Neg returns -m.
func (m Matrix3x4[T]) Neg() Matrix3x4[T] {
	ewNeg(m.data(), m.data())
	return m
}

// Scale returns m·s.
func (m Matrix3x4[T]) Scale(s T) Matrix3x4[T] {
	ewScale(m.data(), m.data(), s)
	return m
}

// DivScalar returns m/s. Dividing by zero is a warn-level violation.
func (m Matrix3x4[T]) DivScalar(s T) Matrix3x4[T] {
	ewDivScalar(m.data(), m.data(), s, "matrix.Matrix3x4.DivScalar")
	return m
}

// ScalarDiv returns the matrix of s/m[i].
func (m Matrix3x4[T]) ScalarDiv(s T) Matrix3x4[T] {
	ewScalarDiv(m.data(), m.data(), s)
	return m
}

// MulComponents returns the element-wise product of m and o.
func (m Matrix3x4[T]) MulComponents(o Matrix3x4[T]) Matrix3x4[T] {
	ewMul(m.data(), m.data(), o.data())
	return m
}

// DivComponents returns the element-wise quotient of m and o.
func (m Matrix3x4[T]) DivComponents(o Matrix3x4[T]) Matrix3x4[T] {
	ewDiv(m.data(), m.data(), o.data(), "matrix.Matrix3x4.DivComponents")
	return m
}

// Abs returns the element-wise absolute value.
func (m Matrix3x4[T]) Abs() Matrix3x4[T] {
	ewAbs(m.data(), m.data())
	return m
}

// AddAssign sets m to m + o and returns m.
func (m *Matrix3x4[T]) AddAssign(o Matrix3x4[T]) *Matrix3x4[T] {
	*m = m.Add(o)
	return m
}

// SubAssign sets m to m - o and returns m.
func (m *Matrix3x4[T]) SubAssign(o Matrix3x4[T]) *Matrix3x4[T] {
	*m = m.Sub(o)
	return m
}

// ScaleAssign sets m to m·s and returns m.
func (m *Matrix3x4[T]) ScaleAssign(s T) *Matrix3x4[T] {
	*m = m.Scale(s)
	return m
}

// DivScalarAssign sets m to m/s and returns m.
func (m *Matrix3x4[T]) DivScalarAssign(s T) *Matrix3x4[T] {
	*m = m.DivScalar(s)
	return m
}

// ---------- products ----------

// Mul returns the affine product m·o: o is applied first, then m.
func (m Matrix3x4[T]) Mul(o Matrix3x4[T]) Matrix3x4[T] {
	return Matrix3x4[T]{
		m.M00*o.M00 + m.M01*o.M10 + m.M02*o.M20,
		m.M10*o.M00 + m.M11*o.M10 + m.M12*o.M20,
		m.M20*o.M00 + m.M21*o.M10 + m.M22*o.M20,

		m.M00*o.M01 + m.M01*o.M11 + m.M02*o.M21,
		m.M10*o.M01 + m.M11*o.M11 + m.M12*o.M21,
		m.M20*o.M01 + m.M21*o.M11 + m.M22*o.M21,

		m.M00*o.M02 + m.M01*o.M12 + m.M02*o.M22,
		m.M10*o.M02 + m.M11*o.M12 + m.M12*o.M22,
		m.M20*o.M02 + m.M21*o.M12 + m.M22*o.M22,

		m.M00*o.M03 + m.M01*o.M13 + m.M02*o.M23 + m.M03,
		m.M10*o.M03 + m.M11*o.M13 + m.M12*o.M23 + m.M13,
		m.M20*o.M03 + m.M21*o.M13 + m.M22*o.M23 + m.M23,
	}
}

// MulAssign sets m to m·o and returns m.
func (m *Matrix3x4[T]) MulAssign(o Matrix3x4[T]) *Matrix3x4[T] {
	*m = m.Mul(o)
	return m
}

// TransformCoord applies the full affine transform to the point v.
func (m Matrix3x4[T]) TransformCoord(v vector.Vector3[T]) vector.Vector3[T] {
	return vector.Vector3[T]{
		X: m.M00*v.X + m.M01*v.Y + m.M02*v.Z + m.M03,
		Y: m.M10*v.X + m.M11*v.Y + m.M12*v.Z + m.M13,
		Z: m.M20*v.X + m.M21*v.Y + m.M22*v.Z + m.M23,
	}
}

// TransformNormal applies only the linear part to the direction v. For
// normals under non-uniform scale pass the inverse transpose instead.
func (m Matrix3x4[T]) TransformNormal(v vector.Vector3[T]) vector.Vector3[T] {
	return vector.Vector3[T]{
		X: m.M00*v.X + m.M01*v.Y + m.M02*v.Z,
		Y: m.M10*v.X + m.M11*v.Y + m.M12*v.Z,
		Z: m.M20*v.X + m.M21*v.Y + m.M22*v.Z,
	}
}

// ---------- structure ----------

// Transpose returns the transposed linear part with a zero translation.
// The translation cannot survive a transpose, so it is dropped.
func (m Matrix3x4[T]) Transpose() Matrix3x4[T] {
	return FromLinear34(m.Linear().Transpose())
}

// Determinant returns the determinant of the linear part, which equals
// the determinant of the full affine transform.
func (m Matrix3x4[T]) Determinant() T {
	return m.Linear().Determinant()
}

// Inverse returns the inverse affine transform and the determinant.
//
// Implementation:
//   - Stage 1: invert the linear part L.
//   - Stage 2: the new translation is -L⁻¹·t.
//
// A singular m gives det == 0 and a non-finite matrix; no check is made.
func (m Matrix3x4[T]) Inverse() (Matrix3x4[T], T) {
	l, det := m.Linear().Inverse()
	t := l.MulVec(m.Translation()).Neg()
	r := FromLinear34(l)
	*r.Column(3) = t
	return r, det
}

// Invert replaces m with its inverse and returns the determinant.
func (m *Matrix3x4[T]) Invert() T {
	inv, det := m.Inverse()
	*m = inv
	return det
}

// ---------- comparison ----------

// Equal reports exact element-wise equality.
func (m Matrix3x4[T]) Equal(o Matrix3x4[T]) bool {
	return ewEqual(m.data(), o.data())
}

// Close reports element-wise equality within scalar.Epsilon.
func (m Matrix3x4[T]) Close(o Matrix3x4[T]) bool {
	return m.CloseEps(o, scalar.EpsilonOf[T]())
}

// CloseEps reports element-wise equality within eps.
func (m Matrix3x4[T]) CloseEps(o Matrix3x4[T], eps T) bool {
	return ewCloseEps(m.data(), o.data(), eps)
}

// IsFinite reports whether no element is NaN or infinite.
func (m Matrix3x4[T]) IsFinite() bool {
	return ewIsFinite(m.data())
}

// String renders the four columns.
func (m Matrix3x4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", *m.Column(0), *m.Column(1), *m.Column(2), *m.Column(3))
}

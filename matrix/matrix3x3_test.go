// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/matrix"
)

func TestMatrix3x3_Construction(t *testing.T) {
	require.Equal(t, uintptr(9*4), unsafe.Sizeof(m3{})) // tightly packed

	m := matrix.Columns3[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Slice())
	require.Equal(t, float32(2), m.M10)
	require.Equal(t, float32(4), m.M01)

	// Rows takes the transposed argument order and yields identical bytes.
	r := matrix.Rows3[float32](1, 4, 7, 2, 5, 8, 3, 6, 9)
	require.Equal(t, m, r)
	require.Equal(t, m.Slice(), r.Slice())

	require.Equal(t, m, matrix.FromColumns3(v3{X: 1, Y: 2, Z: 3}, v3{X: 4, Y: 5, Z: 6}, v3{X: 7, Y: 8, Z: 9}))
	require.Equal(t, m3{}, matrix.Zero3[float32]())
	require.Equal(t, m3{M00: 1, M11: 1, M22: 1}, matrix.Identity3[float32]())
	require.Equal(t, matrix.Columns3[float32](3, 3, 3, 3, 3, 3, 3, 3, 3), matrix.Uniform3[float32](3))

	buf := []float32{
		9, 8, 7, 6, 5, 4, 3, 2, 1,
		18, 17, 16, 15, 14, 13, 12, 11, 10,
	}
	require.Equal(t, buf[:9], func() []float32 { c := matrix.FromSlice3(buf); return c.Slice() }())

	a := matrix.AttachToSlice3(buf)
	require.Same(t, &buf[0], &a.M00)
	require.Equal(t, float32(4), a.M21)
	a.M22 = 100
	require.Equal(t, float32(100), buf[8])

	arr := matrix.AttachToArray3(buf)
	require.Len(t, arr, 2)
	require.Same(t, a, &arr[0])
	require.Equal(t, float32(10), arr[1].M22)
	require.Nil(t, matrix.AttachToArray3([]float32{}))

	require.Equal(t,
		matrix.Columns3(1, 2, 3, 4, 5, 6, 7, 8, 9),
		matrix.Cast3[int](matrix.Columns3[float32](1.2, 2.9, 3, 4, 5, 6, 7, 8, 9.99)))
}

func TestMatrix3x3_Compare(t *testing.T) {
	m0 := matrix.Zero3[float32]()
	for i := 0; i < 9; i++ {
		o := m0
		o.Set(i, 1)
		require.False(t, m0.Equal(o), "element %d", i)
	}

	m1 := matrix.Columns3[float32](11, 12, 13, 14, 15, 16, 17, 18, 19)
	m0 = m1
	require.True(t, m0.Equal(m1))
	require.True(t, m0.Close(m1))

	m0.M21++
	require.False(t, m0.Close(m1))
	require.True(t, m0.CloseEps(m1, 2))

	m0 = matrix.Columns3[float32](
		11.000001, 12.000001, 13.000001,
		14.000001, 15.000001, 16.000001,
		17.000001, 18.000001, 19.000001)
	require.True(t, m0.Close(m1))
}

func TestMatrix3x3_Access(t *testing.T) {
	m := matrix.Columns3[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, float32(1), m.At(0))
	require.Equal(t, float32(4), m.At(3))
	require.Equal(t, float32(9), m.At(8))
	require.Equal(t, float32(1), m.Front())
	require.Equal(t, float32(9), m.Back())
	require.Equal(t, float32(7), m.M(0, 2))
	require.Equal(t, float32(8), m.M(1, 2))
	require.Equal(t, float32(6), m.M(2, 1))

	// columns alias storage
	require.Same(t, &m.Slice()[3], &m.Column(1).X)
	*m.Column(0) = v3{X: 20, Y: 30, Z: 40}
	require.Equal(t, float32(20), m.M00)
	require.Equal(t, float32(40), m.M20)
	require.Equal(t, v2{X: 20, Y: 30}, *m.ColumnVector2(0, 0))

	*m.Column(1) = v3{X: -1, Y: -2, Z: -3}
	require.Equal(t, float32(-1), m.M01)
	require.Equal(t, float32(-3), m.M21)
	require.Equal(t, v2{X: -2, Y: -3}, *m.ColumnVector2(1, 1))
	m.ColumnVector2(2, 1).Y = 90
	require.Equal(t, float32(90), m.M22)
	m.SetM(2, 2, 9).Set(0, 20)

	require.Equal(t, v3{X: 20, Y: -1, Z: 7}, m.RowVector(0))
	require.Equal(t, v2{X: -2, Y: 8}, m.RowVector2(1, 1))
	require.Equal(t, v3{X: 20, Y: -2, Z: 9}, m.MainDiagonal())
	require.Equal(t, v2{X: -2, Y: 9}, m.MainDiagonal2(1))

	if assert.CriticalOn {
		require.Panics(t, func() { _ = m.At(9) })
		require.Panics(t, func() { _ = m.Column(3) })
	}
	if assert.BadOn {
		require.Panics(t, func() { _ = m.ColumnVector2(0, 2) })
		require.Panics(t, func() { _ = m.RowVector2(0, 2) })
	}
}

func TestMatrix3x3_Members(t *testing.T) {
	m0 := matrix.Columns3[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	m1 := matrix.Columns3[float32](-1, -2, -3, -4, -5, -6, -7, -8, -9)
	require.Equal(t, m1, m0.Neg())
	require.Equal(t, m0, m1.Neg())

	m0.AddAssign(m1)
	require.Equal(t, matrix.Zero3[float32](), m0)
	m0.SubAssign(m1)
	require.Equal(t, m1.Neg(), m0)

	m1 = m0
	m0.ScaleAssign(2)
	require.Equal(t, matrix.Columns3[float32](2, 4, 6, 8, 10, 12, 14, 16, 18), m0)
	m0.DivScalarAssign(2)
	require.Equal(t, m1, m0)

	require.Equal(t, matrix.Uniform3[float32](1), m0.DivComponents(m1))
	require.Equal(t, m1, matrix.Uniform3[float32](1).MulComponents(m1))

	m0.MulAssign(matrix.Identity3[float32]())
	require.Equal(t, m1, m0)
	require.Equal(t, float32(1), matrix.Identity3[float32]().Determinant())

	id := matrix.Identity3[float32]()
	id.Invert()
	require.Equal(t, matrix.Identity3[float32](), id)
	require.Equal(t, matrix.Identity3[float32](), id.Transpose())

	require.Equal(t, matrix.Rows3[float32](1, 2, 3, 4, 5, 6, 7, 8, 9), m0.Transpose())
	require.Equal(t, m0, m0.Transpose().Transpose())
}

func TestMatrix3x3_Inverse(t *testing.T) {
	cases := []struct {
		name string
		m    m3
		det  float32
	}{
		{"small", matrix.Rows3[float32](1, 2, 3, 5, 3, 2, 2, 1, 1), -4},
		{"large", matrix.Rows3[float32](3, 22, 12, 5, 17, 8, 24, 6, 19), -1577},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.det, tc.m.Determinant())

			inv, det := tc.m.Inverse()
			require.Equal(t, tc.det, det)
			require.True(t, tc.m.Mul(inv).Close(matrix.Identity3[float32]()))
			require.True(t, inv.Mul(tc.m).Close(matrix.Identity3[float32]()))

			m := tc.m
			require.Equal(t, tc.det, m.Invert())
			require.Equal(t, inv, m)
		})
	}
}

func TestMatrix3x3_InverseSingular(t *testing.T) {
	// Rows 0 and 1 are parallel: no exception, just a zero determinant and
	// a non-finite result for the caller to detect.
	m := matrix.Rows3(1.0, 2, 3, 2, 4, 6, 1, 1, 1)
	inv, det := m.Inverse()
	require.Zero(t, det)
	require.False(t, inv.IsFinite())
}

func TestMatrix3x3_Ops(t *testing.T) {
	m0 := matrix.Columns3[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	m1 := m0.Neg()
	m3x := matrix.Columns3[float32](2, 4, 6, 8, 10, 12, 14, 16, 18)

	require.Equal(t, matrix.Zero3[float32](), m0.Add(m1))
	require.Equal(t, m3x, m0.Sub(m1))
	require.Equal(t, m0, m1.Abs())
	require.Equal(t, m0, m0.Abs())
	require.Equal(t, m3x, m0.Scale(2))
	require.Equal(t, m0, m3x.DivScalar(2))

	requireClose(t, matrix.Columns3[float32](
		16, 8, 5.333333,
		4, 3.2, 2.666667,
		2.285714, 2, 1.777778), m0.ScalarDiv(16))

	require.Equal(t, matrix.Uniform3[float32](2), m3x.DivComponents(m0))
	require.Equal(t, m3x, m0.MulComponents(matrix.Uniform3[float32](2)))

	require.True(t, m0.IsFinite())
	inf := m0
	inf.M11 = float32(math.Inf(1))
	require.False(t, inf.IsFinite())
	nan := m0
	nan.M20 = float32(math.NaN())
	require.False(t, nan.IsFinite())
	require.False(t, inf.Add(nan).IsFinite())

	m := matrix.Rows3[float32](1, 2, 3, 5, 3, 2, 2, 1, 1)
	require.Equal(t, m, m.Mul(matrix.Identity3[float32]()))
	require.Equal(t, m, matrix.Identity3[float32]().Mul(m))
	require.Equal(t, v3{X: 14, Y: 17, Z: 7}, m.MulVec(v3{X: 1, Y: 2, Z: 3}))
	require.Equal(t, m.MulVec(v3{X: 1, Y: 2, Z: 3}), m.TransformNormal(v3{X: 1, Y: 2, Z: 3}))
}

func TestMatrix3x3_DivScalarZero(t *testing.T) {
	m := matrix.Identity3[float64]()
	if assert.WarnOn {
		require.Panics(t, func() { _ = m.DivScalar(0) })
		return
	}
	require.False(t, m.DivScalar(0).IsFinite())
}

func TestMatrix3x3_String(t *testing.T) {
	m := matrix.Columns3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, "((1, 2, 3), (4, 5, 6), (7, 8, 9))", m.String())
}

// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/vector"
)

type v3 = vector.Vector3[float32]

func TestVector3_Construction(t *testing.T) {
	v := vector.New3[float32](1, 2, 3)
	require.Equal(t, v3{1, 2, 3}, v)
	require.Equal(t, v3{7, 7, 7}, vector.Uniform3[float32](7))
	require.Equal(t, v3{}, vector.Zero3[float32]())
	require.Equal(t, v3{1, 0, 0}, vector.UnitX3[float32]())
	require.Equal(t, v3{0, 1, 0}, vector.UnitY3[float32]())
	require.Equal(t, v3{0, 0, 1}, vector.UnitZ3[float32]())
	require.Equal(t, uintptr(12), unsafe.Sizeof(v)) // tightly packed

	buf := []float32{9, 8, 7, 6, 5, 4}
	require.Equal(t, v3{9, 8, 7}, vector.FromSlice3(buf)) // copy
	a := vector.AttachToSlice3(buf)
	require.Same(t, &buf[0], &a.X) // alias
	a.Y = 80
	require.Equal(t, float32(80), buf[1])

	arr := vector.AttachToArray3(buf)
	require.Len(t, arr, 2)
	require.Equal(t, v3{6, 5, 4}, arr[1])
	arr[1].Z = 40
	require.Equal(t, float32(40), buf[5])
	require.Nil(t, vector.AttachToArray3([]float32{}))
}

func TestVector3_Access(t *testing.T) {
	v := v3{1, 2, 3}
	require.Equal(t, float32(2), v.At(1))
	require.Equal(t, 3, v.Dim())
	require.Equal(t, float32(1), v.Front())
	require.Equal(t, float32(3), v.Back())
	require.Equal(t, [3]float32{1, 2, 3}, v.Array())

	v.Set(2, 30).Set(0, 10)
	require.Equal(t, v3{10, 2, 30}, v)
	*v.Ptr(1) = 20
	s := v.Slice()
	require.Equal(t, []float32{10, 20, 30}, s)
	s[0] = -1
	require.Equal(t, float32(-1), v.X) // slice aliases

	require.Equal(t, vector.Vector3[int]{1, -2, 3}, vector.Cast3[int](v3{1.9, -2.7, 3.2})) // truncation
	require.Equal(t, vector.Vector3[float64]{1, 2, 3}, vector.Cast3[float64](vector.Vector3[int]{1, 2, 3}))
}

func TestVector3_AccessOutOfRange(t *testing.T) {
	if !assert.CriticalOn {
		t.Skip("critical checks compiled out")
	}
	v := v3{1, 2, 3}
	require.Panics(t, func() { _ = v.At(3) })
	require.Panics(t, func() { _ = v.Ptr(-1) })
	require.Panics(t, func() { _ = vector.FromSlice3([]float32{1, 2}) })
	require.Panics(t, func() { _ = vector.AttachToSlice3[float32](nil) })
	require.Panics(t, func() { _ = vector.AttachToArray3([]float32{1, 2, 3, 4}) })
}

func TestVector3_Arithmetic(t *testing.T) {
	a, b := v3{1, 2, 3}, v3{4, 6, 8}
	require.Equal(t, v3{5, 8, 11}, a.Add(b))
	require.Equal(t, v3{3, 4, 5}, b.Sub(a))
	require.Equal(t, v3{-1, -2, -3}, a.Neg())
	require.Equal(t, v3{2, 4, 6}, a.Scale(2))
	require.Equal(t, v3{2, 3, 4}, b.DivScalar(2))
	require.Equal(t, v3{12, 6, 4}, a.ScalarDiv(12))
	require.Equal(t, v3{4, 12, 24}, a.Mul(b))
	require.Equal(t, v3{4, 3, float32(8) / 3}, b.Div(a))
	require.Equal(t, v3{0, 0, 2}, b.Mod(a))

	c := a
	c.AddAssign(b).SubAssign(a).ScaleAssign(3).DivScalarAssign(3)
	require.Equal(t, b, c)
	c.MulAssign(a).DivAssign(a)
	require.Equal(t, b, c)
}

func TestVector3_ComponentFunctions(t *testing.T) {
	v := v3{-1.723, 5.23, -0.5}
	require.Equal(t, v3{-2, 5, -1}, v.Floor())
	require.Equal(t, v3{-1, 6, 0}, v.Ceil())
	require.Equal(t, v3{-2, 5, -1}, v.Round())
	require.True(t, v.Frac().Close(v3{0.723, 0.23, 0.5})) // always non-negative
	require.Equal(t, v3{1.723, 5.23, 0.5}, v.Abs())
	require.Equal(t, v3{-1, 1, -1}, v.Sign())
	require.Equal(t, v3{-1, 1, -0.5}, v.Clamp(v3{-1, -1, -1}, v3{1, 1, 1}))
	require.Equal(t, v3{-1.723, 1, -0.5}, v.Min(v3{1, 1, 1}))
	require.Equal(t, v3{1, 5.23, 1}, v.Max(v3{1, 1, 1}))
	require.Equal(t, v3{5, 10, 15}, vector.Lerp3(v3{0, 0, 0}, v3{10, 20, 30}, 0.5))
	require.Equal(t, v3{-5, -10, -15}, vector.Lerp3(v3{0, 0, 0}, v3{10, 20, 30}, -0.5)) // extrapolates
}

func TestVector3_Geometry(t *testing.T) {
	a := v3{1, 2, 3}
	require.Equal(t, float32(14), a.LengthSq())
	require.InDelta(t, math.Sqrt(14), a.Length(), 1e-6)
	require.Equal(t, float32(6), v3{-1, 2, -3}.ManhattanLength())
	require.Equal(t, float32(32), a.Dot(v3{4, 5, 6}))
	require.Equal(t, v3{0, 0, 1}, vector.UnitX3[float32]().Cross(vector.UnitY3[float32]()))
	require.Equal(t, v3{-3, 6, -3}, a.Cross(v3{4, 5, 6}))
	require.Equal(t, float32(27), a.DistanceSq(v3{4, 5, 6}))
	require.InDelta(t, math.Sqrt(27), a.Distance(v3{4, 5, 6}), 1e-6)
	require.Equal(t, float32(6), a.Product())
	require.Equal(t, float32(6), a.Sum())

	n := a
	l := n.Normalize()
	require.InDelta(t, math.Sqrt(14), l, 1e-6) // prior length
	require.True(t, n.IsNormalized())
	require.InDelta(t, 1, n.Length(), 1e-5)
	require.False(t, a.IsNormalized())
	require.True(t, a.Normalized().IsNormalizedEps(1e-6))

	h := v3{4, 6, 2}
	h.HomogenousNormalize()
	require.Equal(t, v3{2, 3, 1}, h)

	r := v3{1, -1, 0}.Reflection(vector.UnitY3[float32]())
	require.Equal(t, v3{1, 1, 0}, r)
}

func TestVector3_ReflectionNeedsUnitNormal(t *testing.T) {
	if !assert.BadOn {
		t.Skip("bad checks compiled out")
	}
	require.Panics(t, func() { _ = v3{1, 1, 1}.Reflection(v3{0, 2, 0}) })
}

func TestVector3_NormalizeZero(t *testing.T) {
	z := v3{}
	if assert.WarnOn {
		require.Panics(t, func() { z.Normalize() })
		return
	}
	z.Normalize()
	require.False(t, z.IsFinite()) // NaN when unchecked
}

func TestVector3_GetOrthogonal(t *testing.T) {
	for _, v := range []v3{
		{1, 2, 3}, {0, 2, 3}, {1, 0, 3}, {1, 2, 0},
		{5, 0, 0}, {0, -5, 0}, {0, 0, 0.5},
	} {
		o := v.GetOrthogonal()
		require.False(t, o.IsZero(), "orthogonal of %v", v)
		require.True(t, vector.Orthogonal3(v, o), "%v . %v", v, o)
	}
	require.Equal(t, v3{0, 5, 0}, v3{5, 0, 0}.GetOrthogonal())
	require.Equal(t, v3{2, 0, 0}, v3{0, 0, 2}.GetOrthogonal())
}

func TestVector3_Predicates(t *testing.T) {
	require.True(t, v3{1, 2, 3}.Equal(v3{1, 2, 3}))
	require.False(t, v3{1, 2, 3}.Equal(v3{1, 2, 3.000001}))
	require.True(t, v3{1, 2, 3}.Close(v3{1, 2, 3.000001}))
	require.False(t, v3{1, 2, 3}.Close(v3{1, 2, 3.1}))
	require.True(t, v3{1, 2, 3}.CloseEps(v3{1, 2, 3.1}, 0.2))
	require.True(t, v3{1, 2, 3}.IsFinite())
	require.False(t, v3{1, float32(math.Inf(1)), 3}.IsFinite())
	require.False(t, v3{float32(math.NaN()), 0, 0}.IsFinite())

	require.True(t, vector.Orthogonal3(v3{1, 0, 0}, v3{0, 3, 4}))
	require.False(t, vector.Orthogonal3(v3{1, 1, 0}, v3{0, 3, 4}))
}

func TestVector3_Collinear(t *testing.T) {
	for _, tc := range []struct {
		a, b v3
		want bool
	}{
		{v3{1, 2, 3}, v3{-1, -2, -3}, true},
		{v3{1, 0, 0}, v3{5, 0, 0}, true},
		{v3{0, 2, 1}, v3{0, -4, -2}, true},
		{v3{4, 2, 10}, v3{1, 0.5, 2.5}, true},
		{v3{0, 0, 0}, v3{0, 0, 0}, true},
		{v3{1, 2, 3}, v3{1, 2, 4}, false},
		{v3{1, 0, 3}, v3{1, 2, 3}, false}, // zero on the left only
		{v3{1, 2, 3}, v3{1, 0, 3}, false}, // zero on the right only
		{v3{0, 1, 0}, v3{1, 0, 0}, false},
	} {
		require.Equal(t, tc.want, vector.Collinear3(tc.a, tc.b), "%v, %v", tc.a, tc.b)
		require.Equal(t, tc.want, vector.Collinear3(tc.b, tc.a), "symmetric: %v, %v", tc.b, tc.a)
	}

	vi := func(x, y, z int) vector.Vector3[int] { return vector.New3(x, y, z) }
	require.True(t, vector.Collinear3(vi(2, 4, 6), vi(1, 2, 3)))
	require.False(t, vector.Collinear3(vi(3, 5, 7), vi(2, 3, 4))) // 3/2 == 5/3 under truncation
}

func TestVector3_Ordering(t *testing.T) {
	vs := []v3{{1, 2, 3}, {1, 1, 9}, {0, 5, 5}, {1, 2, 2}}
	slices.SortFunc(vs, v3.Compare)
	require.Equal(t, []v3{{0, 5, 5}, {1, 1, 9}, {1, 2, 2}, {1, 2, 3}}, vs)
	require.True(t, v3{1, 2, 2}.Less(v3{1, 2, 3}))
	require.False(t, v3{1, 2, 3}.Less(v3{1, 2, 3}))
	require.Equal(t, 0, v3{1, 2, 3}.Compare(v3{1, 2, 3}))
}

func TestVector3_String(t *testing.T) {
	require.Equal(t, "(11, 12, 13)", v3{11, 12, 13}.String())
	require.Equal(t, "(0.5, -1, 2.25)", v3{0.5, -1, 2.25}.String())
	require.Equal(t, "(1, 2, 3)", vector.New3(1, 2, 3).String())
}

func TestVector3_Integral(t *testing.T) {
	a := vector.New3(7, -8, 9)
	require.Equal(t, vector.New3(3, -4, 4), a.DivScalar(2))
	require.Equal(t, vector.New3(1, -2, 1), a.Mod(vector.New3(3, 3, 4)))
	require.Equal(t, 13, a.Length()) // sqrt(194) truncated
	require.Equal(t, a, a.Floor())
}

// SPDX-License-Identifier: MIT
package box_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/box"
	"github.com/katalvlaran/yama/vector"
)

type (
	v2  = vector.Vector2[float64]
	v3  = vector.Vector3[float64]
	iv3 = vector.Vector3[int]
)

func TestConstruction(t *testing.T) {
	require.Equal(t, box.Box[v3, float64]{}, box.Zero3[float64]())
	require.Equal(t, box.ZeroOf[v2, float64](), box.Zero2[float64]())
	require.Equal(t, vector.Vector4[float32]{}, box.Zero4[float32]().Max)

	inv := box.Inverted3[float32]()
	require.Equal(t, vector.Uniform3[float32](math.MaxFloat32), inv.Min)
	require.Equal(t, vector.Uniform3[float32](-math.MaxFloat32), inv.Max)
	require.False(t, inv.IsValid())

	u8 := box.Inverted2[uint8]()
	require.Equal(t, vector.New2[uint8](255, 255), u8.Min)
	require.Equal(t, vector.New2[uint8](0, 0), u8.Max)
	require.Equal(t, box.InvertedOf[vector.Vector4[int16], int16](), box.Inverted4[int16]())

	b := box.MinMax3(v3{X: 1, Y: 2, Z: 3}, v3{X: 4, Y: 5, Z: 6})
	require.Equal(t, v3{X: 1, Y: 2, Z: 3}, b.Min)
	require.Equal(t, v3{X: 4, Y: 5, Z: 6}, b.Max)
	require.Equal(t, b, box.MinMax[v3, float64](v3{X: 1, Y: 2, Z: 3}, v3{X: 4, Y: 5, Z: 6}))

	// A negative size puts pos on the max side of that axis.
	ps := box.PosSize2(v2{X: 0, Y: 0}, v2{X: -2, Y: 3})
	require.Equal(t, v2{X: -2, Y: 0}, ps.Min)
	require.Equal(t, v2{X: 0, Y: 3}, ps.Max)
	require.Equal(t, b, box.PosSize3(v3{X: 1, Y: 2, Z: 3}, v3{X: 3, Y: 3, Z: 3}))
	require.Equal(t,
		box.MinMax4(vector.New4(0, 0, 0, 0), vector.New4(1, 1, 1, 1)),
		box.PosSize4(vector.New4(1, 1, 1, 1), vector.New4(-1, -1, -1, -1)))
}

func TestIsInside(t *testing.T) {
	b := box.MinMax2(v2{X: 0, Y: 0}, v2{X: 2, Y: 2})
	cases := []struct {
		name string
		p    v2
		want bool
	}{
		{"min corner", v2{X: 0, Y: 0}, true},
		{"interior", v2{X: 1, Y: 1.5}, true},
		{"max x", v2{X: 2, Y: 1}, false},
		{"max y", v2{X: 1, Y: 2}, false},
		{"max corner", v2{X: 2, Y: 2}, false},
		{"below", v2{X: -0.1, Y: 1}, false},
		{"above", v2{X: 1, Y: 7}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, b.IsInside(tc.p))
		})
	}

	// A tiling of half-open cells claims every point once.
	left := box.MinMax2(v2{X: 0, Y: 0}, v2{X: 1, Y: 1})
	right := box.MinMax2(v2{X: 1, Y: 0}, v2{X: 2, Y: 1})
	p := v2{X: 1, Y: 0.5}
	require.NotEqual(t, left.IsInside(p), right.IsInside(p))
}

func TestIntersects(t *testing.T) {
	a := box.MinMax3(v3{X: 0, Y: 0, Z: 0}, v3{X: 2, Y: 2, Z: 2})
	cases := []struct {
		name string
		o    box.Box[v3, float64]
		want bool
	}{
		{"overlap", box.MinMax3(v3{X: 1, Y: 1, Z: 1}, v3{X: 3, Y: 3, Z: 3}), true},
		{"contained", box.MinMax3(v3{X: 0.5, Y: 0.5, Z: 0.5}, v3{X: 1, Y: 1, Z: 1}), true},
		{"same", a, true},
		{"touching face", box.MinMax3(v3{X: 2, Y: 0, Z: 0}, v3{X: 4, Y: 2, Z: 2}), false},
		{"touching corner", box.MinMax3(v3{X: 2, Y: 2, Z: 2}, v3{X: 3, Y: 3, Z: 3}), false},
		{"apart", box.MinMax3(v3{X: 5, Y: 5, Z: 5}, v3{X: 6, Y: 6, Z: 6}), false},
		{"overlap on two axes only", box.MinMax3(v3{X: 1, Y: 1, Z: 3}, v3{X: 3, Y: 3, Z: 4}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, a.Intersects(tc.o))
			require.Equal(t, tc.want, tc.o.Intersects(a))
		})
	}
}

func TestIntersection(t *testing.T) {
	a := box.MinMax3(v3{X: 0, Y: 0, Z: 0}, v3{X: 2, Y: 2, Z: 2})
	b := box.MinMax3(v3{X: 1, Y: -1, Z: 1}, v3{X: 3, Y: 1, Z: 3})
	require.Equal(t, box.MinMax3(v3{X: 1, Y: 0, Z: 1}, v3{X: 2, Y: 1, Z: 2}), box.Intersection(a, b))
	require.Equal(t, box.Intersection(a, b), box.Intersection(b, a))

	apart := a.Translate(v3{X: 10, Y: 0, Z: 0})
	if assert.WarnOn {
		require.Panics(t, func() { _ = box.Intersection(a, apart) })
		return
	}
	require.False(t, box.Intersection(a, apart).IsValid())
}

func TestMeasures(t *testing.T) {
	b := box.MinMax3(iv3{X: 0, Y: 0, Z: 0}, iv3{X: 3, Y: 4, Z: 5})
	require.Equal(t, iv3{X: 3, Y: 4, Z: 5}, b.Size())
	require.Equal(t, iv3{X: 1, Y: 2, Z: 2}, b.Center()) // truncated

	f := box.MinMax2(v2{X: -1, Y: 2}, v2{X: 3, Y: 3})
	require.Equal(t, v2{X: 4, Y: 1}, f.Size())
	require.Equal(t, v2{X: 1, Y: 2.5}, f.Center())

	require.True(t, f.IsValid())
	require.False(t, box.MinMax2(v2{X: 0, Y: 0}, v2{X: 1, Y: 0}).IsValid())
	require.False(t, box.Zero2[float64]().IsValid())
}

func TestGrow(t *testing.T) {
	b := box.Inverted3[float64]()
	b.AddPoint(v3{X: 1, Y: 2, Z: 3})
	require.Equal(t, box.MinMax3(v3{X: 1, Y: 2, Z: 3}, v3{X: 1, Y: 2, Z: 3}), b)
	require.False(t, b.IsValid())

	b.AddPoint(v3{X: -1, Y: 5, Z: 0}).AddPoint(v3{X: 0, Y: 0, Z: 0})
	require.Equal(t, box.MinMax3(v3{X: -1, Y: 0, Z: 0}, v3{X: 1, Y: 5, Z: 3}), b)

	// Voxel bounds: every cell is [p, p+1).
	vox := box.Inverted3[int]()
	for _, p := range []iv3{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 1, Z: 3}, {X: 1, Y: -1, Z: 0}} {
		vox.AddPointMaxComplement(p)
	}
	require.Equal(t, box.MinMax3(iv3{X: 0, Y: -1, Z: 0}, iv3{X: 3, Y: 2, Z: 4}), vox)
	require.True(t, vox.IsInside(iv3{X: 2, Y: 1, Z: 3}))

	tiles := box.Inverted2[float64]()
	tiles.AddPointMaxComplementBy(v2{X: 0, Y: 0}, v2{X: 16, Y: 8}).AddPointMaxComplementBy(v2{X: 32, Y: 8}, v2{X: 16, Y: 8})
	require.Equal(t, box.MinMax2(v2{X: 0, Y: 0}, v2{X: 48, Y: 16}), tiles)

	m := box.Inverted2[float64]()
	m.Merge(box.MinMax2(v2{X: 0, Y: 0}, v2{X: 1, Y: 1})).Merge(box.MinMax2(v2{X: -3, Y: 0.5}, v2{X: 0, Y: 4}))
	require.Equal(t, box.MinMax2(v2{X: -3, Y: 0}, v2{X: 1, Y: 4}), m)

	// Merging into an inverted box leaves the other box unchanged.
	one := box.MinMax2(v2{X: 2, Y: 2}, v2{X: 3, Y: 3})
	acc := box.Inverted2[float64]()
	require.Equal(t, one, *acc.Merge(one))
}

func TestTranslateEqualString(t *testing.T) {
	b := box.MinMax2(v2{X: 1, Y: 2}, v2{X: 3, Y: 4})
	moved := b.Translate(v2{X: -1, Y: 1})
	require.Equal(t, box.MinMax2(v2{X: 0, Y: 3}, v2{X: 2, Y: 5}), moved)
	require.Equal(t, b.Size(), moved.Size())

	require.True(t, b.Equal(box.MinMax2(v2{X: 1, Y: 2}, v2{X: 3, Y: 4})))
	require.False(t, b.Equal(moved))

	require.Equal(t, "{(1, 2), (3, 4)}", b.String())
	require.Equal(t, "{(0, 0, 0), (1, 1, 1)}", box.MinMax3(iv3{}, iv3{X: 1, Y: 1, Z: 1}).String())
}

func TestGenericFourDimensions(t *testing.T) {
	type v4 = vector.Vector4[float32]
	b := box.PosSize[v4, float32](v4{X: 0, Y: 0, Z: 0, W: 0}, v4{X: 1, Y: 2, Z: 3, W: 4})
	require.True(t, b.IsInside(v4{X: 0.5, Y: 1, Z: 1, W: 3.9}))
	require.False(t, b.IsInside(v4{X: 0.5, Y: 1, Z: 1, W: 4}))
	require.Equal(t, v4{X: 0.5, Y: 1, Z: 1.5, W: 2}, b.Center())
}

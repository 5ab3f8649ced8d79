// SPDX-License-Identifier: MIT
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/yama/vector"
)

func TestSwizzle_ShrinkingAliases(t *testing.T) {
	v := vector.New4[float32](1, 2, 3, 4)
	xyz := v.XYZ()
	require.Equal(t, vector.New3[float32](1, 2, 3), *xyz)
	xyz.Z = 30 // write through the view
	require.Equal(t, float32(30), v.Z)
	v.XY().Y = 20
	require.Equal(t, vector.New4[float32](1, 20, 30, 4), v)

	w := vector.New3[float32](5, 6, 7)
	w.XY().X = 50
	require.Equal(t, vector.New3[float32](50, 6, 7), w)
}

func TestSwizzle_ExtendingCopies(t *testing.T) {
	v2 := vector.New2(1, 2)
	ext := v2.XYZ(3)
	ext.X = 100 // does not touch the source
	require.Equal(t, vector.New2(1, 2), v2)
	require.Equal(t, vector.New4(1, 2, 3, 4), v2.XYZW(3, 4))

	v3 := vector.New3(1, 2, 3)
	require.Equal(t, vector.New2(1, 3), v3.XZ())
	require.Equal(t, vector.New3(3, 2, 1), v3.ZYX())
	require.Equal(t, vector.New4(1, 2, 3, 0), v3.XYZW(0))

	v4 := vector.New4(1, 2, 3, 4)
	require.Equal(t, vector.New2(1, 3), v4.XZ())
	require.Equal(t, vector.New2(3, 4), v4.ZW())
	require.Equal(t, vector.New3(3, 2, 1), v4.ZYX())
	require.Equal(t, vector.New4(3, 2, 1, 4), v4.ZYXW())
	require.Equal(t, vector.New4(4, 3, 2, 1), v4.WZYX())

	require.Equal(t, vector.New3(4, 4, 1), v4.Swizzle3(3, 3, 0))
	require.Equal(t, vector.New2(2, 1), v2.Swizzle2(1, 0))
	require.Equal(t, vector.New4(2, 2, 1, 2), v2.Swizzle4(1, 1, 0, 1))
	require.Equal(t, vector.New4(3, 1, 2, 3), v3.Swizzle4(2, 0, 1, 2))
	require.Equal(t, vector.New2(3, 2), v3.Swizzle2(2, 1))
}

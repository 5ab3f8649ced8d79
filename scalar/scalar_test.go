// SPDX-License-Identifier: MIT
package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/yama/scalar"
)

func TestIsFloat(t *testing.T) {
	require.True(t, scalar.IsFloat[float32]())  // float32 is float
	require.True(t, scalar.IsFloat[float64]())  // float64 is float
	require.False(t, scalar.IsFloat[int]())     // int is integral
	require.False(t, scalar.IsFloat[uint8]())   // uint8 is integral
	type meters float64                         // named types follow their underlying type
	require.True(t, scalar.IsFloat[meters]())   // ~float64
}

func TestSqAndSign(t *testing.T) {
	require.Equal(t, 25, scalar.Sq(-5))          // integral square
	require.Equal(t, float32(6.25), scalar.Sq(float32(2.5)))

	require.Equal(t, -1.0, scalar.Sign(-3.2))     // negative
	require.Equal(t, 1.0, scalar.Sign(3.2))       // positive
	require.Equal(t, 1.0, scalar.Sign(0.0))       // zero maps to +1
	require.Equal(t, 1.0, scalar.Sign(math.Copysign(0, -1))) // negative zero too
	require.Equal(t, uint(1), scalar.Sign(uint(0)))          // unsigned always +1
	require.Equal(t, -1, scalar.Sign(-7))

	require.Equal(t, -4, scalar.FlipSign(4))
	require.Equal(t, 2.5, scalar.FlipSign(-2.5))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 1.3, scalar.Clamp(1.3, 1.0, 2.0))  // inside
	require.Equal(t, 1.0, scalar.Clamp(0.3, 1.0, 2.0))  // below
	require.Equal(t, 2.0, scalar.Clamp(3.3, 1.0, 2.0))  // above

	// swapped bounds are corrected, not collapsed to lo
	require.Equal(t, 1.3, scalar.Clamp(1.3, 2.0, 1.0))
	require.Equal(t, 1.0, scalar.Clamp(0.3, 2.0, 1.0))
	require.Equal(t, 2.0, scalar.Clamp(5.0, 2.0, 1.0))
	require.Equal(t, 4, scalar.Clamp(9, 4, 4))          // degenerate interval
}

func TestLerp(t *testing.T) {
	require.Equal(t, 5.0, scalar.Lerp(0.0, 10.0, 0.5))
	require.Equal(t, 15.0, scalar.Lerp(0.0, 10.0, 1.5))  // extrapolates
	require.Equal(t, -5.0, scalar.Lerp(0.0, 10.0, -0.5)) // both ways
}

func TestClose(t *testing.T) {
	require.True(t, scalar.Close(1.0, 1.000001))
	require.False(t, scalar.Close(1.0, 1.0001))
	require.True(t, scalar.CloseEps(1.0, 1.0001, scalar.EpsilonLow))
	require.False(t, scalar.CloseEps(1.0, 1.0000002, scalar.EpsilonHigh))
	require.True(t, scalar.CloseEps(3, 5, 2))                 // inclusive bound
	require.True(t, scalar.CloseEps(uint(3), uint(5), 2))     // no unsigned wrap
	require.False(t, scalar.Close(uint(5), uint(3)))
	require.False(t, scalar.Close(math.NaN(), math.NaN()))    // NaN is never close
	require.True(t, scalar.Close(7, 7))                       // integer epsilon is 0
	require.Equal(t, 0, scalar.EpsilonOf[int]())
}

func TestAngles(t *testing.T) {
	require.InDelta(t, 180.0, scalar.RadToDeg(math.Pi), 1e-12)
	require.InDelta(t, math.Pi/2, scalar.DegToRad(90.0), 1e-12)
	require.InDelta(t, float32(scalar.PiQuarter), scalar.DegToRad(float32(45)), 1e-6)
	require.InDelta(t, 1/math.Pi, scalar.Const[float64](scalar.OverPi), 1e-15)
	require.Equal(t, 3, scalar.Const[int](scalar.Pi)) // truncates for integers
}

func TestRoundingFamily(t *testing.T) {
	require.Equal(t, -2.0, scalar.Floor(-1.723))
	require.Equal(t, float32(6), scalar.Ceil(float32(5.23)))
	require.Equal(t, -3.0, scalar.Round(-2.5)) // half away from zero
	require.Equal(t, 3.0, scalar.Round(2.5))
	require.Equal(t, float32(3), scalar.Round(float32(2.5)))
	require.Equal(t, float32(-3), scalar.Round(float32(-2.5)))
	require.Equal(t, float32(0), scalar.Round(float32(0.49999997))) // largest float32 below 0.5
	require.Equal(t, float32(-1), scalar.Round(float32(-0.5)))
	require.Equal(t, 7, scalar.Floor(7))       // identity on integers

	require.InDelta(t, 0.723, scalar.Frac(-1.723), 1e-12) // |x| - floor|x|
	require.InDelta(t, 0.23, scalar.Frac(5.23), 1e-12)
	require.Equal(t, 0, scalar.Frac(9))

	require.InDelta(t, -1.5, scalar.Mod(-7.5, 2.0), 1e-12) // sign of dividend
	require.InDelta(t, float32(1.5), scalar.Mod(float32(7.5), float32(2)), 1e-6)
	require.Equal(t, -1, scalar.Mod(-7, 2))                // truncated remainder
	require.Equal(t, uint(1), scalar.Mod(uint(7), uint(3)))
}

func TestIsFinite(t *testing.T) {
	require.True(t, scalar.IsFinite(1.0))
	require.False(t, scalar.IsFinite(math.Inf(-1)))
	require.False(t, scalar.IsFinite(float32(math.NaN())))
	require.True(t, scalar.IsFinite(math.MaxInt64))
}

func TestMath(t *testing.T) {
	require.Equal(t, float32(3), scalar.Sqrt(float32(9)))
	require.Equal(t, 3, scalar.Sqrt(10)) // truncated
	require.InDelta(t, 1.0, scalar.Sin(math.Pi/2), 1e-12)
	require.InDelta(t, float32(-1), scalar.Cos(float32(math.Pi)), 1e-6)
	require.InDelta(t, 1.0, scalar.Tan(math.Pi/4), 1e-12)
	require.InDelta(t, math.Pi, scalar.Acos(-1.0), 1e-12)
	require.True(t, math.IsNaN(scalar.Acos(1.5)))
}

func TestLimits(t *testing.T) {
	require.Equal(t, int8(127), scalar.MaxValue[int8]())
	require.Equal(t, int8(-128), scalar.Lowest[int8]())
	require.Equal(t, uint16(math.MaxUint16), scalar.MaxValue[uint16]())
	require.Equal(t, uint16(0), scalar.Lowest[uint16]())
	require.Equal(t, float32(math.MaxFloat32), scalar.MaxValue[float32]())
	require.Equal(t, -math.MaxFloat64, scalar.Lowest[float64]())
	require.Equal(t, math.MinInt, scalar.Lowest[int]())
}

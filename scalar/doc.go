// SPDX-License-Identifier: MIT

// Package scalar holds the scalar-level helpers every yama type is built on.
//
// The package provides:
//
//   - Number, the type set (integers and floats) all vectors, quaternions and
//     matrices are parameterized over;
//   - the documented constants (Pi family, E, Sqrt2) and the three epsilons
//     used for tolerance comparisons: Epsilon (general), EpsilonLow and
//     EpsilonHigh;
//   - pure helpers: Sq, Sign, FlipSign, Lerp, Clamp, Close/CloseEps,
//     RadToDeg/DegToRad, the rounding family (Floor, Ceil, Round, Frac, Mod);
//   - generic math (Sqrt, Sin, Cos, Tan, Acos) with a float32 fast path
//     through chewxy/math32;
//   - numeric limits (MaxValue, Lowest) and float classification (IsFloat).
//
// Integral instantiations:
//
//	Every helper compiles for integer T. Math functions truncate back to T,
//	EpsilonOf[T] is 0 (so Close degrades to ==), Mod uses truncated integer
//	remainder and the rounding family is the identity.
//
// Nothing here allocates or keeps state.
package scalar

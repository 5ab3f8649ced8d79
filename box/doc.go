// SPDX-License-Identifier: MIT

// Package box provides Box, an axis-aligned bounding box over any of the
// vector types.
//
// A Box is two corners, Min and Max, of the same vector type. It is valid
// when Max exceeds Min on every axis; empty and inverted boxes are still
// representable and IsValid tells them apart.
//
// Intervals:
//
//	IsInside is half-open (Min <= p < Max per axis), so a grid of
//	touching boxes assigns every point to exactly one of them.
//	Intersects is open: boxes that only touch do not intersect.
//
// Accumulating bounds:
//
//	Inverted2/3/4 (or InvertedOf) start with Min at the largest and Max at
//	the lowest value of the scalar type, so the first AddPoint or Merge
//	replaces both corners. AddPointMaxComplement grows Max to cover the
//	whole unit cell whose minimum corner is the point, which is what
//	voxel and tile bounds need.
//
// Dimension shortcuts (Zero3, MinMax3, ...) infer every type argument.
// The generic forms (ZeroOf, MinMax, ...) take the vector and scalar types
// explicitly:
//
//	b := box.MinMax[vector.Vector3[float32], float32](lo, hi)
//
// Intersection of boxes that do not intersect is a warn-level violation;
// with warnings compiled out the result is an invalid box.
package box

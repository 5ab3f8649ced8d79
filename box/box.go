// SPDX-License-Identifier: MIT

package box

import (
	"fmt"

	"github.com/katalvlaran/yama/assert"
	"github.com/katalvlaran/yama/scalar"
	"github.com/katalvlaran/yama/vector"
)

// Box is an axis-aligned box with corners Min and Max.
type Box[V vector.Vector[V, T], T scalar.Number] struct {
	Min, Max V
}

// ---------- generic constructors ----------

// ZeroOf returns the box with both corners at the origin.
func ZeroOf[V vector.Vector[V, T], T scalar.Number]() Box[V, T] {
	return Box[V, T]{}
}

// InvertedOf returns the empty accumulator: Min at the largest value of T,
// Max at the lowest. Any AddPoint or Merge replaces both corners.
func InvertedOf[V vector.Vector[V, T], T scalar.Number]() Box[V, T] {
	var z V
	return Box[V, T]{
		Min: z.Broadcast(scalar.MaxValue[T]()),
		Max: z.Broadcast(scalar.Lowest[T]()),
	}
}

// MinMax returns the box with the given corners. No ordering is enforced.
func MinMax[V vector.Vector[V, T], T scalar.Number](lo, hi V) Box[V, T] {
	return Box[V, T]{Min: lo, Max: hi}
}

// PosSize returns the box spanned by pos and pos+size. A negative size
// component puts pos on the max side of that axis.
func PosSize[V vector.Vector[V, T], T scalar.Number](pos, size V) Box[V, T] {
	end := pos.Add(size)
	return Box[V, T]{Min: pos.Min(end), Max: pos.Max(end)}
}

// ---------- dimension shortcuts ----------

// Zero2 is ZeroOf for Vector2.
func Zero2[T scalar.Number]() Box[vector.Vector2[T], T] { return ZeroOf[vector.Vector2[T], T]() }

// Zero3 is ZeroOf for Vector3.
func Zero3[T scalar.Number]() Box[vector.Vector3[T], T] { return ZeroOf[vector.Vector3[T], T]() }

// Zero4 is ZeroOf for Vector4.
func Zero4[T scalar.Number]() Box[vector.Vector4[T], T] { return ZeroOf[vector.Vector4[T], T]() }

// Inverted2 is InvertedOf for Vector2.
func Inverted2[T scalar.Number]() Box[vector.Vector2[T], T] {
	return InvertedOf[vector.Vector2[T], T]()
}

// Inverted3 is InvertedOf for Vector3.
func Inverted3[T scalar.Number]() Box[vector.Vector3[T], T] {
	return InvertedOf[vector.Vector3[T], T]()
}

// Inverted4 is InvertedOf for Vector4.
func Inverted4[T scalar.Number]() Box[vector.Vector4[T], T] {
	return InvertedOf[vector.Vector4[T], T]()
}

// MinMax2 is MinMax for Vector2.
func MinMax2[T scalar.Number](lo, hi vector.Vector2[T]) Box[vector.Vector2[T], T] {
	return MinMax[vector.Vector2[T], T](lo, hi)
}

// MinMax3 is MinMax for Vector3.
func MinMax3[T scalar.Number](lo, hi vector.Vector3[T]) Box[vector.Vector3[T], T] {
	return MinMax[vector.Vector3[T], T](lo, hi)
}

// MinMax4 is MinMax for Vector4.
func MinMax4[T scalar.Number](lo, hi vector.Vector4[T]) Box[vector.Vector4[T], T] {
	return MinMax[vector.Vector4[T], T](lo, hi)
}

// PosSize2 is PosSize for Vector2.
func PosSize2[T scalar.Number](pos, size vector.Vector2[T]) Box[vector.Vector2[T], T] {
	return PosSize[vector.Vector2[T], T](pos, size)
}

// PosSize3 is PosSize for Vector3.
func PosSize3[T scalar.Number](pos, size vector.Vector3[T]) Box[vector.Vector3[T], T] {
	return PosSize[vector.Vector3[T], T](pos, size)
}

// PosSize4 is PosSize for Vector4.
func PosSize4[T scalar.Number](pos, size vector.Vector4[T]) Box[vector.Vector4[T], T] {
	return PosSize[vector.Vector4[T], T](pos, size)
}

// ---------- queries ----------

// IsInside reports whether Min <= p < Max on every axis.
func (b Box[V, T]) IsInside(p V) bool {
	for i := 0; i < p.Dim(); i++ {
		if c := p.At(i); c < b.Min.At(i) || c >= b.Max.At(i) {
			return false
		}
	}
	return true
}

// Intersects reports whether b and o share interior volume. Boxes that
// only touch on a face, edge or corner do not intersect.
func (b Box[V, T]) Intersects(o Box[V, T]) bool {
	for i := 0; i < b.Min.Dim(); i++ {
		if b.Min.At(i) >= o.Max.At(i) || b.Max.At(i) <= o.Min.At(i) {
			return false
		}
	}
	return true
}

// IsValid reports whether Max > Min on every axis.
func (b Box[V, T]) IsValid() bool {
	for i := 0; i < b.Min.Dim(); i++ {
		if b.Max.At(i) <= b.Min.At(i) {
			return false
		}
	}
	return true
}

// Size returns Max - Min.
func (b Box[V, T]) Size() V {
	return b.Max.Sub(b.Min)
}

// Center returns (Min + Max) / 2. Integer boxes truncate.
func (b Box[V, T]) Center() V {
	return b.Max.Add(b.Min).DivScalar(2)
}

// ---------- growing ----------

// AddPoint grows b to contain p and returns b.
func (b *Box[V, T]) AddPoint(p V) *Box[V, T] {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
	return b
}

// AddPointMaxComplement grows b to contain the unit cell whose minimum
// corner is p, i.e. p and p + (1, 1, ...). It returns b.
func (b *Box[V, T]) AddPointMaxComplement(p V) *Box[V, T] {
	var z V
	return b.AddPointMaxComplementBy(p, z.Broadcast(1))
}

// AddPointMaxComplementBy grows b to contain p and p + c and returns b.
func (b *Box[V, T]) AddPointMaxComplementBy(p, c V) *Box[V, T] {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p.Add(c))
	return b
}

// Merge grows b to contain o and returns b.
func (b *Box[V, T]) Merge(o Box[V, T]) *Box[V, T] {
	b.Min = b.Min.Min(o.Min)
	b.Max = b.Max.Max(o.Max)
	return b
}

// Translate returns b moved by v.
func (b Box[V, T]) Translate(v V) Box[V, T] {
	return Box[V, T]{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// ---------- comparison ----------

// Equal reports exact equality of both corners.
func (b Box[V, T]) Equal(o Box[V, T]) bool {
	return b == o
}

// String formats b as "{min, max}".
func (b Box[V, T]) String() string {
	return fmt.Sprintf("{%v, %v}", b.Min, b.Max)
}

// Intersection returns the overlap of a and b.
//
// The boxes must intersect; otherwise it is a warn-level violation and the
// returned box is invalid rather than clamped to empty.
func Intersection[V vector.Vector[V, T], T scalar.Number](a, b Box[V, T]) Box[V, T] {
	if assert.WarnOn {
		assert.Warn(a.Intersects(b), "box.Intersection", "boxes do not intersect")
	}
	return Box[V, T]{Min: a.Min.Max(b.Min), Max: a.Max.Min(b.Max)}
}

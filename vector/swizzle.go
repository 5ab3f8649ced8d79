// SPDX-License-Identifier: MIT

package vector

import "unsafe"

// Shrinking accessors return pointers into the receiver's memory; the
// rest build new values.

// XYZ extends v with z.
func (v Vector2[T]) XYZ(z T) Vector3[T] {
	return Vector3[T]{v.X, v.Y, z}
}

// XYZW extends v with z and w.
func (v Vector2[T]) XYZW(z, w T) Vector4[T] {
	return Vector4[T]{v.X, v.Y, z, w}
}

// YX swaps the components.
func (v Vector2[T]) YX() Vector2[T] {
	return Vector2[T]{v.Y, v.X}
}

// XY aliases the first two components of v.
func (v *Vector3[T]) XY() *Vector2[T] {
	return (*Vector2[T])(unsafe.Pointer(v))
}

// XZ returns (x, z).
func (v Vector3[T]) XZ() Vector2[T] {
	return Vector2[T]{v.X, v.Z}
}

// ZYX reverses the components.
func (v Vector3[T]) ZYX() Vector3[T] {
	return Vector3[T]{v.Z, v.Y, v.X}
}

// XYZW extends v with w. Use 1 for points and 0 for directions.
func (v Vector3[T]) XYZW(w T) Vector4[T] {
	return Vector4[T]{v.X, v.Y, v.Z, w}
}

// XY aliases the first two components of v.
func (v *Vector4[T]) XY() *Vector2[T] {
	return (*Vector2[T])(unsafe.Pointer(v))
}

// XYZ aliases the first three components of v.
func (v *Vector4[T]) XYZ() *Vector3[T] {
	return (*Vector3[T])(unsafe.Pointer(v))
}

func (v Vector4[T]) XZ() Vector2[T]   { return Vector2[T]{v.X, v.Z} }
func (v Vector4[T]) ZW() Vector2[T]   { return Vector2[T]{v.Z, v.W} }
func (v Vector4[T]) ZYX() Vector3[T]  { return Vector3[T]{v.Z, v.Y, v.X} }
func (v Vector4[T]) ZYXW() Vector4[T] { return Vector4[T]{v.Z, v.Y, v.X, v.W} }
func (v Vector4[T]) WZYX() Vector4[T] { return Vector4[T]{v.W, v.Z, v.Y, v.X} }

// Swizzle2 picks components i and j into a new Vector2.
func (v Vector2[T]) Swizzle2(i, j int) Vector2[T] { return Vector2[T]{v.At(i), v.At(j)} }

// Swizzle3 picks components i, j and k into a new Vector3.
func (v Vector2[T]) Swizzle3(i, j, k int) Vector3[T] { return Vector3[T]{v.At(i), v.At(j), v.At(k)} }

// Swizzle4 picks four components into a new Vector4.
func (v Vector2[T]) Swizzle4(i, j, k, l int) Vector4[T] {
	return Vector4[T]{v.At(i), v.At(j), v.At(k), v.At(l)}
}

func (v Vector3[T]) Swizzle2(i, j int) Vector2[T]    { return Vector2[T]{v.At(i), v.At(j)} }
func (v Vector3[T]) Swizzle3(i, j, k int) Vector3[T] { return Vector3[T]{v.At(i), v.At(j), v.At(k)} }
func (v Vector3[T]) Swizzle4(i, j, k, l int) Vector4[T] {
	return Vector4[T]{v.At(i), v.At(j), v.At(k), v.At(l)}
}

func (v Vector4[T]) Swizzle2(i, j int) Vector2[T]    { return Vector2[T]{v.At(i), v.At(j)} }
func (v Vector4[T]) Swizzle3(i, j, k int) Vector3[T] { return Vector3[T]{v.At(i), v.At(j), v.At(k)} }
func (v Vector4[T]) Swizzle4(i, j, k, l int) Vector4[T] {
	return Vector4[T]{v.At(i), v.At(j), v.At(k), v.At(l)}
}

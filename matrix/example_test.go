// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/yama/matrix"
	"github.com/katalvlaran/yama/vector"
)

// ExampleMatrix4x4_Mul composes a scale and a translation. The right
// operand is applied first.
func ExampleMatrix4x4_Mul() {
	m := matrix.Translation4(3.0, 1, -2).Mul(matrix.ScalingUniform4(2.0))
	fmt.Println(m.TransformCoord(vector.New3(1.0, 2, 3)))

	// Output:
	// (5, 5, 4)
}

// ExampleMatrix3x4_Column shows that columns alias the matrix storage.
func ExampleMatrix3x4_Column() {
	m := matrix.Identity34[float32]()
	*m.Column(3) = vector.New3[float32](7, 8, 9)
	fmt.Println(m.Translation())
	fmt.Println(m.Slice())

	// Output:
	// (7, 8, 9)
	// [1 0 0 0 1 0 0 0 1 7 8 9]
}

// ExampleMatrix3x3_Inverse returns the determinant alongside the inverse
// so callers can detect singular input.
func ExampleMatrix3x3_Inverse() {
	m := matrix.Rows3(
		1.0, 2, 3,
		5, 3, 2,
		2, 1, 1)
	inv, det := m.Inverse()
	fmt.Println(det)
	fmt.Println(inv.Mul(m).Equal(matrix.Identity3[float64]()))

	_, det = matrix.Rows3(1.0, 2, 3, 2, 4, 6, 0, 0, 1).Inverse()
	fmt.Println(det)

	// Output:
	// -4
	// true
	// 0
}

// ExamplePerspectiveLH projects a point inside the frustum to normalized
// device coordinates.
func ExamplePerspectiveLH() {
	m := matrix.PerspectiveLH(8.0, 6, 3, 10)
	p := m.TransformCoord(vector.New3(8.0, 3, 6))
	fmt.Printf("%.4f %.4f %.4f\n", p.X, p.Y, p.Z)

	// Output:
	// 1.0000 0.5000 0.7143
}

// ExampleLookAtLH moves the target onto the +Z view axis.
func ExampleLookAtLH() {
	view := matrix.LookAtLH(
		vector.New3(0.0, 0, -5),
		vector.New3(0.0, 0, 0),
		vector.New3(0.0, 1, 0))
	fmt.Println(view.TransformCoord(vector.New3(0.0, 0, 0)))

	// Output:
	// (0, 0, 5)
}

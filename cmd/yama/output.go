// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/yama"
	"github.com/katalvlaran/yama/layout"
)

// printMatrix4 writes m row by row followed by its digest.
func printMatrix4(w io.Writer, m yama.Matrix4x4) {
	for i := 0; i < 4; i++ {
		fmt.Fprintln(w, m.RowVector(i))
	}
	fmt.Fprintf(w, "digest %016x\n", layout.Digest(&m))
}

func printMatrix3(w io.Writer, m yama.Matrix3x3) {
	for i := 0; i < 3; i++ {
		fmt.Fprintln(w, m.RowVector(i))
	}
}

// number is a flag value holding a yama.Preferred.
type number yama.Preferred

func (n *number) String() string { return strconv.FormatFloat(float64(*n), 'g', -1, 64) }
func (n *number) Type() string   { return "float" }

func (n *number) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = number(f)
	return nil
}

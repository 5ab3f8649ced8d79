// SPDX-License-Identifier: MIT

//go:build !yama_double

package yama

// Preferred is the scalar type behind the shorthand aliases. Build with
// -tags yama_double to switch it to float64.
type Preferred = float32

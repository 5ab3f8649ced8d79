// SPDX-License-Identifier: MIT

//go:build yama_double

package yama

// Preferred is the scalar type behind the shorthand aliases.
type Preferred = float64

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/yama/assert"
)

// Sentinel errors returned by the commands. Callers match them with errors.Is.
var (
	// ErrUnknownProjection is returned for a --kind or --hand value that
	// names no projection.
	ErrUnknownProjection = errors.New("yama: unknown projection")

	// ErrBadScene is returned when a scene file cannot be decoded or one of
	// its steps is malformed.
	ErrBadScene = errors.New("yama: bad scene")

	// ErrBadVector is returned when a vector flag is not a comma-separated
	// list of the expected number of components.
	ErrBadVector = errors.New("yama: bad vector")
)

// guard runs fn and turns a failed library check into an error. The
// returned error wraps the *assert.Violation, so errors.Is against
// assert.ErrBad and friends keeps working.
func guard(op string, fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		v, ok := r.(*assert.Violation)
		if !ok {
			panic(r)
		}
		err = fmt.Errorf("%s: %w", op, v)
	}()
	fn()
	return nil
}

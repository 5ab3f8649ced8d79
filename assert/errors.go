// SPDX-License-Identifier: MIT

package assert

import "errors"

// Sentinels for each severity. A *Violation unwraps to exactly one of them,
// so a recovered panic can be classified with errors.Is.
var (
	// ErrCritical marks a violation that would corrupt memory if ignored.
	ErrCritical = errors.New("yama: critical assertion failed")

	// ErrBad marks a violated mathematical precondition.
	ErrBad = errors.New("yama: bad assertion failed")

	// ErrWarn marks numerically risky input.
	ErrWarn = errors.New("yama: warning assertion failed")
)

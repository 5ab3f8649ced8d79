// SPDX-License-Identifier: MIT

// Package assert implements yama's build-configurable precondition checks.
//
// The library has no error returns: every precondition (index in range,
// unit-length axis, non-degenerate basis, non-zero divisor) is a caller
// responsibility, checked only when the matching assertion level is
// compiled in. Levels are chosen once per program with build tags:
//
//	(no tag)                    LevelAll:       critical, bad and warn checks
//	-tags yama_assert_bad       LevelBad:       critical and bad checks
//	-tags yama_assert_critical  LevelCritical:  critical checks only
//	-tags yama_assert_none      LevelNone:      no checks
//
// Severity taxonomy:
//
//   - Critical: out-of-bounds indexing, attaching to a nil or short buffer.
//   - Bad: a non-normalized vector or quaternion where unit length is a
//     mathematical precondition, degenerate basis transforms.
//   - Warn: numerically risky input such as division by a value close to
//     zero or intersecting boxes that do not overlap.
//
// A failed check logs the violation through zap and panics with a
// *Violation that unwraps to ErrCritical, ErrBad or ErrWarn. With a check
// compiled out the operation runs anyway and returns whatever the
// arithmetic produces (NaN, Inf or a degenerate zero).
//
// The CriticalOn/BadOn/WarnOn constants let call sites skip evaluating an
// expensive condition:
//
//	if assert.BadOn {
//		assert.Bad(axis.IsNormalized(), "quaternion.RotationNAxis", "axis must be normalized")
//	}
package assert

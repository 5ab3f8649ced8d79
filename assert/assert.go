// SPDX-License-Identifier: MIT

package assert

import (
	"fmt"

	"go.uber.org/zap"
)

// Level selects which severities are checked.
type Level uint8

// Levels, ordered: each one includes the checks of the levels below it.
const (
	LevelNone Level = iota
	LevelCritical
	LevelBad
	LevelAll
)

// Compile-time switches derived from Enabled.
const (
	CriticalOn = Enabled >= LevelCritical
	BadOn      = Enabled >= LevelBad
	WarnOn     = Enabled >= LevelAll
)

// String returns the build-tag spelling of the level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelCritical:
		return "critical"
	case LevelBad:
		return "bad"
	case LevelAll:
		return "all"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

// Severity classifies a single violation.
type Severity uint8

// Severities.
const (
	SeverityCritical Severity = iota + 1
	SeverityBad
	SeverityWarn
)

// String returns "critical", "bad" or "warn".
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityBad:
		return "bad"
	case SeverityWarn:
		return "warn"
	default:
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
}

func (s Severity) sentinel() error {
	switch s {
	case SeverityCritical:
		return ErrCritical
	case SeverityBad:
		return ErrBad
	default:
		return ErrWarn
	}
}

// Violation is the panic value of a failed check.
//
// Op names the type and operation ("matrix.Matrix4x4.BasisTransform"),
// Message the violated condition.
type Violation struct {
	Severity Severity
	Op       string
	Message  string
}

// Error implements error.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s: %s", v.Severity.sentinel(), v.Op, v.Message)
}

// Unwrap returns the severity sentinel.
func (v *Violation) Unwrap() error {
	return v.Severity.sentinel()
}

// Critical fails with SeverityCritical when cond is false and critical
// checks are compiled in.
func Critical(cond bool, op, msg string) {
	if CriticalOn && !cond {
		fail(SeverityCritical, op, msg)
	}
}

// Bad fails with SeverityBad when cond is false and bad checks are
// compiled in.
func Bad(cond bool, op, msg string) {
	if BadOn && !cond {
		fail(SeverityBad, op, msg)
	}
}

// Warn fails with SeverityWarn when cond is false and all checks are
// compiled in.
func Warn(cond bool, op, msg string) {
	if WarnOn && !cond {
		fail(SeverityWarn, op, msg)
	}
}

// Index checks 0 <= i < n at critical severity.
func Index(i, n int, op string) {
	if CriticalOn && (i < 0 || i >= n) {
		fail(SeverityCritical, op, fmt.Sprintf("index %d out of range [0,%d)", i, n))
	}
}

// Length checks that a source buffer holds at least n scalars.
func Length(got, n int, op string) {
	if CriticalOn && got < n {
		fail(SeverityCritical, op, fmt.Sprintf("buffer holds %d scalars, need %d", got, n))
	}
}

func fail(s Severity, op, msg string) {
	v := &Violation{Severity: s, Op: op, Message: msg}
	Logger().Error("assertion failed",
		zap.Stringer("severity", s),
		zap.String("op", op),
		zap.String("condition", msg),
		zap.Stringer("enabled", Enabled),
	)
	panic(v)
}

// SPDX-License-Identifier: MIT
package assert_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/yama/assert"
)

// observe swaps the reporter for an in-memory observer for the test's lifetime.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := assert.SetLogger(zap.New(core))
	t.Cleanup(func() { assert.SetLogger(prev) })
	return logs
}

// recoverViolation runs fn and returns the *assert.Violation it panicked with.
func recoverViolation(t *testing.T, fn func()) (v *assert.Violation) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error")
		require.True(t, errors.As(err, &v))
	}()
	fn()
	return nil
}

func TestLevelSwitches(t *testing.T) {
	require.Equal(t, assert.Enabled >= assert.LevelCritical, assert.CriticalOn)
	require.Equal(t, assert.Enabled >= assert.LevelBad, assert.BadOn)
	require.Equal(t, assert.Enabled == assert.LevelAll, assert.WarnOn)
	require.Equal(t, "critical", assert.LevelCritical.String())
	require.Equal(t, "all", assert.LevelAll.String())
	require.Equal(t, "warn", assert.SeverityWarn.String())
}

func TestPassingChecksAreSilent(t *testing.T) {
	logs := observe(t)
	assert.Critical(true, "op", "never")
	assert.Bad(true, "op", "never")
	assert.Warn(true, "op", "never")
	assert.Index(2, 3, "op")
	assert.Length(4, 4, "op")
	require.Zero(t, logs.Len()) // nothing reported
}

func TestCriticalViolation(t *testing.T) {
	if !assert.CriticalOn {
		t.Skip("critical checks compiled out")
	}
	logs := observe(t)

	v := recoverViolation(t, func() { assert.Index(3, 3, "vector.Vector3.At") })
	require.Equal(t, assert.SeverityCritical, v.Severity)
	require.Equal(t, "vector.Vector3.At", v.Op)
	require.ErrorIs(t, v, assert.ErrCritical)        // classified by sentinel
	require.False(t, errors.Is(v, assert.ErrBad))     // and only that one
	require.Contains(t, v.Error(), "index 3 out of range [0,3)")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, zapcore.ErrorLevel, entry.Level)
	require.Equal(t, "assertion failed", entry.Message)
	require.Equal(t, "critical", entry.ContextMap()["severity"])
	require.Equal(t, "vector.Vector3.At", entry.ContextMap()["op"])
	require.Equal(t, "index 3 out of range [0,3)", entry.ContextMap()["condition"])
	require.NotContains(t, entry.ContextMap(), "msg") // would collide with the message key
}

func TestLengthViolation(t *testing.T) {
	if !assert.CriticalOn {
		t.Skip("critical checks compiled out")
	}
	observe(t)
	v := recoverViolation(t, func() { assert.Length(2, 3, "vector.FromSlice3") })
	require.ErrorIs(t, v, assert.ErrCritical)
	require.Contains(t, v.Message, "holds 2 scalars, need 3")
}

func TestBadAndWarnViolations(t *testing.T) {
	logs := observe(t)
	if assert.BadOn {
		v := recoverViolation(t, func() { assert.Bad(false, "quaternion.RotationNAxis", "axis must be normalized") })
		require.ErrorIs(t, v, assert.ErrBad)
	} else {
		require.NotPanics(t, func() { assert.Bad(false, "op", "compiled out") })
	}
	if assert.WarnOn {
		v := recoverViolation(t, func() { assert.Warn(false, "box.Intersection", "boxes do not intersect") })
		require.ErrorIs(t, v, assert.ErrWarn)
		require.Equal(t, "box.Intersection", v.Op)
	} else {
		require.NotPanics(t, func() { assert.Warn(false, "op", "compiled out") })
	}
	require.Equal(t, boolToInt(assert.BadOn)+boolToInt(assert.WarnOn), logs.Len())
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	prev := assert.SetLogger(nil)
	defer assert.SetLogger(prev)
	require.NotNil(t, assert.Logger())
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestViolationLogLineKeys(t *testing.T) {
	if !assert.CriticalOn {
		t.Skip("critical checks compiled out")
	}
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&buf),
		zapcore.DebugLevel,
	)
	prev := assert.SetLogger(zap.New(core))
	t.Cleanup(func() { assert.SetLogger(prev) })

	recoverViolation(t, func() { assert.Length(2, 3, "vector.FromSlice3") })

	line := buf.String()
	require.Equal(t, 1, strings.Count(line, `"msg":`), line)
	require.Equal(t, 1, strings.Count(line, `"level":`), line)
	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &fields))
	require.Equal(t, "assertion failed", fields["msg"])
	require.Equal(t, "vector.FromSlice3", fields["op"])
	require.NotEmpty(t, fields["condition"])
	require.Equal(t, "error", fields["level"])
	require.NotEmpty(t, fields["enabled"])
}

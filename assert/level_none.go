// SPDX-License-Identifier: MIT

//go:build yama_assert_none

package assert

// Enabled is the assertion level compiled into this build.
const Enabled = LevelNone

// SPDX-License-Identifier: MIT

//go:build yama_assert_bad && !yama_assert_none && !yama_assert_critical

package assert

// Enabled is the assertion level compiled into this build.
const Enabled = LevelBad

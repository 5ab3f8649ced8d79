// SPDX-License-Identifier: MIT

//go:build !yama_assert_none && !yama_assert_critical && !yama_assert_bad

package assert

// Enabled is the assertion level compiled into this build.
const Enabled = LevelAll

// SPDX-License-Identifier: MIT

//go:build lvarray_nocheck

package check

// Enabled reports whether hot-path assertions are compiled in.
const Enabled = false

// SPDX-License-Identifier: MIT

package check

import "fmt"

// Assert panics with a formatted precondition message when cond is false.
// Callers guard it with Enabled so the whole call folds away in nocheck builds:
//
//	if check.Enabled {
//		check.Assert(i < n, "row %d out of range [0,%d)", i, n)
//	}
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("lvarray: precondition failed: "+format, args...))
	}
}

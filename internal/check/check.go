// SPDX-License-Identifier: MIT

//go:build !lvarray_nocheck

// Package check switches hot-path precondition assertions on and off.
//
// The default build keeps the assertions: an out-of-range coordinate handed
// to an unchecked accessor panics with a descriptive message. Building with
// the tag `lvarray_nocheck` compiles them out, so the fused loops carry no
// bounds logic beyond what the Go runtime itself enforces.
package check

// Enabled reports whether hot-path assertions are compiled in.
const Enabled = true

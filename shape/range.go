// SPDX-License-Identifier: MIT

package shape

import "fmt"

// Range selects the inclusive index interval [From, To] of one dimension.
// The zero value is not meaningful; build ranges with R or All.
type Range struct {
	From, To int
	all      bool
}

// R returns the inclusive range [from, to].
func R(from, to int) Range { return Range{From: from, To: to} }

// All selects every index of a dimension.
func All() Range { return Range{all: true} }

// IsAll reports whether r selects a whole dimension.
func (r Range) IsAll() bool { return r.all }

// Resolve maps r onto a dimension with the given lower bound and extent and
// returns the concrete first index and the number of selected indices.
// An empty range (To == From-1) is legal and yields n == 0.
//
// Errors:
//   - ErrIndexOutOfRange when the range leaves [lower, lower+extent-1]
//     or To < From-1.
func (r Range) Resolve(lower, extent int) (first, n int, err error) {
	if r.all {
		return lower, extent, nil
	}
	n = r.To - r.From + 1
	if n < 0 {
		return 0, 0, fmt.Errorf("shape.Range(%d,%d): reversed: %w", r.From, r.To, ErrIndexOutOfRange)
	}
	if n == 0 {
		return r.From, 0, nil
	}
	if r.From < lower || r.To > lower+extent-1 {
		return 0, 0, fmt.Errorf("shape.Range(%d,%d): outside [%d,%d]: %w", r.From, r.To, lower, lower+extent-1, ErrIndexOutOfRange)
	}

	return r.From, n, nil
}

// String renders "a:b" or ":" for All.
func (r Range) String() string {
	if r.all {
		return ":"
	}

	return fmt.Sprintf("%d:%d", r.From, r.To)
}

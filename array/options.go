// SPDX-License-Identifier: MIT

package array

import "golang.org/x/exp/constraints"

const panicPoolNil = "array: WithPool: pool must be non-nil"

// Option configures an owning array at construction.
type Option[T constraints.Float] func(*Options[T])

// Options is the resolved construction configuration.
type Options[T constraints.Float] struct {
	pool *Pool[T] // nil: plain allocation, Release drops the buffer
}

// WithPool draws the buffer from p and returns it to p on Release.
func WithPool[T constraints.Float](p *Pool[T]) Option[T] {
	if p == nil {
		panic(panicPoolNil)
	}

	return func(o *Options[T]) { o.pool = p }
}

func gatherOptions[T constraints.Float](opts []Option[T]) Options[T] {
	var o Options[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o Options[T]) alloc(n int) []T {
	if o.pool != nil {
		return o.pool.Get(n)
	}

	return make([]T, n)
}

// SPDX-License-Identifier: MIT

// Package traverse: functional configuration for Assign and Sum.
//   - Option / Options with documented defaults.
//   - WithX constructors panic on nonsensical values (programmer error).
//   - gatherOptions resolves the effective configuration.

package traverse

import (
	"fmt"

	"go.uber.org/zap"
)

// Policy selects the visitation order of a traversal.
type Policy int

const (
	// Natural visits positions in storage order.
	Natural Policy = iota
	// Fast visits positions in the cached tiled order of the shape.
	Fast
)

func (p Policy) String() string {
	switch p {
	case Natural:
		return "natural"
	case Fast:
		return "fast"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// DefaultPolicy is the policy used when WithPolicy is not given.
const DefaultPolicy = Natural

const (
	panicPolicyInvalid = "traverse: WithPolicy: unknown policy"
	panicCacheNil      = "traverse: WithCache: cache must be non-nil"
	panicLoggerNil     = "traverse: WithLogger: logger must be non-nil"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved traversal configuration.
type Options struct {
	policy Policy      // DefaultPolicy
	cache  *Cache      // nil: Fast falls back to Natural
	logger *zap.Logger // zap.NewNop()
}

// WithPolicy selects the traversal policy.
// Panics on a policy other than Natural or Fast.
func WithPolicy(p Policy) Option {
	if p != Natural && p != Fast {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithCache supplies the order cache consulted by the Fast policy.
func WithCache(c *Cache) Option {
	if c == nil {
		panic(panicCacheNil)
	}

	return func(o *Options) { o.cache = c }
}

// WithLogger routes traversal diagnostics (policy fallbacks, scratch
// evaluation) to l at debug level.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts []Option) Options {
	o := Options{policy: DefaultPolicy, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

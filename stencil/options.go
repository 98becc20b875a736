// SPDX-License-Identifier: MIT

package stencil

import (
	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/traverse"
	"go.uber.org/zap"
)

// DefaultPolicy is the traversal policy of the interior update.
const DefaultPolicy = traverse.Fast

const (
	panicLoggerNil = "stencil: WithLogger: logger must be non-nil"
	panicPoolNil   = "stencil: WithPool: pool must be non-nil"
	panicTileSize  = "stencil: WithTileSize: tile must be > 0"
)

// Option configures an Acoustic3D solver.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	policy traverse.Policy // DefaultPolicy
	tile   int             // traverse.DefaultTileSize
	pool   *array.Pool[float32]
	logger *zap.Logger // zap.NewNop()
}

// WithPolicy selects the traversal policy of the interior update.
func WithPolicy(p traverse.Policy) Option {
	traverse.WithPolicy(p) // validates p
	return func(o *Options) { o.policy = p }
}

// WithTileSize sets the tile edge of the fast traversal order.
func WithTileSize(tile int) Option {
	if tile <= 0 {
		panic(panicTileSize)
	}

	return func(o *Options) { o.tile = tile }
}

// WithPool allocates the four grids from p; Close hands them back.
func WithPool(p *array.Pool[float32]) Option {
	if p == nil {
		panic(panicPoolNil)
	}

	return func(o *Options) { o.pool = p }
}

// WithLogger sets the solver logger. Setup and Run log at info level,
// snapshots and traversal diagnostics at debug level.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts []Option) Options {
	o := Options{policy: DefaultPolicy, tile: traverse.DefaultTileSize, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

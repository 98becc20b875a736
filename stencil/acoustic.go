// SPDX-License-Identifier: MIT

// Package stencil - the Acoustic3D solver.
//
// Grid:
//   - Four N×N×N float32 arrays: three pressure generations and velocity c.
//   - The interior is [1, N-2] in every dimension; boundary cells stay zero.
//
// Step:
//   - Three update expressions are built once, one per rotation phase, each
//     reading shifted views of that phase's P1/P2 and writing P3's interior.
//   - Cycling advances the phase; no data moves.

package stencil

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/expr"
	"github.com/katalvlaran/lvarray/shape"
	"github.com/katalvlaran/lvarray/traverse"
	"go.uber.org/zap"
)

// Velocity values of the two half-spaces and the two cavities.
const (
	VelocityLow    = 0.05
	VelocityHigh   = 0.3
	VelocityCavity = 0.02
	VelocityVoid   = 0.001
)

// pulseWidth scales the Gaussian exponent: s2 = pulseWidth / (N/2)².
const pulseWidth = 64 * 9

// Acoustic3D is a three-generation acoustic wave solver on an N³ grid.
// It is not safe for concurrent use.
type Acoustic3D struct {
	n      int
	gen    [3]*array.Array[float32]
	c      *array.Array[float32]
	phase  int // gen[phase]=P1, gen[phase+1]=P2, gen[phase+2]=P3 (mod 3)
	steps  int
	update [3]expr.Expr[float32]
	dst    [3]*array.Array[float32] // interior of the phase's P3
	cache  *traverse.Cache
	trav   []traverse.Option
	logger *zap.Logger
	closed bool
}

// New allocates an n³ solver and applies the initial conditions (Setup).
//
// Errors:
//   - ErrBadSize for n < 3.
func New(n int, opts ...Option) (*Acoustic3D, error) {
	if n < 3 {
		return nil, fmt.Errorf("stencil.New: n=%d: %w", n, ErrBadSize)
	}
	o := gatherOptions(opts)
	sh := shape.MustNew(n, n, n)

	var aopts []array.Option[float32]
	if o.pool != nil {
		aopts = append(aopts, array.WithPool(o.pool))
	}
	s := &Acoustic3D{n: n, logger: o.logger.With(zap.Int("n", n))}
	for g := range s.gen {
		s.gen[g] = array.NewShaped(sh, aopts...)
	}
	s.c = array.NewShaped(sh, aopts...)

	s.trav = []traverse.Option{traverse.WithPolicy(o.policy), traverse.WithLogger(s.logger)}
	if o.policy == traverse.Fast {
		s.cache = traverse.NewCache(o.tile)
		s.cache.Generate(sh) // Setup
		s.cache.Generate(shape.MustNew(n-2, n-2, n-2))
		s.trav = append(s.trav, traverse.WithCache(s.cache))
	}

	if err := s.build(); err != nil {
		return nil, fmt.Errorf("stencil.New: %w", err)
	}
	if err := s.Setup(); err != nil {
		return nil, fmt.Errorf("stencil.New: %w", err)
	}

	return s, nil
}

// interior returns a's cells [1+di, n-2+di] × [1+dj, n-2+dj] × [1+dk, n-2+dk].
func (s *Acoustic3D) interior(a *array.Array[float32], di, dj, dk int) (*array.Array[float32], error) {
	hi := s.n - 2
	return a.Slice(shape.R(1+di, hi+di), shape.R(1+dj, hi+dj), shape.R(1+dk, hi+dk))
}

// build prepares the three phase expressions.
func (s *Acoustic3D) build() error {
	c, err := s.interior(s.c, 0, 0, 0)
	if err != nil {
		return err
	}
	cc := c.Expr()
	shifts := [6][3]int{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}}

	for p := range s.update {
		p1, p2, p3 := s.gen[p], s.gen[(p+1)%3], s.gen[(p+2)%3]

		centre, err := s.interior(p2, 0, 0, 0)
		if err != nil {
			return err
		}
		prev, err := s.interior(p1, 0, 0, 0)
		if err != nil {
			return err
		}
		var neighbours []expr.Expr[float32]
		for _, d := range shifts {
			v, err := s.interior(p2, d[0], d[1], d[2])
			if err != nil {
				return err
			}
			neighbours = append(neighbours, v.Expr())
		}
		if s.dst[p], err = s.interior(p3, 0, 0, 0); err != nil {
			return err
		}

		// (2 - 6c)·P2 + c·Σneighbours - P1
		s.update[p] = expr.Sub(
			expr.Add(
				expr.Mul(expr.Sub(expr.Const[float32](2), expr.Mul(expr.Const[float32](6), cc)), centre.Expr()),
				expr.Mul(cc, expr.Sum(neighbours...)),
			),
			prev.Expr(),
		)
	}

	return nil
}

// Cavity bounds for a grid of size n, as inclusive index ranges
// (first dimension, second, third).
type Cavity struct {
	Rows, Cols, Layers shape.Range
}

type region struct {
	at Cavity
	v  float32
}

// Cavities returns the dense cavity and the near-void cavity for size n.
// Bounds are the truncated fractions of n used by the classic benchmark.
func Cavities(n int) (dense, void Cavity) {
	at := func(num float64) int { return int(num*float64(n)/7.0 - 1) }
	left, right := at(3), at(4)

	dense = Cavity{Rows: shape.R(at(5), at(6)), Cols: shape.R(left, right), Layers: shape.R(left, right)}
	void = Cavity{Rows: shape.R(at(1), at(2)), Cols: shape.R(left, right), Layers: shape.R(left, right)}

	return dense, void
}

// Setup applies the initial conditions and resets the phase and step count:
//   - c is VelocityLow in the upper half of the first dimension and
//     VelocityHigh in the lower half, with two cavities carved in.
//   - P1 and P3 are zero; P2 is a Gaussian pulse centred at N/2-1.
func (s *Acoustic3D) Setup() error {
	if s.closed {
		return fmt.Errorf("Acoustic3D.Setup: %w", ErrClosed)
	}
	n, half := s.n, s.n/2
	s.phase, s.steps = 0, 0

	dense, void := Cavities(n)
	regions := []region{
		{Cavity{shape.R(0, half-1), shape.All(), shape.All()}, VelocityLow},
		{Cavity{shape.R(half, n-1), shape.All(), shape.All()}, VelocityHigh},
		{dense, VelocityCavity},
		{void, VelocityVoid},
	}
	for _, r := range regions {
		v, err := s.c.Slice(r.at.Rows, r.at.Cols, r.at.Layers)
		if err != nil {
			return fmt.Errorf("Acoustic3D.Setup: velocity rows %v: %w", r.at.Rows, err)
		}
		if err = v.Fill(r.v); err != nil {
			return fmt.Errorf("Acoustic3D.Setup: %w", err)
		}
	}

	for g := range s.gen {
		if err := s.gen[g].Fill(0); err != nil {
			return fmt.Errorf("Acoustic3D.Setup: %w", err)
		}
	}
	if err := s.P2().Assign(pulse(n), s.trav...); err != nil {
		return fmt.Errorf("Acoustic3D.Setup: pulse: %w", err)
	}

	s.logger.Info("acoustic grid initialised",
		zap.Stringer("dense_cavity", dense.Rows),
		zap.Stringer("void_cavity", void.Rows),
	)

	return nil
}

// pulse is exp(-((i-ci)² + (j-cj)² + (k-ck)²)·s2) with ci=cj=ck=n/2-1.
func pulse(n int) expr.Expr[float32] {
	centre := expr.Const(float32(n/2 - 1))
	s2 := expr.Const(float32(pulseWidth / math.Pow(float64(n)/2.0, 2)))
	d2 := expr.Sum(
		expr.Pow2(expr.Sub(expr.I[float32](), centre)),
		expr.Pow2(expr.Sub(expr.J[float32](), centre)),
		expr.Pow2(expr.Sub(expr.K[float32](), centre)),
	)

	return expr.Exp(expr.Neg(expr.Mul(d2, s2)))
}

// N returns the grid edge.
func (s *Acoustic3D) N() int { return s.n }

// Steps returns the number of steps taken since Setup.
func (s *Acoustic3D) Steps() int { return s.steps }

// P1 returns the previous generation.
func (s *Acoustic3D) P1() *array.Array[float32] { return s.gen[s.phase] }

// P2 returns the current generation.
func (s *Acoustic3D) P2() *array.Array[float32] { return s.gen[(s.phase+1)%3] }

// P3 returns the generation the next step writes.
func (s *Acoustic3D) P3() *array.Array[float32] { return s.gen[(s.phase+2)%3] }

// Velocity returns the velocity field c.
func (s *Acoustic3D) Velocity() *array.Array[float32] { return s.c }

// Step updates the interior of P3 and cycles the generations so that the
// freshly computed field becomes P2.
func (s *Acoustic3D) Step() error {
	if s.closed {
		return fmt.Errorf("Acoustic3D.Step: %w", ErrClosed)
	}
	if err := s.dst[s.phase].Assign(s.update[s.phase], s.trav...); err != nil {
		return fmt.Errorf("Acoustic3D.Step: %w", err)
	}
	s.phase = (s.phase + 1) % 3
	s.steps++

	return nil
}

// Run takes niters steps, offering the current field to snaps (if non-nil)
// after each one, and returns the Checksum of the final current field.
// ctx is checked between steps.
func (s *Acoustic3D) Run(ctx context.Context, niters int, snaps *Snapshots) (float64, error) {
	for it := 0; it < niters; it++ {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("Acoustic3D.Run: step %d: %w", it, err)
		}
		if err := s.Step(); err != nil {
			return 0, fmt.Errorf("Acoustic3D.Run: %w", err)
		}
		if snaps != nil {
			before := snaps.Frames()
			if err := snaps.Observe(s.P2(), s.c); err != nil {
				return 0, fmt.Errorf("Acoustic3D.Run: %w", err)
			}
			if n := snaps.Frames(); n != before {
				s.logger.Debug("snapshot emitted", zap.Int("frame", n), zap.Int("step", s.steps))
			}
		}
	}
	sum, err := Checksum(s.P2())
	if err != nil {
		return 0, fmt.Errorf("Acoustic3D.Run: %w", err)
	}
	s.logger.Info("acoustic run finished", zap.Int("steps", s.steps), zap.Float64("checksum", sum))

	return sum, nil
}

// Close releases the grids (back to the pool when one was supplied).
// Every later call fails with ErrClosed; closing twice does nothing.
func (s *Acoustic3D) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, g := range s.gen {
		g.Release()
	}
	s.c.Release()
}

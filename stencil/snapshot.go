// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"

	"github.com/katalvlaran/lvarray/array"
)

// DefaultSnapshotEvery is the snapshot cadence when none is given.
const DefaultSnapshotEvery = 5

// Frame quantization: value = ((P - FramePMin)·FramePScale + c·FrameVScale)
// scaled by FrameLevels and truncated.
const (
	FramePMin   = -0.2
	FramePScale = 1 / 0.4
	FrameVScale = 0.5
	FrameLevels = 4096
)

// Frame is a quantized picture of the k = N/2 plane.
type Frame struct {
	Num  int     // 1-based frame number
	Step int     // observations seen when the frame was taken
	Rows [][]int // Rows[i][j] for plane position (i, j)
}

// Snapshots decides when to take a Frame and hands it to Emit.
// The zero value never emits; use NewSnapshots.
type Snapshots struct {
	every int
	emit  func(Frame) error
	seen  int
	count int
	num   int
}

// NewSnapshots emits every `every` observations (DefaultSnapshotEvery when
// every <= 0). An error from emit aborts the run that observed it.
func NewSnapshots(every int, emit func(Frame) error) *Snapshots {
	if every <= 0 {
		every = DefaultSnapshotEvery
	}

	return &Snapshots{every: every, emit: emit}
}

// Frames returns the number of frames emitted so far.
func (s *Snapshots) Frames() int { return s.num }

// Observe counts one observation of (p, c); every cadence-th call takes a
// Frame and passes it to emit.
func (s *Snapshots) Observe(p, c *array.Array[float32]) error {
	if s.emit == nil {
		return nil
	}
	s.seen++
	s.count++
	if s.count < s.every {
		return nil
	}
	s.count = 0
	s.num++

	f, err := NewFrame(p, c)
	if err != nil {
		return fmt.Errorf("Snapshots.Observe: %w", err)
	}
	f.Num, f.Step = s.num, s.seen

	return s.emit(f)
}

// NewFrame quantizes the k = N/2 plane of p over velocity c. Both arrays
// must be N×N×N and zero-based.
func NewFrame(p, c *array.Array[float32]) (Frame, error) {
	if p.Rank() != 3 || !p.Shape().Conformant(c.Shape()) {
		return Frame{}, fmt.Errorf("stencil.NewFrame: %v over %v: %w", p.Shape(), c.Shape(), array.ErrShapeMismatch)
	}
	ni, nj := p.Shape().Extent(0), p.Shape().Extent(1)
	k := p.Shape().Extent(2) / 2

	rows := make([][]int, ni)
	for i := range rows {
		rows[i] = make([]int, nj)
		for j := range rows[i] {
			pv, err := p.At(i, j, k)
			if err != nil {
				return Frame{}, fmt.Errorf("stencil.NewFrame: %w", err)
			}
			cv, err := c.At(i, j, k)
			if err != nil {
				return Frame{}, fmt.Errorf("stencil.NewFrame: %w", err)
			}
			v := (float64(pv)-FramePMin)*FramePScale + float64(cv)*FrameVScale
			rows[i][j] = int(v * FrameLevels)
		}
	}

	return Frame{Rows: rows}, nil
}

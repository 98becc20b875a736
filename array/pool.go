// SPDX-License-Identifier: MIT

// Package array - size-bucketed buffer pool.
//
// Purpose:
//   - Let owners built with WithPool hand their buffer back on Release so a
//     loop that repeatedly allocates same-shaped arrays reuses memory.
//
// Implementation:
//   - One sync.Pool per length; the map is guarded by an RWMutex with a
//     double-checked slow path for pool creation.
//   - Get always returns a zeroed slice.

package array

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Pool recycles buffers of element type T. Safe for concurrent use.
type Pool[T constraints.Float] struct {
	mu    sync.RWMutex
	pools map[int]*sync.Pool
}

// NewPool returns an empty pool.
func NewPool[T constraints.Float]() *Pool[T] {
	return &Pool[T]{pools: make(map[int]*sync.Pool)}
}

func (p *Pool[T]) bucket(n int) *sync.Pool {
	p.mu.RLock()
	sp, ok := p.pools[n]
	p.mu.RUnlock()
	if ok {
		return sp
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if sp, ok = p.pools[n]; ok {
		return sp
	}
	sp = &sync.Pool{New: func() any {
		buf := make([]T, n)
		return &buf
	}}
	p.pools[n] = sp

	return sp
}

// Get returns a zeroed buffer of length n.
func (p *Pool[T]) Get(n int) []T {
	if n == 0 {
		return nil
	}
	buf := *(p.bucket(n).Get().(*[]T))
	clear(buf)

	return buf
}

// Put hands buf back for reuse. The caller must not touch buf afterwards.
func (p *Pool[T]) Put(buf []T) {
	if len(buf) == 0 {
		return
	}
	p.bucket(len(buf)).Put(&buf)
}

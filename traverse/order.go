// SPDX-License-Identifier: MIT

// Package traverse - precomputed fast traversal orders and their cache.
//
// Purpose:
//   - Order is a run list: each run starts at a zero-based position and
//     covers Len consecutive indices of the innermost dimension.
//   - Cache memoizes one Order per extent vector; lookups are safe for
//     concurrent use.
//
// Implementation:
//   - Stage 1 (Key): xxhash over the little-endian extents and the tile size.
//   - Stage 2 (Probe): bucket scan comparing extents, so a hash collision
//     never returns the wrong order.
//   - Stage 3 (Build): tiled run list, see the package doc for the rule.
//
// Complexity:
//   - Generate: O(size / innermost extent) runs; Lookup: O(rank).

package traverse

import (
	"encoding/binary"
	"fmt"
	"slices"
	"sync"

	"github.com/RoaringBitmap/roaring"
	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/lvarray/shape"
)

// DefaultTileSize is the tile edge used by NewCache when tile <= 0.
const DefaultTileSize = 16

// Order is an immutable fast traversal order for one extent vector.
type Order struct {
	ext    []int
	starts []int // rank entries per run
	lens   []int // run length along the innermost dimension
}

// Extents returns the extents the order was generated for.
func (o *Order) Extents() []int { return slices.Clone(o.ext) }

// Runs returns the number of runs.
func (o *Order) Runs() int { return len(o.lens) }

// Each calls fn for every position in visitation order. pos is reused
// between calls and must not be retained.
func (o *Order) Each(fn func(pos []int)) {
	rank := len(o.ext)
	pos := make([]int, rank)
	if rank == 0 {
		fn(pos) // the single scalar position
		return
	}
	inner := rank - 1
	for r, n := range o.lens {
		copy(pos, o.starts[r*rank:(r+1)*rank])
		first := pos[inner]
		for k := 0; k < n; k++ {
			pos[inner] = first + k
			fn(pos)
		}
	}
}

// buildOrder computes the tiled run list for ext.
func buildOrder(ext []int, tile int) *Order {
	o := &Order{ext: slices.Clone(ext)}
	rank := len(ext)
	if rank == 0 {
		return o
	}
	for _, e := range ext {
		if e == 0 {
			return o
		}
	}
	add := func(start []int, n int) {
		o.starts = append(o.starts, start...)
		o.lens = append(o.lens, n)
	}
	inner := rank - 1
	switch rank {
	case 1:
		add([]int{0}, ext[0])
	case 2:
		for bi := 0; bi < ext[0]; bi += tile {
			for bj := 0; bj < ext[1]; bj += tile {
				n := min(tile, ext[1]-bj)
				for i := bi; i < min(bi+tile, ext[0]); i++ {
					add([]int{i, bj}, n)
				}
			}
		}
	default:
		a, b := rank-3, rank-2
		outer, err := shape.New(ext[:a]...)
		if err != nil {
			panic(err) // ext was validated by the caller
		}
		pos := make([]int, rank)
		head := pos[:a]
		for ok := outer.First(head); ok; ok = outer.Next(head) {
			for ba := 0; ba < ext[a]; ba += tile {
				for bb := 0; bb < ext[b]; bb += tile {
					for ia := ba; ia < min(ba+tile, ext[a]); ia++ {
						for ib := bb; ib < min(bb+tile, ext[b]); ib++ {
							pos[a], pos[b], pos[inner] = ia, ib, 0
							add(pos, ext[inner])
						}
					}
				}
			}
		}
	}

	return o
}

// Cache memoizes fast traversal orders by extents.
type Cache struct {
	tile int

	mu      sync.RWMutex
	buckets map[uint64][]*Order
}

// NewCache returns an empty cache whose orders use tile as the tile edge.
// tile <= 0 selects DefaultTileSize.
func NewCache(tile int) *Cache {
	if tile <= 0 {
		tile = DefaultTileSize
	}

	return &Cache{tile: tile, buckets: make(map[uint64][]*Order)}
}

// TileSize returns the tile edge of the cache.
func (c *Cache) TileSize() int { return c.tile }

// Len returns the number of cached orders.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, b := range c.buckets {
		n += len(b)
	}

	return n
}

func (c *Cache) key(ext []int) uint64 {
	buf := make([]byte, 8*(len(ext)+1))
	binary.LittleEndian.PutUint64(buf, uint64(c.tile))
	for d, e := range ext {
		binary.LittleEndian.PutUint64(buf[8*(d+1):], uint64(e))
	}

	return xxhash.Sum64(buf)
}

func probe(bucket []*Order, ext []int) *Order {
	for _, o := range bucket {
		if slices.Equal(o.ext, ext) {
			return o
		}
	}

	return nil
}

// Generate builds (or returns the already cached) fast order for sh.
// Only extents matter; lower bounds are ignored.
func (c *Cache) Generate(sh shape.Shape) *Order {
	ext := sh.Extents()
	k := c.key(ext)

	c.mu.RLock()
	o := probe(c.buckets[k], ext)
	c.mu.RUnlock()
	if o != nil {
		return o
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if o = probe(c.buckets[k], ext); o != nil {
		return o
	}
	o = buildOrder(ext, c.tile)
	c.buckets[k] = append(c.buckets[k], o)

	return o
}

// Lookup returns the cached order for sh, if Generate was called for it.
func (c *Cache) Lookup(sh shape.Shape) (*Order, bool) {
	ext := sh.Extents()
	k := c.key(ext)
	c.mu.RLock()
	defer c.mu.RUnlock()
	o := probe(c.buckets[k], ext)

	return o, o != nil
}

// ValidatePermutation checks that o visits every position of its extents
// exactly once. Positions are tracked in a roaring bitmap by row-major index.
//
// Errors:
//   - ErrNotPermutation on a repeated, missing or out-of-range position.
func ValidatePermutation(o *Order) error {
	sh, err := shape.New(o.ext...)
	if err != nil {
		return fmt.Errorf("traverse.ValidatePermutation: %w", err)
	}
	strides := shape.RowMajorStrides(o.ext)
	zero := make([]int, len(o.ext))
	seen := roaring.New()
	var bad error
	o.Each(func(pos []int) {
		if bad != nil {
			return
		}
		if !sh.Contains(pos) {
			bad = fmt.Errorf("traverse.ValidatePermutation: %v outside %v: %w", pos, sh, ErrNotPermutation)
			return
		}
		idx := uint32(shape.Offset(0, strides, zero, pos))
		if !seen.CheckedAdd(idx) {
			bad = fmt.Errorf("traverse.ValidatePermutation: %v visited twice: %w", pos, ErrNotPermutation)
		}
	})
	if bad != nil {
		return bad
	}
	want := uint64(sh.Size())
	if seen.GetCardinality() != want {
		return fmt.Errorf("traverse.ValidatePermutation: %d of %d positions visited: %w", seen.GetCardinality(), want, ErrNotPermutation)
	}

	return nil
}

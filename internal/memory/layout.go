package memory

import "errors"

// ErrLayoutConflict is returned by Consecutive when the target block is not
// at the current tail of the layout, so size contiguous cells cannot be
// guaranteed to follow it.
var ErrLayoutConflict = errors.New("memory: layout conflict: target block is not at the tail of the layout")

type cells struct {
	start int
	size  int
}

// Layout maps the Blocks handed out by an Allocator onto concrete,
// non-negative tape cell ranges. Placement is first-fit-at-end from a
// growing high-water mark: a Block is assigned [S, S+size) the first time
// it is referenced, and S advances by size.
type Layout struct {
	alloc *Allocator
	table map[BlockID]cells
	high  int
}

// NewLayout returns an empty Layout backed by alloc for the temporary and
// consecutive cells it mints internally.
func NewLayout(alloc *Allocator) *Layout {
	return &Layout{alloc: alloc, table: make(map[BlockID]cells)}
}

// Size returns the current high-water mark: the layout's total footprint.
func (l *Layout) Size() int { return l.high }

// Position returns the absolute cell index of pos, placing its block at
// the high-water mark on first use.
func (l *Layout) Position(pos CellPosition) int {
	c := l.place(pos.Block)
	return c.start + pos.Offset
}

func (l *Layout) place(b Block) cells {
	c, ok := l.table[b.id]
	if !ok {
		c = cells{start: l.high, size: b.size}
		l.table[b.id] = c
		l.high += b.size
	}
	return c
}

// Free releases a block's cells. If the block's range lies at the current
// high-water mark, the mark shrinks (tail-free); otherwise the range
// becomes a permanent hole, accepted here in exchange for a simple
// allocator — the tape is unbounded and the only runtime cost is head
// travel. Freeing a block that was never placed is a no-op (e.g. zero-size
// blocks, or blocks allocated but never referenced).
func (l *Layout) Free(b Block) {
	c, ok := l.table[b.id]
	if !ok {
		return
	}
	delete(l.table, b.id)
	if c.start+c.size == l.high {
		l.high -= c.size
	}
}

// Temporary allocates a fresh block of size cells, runs fn with it, and
// reclaims the block immediately afterward.
func (l *Layout) Temporary(size int, fn func(Block)) {
	b := l.alloc.Allocate(size)
	l.place(b)
	fn(b)
	l.Free(b)
}

// Consecutive places target (if not already placed), then allocates size
// cells guaranteed to occupy the indices immediately after it, and invokes
// fn with that new block. If target is not currently at the tail of the
// layout, the contiguity guarantee cannot be honored and Consecutive
// returns ErrLayoutConflict without calling fn.
func (l *Layout) Consecutive(target Block, size int, fn func(Block) error) error {
	t := l.place(target)
	if t.start+t.size != l.high {
		return ErrLayoutConflict
	}
	b := l.alloc.Allocate(size)
	l.place(b)
	err := fn(b)
	l.Free(b)
	return err
}

// Package memory implements the static allocator and tape layout used by
// the compiler: opaque memory block identities (Allocator) and the mapping
// from those identities to concrete, non-negative tape cell ranges (Layout).
package memory

// BlockID uniquely identifies a MemoryBlock for the lifetime of a compile.
// IDs are handed out by an Allocator in monotonically increasing order and
// are never reused.
type BlockID uint64

// Block is an opaque memory block identity plus its declared size in cells.
// A Block is not bound to a concrete tape position until a Layout places it.
type Block struct {
	id   BlockID
	size int
}

// ID returns the block's unique identity.
func (b Block) ID() BlockID { return b.id }

// Size returns the number of cells reserved for this block.
func (b Block) Size() int { return b.size }

// Position returns the CellPosition of the first cell in this block.
func (b Block) Position() CellPosition { return CellPosition{Block: b} }

// PositionAt returns the CellPosition of the cell at the given offset
// within this block. Panics if offset is out of bounds; a compiler that
// requests an out-of-range offset has a bug, not a user-reportable error.
func (b Block) PositionAt(offset int) CellPosition {
	if offset < 0 || offset >= b.size {
		panic("memory: offset out of bounds for block")
	}
	return CellPosition{Block: b, Offset: offset}
}

// CellPosition addresses a single cell inside a Block.
type CellPosition struct {
	Block  Block
	Offset int
}

// Allocator hands out fresh, opaque Block identities. It performs no
// placement; see Layout for that.
type Allocator struct {
	nextID BlockID
}

// NewAllocator returns an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Allocate reserves a new Block of the given size and gives it a unique ID.
func (a *Allocator) Allocate(size int) Block {
	blk := Block{id: a.nextID, size: size}
	a.nextID++
	return blk
}

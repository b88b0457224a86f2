// Package hdltype: the compiler-wide interning table.
//
// One Table instance is shared by every per-module graph, including graphs
// processed concurrently on separate goroutines, so all lookups go through
// an RWMutex. Interning makes descriptor identity equal pointer identity,
// which is what lets the graph core compare result types in O(1) during
// structural equality.
package hdltype

import "sync"

// unpackedKey identifies a canonical unpacked array shape.
type unpackedKey struct {
	width int // element width in bits
	size  int // element count
}

// Table interns canonical type descriptors.
//
// The zero value is not usable; construct with NewTable.
type Table struct {
	mu       sync.RWMutex
	packed   map[int]*Packed
	unpacked map[unpackedKey]*Unpacked
}

// NewTable creates an empty interning table.
// Complexity: O(1)
func NewTable() *Table {
	return &Table{
		packed:   make(map[int]*Packed),
		unpacked: make(map[unpackedKey]*Unpacked),
	}
}

// Packed returns the canonical packed descriptor for the given width.
// Returns ErrZeroWidth when width is not positive.
// Complexity: O(1) amortized.
func (t *Table) Packed(width int) (*Packed, error) {
	if width <= 0 {
		return nil, ErrZeroWidth
	}
	// Fast path: read lock only.
	t.mu.RLock()
	p, ok := t.packed[width]
	t.mu.RUnlock()
	if ok {
		return p, nil
	}
	// Slow path: re-check under the write lock; another goroutine may have
	// interned the same width between the two lock acquisitions.
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok = t.packed[width]; ok {
		return p, nil
	}
	p = &Packed{width: width}
	t.packed[width] = p
	return p, nil
}

// Unpacked returns the canonical descriptor for an unpacked array of
// 'size' packed elements of the given width.
// Returns ErrZeroWidth or ErrBadArraySize on invalid shape.
// Complexity: O(1) amortized.
func (t *Table) Unpacked(elemWidth, size int) (*Unpacked, error) {
	if size <= 0 {
		return nil, ErrBadArraySize
	}
	elem, err := t.Packed(elemWidth)
	if err != nil {
		return nil, err
	}
	key := unpackedKey{width: elemWidth, size: size}
	t.mu.RLock()
	u, ok := t.unpacked[key]
	t.mu.RUnlock()
	if ok {
		return u, nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if u, ok = t.unpacked[key]; ok {
		return u, nil
	}
	u = &Unpacked{elem: elem, size: size}
	t.unpacked[key] = u
	return u, nil
}

// MustPacked is the panicking variant of Packed for widths known positive
// at the call site (tests, builders with validated input).
func (t *Table) MustPacked(width int) *Packed {
	p, err := t.Packed(width)
	if err != nil {
		panic(err)
	}
	return p
}

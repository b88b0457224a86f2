// Package hdltype: canonical type descriptors.
//
// This file declares the Type interface, the two canonical shapes
// (Packed, Unpacked), and the package sentinel errors.
package hdltype

import (
	"errors"
	"fmt"
)

// Sentinel errors for type vetting and canonicalization.
var (
	// ErrUnsupportedType indicates a declaration outside the supported set.
	ErrUnsupportedType = errors.New("hdltype: unsupported data type")

	// ErrZeroWidth indicates a packed type with non-positive bit width.
	ErrZeroWidth = errors.New("hdltype: packed type must have positive width")

	// ErrBadArraySize indicates an unpacked array with non-positive size.
	ErrBadArraySize = errors.New("hdltype: unpacked array must have positive size")
)

// Type is a canonical result-type descriptor attached to graph vertices.
//
// Descriptors are interned by a Table: two descriptors describe the same
// type if and only if they are the same pointer. Implementations are
// immutable after construction.
type Type interface {
	// String renders the descriptor for diagnostics and dumps.
	String() string

	// isType restricts the implementation set to this package.
	isType()
}

// Packed is the canonical type of any packed value: an unsigned bit
// vector characterized solely by its total width.
type Packed struct {
	width int // total width in bits, always > 0
}

// Width returns the total width in bits.
func (t *Packed) Width() int { return t.width }

// String renders the canonical packed form, e.g. "logic [7:0]".
func (t *Packed) String() string {
	if t.width == 1 {
		return "logic"
	}
	return fmt.Sprintf("logic [%d:0]", t.width-1)
}

func (*Packed) isType() {}

// Unpacked is the canonical type of an unpacked array of packed elements.
type Unpacked struct {
	elem *Packed // canonical element type
	size int     // element count, always > 0
}

// Elem returns the canonical element type.
func (t *Unpacked) Elem() *Packed { return t.elem }

// Size returns the number of elements.
func (t *Unpacked) Size() int { return t.size }

// String renders the canonical unpacked form, e.g. "logic [7:0] [0:15]".
func (t *Unpacked) String() string {
	return fmt.Sprintf("%s [0:%d]", t.elem, t.size-1)
}

func (*Unpacked) isType() {}

// WidthOf returns the packed width of t and true, or 0 and false when t is
// not a packed type. Callers needing a hard guarantee use dfg.Vertex.Width,
// which treats an unpacked result as a contract violation.
func WidthOf(t Type) (int, bool) {
	if p, ok := t.(*Packed); ok {
		return p.Width(), true
	}
	return 0, false
}

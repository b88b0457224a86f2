// Package hdltype: front-end declaration vetting.
//
// Decl is a minimal rendition of a front-end type declaration, just rich
// enough to express the supported/unsupported boundary. The producer is
// expected to run Canonical on every declaration before constructing
// vertices; a declaration that fails vetting must never reach the core.
package hdltype

import "fmt"

// DeclKind discriminates front-end type declarations.
type DeclKind uint8

// Front-end declaration kinds.
const (
	// DeclScalar is a basic scalar type (logic, bit, int, real, string...).
	DeclScalar DeclKind = iota

	// DeclPackArray is a packed array of an element declaration.
	DeclPackArray

	// DeclStruct is a structure, packed or unpacked.
	DeclStruct

	// DeclUnion is a union, packed or unpacked.
	DeclUnion

	// DeclUnpackArray is an unpacked array of an element declaration.
	DeclUnpackArray
)

// Decl describes one front-end type declaration.
//
// Only the fields relevant to the declared Kind are consulted:
// scalars use Numeric and Width, aggregates use Packed and Width,
// arrays use Elem and Count.
type Decl struct {
	// Kind selects the declaration shape.
	Kind DeclKind

	// Numeric reports whether a scalar is an integer-numeric type.
	// Reals and strings are scalars with Numeric == false.
	Numeric bool

	// Packed reports whether a struct/union declaration is packed.
	Packed bool

	// Width is the total bit width of a scalar or packed aggregate.
	Width int

	// Elem is the element declaration of an array kind.
	Elem *Decl

	// Count is the element count of an array kind.
	Count int
}

// SupportedPacked reports whether d is a packed declaration the graph
// engine can represent: an integer-numeric scalar, a packed array of a
// supported packed element, or a packed struct/union.
// Complexity: O(depth of the declaration).
func SupportedPacked(d *Decl) bool {
	if d == nil {
		return false
	}
	switch d.Kind {
	case DeclScalar:
		return d.Numeric
	case DeclPackArray:
		return SupportedPacked(d.Elem)
	case DeclStruct, DeclUnion:
		return d.Packed
	default:
		return false
	}
}

// Supported reports whether d can be represented at all: either a
// supported packed declaration, or an unpacked array whose element is a
// supported packed declaration.
// Complexity: O(depth of the declaration).
func Supported(d *Decl) bool {
	if d == nil {
		return false
	}
	if d.Kind == DeclUnpackArray {
		return SupportedPacked(d.Elem)
	}
	return SupportedPacked(d)
}

// Canonical converts a supported declaration into its canonical
// descriptor: every packed shape of width W maps to the one Packed{W},
// and an unpacked array maps to Unpacked{Packed{elem W}, Count}.
// Returns ErrUnsupportedType for declarations outside the supported set.
func Canonical(t *Table, d *Decl) (Type, error) {
	if !Supported(d) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, describe(d))
	}
	if d.Kind == DeclUnpackArray {
		return t.Unpacked(packedWidth(d.Elem), d.Count)
	}
	return t.Packed(packedWidth(d))
}

// packedWidth computes the total width of a supported packed declaration.
func packedWidth(d *Decl) int {
	if d.Kind == DeclPackArray {
		return packedWidth(d.Elem) * d.Count
	}
	return d.Width
}

// describe renders a declaration for error messages.
func describe(d *Decl) string {
	if d == nil {
		return "<nil declaration>"
	}
	switch d.Kind {
	case DeclScalar:
		if d.Numeric {
			return fmt.Sprintf("scalar width %d", d.Width)
		}
		return "non-numeric scalar"
	case DeclPackArray:
		return fmt.Sprintf("packed array [%d] of %s", d.Count, describe(d.Elem))
	case DeclStruct:
		return aggregate("struct", d.Packed)
	case DeclUnion:
		return aggregate("union", d.Packed)
	case DeclUnpackArray:
		return fmt.Sprintf("unpacked array [%d] of %s", d.Count, describe(d.Elem))
	default:
		return fmt.Sprintf("unknown declaration kind %d", d.Kind)
	}
}

func aggregate(name string, packed bool) string {
	if packed {
		return "packed " + name
	}
	return "unpacked " + name
}

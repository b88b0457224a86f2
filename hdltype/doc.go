// Package hdltype describes the result data types carried by data-flow
// graph vertices, and vets which front-end type declarations the graph
// engine is willing to represent.
//
// What:
//
//   - Type: the canonical descriptor attached to every vertex. All packed
//     HDL types of a given total width collapse to a single Packed type
//     (the only interesting information is the width); unpacked arrays of
//     packed elements become Unpacked{Elem, Size}.
//   - Table: an interning table handing out one canonical *Packed (and
//     *Unpacked) per shape, so descriptor identity is pointer identity and
//     type comparison during structural equality is a single pointer
//     compare. The table is shared compiler-wide across per-module graphs
//     processed on different goroutines, so it is safe for concurrent use.
//   - Decl: a minimal rendition of a front-end type declaration, with
//     SupportedPacked/Supported predicates and Canonical conversion,
//     mirroring what the producer must check before constructing vertices.
//
// Supported set:
//
//   - integer-numeric scalar types
//   - packed arrays of supported packed types
//   - packed structures and unions
//   - unpacked arrays whose element type is a supported packed type
//
// Anything else (reals, strings, unpacked aggregates, ...) is rejected by
// Canonical with ErrUnsupportedType and must never reach the graph core.
//
// Errors:
//
//	ErrUnsupportedType - declaration is outside the supported set.
//	ErrZeroWidth       - a packed type with zero (or negative) width.
//	ErrBadArraySize    - an unpacked array with non-positive element count.
package hdltype

// Package source provides opaque source-location handles used for
// diagnostics throughout the compiler.
//
// A Loc identifies the HDL construct a graph vertex was created from, so
// fatal invariant violations and debug dumps can point back at user code.
// The graph core treats Loc as pure payload: it is carried, compared for
// display only, and never influences structural equality or hashing.
package source

import "fmt"

// Loc is a position in an HDL source file.
// The zero value means "location unknown" and is always valid to carry.
type Loc struct {
	// File is the path of the source file, empty if unknown.
	File string

	// Line is the 1-based line number, 0 if unknown.
	Line int

	// Col is the 1-based column number, 0 if unknown.
	Col int
}

// At constructs a Loc for the given file, line and column.
func At(file string, line, col int) Loc {
	return Loc{File: file, Line: line, Col: col}
}

// Known reports whether l carries an actual position.
func (l Loc) Known() bool { return l.File != "" || l.Line != 0 }

// String renders the location in the conventional file:line:col form,
// or "<unknown>" for the zero value.
func (l Loc) String() string {
	if !l.Known() {
		return "<unknown>"
	}
	if l.Col > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

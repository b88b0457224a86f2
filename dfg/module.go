// Package dfg: the owning module and its declared variables.
//
// A Module is the logic-block a graph represents. The graph holds a plain
// back-reference to it: lifetime is strictly compiler-run scoped, so no
// counting or ownership is involved. Variables are the named storage
// elements of the module; VarVertex instances reference them, and several
// var vertices (clones produced by cyclic extraction) may share one
// Variable.
package dfg

import (
	"github.com/danlomeli/verilator/hdltype"
	"github.com/danlomeli/verilator/source"
)

// Module identifies the logic-block whose combinational logic a Graph
// represents.
type Module struct {
	name string
	loc  source.Loc
	vars []*Variable
}

// NewModule creates a module descriptor with the given diagnostic name.
func NewModule(name string, loc source.Loc) *Module {
	return &Module{name: name, loc: loc}
}

// Name returns the module's diagnostic name.
func (m *Module) Name() string { return m.name }

// Loc returns the module's source location.
func (m *Module) Loc() source.Loc { return m.loc }

// Variable declares a named storage element in the module and returns its
// descriptor. The caller must have vetted t via hdltype.Canonical.
func (m *Module) Variable(name string, loc source.Loc, t hdltype.Type) *Variable {
	v := &Variable{name: name, loc: loc, dtype: t}
	m.vars = append(m.vars, v)
	return v
}

// Variables returns the module's declared variables in declaration order.
func (m *Module) Variables() []*Variable { return m.vars }

// Variable is a named storage element. It is identity for structural
// equality: two VarVertex instances are equal iff they reference the same
// Variable, regardless of which graph holds them.
type Variable struct {
	name  string
	loc   source.Loc
	dtype hdltype.Type
}

// Name returns the variable's declared name.
func (v *Variable) Name() string { return v.name }

// Loc returns the declaration's source location.
func (v *Variable) Loc() source.Loc { return v.loc }

// DType returns the variable's canonical type.
func (v *Variable) DType() hdltype.Type { return v.dtype }

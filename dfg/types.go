// Package dfg: sentinel errors, contract violations, and graph options.
package dfg

import (
	"errors"
	"fmt"

	"github.com/danlomeli/verilator/source"
)

// Sentinel errors reported by Graph.Verify.
var (
	// ErrEdgeInconsistent indicates an operand edge whose back-pointers or
	// sink-list linkage do not match the owning vertex.
	ErrEdgeInconsistent = errors.New("dfg: inconsistent edge linkage")

	// ErrMembershipInconsistent indicates a vertex whose graph back-reference
	// or kind partition does not match the list holding it.
	ErrMembershipInconsistent = errors.New("dfg: inconsistent graph membership")

	// ErrCountMismatch indicates that the recorded vertex count disagrees
	// with the number of vertices actually linked into the graph.
	ErrCountMismatch = errors.New("dfg: vertex count mismatch")
)

// ContractError is the panic payload for programmer-contract violations:
// reentrant scratch-session acquisition, generation-counter overflow,
// mismatched exact casts, deletion of a vertex that still has consumers,
// width queries on unpacked values. These abort the compilation with a
// diagnostic pointing at the HDL construct that produced the vertex.
type ContractError struct {
	// Loc is the source location of the offending vertex, if known.
	Loc source.Loc

	// Msg describes the violated contract.
	Msg string
}

// Error renders the violation with its source location.
func (e *ContractError) Error() string {
	if e.Loc.Known() {
		return fmt.Sprintf("dfg: %s: %s", e.Loc, e.Msg)
	}
	return "dfg: " + e.Msg
}

// contractf panics with a ContractError for the given location.
func contractf(loc source.Loc, format string, args ...any) {
	panic(&ContractError{Loc: loc, Msg: fmt.Sprintf(format, args...)})
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithName sets the diagnostic name of the graph. Sub-graphs produced by
// SplitIntoComponents and ExtractCyclicComponents derive their names from
// the parent's name, the caller-supplied label, and a running index.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

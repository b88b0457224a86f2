// Package passes implements graph-to-graph optimization passes over
// dfg.Graph.
//
// What:
//   - FoldPeephole: local algebraic rewrites (double negation, identity
//     and absorbing constant operands, constant condition selection).
//   - Dedup: common sub-expression elimination by structural hash and
//     equality; the earliest of several equivalent vertices survives.
//   - PruneUnused: removes operations and constants nothing consumes.
//   - Simplify: runs the three to a fixed point.
//
// Why a separate package: the dfg package owns representation and
// structural invariants; the rewrites here are policy layered on top of
// that representation, and more will accumulate independently of it.
//
// Passes expect an acyclic graph. Extract cyclic regions first with
// Graph.ExtractCyclicComponents; Dedup's hashing is only consistent on
// acyclic fan-in cones.
//
// Errors: Simplify reports ErrGraphNil for a nil graph, and propagates
// Graph.Verify failures when verification is enabled via WithVerify.
package passes

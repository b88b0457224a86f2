// Package dfg implements the data-flow graph representation of
// combinational logic at the heart of the compiler's optimizer.
//
// What:
//
//   - Edge: a directed, sink-owned link from a consumer vertex to its
//     producer. The sink vertex owns the edge storage; the source vertex
//     only threads the edge into its intrusive consumer ("sink") list so
//     fan-out can be enumerated in O(fan-out).
//   - Vertex: one operation, variable reference, or constant. Fixed-arity
//     operation vertices store operand edges inline; variables store their
//     driver edges in a growable buffer that doubles on overflow and
//     relinks live edges in place.
//   - Graph: owns the vertex set of one module's logic, partitioned into
//     variable, constant, and operation sub-lists for cheap bulk passes.
//     Provides topological sorting, weak-connectivity splitting,
//     cyclic-component extraction, fixed-point driving, verification, and
//     Graphviz dumping.
//   - Structural equality and hashing over a vertex and its upstream cone,
//     memoized through EqualsCache and the scratch-storage facility.
//   - Scratch storage: a generation-counter mechanism letting repeated
//     analysis passes attach transient per-vertex state without resetting
//     every vertex between passes. Acquire with Graph.UserDataInUse,
//     access with UserData[T].
//
// Why:
//
//   - Common-subexpression elimination, structural simplification, and
//     cycle analysis of compiled logic before code generation (see the
//     passes package).
//
// Concurrency:
//
//   - A Graph and everything it owns is single-threaded by contract.
//     Distinct Graph instances (one per module) may be processed on
//     separate goroutines; the only cross-graph state is the shared
//     hdltype.Table, which synchronizes internally.
//
// Errors:
//
//   - Expected negative outcomes (a cyclic graph handed to
//     SortTopologically) are reported through return values.
//   - Contract violations (reentrant scratch sessions, deleting a vertex
//     that still has consumers, mismatched casts, generation-counter
//     overflow, width queries on unpacked values) panic with a
//     *ContractError carrying the offending vertex's source location.
//     These are compiler bugs, never user errors, and are not recoverable.
//
// Complexity:
//
//   - Edge relinking, vertex insertion/removal: O(1)
//   - SortTopologically, SplitIntoComponents, ExtractCyclicComponents: O(V+E)
//   - Equals/Hash: O(cone) first time, O(1) memoized thereafter
package dfg

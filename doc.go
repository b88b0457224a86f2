// Package verilator hosts the data-flow graph core of an HDL compiler
// middle end: the representation combinational logic is optimized on
// between elaboration and code emission.
//
// What lives where:
//
//	source/  — source locations carried for diagnostics
//	hdltype/ — canonical type descriptors, interning, declaration vetting
//	dfg/     — the graph itself: vertices, operand edges, equality and
//	           hashing, scratch storage, ordering, component splitting,
//	           cyclic-region extraction
//	passes/  — optimization passes layered on dfg: peephole folding,
//	           common sub-expression elimination, dead-logic pruning
//
// The dfg package is the heart: a mutable directed graph whose vertices
// are variables, constants, and operations, and whose edges are operand
// references owned by their consumer. Everything else either feeds it
// (hdltype, source) or rewrites it (passes).
package verilator

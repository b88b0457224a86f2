// Package dfg: structural hashing.
//
// Hash is consistent with Equals: structurally equal vertices hash
// identically. Per-vertex results are cached through the scratch-storage
// facility, so repeated hash queries over unchanged subgraphs are O(1)
// after the first computation. The caching is also why callers must hold
// an active scratch session (see Graph.UserDataInUse).
package dfg

import (
	"fmt"

	"github.com/danlomeli/verilator/hdltype"
)

// FNV-1a constants, folded a word at a time.
const (
	hashOffset = 14695981039346656037
	hashPrime  = 1099511628211
)

// Hash is a 64-bit structural hash value.
type Hash uint64

// NewHash returns the empty hash.
func NewHash() Hash { return hashOffset }

// Combine folds one word into the hash.
func (h Hash) Combine(w uint64) Hash {
	return (h ^ Hash(w)) * hashPrime
}

// String renders the hash in fixed-width hex for dumps and logs.
func (h Hash) String() string { return fmt.Sprintf("%016x", uint64(h)) }

// HashString folds a string into a fresh hash.
func HashString(s string) Hash {
	h := Hash(hashOffset)
	for i := 0; i < len(s); i++ {
		h = (h ^ Hash(s[i])) * hashPrime
	}
	return h
}

// typeSig folds a canonical type descriptor into a word. Interned
// descriptors of the same shape produce the same signature even across
// tables, keeping hashes stable between graphs.
func typeSig(t hdltype.Type) uint64 {
	switch d := t.(type) {
	case *hdltype.Packed:
		return uint64(d.Width())
	case *hdltype.Unpacked:
		return uint64(d.Elem().Width())<<20 ^ uint64(d.Size())
	default:
		return 0
	}
}

// hashCache is the scratch-slot payload for hash memoization.
type hashCache struct {
	h     Hash
	valid bool
}

// Hash returns the structural hash of this vertex and everything upstream
// of it, combining the kind-local hash with the operand hashes in operand
// order. Vacant operand slots are excluded.
//
// The result is cached in the vertex's scratch slot under the current
// generation; accessing it without an active scratch session is a
// contract violation. The local hash is published before recursing so the
// computation terminates on cyclic graphs, but full hash/equality
// consistency is only guaranteed for acyclic upstream cones (run cyclic
// extraction first, as the simplification passes do).
func (b *vertexBase) Hash() Hash {
	c := UserData[hashCache](b.self)
	if c.valid {
		return c.h
	}
	h := NewHash().Combine(uint64(b.kind)).Combine(typeSig(b.dtype))
	h = h.Combine(uint64(b.self.selfHash()))
	c.h = h
	c.valid = true
	edges := b.self.SourceEdges()
	for i := range edges {
		if src := edges[i].source; src != nil {
			h = h.Combine(uint64(src.Hash()))
		}
	}
	c.h = h
	return h
}

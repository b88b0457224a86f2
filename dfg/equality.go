// Package dfg: structural equality.
//
// Two vertices are equal iff they can be substituted for each other
// without changing the semantics of the logic: same kind, same result
// type, same kind-local payload (constant value, referenced variable),
// and recursively equal operands, position by position. Shared
// substructure makes naive recursion combinatorial, hence the
// caller-supplied memo.
package dfg

// vertexPair keys the equality memo by the ordered pair of identities.
type vertexPair struct {
	a, b Vertex
}

// EqualsCache memoizes pairwise comparison results. Correctness requires
// the operand structure of every compared vertex to stay stable between
// calls sharing one cache; mutate the graph, and the cache is stale.
type EqualsCache map[vertexPair]bool

// NewEqualsCache returns an empty memo.
func NewEqualsCache() EqualsCache { return make(EqualsCache) }

// Equals reports structural equivalence of this vertex and that,
// memoizing recursive comparisons within this one invocation.
func (b *vertexBase) Equals(that Vertex) bool {
	return b.EqualsMemo(that, make(EqualsCache))
}

// EqualsMemo is Equals with a caller-supplied memo for amortizing
// comparisons across calls.
// Complexity: O(min cone size) on first comparison, O(1) memoized.
func (b *vertexBase) EqualsMemo(that Vertex, cache EqualsCache) bool {
	this := b.self
	if this == that {
		return true
	}
	if b.kind != that.Kind() {
		return false
	}
	// Canonical descriptors are interned: one pointer compare.
	if b.dtype != that.DType() {
		return false
	}
	key := vertexPair{a: this, b: that}
	if r, ok := cache[key]; ok {
		return r
	}
	// Seed optimistically so comparison terminates on cyclic structures:
	// a pair rediscovered along its own comparison path is equal iff
	// everything else on the cycle matches.
	cache[key] = true
	result := this.selfEquals(that)
	if result {
		as, bs := this.SourceEdges(), that.SourceEdges()
		if len(as) != len(bs) {
			result = false
		} else {
			for i := range as {
				sa, sb := as[i].source, bs[i].source
				if sa == nil && sb == nil {
					continue // vacant in both: still equal
				}
				if sa == nil || sb == nil {
					result = false
					break
				}
				if !sa.EqualsMemo(sb, cache) {
					result = false
					break
				}
			}
		}
	}
	cache[key] = result
	return result
}

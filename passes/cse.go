package passes

import "github.com/danlomeli/verilator/dfg"

// Dedup eliminates common sub-expressions: any two non-variable vertices
// that are structurally equal are merged, consumers of the later one are
// relinked to the earlier one, and the later one is deleted. Variables
// are never merged, even when identical in structure, because each one
// names distinct storage.
//
// The graph must be acyclic. Returns the number of vertices removed.
//
// Acquires the scratch session for hash caching; calling it while a
// session is active is a contract violation.
// Complexity: O(V+E) expected
func Dedup(g *dfg.Graph) int {
	scope := g.UserDataInUse()
	defer scope.Release()

	cache := dfg.NewEqualsCache()
	buckets := make(map[dfg.Hash][]dfg.Vertex)
	removed := 0
	g.ForEachVertex(func(v dfg.Vertex) {
		if v.Kind().IsVar() {
			return
		}
		h := v.Hash()
		for _, survivor := range buckets[h] {
			if v.EqualsMemo(survivor, cache) {
				v.ReplaceWith(survivor)
				v.UnlinkDelete(g)
				removed++
				return
			}
		}
		buckets[h] = append(buckets[h], v)
	})
	return removed
}

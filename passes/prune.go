package passes

import "github.com/danlomeli/verilator/dfg"

// PruneUnused deletes every operation and constant with no consumers,
// repeating until none remain, so whole dead fan-in cones disappear in
// one call. Variables always stay: a variable without readers is still
// observable storage.
//
// Returns the number of vertices removed.
// Complexity: O(rounds * V), one round per dead-cone depth level
func PruneUnused(g *dfg.Graph) int {
	removed := 0
	g.RunToFixedPoint(func(v dfg.Vertex) bool {
		if v.Kind().IsVar() || v.HasSinks() {
			return false
		}
		v.UnlinkDelete(g)
		removed++
		return true
	})
	return removed
}

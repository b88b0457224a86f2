package passes

import "github.com/danlomeli/verilator/dfg"

// Simplify runs FoldPeephole, Dedup, and PruneUnused in rounds until a
// round changes nothing. Each pass enables the next: folding exposes
// duplicate structure, merging duplicates strands dead cones.
//
// Returns the total number of vertices removed or folded. With
// WithVerify, the graph is checked after every round and the first
// inconsistency aborts the run with the partial total.
func Simplify(g *dfg.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	total := 0
	for round := 1; ; round++ {
		n := FoldPeephole(g)
		n += Dedup(g)
		n += PruneUnused(g)
		total += n
		o.log.V(1).Info("simplify round done",
			"graph", g.Name(), "round", round, "changes", n, "vertices", g.VertexCount())
		if o.verify {
			if err := g.Verify(); err != nil {
				return total, err
			}
		}
		if n == 0 {
			return total, nil
		}
	}
}

package dfg

import (
	"fmt"
	"io"
	"strings"
)

// WriteDot renders the graph in Graphviz "dot" form for visual debugging.
// Vertices are numbered in iteration order, so two dumps of an unchanged
// graph are byte-identical. Variables render as boxes, constants as plain
// text, operations as ellipses; operand edges carry their slot name when
// the sink has more than one operand.
func (g *Graph) WriteDot(w io.Writer, label string) error {
	title := g.name
	if label != "" {
		title = title + " " + label
	}
	if _, err := fmt.Fprintf(w, "digraph %q {\n  graph [label=%q, labelloc=t, rankdir=LR]\n", title, title); err != nil {
		return err
	}

	ids := make(map[Vertex]int, g.VertexCount())
	g.ForEachVertex(func(v Vertex) {
		ids[v] = len(ids)
	})

	var err error
	g.ForEachVertex(func(v Vertex) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "  n%d [label=%q%s]\n", ids[v], dotLabel(v), dotShape(v))
	})
	if err != nil {
		return err
	}
	g.ForEachVertex(func(v Vertex) {
		if err != nil {
			return
		}
		ForEachSourceEdge(v, func(e *Edge, i int) {
			if err != nil || e.source == nil {
				return
			}
			attr := ""
			if v.Arity() > 1 {
				attr = fmt.Sprintf(" [label=%q]", v.srcName(i))
			}
			_, err = fmt.Fprintf(w, "  n%d -> n%d%s\n", ids[e.source], ids[v], attr)
		})
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

// DotString is WriteDot into a string.
func (g *Graph) DotString(label string) string {
	var sb strings.Builder
	_ = g.WriteDot(&sb, label)
	return sb.String()
}

func dotLabel(v Vertex) string {
	switch v := v.(type) {
	case *VarVertex:
		return fmt.Sprintf("%s\n%s", v.Variable().Name(), v.DType())
	case *ConstVertex:
		if w := v.Width(); w <= 64 {
			return fmt.Sprintf("%d'h%x", w, v.Uint64())
		}
		return fmt.Sprintf("const %s", v.DType())
	default:
		return fmt.Sprintf("%s\n%s", v.Kind(), v.DType())
	}
}

func dotShape(v Vertex) string {
	switch {
	case v.Kind().IsVar():
		return ", shape=box"
	case v.Kind().IsConst():
		return ", shape=plain"
	default:
		return ""
	}
}

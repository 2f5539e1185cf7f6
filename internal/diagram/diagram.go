// Package diagram renders gsv.InformationState values as Graphviz DOT
// digraphs, generalizing the teacher's KripkeStructure.GenerateGraphviz
// from a fixed state/transition graph to the GSV possibility/extends
// structure.
package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pemberton-lang/gsv-go/gsv"
)

// RenderState emits a DOT digraph with one node per possibility in
// state, labeled with its world index and current variable bindings.
func RenderState(state gsv.InformationState) string {
	var sb strings.Builder
	sb.WriteString("digraph InformationState {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=ellipse];\n\n")

	for i, p := range state.Possibilities() {
		sb.WriteString(fmt.Sprintf("  p%d [label=%q];\n", i, p.String()))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// RenderTransition emits a DOT digraph showing before's possibilities,
// after's possibilities, and a dashed "extends" edge from each
// possibility in after back to the possibility in before it extends —
// the direct generalization of the teacher's per-state transition
// edges to descendant/subsistence structure.
func RenderTransition(before, after gsv.InformationState) string {
	var sb strings.Builder
	sb.WriteString("digraph Extends {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  subgraph cluster_before {\n")
	sb.WriteString("    label=\"before\";\n")

	beforePossibilities := before.Possibilities()
	afterPossibilities := after.Possibilities()

	beforeIDs := make([]string, len(beforePossibilities))
	for i, p := range beforePossibilities {
		id := fmt.Sprintf("b%d", i)
		beforeIDs[i] = id
		sb.WriteString(fmt.Sprintf("    %s [label=%q];\n", id, p.String()))
	}
	sb.WriteString("  }\n")

	sb.WriteString("  subgraph cluster_after {\n")
	sb.WriteString("    label=\"after\";\n")
	afterIDs := make([]string, len(afterPossibilities))
	for i, p := range afterPossibilities {
		id := fmt.Sprintf("a%d", i)
		afterIDs[i] = id
		sb.WriteString(fmt.Sprintf("    %s [label=%q];\n", id, p.String()))
	}
	sb.WriteString("  }\n\n")

	type edge struct{ from, to string }
	edges := []edge{}
	for j, descendant := range afterPossibilities {
		for i, ancestor := range beforePossibilities {
			if gsv.IsDescendantOf(descendant, ancestor, after) {
				edges = append(edges, edge{from: afterIDs[j], to: beforeIDs[i]})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})
	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("  %s -> %s [style=dashed, label=\"extends\"];\n", e.from, e.to))
	}

	sb.WriteString("}\n")
	return sb.String()
}

package viz

import (
	"bytes"
	"fmt"
	"strconv"
)

// --- DOT Generator ---

type DotGenerator struct{}

func (g *DotGenerator) Generate(title string, nodes []Node, edges []Edge) (string, error) {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("digraph %s {\n", strconv.Quote(title)))
	b.WriteString("  rankdir=TB;\n")
	b.WriteString(fmt.Sprintf("  label=%s;\n", strconv.Quote("Forest: "+title)))
	b.WriteString("  node [shape=box, style=rounded];\n")

	for _, node := range nodes {
		attrs := fmt.Sprintf("label=%s", strconv.Quote(fmt.Sprintf("%s\n(%d)", node.Name, node.Weight)))
		if node.Root {
			attrs += ", style=\"rounded,bold\""
		}
		b.WriteString(fmt.Sprintf("  %s [%s];\n", node.ID, attrs))
	}

	for _, edge := range edges {
		b.WriteString(fmt.Sprintf("  %s -> %s [label=\"%d\"];\n", edge.FromID, edge.ToID, edge.Order))
	}
	b.WriteString("}\n")
	return b.String(), nil
}

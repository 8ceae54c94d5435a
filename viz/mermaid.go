package viz

import (
	"bytes"
	"fmt"
	"strings"
)

// --- Mermaid Static Generator ---

type MermaidStaticGenerator struct{}

var mermaidEscaper = strings.NewReplacer(`"`, "#quot;", "\n", "<br/>")

func (g *MermaidStaticGenerator) Generate(title string, nodes []Node, edges []Edge) (string, error) {
	var b bytes.Buffer
	b.WriteString("graph TD;\n")
	b.WriteString(fmt.Sprintf("  subgraph Forest [\"%s\"]\n", mermaidEscaper.Replace(title)))

	for _, node := range nodes {
		b.WriteString(fmt.Sprintf("    %s[\"%s (%d)\"];\n", node.ID, mermaidEscaper.Replace(node.Name), node.Weight))
	}

	for _, edge := range edges {
		b.WriteString(fmt.Sprintf("    %s --> %s;\n", edge.FromID, edge.ToID))
	}
	b.WriteString("  end\n")
	return b.String(), nil
}

package viz

import (
	"fmt"

	"github.com/panyam/forest/runtime"
)

// FromRegistry lists every declared node, in declaration order, and one
// edge per parent/child link.  Nodes that no parent adopted are marked
// as roots.
func FromRegistry(reg *runtime.Registry) ([]Node, []Edge) {
	adopted := make(map[runtime.NodeID]bool)
	var edges []Edge
	for id := range reg.Len() {
		parent := reg.Node(runtime.NodeID(id))
		for i, child := range parent.Children {
			adopted[child] = true
			edges = append(edges, Edge{FromID: nodeID(parent.ID), ToID: nodeID(child), Order: i + 1})
		}
	}

	nodes := make([]Node, 0, reg.Len())
	for id := range reg.Len() {
		n := reg.Node(runtime.NodeID(id))
		nodes = append(nodes, Node{ID: nodeID(n.ID), Name: n.Name, Weight: n.Weight, Root: !adopted[n.ID]})
	}
	return nodes, edges
}

// Generate renders the registry with the named generator.
func Generate(format, title string, reg *runtime.Registry) (string, error) {
	gen, ok := Generators[format]
	if !ok {
		return "", fmt.Errorf("unknown diagram format %q, expected dot or mermaid", format)
	}
	nodes, edges := FromRegistry(reg)
	return gen.Generate(title, nodes, edges)
}

func nodeID(id runtime.NodeID) string {
	return fmt.Sprintf("n%d", id)
}

// package viz defines common interfaces and data structures for generating visualizations.
package viz

// --- Common Data Structures ---

// Node is a tree node in a diagram.
type Node struct {
	ID     string // Unique identifier for the node
	Name   string // Display name
	Weight int64
	Root   bool // Not attached to any parent
}

// Edge links a parent to one of its children.  Order is the position of
// the child among its siblings, starting at 1.
type Edge struct {
	FromID string
	ToID   string
	Order  int
}

// --- Interfaces for Generators ---

// StaticDiagramGenerator defines the interface for creating diagrams of a forest.
type StaticDiagramGenerator interface {
	Generate(title string, nodes []Node, edges []Edge) (string, error)
}

// Generators by the name accepted on the command line.
var Generators = map[string]StaticDiagramGenerator{
	"dot":     &DotGenerator{},
	"mermaid": &MermaidStaticGenerator{},
}

package runtime

import (
	"fmt"
	"strings"
)

// NodeID is a handle to a TreeNode owned by a Registry.
type NodeID int

// TreeNode is a named, weighted node.  Children are handles into the
// owning registry, in the order they were attached.
type TreeNode struct {
	ID       NodeID
	Name     string
	Weight   int64
	Children []NodeID
}

func (t *TreeNode) IsLeaf() bool {
	return len(t.Children) == 0
}

func (t *TreeNode) String() string {
	return fmt.Sprintf("TreeNode{%s, weight: %d, children: %d}", t.Name, t.Weight, len(t.Children))
}

// Registry owns every tree node declared during a run.  Names are unique
// and nodes are never removed.
type Registry struct {
	nodes  []*TreeNode
	byName map[string]NodeID
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]NodeID)}
}

// Declare creates and registers a childless node.  Fails without touching
// the registry if the name is already taken.
func (r *Registry) Declare(name string, weight int64) (NodeID, error) {
	if _, exists := r.byName[name]; exists {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}
	id := NodeID(len(r.nodes))
	r.nodes = append(r.nodes, &TreeNode{ID: id, Name: name, Weight: weight})
	r.byName[name] = id
	return id, nil
}

// AttachChild appends child to the children of the named parent.  The
// child stays registered even if the parent does not exist.
func (r *Registry) AttachChild(parentName string, child NodeID) error {
	parent, ok := r.Lookup(parentName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrParentNotFound, parentName)
	}
	if r.Node(child) == nil {
		return fmt.Errorf("invalid child handle: %d", child)
	}
	parent.Children = append(parent.Children, child)
	return nil
}

func (r *Registry) Lookup(name string) (*TreeNode, bool) {
	id, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return r.nodes[id], true
}

// Node returns the node for a handle or nil if the handle is unknown.
func (r *Registry) Node(id NodeID) *TreeNode {
	if id < 0 || int(id) >= len(r.nodes) {
		return nil
	}
	return r.nodes[id]
}

func (r *Registry) Len() int {
	return len(r.nodes)
}

// Names of all nodes in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.nodes))
	for i, n := range r.nodes {
		out[i] = n.Name
	}
	return out
}

// Render returns the pre-order rendering of a node: its name followed,
// only if it has children, by the bracketed, comma separated renderings
// of its children.
func (r *Registry) Render(id NodeID) string {
	var sb strings.Builder
	r.render(&sb, id)
	return sb.String()
}

func (r *Registry) render(sb *strings.Builder, id NodeID) {
	node := r.Node(id)
	if node == nil {
		return
	}
	sb.WriteString(node.Name)
	if node.IsLeaf() {
		return
	}
	sb.WriteByte('[')
	for i, child := range node.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		r.render(sb, child)
	}
	sb.WriteByte(']')
}

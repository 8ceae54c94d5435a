package decl

import (
	"fmt"
)

// --- Interfaces ---

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	Pos() Location  // Starting position (for error reporting)
	End() Location  // Ending position
	String() string // String representation for debugging/printing
	PrettyPrint(cp CodePrinter)
}

// Location of a node in the source.  Line and Col are 1-based; a zero
// Line means the node was built in code rather than parsed.
type Location struct {
	Pos  int
	Line int
	Col  int
}

func (l Location) IsValid() bool {
	return l.Line > 0
}

func (l Location) LineColStr() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// --- Base Struct ---

// NodeInfo embeddable struct for position tracking.
type NodeInfo struct{ StartPos, StopPos Location }

func (n *NodeInfo) Pos() Location  { return n.StartPos }
func (n *NodeInfo) End() Location  { return n.StopPos }
func (n *NodeInfo) String() string { return "{Node}" } // Default stringer

func NewNodeInfo(start, stop Location) NodeInfo {
	return NodeInfo{StartPos: start, StopPos: stop}
}

// Program is the root of a parsed source file.
type Program struct {
	NodeInfo
	Name string // file name the program was loaded from, if any
	Body *CompoundStmt
}

func (p *Program) String() string {
	if p.Body == nil {
		return ""
	}
	return p.Body.String()
}

func (p *Program) PrettyPrint(cp CodePrinter) {
	for _, stmt := range p.Body.Statements() {
		stmt.PrettyPrint(cp)
		cp.Println("")
	}
}

package parser

import (
	"github.com/panyam/forest/decl"
)

func newNodeInfo(start, end Location) NodeInfo {
	return NodeInfo{StartPos: start, StopPos: end}
}

func newLiteralExpr(value Value, start, end Location) *LiteralExpr {
	if value.IsEmpty() {
		panic("literal value should not be empty")
	}
	return &LiteralExpr{
		ExprBase: ExprBase{NodeInfo: newNodeInfo(start, end)},
		Value:    value,
	}
}

func newIdentifierExpr(name string, start, end Location) *IdentifierExpr {
	return &IdentifierExpr{
		ExprBase: ExprBase{NodeInfo: newNodeInfo(start, end)},
		Name:     name,
	}
}

func newBinaryExpr(left Expr, op string, right Expr) *BinaryExpr {
	out := decl.Binary(left, op, right)
	out.NodeInfo = newNodeInfo(left.Pos(), right.End())
	return out
}

// TokenNode carries the position and text of a punctuation or keyword
// token.
type TokenNode struct {
	NodeInfo
	Text string
}

func newTokenNode(start, end Location, text string) *TokenNode {
	return &TokenNode{newNodeInfo(start, end), text}
}

func (tn *TokenNode) Pos() Location                   { return tn.StartPos }
func (tn *TokenNode) End() Location                   { return tn.StopPos }
func (tn *TokenNode) String() string                  { return tn.Text }
func (tn *TokenNode) PrettyPrint(cp decl.CodePrinter) { cp.Print(tn.Text) }

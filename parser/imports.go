package parser

import "github.com/panyam/forest/decl"

type Location = decl.Location
type NodeInfo = decl.NodeInfo
type Node = decl.Node
type Expr = decl.Expr
type Stmt = decl.Stmt
type ExprBase = decl.ExprBase
type StmtBase = decl.StmtBase
type LiteralExpr = decl.LiteralExpr
type IdentifierExpr = decl.IdentifierExpr
type BinaryExpr = decl.BinaryExpr
type UnaryExpr = decl.UnaryExpr
type CompoundStmt = decl.CompoundStmt
type NodeStmt = decl.NodeStmt
type PrintStmt = decl.PrintStmt
type ForRangeStmt = decl.ForRangeStmt
type ForListStmt = decl.ForListStmt
type Program = decl.Program
type Value = decl.Value

var IntValue = decl.IntValue
var StringValue = decl.StringValue

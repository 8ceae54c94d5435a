package runtime

import (
	"github.com/panyam/forest/decl"
	"github.com/panyam/forest/loader"
)

type Location = decl.Location
type Node = decl.Node
type Expr = decl.Expr
type Stmt = decl.Stmt
type Env[T any] = decl.Env[T]
type Value = decl.Value
type Type = decl.Type
type Program = decl.Program

type LiteralExpr = decl.LiteralExpr
type IdentifierExpr = decl.IdentifierExpr
type BinaryExpr = decl.BinaryExpr
type UnaryExpr = decl.UnaryExpr

type CompoundStmt = decl.CompoundStmt
type NodeStmt = decl.NodeStmt
type PrintStmt = decl.PrintStmt
type ForRangeStmt = decl.ForRangeStmt
type ForListStmt = decl.ForListStmt

type ErrorCollector = loader.ErrorCollector

var IntType = decl.IntType
var StrType = decl.StrType
var EmptyValue = decl.EmptyValue
var IntValue = decl.IntValue
var StringValue = decl.StringValue

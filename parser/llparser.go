package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/panyam/forest/decl"
	gfn "github.com/panyam/goutils/fn"
)

// LLParser is a recursive descent parser with a single token of
// lookahead.  It stops at the first syntax error.
type LLParser struct {
	lexer            *Lexer
	peekedTokenValue *SymType
	peekedToken      int

	PanicOnError bool
}

func NewLLParser(lexer *Lexer) *LLParser {
	return &LLParser{lexer: lexer}
}

// Parse reads a whole program from r.
func Parse(r io.Reader) (*Lexer, *Program, error) {
	lexer := NewLexer(r)
	prog := &Program{}
	err := NewLLParser(lexer).Parse(prog)
	return lexer, prog, err
}

// Parse fills out with every statement up to the end of input.
//
//	program := stmt* EOF
func (p *LLParser) Parse(out *Program) (err error) {
	p.PeekToken()
	start := p.peekedTokenValue.node.Pos()
	stmts, err := p.ParseStmtList(eof)
	if err != nil {
		return err
	}
	out.Body = decl.Sequence(stmts...)
	out.NodeInfo = newNodeInfo(start, p.peekedTokenValue.node.End())
	return nil
}

func (p *LLParser) Errorf(format string, args ...any) error {
	p.lexer.Error(fmt.Sprintf(format, args...))
	if p.PanicOnError {
		panic(p.lexer.lastError)
	}
	return p.lexer.lastError
}

func (p *LLParser) Advance() int {
	p.PeekToken()
	last := p.peekedToken
	p.peekedTokenValue = nil
	p.peekedToken = -1
	return last
}

func (p *LLParser) PeekToken() int {
	if p.peekedTokenValue == nil {
		p.peekedTokenValue = &SymType{}
		p.peekedToken = p.lexer.Lex(p.peekedTokenValue)
	}
	return p.peekedToken
}

// Expect checks if the current peeked token is one of the expected tokens.
// It does NOT advance.
func (p *LLParser) Expect(tokensIn ...int) (foundToken int, err error) {
	peekedToken := p.PeekToken()
	for _, tok := range tokensIn {
		if tok == peekedToken {
			return tok, nil
		}
	}
	if peekedToken == ILLEGAL {
		return -1, p.lexer.lastError
	}
	if len(tokensIn) == 1 {
		return -1, p.Errorf("expected %s, found %s", TokenString(tokensIn[0]), TokenString(peekedToken))
	}
	expectedStrings := gfn.Map(tokensIn, func(t int) string { return TokenString(t) })
	return -1, p.Errorf("expected one of [%s], found %s", strings.Join(expectedStrings, ", "), TokenString(peekedToken))
}

// AdvanceIf expects one of the given tokens and advances if found.
// Returns the matched token type and its semantic value.
func (p *LLParser) AdvanceIf(tokensIn ...int) (foundToken int, tokenValue *SymType, err error) {
	if _, err = p.Expect(tokensIn...); err != nil {
		return -1, nil, err
	}
	foundToken = p.peekedToken
	tokenValue = p.peekedTokenValue
	p.Advance()
	return
}

func (p *LLParser) ParseIdentifier() (out *IdentifierExpr, err error) {
	_, tokenVal, err := p.AdvanceIf(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return tokenVal.expr.(*IdentifierExpr), nil
}

// ParseStmtList parses statements until one of the closing tokens is
// peeked.  The closing token is not consumed.  Bare semicolons are
// skipped.
func (p *LLParser) ParseStmtList(closingTokens ...int) (stmts []Stmt, err error) {
	for {
		peeked := p.PeekToken()
		for _, tok := range closingTokens {
			if peeked == tok {
				return
			}
		}
		if peeked == eof {
			return nil, p.Errorf("unexpected end of input, expected %s", TokenString(closingTokens[0]))
		}
		if peeked == SEMICOLON {
			p.Advance()
			continue
		}
		stmt, err := p.ParseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// ParseStmt parses a single node, print or for statement.
func (p *LLParser) ParseStmt() (Stmt, error) {
	switch p.PeekToken() {
	case NODE:
		return p.ParseNodeStmt()
	case PRINT:
		return p.ParsePrintStmt()
	case FOR:
		return p.ParseForStmt()
	case ILLEGAL:
		return nil, p.lexer.lastError
	}
	return nil, p.Errorf("expected 'node', 'print' or 'for', found %s", TokenString(p.PeekToken()))
}

// ParseNodeStmt parses
//
//	"node" "(" expr "," expr ["," expr] ")" ";"
func (p *LLParser) ParseNodeStmt() (out *NodeStmt, err error) {
	_, kw, err := p.AdvanceIf(NODE)
	if err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(LPAREN); err != nil {
		return nil, err
	}
	out = &NodeStmt{}
	if out.Name, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(COMMA); err != nil {
		return nil, err
	}
	if out.Weight, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if p.PeekToken() == COMMA {
		p.Advance()
		if out.Parent, err = p.ParseExpression(); err != nil {
			return nil, err
		}
	}
	if _, _, err = p.AdvanceIf(RPAREN); err != nil {
		return nil, err
	}
	_, semi, err := p.AdvanceIf(SEMICOLON)
	if err != nil {
		return nil, err
	}
	out.NodeInfo = newNodeInfo(kw.node.Pos(), semi.node.End())
	return out, nil
}

// ParsePrintStmt parses
//
//	"print" "(" expr ")" ";"
func (p *LLParser) ParsePrintStmt() (out *PrintStmt, err error) {
	_, kw, err := p.AdvanceIf(PRINT)
	if err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(LPAREN); err != nil {
		return nil, err
	}
	out = &PrintStmt{}
	if out.Name, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(RPAREN); err != nil {
		return nil, err
	}
	_, semi, err := p.AdvanceIf(SEMICOLON)
	if err != nil {
		return nil, err
	}
	out.NodeInfo = newNodeInfo(kw.node.Pos(), semi.node.End())
	return out, nil
}

// ParseForStmt parses both loop forms:
//
//	"for" IDENT "in" expr ".." expr block
//	"for" IDENT "in" "[" [expr {"," expr}] "]" block
func (p *LLParser) ParseForStmt() (Stmt, error) {
	_, kw, err := p.AdvanceIf(FOR)
	if err != nil {
		return nil, err
	}
	variable, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(IN); err != nil {
		return nil, err
	}

	if p.PeekToken() == LSQUARE {
		items, err := p.ParseItemList()
		if err != nil {
			return nil, err
		}
		body, end, err := p.ParseBlock()
		if err != nil {
			return nil, err
		}
		out := &ForListStmt{Variable: variable, Items: items, Body: body}
		out.NodeInfo = newNodeInfo(kw.node.Pos(), end)
		return out, nil
	}

	start, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, _, err = p.AdvanceIf(DOTDOT); err != nil {
		return nil, err
	}
	endExpr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	body, end, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}
	out := &ForRangeStmt{Variable: variable, Start: start, Stop: endExpr, Body: body}
	out.NodeInfo = newNodeInfo(kw.node.Pos(), end)
	return out, nil
}

// ParseItemList parses a bracketed, comma separated (possibly empty) list
// of expressions.
func (p *LLParser) ParseItemList() (items []Expr, err error) {
	if _, _, err = p.AdvanceIf(LSQUARE); err != nil {
		return nil, err
	}
	if p.PeekToken() == RSQUARE {
		p.Advance()
		return nil, nil
	}
	for {
		item, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		tok, _, err := p.AdvanceIf(COMMA, RSQUARE)
		if err != nil {
			return nil, err
		}
		if tok == RSQUARE {
			return items, nil
		}
	}
}

// ParseBlock parses "{" stmt* "}" into a statement chain and returns the
// position after the closing brace.
func (p *LLParser) ParseBlock() (out *CompoundStmt, end Location, err error) {
	_, open, err := p.AdvanceIf(LBRACE)
	if err != nil {
		return nil, end, err
	}
	stmts, err := p.ParseStmtList(RBRACE)
	if err != nil {
		return nil, end, err
	}
	_, closing, err := p.AdvanceIf(RBRACE)
	if err != nil {
		return nil, end, err
	}
	out = decl.Sequence(stmts...)
	if out != nil {
		out.NodeInfo = newNodeInfo(open.node.Pos(), closing.node.End())
	}
	return out, closing.node.End(), nil
}

// ParseExpression parses an additive expression.
//
//	expr := term {("+"|"-") term}
func (p *LLParser) ParseExpression() (Expr, error) {
	return p.parseBinaryExpr(p.ParseTerm, PLUS, MINUS)
}

// ParseTerm parses a multiplicative expression.
//
//	term := unary {("*"|"/"|"%") unary}
func (p *LLParser) ParseTerm() (Expr, error) {
	return p.parseBinaryExpr(p.ParseUnaryExpr, MUL, DIV, MOD)
}

// parseBinaryExpr parses a left associative chain of operands joined by
// any of the given operators.
func (p *LLParser) parseBinaryExpr(operand func() (Expr, error), operators ...int) (Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		peeked := p.PeekToken()
		matched := false
		for _, op := range operators {
			if peeked == op {
				matched = true
				break
			}
		}
		if !matched {
			return left, nil
		}
		opText := p.peekedTokenValue.sval
		p.Advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = newBinaryExpr(left, opText, right)
	}
}

// ParseUnaryExpr parses
//
//	unary := "-" unary | primary
func (p *LLParser) ParseUnaryExpr() (Expr, error) {
	if p.PeekToken() != MINUS {
		return p.ParsePrimaryExpr()
	}
	_, minus, _ := p.AdvanceIf(MINUS)
	operand, err := p.ParseUnaryExpr()
	if err != nil {
		return nil, err
	}
	out := decl.Negate(operand)
	out.NodeInfo = newNodeInfo(minus.node.Pos(), operand.End())
	return out, nil
}

// ParsePrimaryExpr parses
//
//	primary := INT | STRING | IDENT | "(" expr ")"
func (p *LLParser) ParsePrimaryExpr() (Expr, error) {
	switch p.PeekToken() {
	case INT_LITERAL, STRING_LITERAL, IDENTIFIER:
		_, tokenVal, _ := p.AdvanceIf(p.PeekToken())
		return tokenVal.expr, nil
	case LPAREN:
		p.Advance()
		inner, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if _, _, err = p.AdvanceIf(RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case ILLEGAL:
		return nil, p.lexer.lastError
	}
	return nil, p.Errorf("expected expression, found %s", TokenString(p.PeekToken()))
}

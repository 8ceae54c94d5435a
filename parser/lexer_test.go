package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lexedToken struct {
	tok  int
	text string
}

func lexAll(t *testing.T, input string) ([]lexedToken, *Lexer) {
	t.Helper()
	lexer := NewLexer(strings.NewReader(input))
	var out []lexedToken
	for range 1000 {
		lval := &SymType{}
		tok := lexer.Lex(lval)
		if tok == eof || tok == ILLEGAL {
			out = append(out, lexedToken{tok, lexer.Text()})
			return out, lexer
		}
		out = append(out, lexedToken{tok, lexer.Text()})
	}
	t.Fatalf("lexer did not terminate on %q", input)
	return nil, nil
}

func TestLexerTokens(t *testing.T) {
	tokens, lexer := lexAll(t, `node ( "a" , 12 ) ; for i in 1..3 { } [ ] + - * / % print foo_1`)
	require.NoError(t, lexer.LastError())

	expected := []lexedToken{
		{NODE, "node"}, {LPAREN, "("}, {STRING_LITERAL, `"a"`}, {COMMA, ","}, {INT_LITERAL, "12"},
		{RPAREN, ")"}, {SEMICOLON, ";"}, {FOR, "for"}, {IDENTIFIER, "i"}, {IN, "in"},
		{INT_LITERAL, "1"}, {DOTDOT, ".."}, {INT_LITERAL, "3"}, {LBRACE, "{"}, {RBRACE, "}"},
		{LSQUARE, "["}, {RSQUARE, "]"}, {PLUS, "+"}, {MINUS, "-"}, {MUL, "*"}, {DIV, "/"},
		{MOD, "%"}, {PRINT, "print"}, {IDENTIFIER, "foo_1"}, {eof, ""},
	}
	assert.Equal(t, expected, tokens)
}

func TestLexerSkipsComments(t *testing.T) {
	tokens, lexer := lexAll(t, "// line comment\nprint /* block\n comment */ ( x ) ;")
	require.NoError(t, lexer.LastError())
	kinds := make([]int, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.tok
	}
	assert.Equal(t, []int{PRINT, LPAREN, IDENTIFIER, RPAREN, SEMICOLON, eof}, kinds)
}

func TestLexerStringEscapes(t *testing.T) {
	lexer := NewLexer(strings.NewReader(`"a\n\t\"b\\"`))
	lval := &SymType{}
	require.Equal(t, STRING_LITERAL, lexer.Lex(lval))
	lit, ok := lval.expr.(*LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, "a\n\t\"b\\", lit.Value.StringVal())
}

func TestLexerPositions(t *testing.T) {
	lexer := NewLexer(strings.NewReader("print\n  (abc"))
	lval := &SymType{}
	lexer.Lex(lval)
	assert.Equal(t, Location{Pos: 0, Line: 1, Col: 1}, lval.node.Pos())

	lexer.Lex(lval)
	assert.Equal(t, Location{Pos: 8, Line: 2, Col: 3}, lval.node.Pos())

	lval = &SymType{}
	require.Equal(t, IDENTIFIER, lexer.Lex(lval))
	assert.Equal(t, Location{Pos: 9, Line: 2, Col: 4}, lval.expr.Pos())
	assert.Equal(t, Location{Pos: 12, Line: 2, Col: 7}, lval.expr.End())
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		errorContains string
	}{
		{"unterminated string", `"abc`, "unterminated string literal"},
		{"bad escape", `"a\qb"`, `invalid escape sequence \q`},
		{"unterminated comment", "/* never closed", "unterminated block comment"},
		{"stray character", "node @", "unexpected character '@'"},
		{"single dot", "1.2", "unexpected character '.'"},
		{"huge integer", "99999999999999999999", "integer literal out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, lexer := lexAll(t, tt.input)
			assert.Equal(t, ILLEGAL, tokens[len(tokens)-1].tok)
			require.Error(t, lexer.LastError())
			assert.Contains(t, lexer.LastError().Error(), tt.errorContains)

			var perr *ParseError
			assert.ErrorAs(t, lexer.LastError(), &perr)
		})
	}
}

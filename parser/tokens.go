package parser

import "fmt"

// Token kinds returned by Lexer.Lex.  eof (0) ends the stream.
const (
	ILLEGAL = iota + 1

	IDENTIFIER
	INT_LITERAL
	STRING_LITERAL

	// Keywords
	NODE
	PRINT
	FOR
	IN

	// Punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LSQUARE
	RSQUARE
	COMMA
	SEMICOLON
	DOTDOT

	// Operators
	PLUS
	MINUS
	MUL
	DIV
	MOD
)

var keywords = map[string]int{
	"node":  NODE,
	"print": PRINT,
	"for":   FOR,
	"in":    IN,
}

var tokenNames = map[int]string{
	eof:            "EOF",
	ILLEGAL:        "ILLEGAL",
	IDENTIFIER:     "IDENTIFIER",
	INT_LITERAL:    "INT_LITERAL",
	STRING_LITERAL: "STRING_LITERAL",
	NODE:           "'node'",
	PRINT:          "'print'",
	FOR:            "'for'",
	IN:             "'in'",
	LPAREN:         "'('",
	RPAREN:         "')'",
	LBRACE:         "'{'",
	RBRACE:         "'}'",
	LSQUARE:        "'['",
	RSQUARE:        "']'",
	COMMA:          "','",
	SEMICOLON:      "';'",
	DOTDOT:         "'..'",
	PLUS:           "'+'",
	MINUS:          "'-'",
	MUL:            "'*'",
	DIV:            "'/'",
	MOD:            "'%'",
}

// TokenString returns a printable name for a token kind.
func TokenString(tok int) string {
	if name, ok := tokenNames[tok]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", tok)
}

package parser

import "fmt"

// ParseError is a syntax error at a position in the source.
type ParseError struct {
	Pos  Location
	Near string // text of the offending token, if any
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Near != "" {
		return fmt.Sprintf("line %d, col %d near '%s': %s", e.Pos.Line, e.Pos.Col, e.Near, e.Msg)
	}
	return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

func NewParseError(pos Location, near, msg string) *ParseError {
	return &ParseError{Pos: pos, Near: near, Msg: msg}
}

package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode"
)

const eof = 0

// SymType is the semantic value of a token.  Literals and identifiers
// come back as ready-made expressions; every token gets a TokenNode for
// its position.
type SymType struct {
	expr Expr
	node *TokenNode
	sval string
}

// Lexer turns source text into tokens, tracking line and column as it
// goes.
type Lexer struct {
	lookaheadRunes  []rune
	lookaheadWidths []int
	reader          *bufio.Reader
	buf             bytes.Buffer // Temporary buffer for scanned text
	pos             int          // Current byte offset from the beginning of the input
	lastError       error

	tokenStart Location // Where the current token started
	tokenText  string   // Raw text of the current token

	// Current line and column (rune-based, 1-based)
	line int
	col  int
}

// NewLexer creates a new lexer instance
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
		line:   1,
		col:    1,
	}
}

// Error records a syntax error at the current token.  Only the first error
// is kept.
func (l *Lexer) Error(s string) {
	if l.lastError == nil {
		l.lastError = NewParseError(l.tokenStart, l.tokenText, s)
	}
}

// LastError returns the first error seen by the lexer or parser.
func (l *Lexer) LastError() error {
	return l.lastError
}

// Pos returns the start of the most recently lexed token.
func (l *Lexer) Pos() Location {
	return l.tokenStart
}

// End returns the position just after the most recently lexed token.
func (l *Lexer) End() Location {
	return l.location()
}

// Text returns the raw text of the most recently lexed token.
func (l *Lexer) Text() string {
	return l.tokenText
}

func (l *Lexer) location() Location {
	return Location{Pos: l.pos, Line: l.line, Col: l.col}
}

// --- Rune Reading Helpers (with line/col tracking) ---
func (l *Lexer) read() (r rune, width int) {
	if l.peek() == eof {
		return eof, 0
	}
	r, width = l.lookaheadRunes[0], l.lookaheadWidths[0]
	l.lookaheadRunes, l.lookaheadWidths = l.lookaheadRunes[1:], l.lookaheadWidths[1:]
	l.updatePosition(r, width)
	return r, width
}

func (l *Lexer) updatePosition(r rune, width int) {
	l.pos += width
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) peekN(nthchar int) rune {
	l.ensureLookAhead(nthchar + 1)
	if nthchar >= len(l.lookaheadRunes) {
		return eof
	}
	return l.lookaheadRunes[nthchar]
}

func (l *Lexer) peek() rune {
	return l.peekN(0)
}

func (l *Lexer) ensureLookAhead(numchars int) int {
	for len(l.lookaheadRunes) < numchars {
		r, width, err := l.reader.ReadRune()
		if err != nil {
			break
		}
		l.lookaheadRunes = append(l.lookaheadRunes, r)
		l.lookaheadWidths = append(l.lookaheadWidths, width)
	}
	return len(l.lookaheadRunes)
}

func (l *Lexer) hasPrefix(prefix string) bool {
	runes := []rune(prefix)
	if l.ensureLookAhead(len(runes)) < len(runes) {
		return false
	}
	for i, r := range runes {
		if l.lookaheadRunes[i] != r {
			return false
		}
	}
	return true
}

func (l *Lexer) readTill(stop rune) (foundeof bool) {
	for {
		r, _ := l.read()
		if r == eof {
			return true
		}
		if r == stop {
			return false
		}
	}
}

// --- Scanning Functions ---

// skipWhitespace skips spaces and comments.  Returns true at end of input.
func (l *Lexer) skipWhitespace() bool {
	for {
		firstChar := l.peek()
		if firstChar == eof {
			return true
		}
		if unicode.IsSpace(firstChar) {
			l.read()
		} else if l.hasPrefix("//") {
			l.readTill('\n')
		} else if l.hasPrefix("/*") {
			l.tokenStart = l.location()
			l.tokenText = "/*"
			l.read()
			l.read()
			for {
				if l.hasPrefix("*/") {
					l.read()
					l.read()
					break
				}
				if r, _ := l.read(); r == eof {
					l.Error("unterminated block comment")
					return true
				}
			}
		} else {
			return false
		}
	}
}

func (l *Lexer) scanIdentifierOrKeyword() (tok int, text string) {
	l.buf.Reset()
	for r := l.peek(); r != eof && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'); r = l.peek() {
		l.read()
		l.buf.WriteRune(r)
	}
	text = l.buf.String()
	if kw, ok := keywords[text]; ok {
		return kw, text
	}
	return IDENTIFIER, text
}

func (l *Lexer) scanNumber() string {
	l.buf.Reset()
	for r := l.peek(); r != eof && unicode.IsDigit(r); r = l.peek() {
		l.read()
		l.buf.WriteRune(r)
	}
	return l.buf.String()
}

func (l *Lexer) scanString() (content string, ok bool) {
	l.buf.Reset()
	l.read() // Consume opening '"'
	for {
		r, _ := l.read()
		if r == eof {
			l.Error("unterminated string literal")
			return "", false
		}
		if r == '"' {
			break
		}
		if r == '\\' {
			esc, _ := l.read()
			switch esc {
			case eof:
				l.Error("unterminated string literal after escape")
				return "", false
			case 'n':
				l.buf.WriteRune('\n')
			case 't':
				l.buf.WriteRune('\t')
			case 'r':
				l.buf.WriteRune('\r')
			case '\\':
				l.buf.WriteRune('\\')
			case '"':
				l.buf.WriteRune('"')
			default:
				l.Error(fmt.Sprintf("invalid escape sequence \\%c", esc))
				return "", false
			}
		} else {
			l.buf.WriteRune(r)
		}
	}
	return l.buf.String(), true
}

var punctuation = map[rune]int{
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	'[': LSQUARE,
	']': RSQUARE,
	',': COMMA,
	';': SEMICOLON,
	'+': PLUS,
	'-': MINUS,
	'*': MUL,
	'/': DIV,
	'%': MOD,
}

// Lex is the main lexing function called by the parser.  Returns eof at
// the end of input and ILLEGAL after an error (see LastError).
func (l *Lexer) Lex(lval *SymType) (tok int) {
	if l.skipWhitespace() {
		if l.lastError != nil {
			lval.node = newTokenNode(l.tokenStart, l.location(), l.tokenText)
			return ILLEGAL
		}
		l.tokenStart = l.location()
		l.tokenText = ""
		lval.node = newTokenNode(l.tokenStart, l.tokenStart, "")
		return eof
	}

	l.tokenStart = l.location()
	l.tokenText = ""
	start := l.tokenStart
	defer func() {
		lval.node = newTokenNode(start, l.location(), l.tokenText)
	}()

	r := l.peek()
	if unicode.IsLetter(r) || r == '_' {
		tok, text := l.scanIdentifierOrKeyword()
		l.tokenText = text
		lval.sval = text
		if tok == IDENTIFIER {
			lval.expr = newIdentifierExpr(text, start, l.location())
		}
		return tok
	}

	if unicode.IsDigit(r) {
		text := l.scanNumber()
		l.tokenText = text
		intVal, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			l.Error("integer literal out of range")
			return ILLEGAL
		}
		lval.expr = newLiteralExpr(IntValue(intVal), start, l.location())
		return INT_LITERAL
	}

	if r == '"' {
		content, ok := l.scanString()
		if !ok {
			return ILLEGAL
		}
		l.tokenText = strconv.Quote(content)
		lval.sval = content
		lval.expr = newLiteralExpr(StringValue(content), start, l.location())
		return STRING_LITERAL
	}

	if l.hasPrefix("..") {
		l.read()
		l.read()
		l.tokenText = ".."
		return DOTDOT
	}

	l.tokenText = string(r)
	if tok, ok := punctuation[r]; ok {
		l.read()
		lval.sval = l.tokenText
		return tok
	}

	l.read()
	l.Error(fmt.Sprintf("unexpected character '%c'", r))
	return ILLEGAL
}

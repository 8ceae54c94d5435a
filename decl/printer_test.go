package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodePrinterIndent(t *testing.T) {
	cp := NewCodePrinter()
	cp.Println("a {")
	WithIndent(1, cp, func(cp CodePrinter) {
		cp.Println("b")
		cp.Println("")
		cp.Printf("%s;", "c")
	})
	cp.Print("\n}")
	assert.Equal(t, "a {\n  b\n\n  c;\n}", cp.String())
}

func TestFormatExpressions(t *testing.T) {
	tests := []struct {
		expr     Expr
		expected string
	}{
		{Binary(Binary(Ident("a"), "+", Ident("b")), "*", Ident("c")), "(a + b) * c"},
		{Binary(Ident("a"), "+", Binary(Ident("b"), "*", Ident("c"))), "a + b * c"},
		{Binary(Binary(Ident("a"), "-", Ident("b")), "-", Ident("c")), "a - b - c"},
		{Binary(Ident("a"), "-", Binary(Ident("b"), "-", Ident("c"))), "a - (b - c)"},
		{Binary(Ident("a"), "%", Binary(Ident("b"), "/", Ident("c"))), "a % (b / c)"},
		{Negate(Binary(IntLit(1), "+", IntLit(2))), "-(1 + 2)"},
		{Negate(Negate(Ident("x"))), "--x"},
		{Binary(StrLit("say \"hi\""), "+", IntLit(3)), `"say \"hi\"" + 3`},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.expr))
		})
	}
}

func TestFormatProgram(t *testing.T) {
	prog := NewProgram(
		NewNodeStmt(StrLit("root"), IntLit(1), nil),
		NewForListStmt("x", []Expr{StrLit("a")},
			NewForRangeStmt("i", IntLit(1), IntLit(2),
				NewNodeStmt(Binary(Ident("x"), "+", Ident("i")), Ident("i"), StrLit("root")),
			),
		),
		NewForRangeStmt("j", IntLit(0), IntLit(0)),
		NewPrintStmt(StrLit("root")),
	)
	expected := `node("root", 1);
for x in ["a"] {
  for i in 1..2 {
    node(x + i, i, "root");
  }
}
for j in 0..0 {
}
print("root");
`
	assert.Equal(t, expected, Format(prog))
	assert.Equal(t, `node("root", 1); for x in ["a"] { for i in 1..2 { node((x + i), i, "root"); } } for j in 0..0 {  } print("root");`, prog.String())
}

package runtime

import (
	"errors"
	"fmt"
)

var (
	ErrVariableNotFound = errors.New("variable not found")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrDuplicateNode    = errors.New("node already exists")
	ErrParentNotFound   = errors.New("parent node not found")
	ErrNodeNotFound     = errors.New("tree node not found")
	ErrLoopBoundType    = errors.New("loop bound type mismatch")
)

// Diagnostic is a recoverable error reported while running a program.
// It matches its Kind with errors.Is.
type Diagnostic struct {
	Kind error
	Pos  Location
	Msg  string
}

func (d *Diagnostic) Error() string {
	if !d.Pos.IsValid() {
		return d.Msg
	}
	return fmt.Sprintf("line %d, col %d: %s", d.Pos.Line, d.Pos.Col, d.Msg)
}

func (d *Diagnostic) Unwrap() error {
	return d.Kind
}

// Kinds returns the kind of every diagnostic in errs, skipping other errors.
func Kinds(errs []error) (out []error) {
	for _, err := range errs {
		var d *Diagnostic
		if errors.As(err, &d) {
			out = append(out, d.Kind)
		}
	}
	return
}

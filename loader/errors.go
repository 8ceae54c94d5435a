package loader

import (
	"fmt"
	"io"

	"github.com/panyam/forest/decl"
)

// PosError is an error message anchored at a source location.
type PosError struct {
	Pos decl.Location
	Msg string
}

func PosErrorf(pos decl.Location, format string, args ...any) *PosError {
	return &PosError{
		Pos: pos,
		Msg: fmt.Sprintf(format, args...),
	}
}

func (p *PosError) Error() string {
	if !p.Pos.IsValid() {
		return p.Msg
	}
	return fmt.Sprintf("%s: %s", p.Pos.LineColStr(), p.Msg)
}

type ErrorCollector struct {
	// Errors collected so far, in the order they were reported
	Errors []error
}

func (f *ErrorCollector) HasErrors() bool {
	return len(f.Errors) > 0
}

func (f *ErrorCollector) PrintErrors(w io.Writer) {
	for _, err := range f.Errors {
		fmt.Fprintln(w, err)
	}
}

func (i *ErrorCollector) AddErrors(errs ...error) {
	for _, err := range errs {
		if err != nil {
			i.Errors = append(i.Errors, err)
		}
	}
}

func (i *ErrorCollector) Errorf(pos decl.Location, format string, args ...any) bool {
	i.AddErrors(PosErrorf(pos, format, args...))
	return false
}

// ClearErrors drops everything collected so far.
func (i *ErrorCollector) ClearErrors() {
	i.Errors = nil
}

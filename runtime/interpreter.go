package runtime

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter writes program output and diagnostics to a single stream.
type Reporter struct {
	out      io.Writer
	errColor *color.Color
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:      out,
		errColor: color.New(color.FgRed, color.Bold),
	}
}

func (r *Reporter) EnableColor() {
	r.errColor.EnableColor()
}

func (r *Reporter) DisableColor() {
	r.errColor.DisableColor()
}

// Report writes one diagnostic line.
func (r *Reporter) Report(d *Diagnostic) {
	fmt.Fprintf(r.out, "%s %s\n", r.errColor.Sprint("Error:"), d.Error())
}

// Emit writes one line of program output.
func (r *Reporter) Emit(line string) {
	fmt.Fprintln(r.out, line)
}

// Interpreter runs programs against an Environment.  Every problem found
// while running is reported to the output stream and collected; none of
// them stop the run.
type Interpreter struct {
	ErrorCollector
	Reporter *Reporter
	Env      *Environment

	// Tracer, when set, records every executed statement.
	Tracer *ExecutionTracer
}

func NewInterpreter(out io.Writer) *Interpreter {
	return &Interpreter{
		Reporter: NewReporter(out),
		Env:      NewEnvironment(),
	}
}

// Run executes a program against the interpreter's environment.  Trees
// declared by earlier runs on the same interpreter remain visible.
func (i *Interpreter) Run(prog *Program) *Environment {
	if prog == nil || prog.Body == nil {
		return i.Env
	}
	Debug("running program %q", prog.Name)
	i.Execute(prog.Body, i.Env)
	Debug("program %q done: %d nodes, %d diagnostics", prog.Name, i.Env.Trees.Len(), len(i.Errors))
	return i.Env
}

// Reset discards all trees, variables and collected diagnostics.
func (i *Interpreter) Reset() {
	i.Env = NewEnvironment()
	i.ClearErrors()
}

func (i *Interpreter) report(kind error, node Node, format string, args ...any) {
	d := &Diagnostic{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
	if node != nil {
		d.Pos = node.Pos()
	}
	i.AddErrors(d)
	i.Reporter.Report(d)
	if i.Tracer != nil {
		i.Tracer.Error(d)
	}
}

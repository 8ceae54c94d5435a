package runtime

import (
	"fmt"
	"strings"
	"sync"

	gfn "github.com/panyam/goutils/fn"
)

// TraceEventKind defines the type of a trace event.
type TraceEventKind string

const (
	EventEnter TraceEventKind = "enter"
	EventExit  TraceEventKind = "exit"
	EventIter  TraceEventKind = "iter"
	EventError TraceEventKind = "error"
)

// TraceEvent represents a single event in an execution trace.
type TraceEvent struct {
	Kind         TraceEventKind `json:"kind"`
	ParentID     int            `json:"parent_id,omitempty"`
	ID           int            `json:"id"`
	Line         int            `json:"line,omitempty"`
	Target       string         `json:"target,omitempty"`
	Arguments    []string       `json:"args,omitempty"`
	ErrorMessage string         `json:"err,omitempty"`
}

// TraceData is the top-level structure for a trace file.
type TraceData struct {
	Program string        `json:"program"`
	Events  []*TraceEvent `json:"events"`
}

// ExecutionTracer records which statements ran, the values loop variables
// took and the errors reported along the way.  Events nest under the
// statement that was executing when they happened.
type ExecutionTracer struct {
	mu     sync.Mutex
	Events []*TraceEvent
	nextID int
	stack  []int
}

// NewExecutionTracer creates a new tracer.
func NewExecutionTracer() *ExecutionTracer {
	return &ExecutionTracer{
		Events: make([]*TraceEvent, 0),
		nextID: 1,
		stack:  []int{0},
	}
}

func (t *ExecutionTracer) currentParentID() int {
	if len(t.stack) == 0 {
		return 0
	}
	return t.stack[len(t.stack)-1]
}

func (t *ExecutionTracer) add(event *TraceEvent) int {
	event.ID = t.nextID
	event.ParentID = t.currentParentID()
	t.nextID++
	t.Events = append(t.Events, event)
	return event.ID
}

// Enter logs the start of a statement and makes it the parent of the
// events that follow until the matching Exit.
func (t *ExecutionTracer) Enter(stmt Stmt) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.add(&TraceEvent{Kind: EventEnter, Line: stmt.Pos().Line, Target: traceTarget(stmt)})
	t.stack = append(t.stack, id)
	return id
}

// Exit logs the end of the most recently entered statement.
func (t *ExecutionTracer) Exit() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.stack) > 1 {
		t.stack = t.stack[:len(t.stack)-1]
	}
	t.add(&TraceEvent{Kind: EventExit})
}

// Iterate logs a loop variable being bound for the next pass.
func (t *ExecutionTracer) Iterate(variable string, value Value) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.add(&TraceEvent{Kind: EventIter, Arguments: []string{variable + "=" + value.Literal()}})
}

// Error logs a reported diagnostic.
func (t *ExecutionTracer) Error(d *Diagnostic) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.add(&TraceEvent{Kind: EventError, Line: d.Pos.Line, ErrorMessage: d.Msg})
}

// Data packages the events recorded so far.
func (t *ExecutionTracer) Data(program string) *TraceData {
	t.mu.Lock()
	defer t.mu.Unlock()
	return &TraceData{Program: program, Events: append([]*TraceEvent(nil), t.Events...)}
}

// traceTarget describes a statement in one line.  Loops are shown without
// their bodies, whose statements get events of their own.
func traceTarget(stmt Stmt) string {
	switch n := stmt.(type) {
	case *ForRangeStmt:
		return fmt.Sprintf("for %s in %s..%s", n.Variable.Name, n.Start, n.Stop)
	case *ForListStmt:
		items := gfn.Map(n.Items, func(e Expr) string { return e.String() })
		return fmt.Sprintf("for %s in [%s]", n.Variable.Name, strings.Join(items, ", "))
	}
	return stmt.String()
}

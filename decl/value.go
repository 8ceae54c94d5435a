package decl

import (
	"fmt"
	"strconv"
)

// Value wraps a Go value with its type.  A Value with a nil Type is the
// "empty" value produced by an expression that failed to evaluate.
type Value struct {
	Type  *Type
	Value any // int64 or string
}

// EmptyValue is returned by failed evaluations.
var EmptyValue = Value{}

func (r Value) IsEmpty() bool {
	return r.Type == nil
}

func (r Value) IsInt() bool {
	return r.Type != nil && r.Type.Tag == TypeTagInt
}

func (r Value) IsString() bool {
	return r.Type != nil && r.Type.Tag == TypeTagStr
}

// String representation of the runtime value.  Strings are rendered
// without quotes, ints in decimal.
func (r Value) String() string {
	switch {
	case r.IsInt():
		return strconv.FormatInt(r.Value.(int64), 10)
	case r.IsString():
		return r.Value.(string)
	}
	return "<empty>"
}

// Literal renders the value the way it would be written in source.
func (r Value) Literal() string {
	if r.IsString() {
		return strconv.Quote(r.Value.(string))
	}
	return r.String()
}

// --- Custom getter methods
func (r Value) GetInt() (int64, error) {
	if r.IsEmpty() {
		return 0, fmt.Errorf("cannot get Int from empty Value")
	}
	if !r.IsInt() {
		return 0, fmt.Errorf("type mismatch: cannot get Int, value is type %s", r.Type)
	}
	return r.Value.(int64), nil
}

func (r Value) GetString() (string, error) {
	if r.IsEmpty() {
		return "", fmt.Errorf("cannot get String from empty Value")
	}
	if !r.IsString() {
		return "", fmt.Errorf("type mismatch: cannot get String, value is type %s", r.Type)
	}
	return r.Value.(string), nil
}

// IntVal returns the int payload.  Panics if the value is not an Int.
func (r Value) IntVal() int64 {
	return r.Value.(int64)
}

// StringVal returns the string payload.  Panics if the value is not a String.
func (r Value) StringVal() string {
	return r.Value.(string)
}

// Helpers to create specific simple values
func StringValue(val string) Value {
	return Value{Type: StrType, Value: val}
}

func IntValue(val int64) Value {
	return Value{Type: IntType, Value: val}
}

package decl

type TypeTag int

const (
	TypeTagUnknown TypeTag = iota
	TypeTagInt
	TypeTagStr
)

// Type identifies the runtime kind of a Value.  Only two kinds exist and
// both are singletons so they can be compared by pointer.
type Type struct {
	Tag  TypeTag
	Name string
}

var (
	IntType = &Type{Tag: TypeTagInt, Name: "Int"}
	StrType = &Type{Tag: TypeTagStr, Name: "String"}
)

// String representation of the type
func (t *Type) String() string {
	if t == nil {
		return "Empty"
	}
	return t.Name
}

// Equals checks if two types are the same kind.
func (t *Type) Equals(another *Type) bool {
	if t == nil || another == nil {
		return t == another
	}
	return t.Tag == another.Tag
}

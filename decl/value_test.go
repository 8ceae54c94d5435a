package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Int", IntType.String())
	assert.Equal(t, "String", StrType.String())
	var empty *Type
	assert.Equal(t, "Empty", empty.String())
}

func TestTypeEquals(t *testing.T) {
	assert.True(t, IntType.Equals(IntType))
	assert.True(t, IntType.Equals(&Type{Tag: TypeTagInt}))
	assert.False(t, IntType.Equals(StrType))
	assert.False(t, IntType.Equals(nil))
	var empty *Type
	assert.True(t, empty.Equals(nil))
}

func TestValueKinds(t *testing.T) {
	assert.True(t, EmptyValue.IsEmpty())
	assert.False(t, EmptyValue.IsInt())
	assert.False(t, EmptyValue.IsString())

	assert.True(t, IntValue(1).IsInt())
	assert.False(t, IntValue(1).IsString())
	assert.True(t, StringValue("").IsString())
	assert.False(t, StringValue("").IsEmpty())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "-42", IntValue(-42).String())
	assert.Equal(t, "a b", StringValue("a b").String())
	assert.Equal(t, "<empty>", EmptyValue.String())

	assert.Equal(t, `"a\"b\n"`, StringValue("a\"b\n").Literal())
	assert.Equal(t, "7", IntValue(7).Literal())
}

func TestValueGetters(t *testing.T) {
	i, err := IntValue(3).GetInt()
	require.NoError(t, err)
	assert.Equal(t, int64(3), i)

	s, err := StringValue("x").GetString()
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	_, err = StringValue("x").GetInt()
	assert.ErrorContains(t, err, "value is type String")
	_, err = IntValue(1).GetString()
	assert.ErrorContains(t, err, "value is type Int")
	_, err = EmptyValue.GetInt()
	assert.ErrorContains(t, err, "empty Value")

	assert.Panics(t, func() { StringValue("x").IntVal() })
}

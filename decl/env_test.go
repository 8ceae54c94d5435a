package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvSetGet(t *testing.T) {
	env := NewEnv[int](nil)
	_, ok := env.Get("a")
	assert.False(t, ok)

	env.Set("a", 1)
	v, ok := env.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, env.Has("a"))
}

func TestEnvPushShadows(t *testing.T) {
	outer := NewEnv[string](nil)
	outer.Set("x", "outer")
	outer.Set("y", "kept")

	inner := outer.Push()
	inner.Set("x", "inner")

	v, _ := inner.Get("x")
	assert.Equal(t, "inner", v)
	v, _ = inner.Get("y")
	assert.Equal(t, "kept", v)
	v, _ = outer.Get("x")
	assert.Equal(t, "outer", v)

	assert.Equal(t, []string{"x"}, inner.Keys())
	assert.Equal(t, map[string]string{"x": "inner", "y": "kept"}, inner.All())
}

func TestEnvCloneIsIndependent(t *testing.T) {
	base := NewEnv[int](nil)
	base.Set("a", 1)
	layered := base.Push()
	layered.Set("b", 2)

	clone := layered.Clone()
	assert.Equal(t, []string{"a", "b"}, clone.Keys())

	clone.Set("a", 10)
	clone.Set("c", 3)
	v, _ := base.Get("a")
	assert.Equal(t, 1, v)
	assert.False(t, layered.Has("c"))

	base.Set("d", 4)
	assert.False(t, clone.Has("d"))
}

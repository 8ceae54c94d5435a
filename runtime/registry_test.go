package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDeclare(t *testing.T) {
	r := NewRegistry()
	id, err := r.Declare("root", 5)
	require.NoError(t, err)

	node, ok := r.Lookup("root")
	require.True(t, ok)
	assert.Equal(t, id, node.ID)
	assert.Equal(t, "root", node.Name)
	assert.Equal(t, int64(5), node.Weight)
	assert.True(t, node.IsLeaf())
	assert.Equal(t, 1, r.Len())
}

func TestRegistryDeclareDuplicateDoesNotMutate(t *testing.T) {
	r := NewRegistry()
	_, err := r.Declare("a", 1)
	require.NoError(t, err)

	_, err = r.Declare("a", 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateNode)

	node, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), node.Weight)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryAttachChildKeepsOrder(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Declare("root", 0)
	for _, name := range []string{"c1", "c2", "c3"} {
		id, err := r.Declare(name, 1)
		require.NoError(t, err)
		require.NoError(t, r.AttachChild("root", id))
	}

	root, _ := r.Lookup("root")
	require.Len(t, root.Children, 3)
	for i, name := range []string{"c1", "c2", "c3"} {
		assert.Equal(t, name, r.Node(root.Children[i]).Name)
	}
	assert.Equal(t, []string{"root", "c1", "c2", "c3"}, r.Names())
}

func TestRegistryAttachChildMissingParentLeavesOrphan(t *testing.T) {
	r := NewRegistry()
	id, err := r.Declare("orphan", 3)
	require.NoError(t, err)

	err = r.AttachChild("nobody", id)
	assert.ErrorIs(t, err, ErrParentNotFound)

	node, ok := r.Lookup("orphan")
	require.True(t, ok)
	assert.Equal(t, int64(3), node.Weight)
}

func TestRegistryNodeUnknownHandle(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Node(0))
	assert.Nil(t, r.Node(-1))
	_, ok := r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryRender(t *testing.T) {
	r := NewRegistry()
	leaf, _ := r.Declare("leaf", 1)
	assert.Equal(t, "leaf", r.Render(leaf))

	root, _ := r.Declare("root", 5)
	a, _ := r.Declare("a", 1)
	b, _ := r.Declare("b", 1)
	a1, _ := r.Declare("a1", 1)
	a2, _ := r.Declare("a2", 1)
	require.NoError(t, r.AttachChild("root", a))
	require.NoError(t, r.AttachChild("root", b))
	require.NoError(t, r.AttachChild("a", a1))
	require.NoError(t, r.AttachChild("a", a2))

	assert.Equal(t, "root[a[a1, a2], b]", r.Render(root))
	assert.Equal(t, "a[a1, a2]", r.Render(a))
	assert.Equal(t, "b", r.Render(b))
}

package viz

import (
	"testing"

	"github.com/panyam/forest/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRegistry(t *testing.T) *runtime.Registry {
	reg := runtime.NewRegistry()
	_, err := reg.Declare("root", 5)
	require.NoError(t, err)
	for _, c := range []struct {
		name   string
		weight int64
	}{{"a", 2}, {`say "hi"`, 3}} {
		id, err := reg.Declare(c.name, c.weight)
		require.NoError(t, err)
		require.NoError(t, reg.AttachChild("root", id))
	}
	_, err = reg.Declare("orphan", 1)
	require.NoError(t, err)
	return reg
}

func TestFromRegistry(t *testing.T) {
	nodes, edges := FromRegistry(sampleRegistry(t))
	assert.Equal(t, []Node{
		{ID: "n0", Name: "root", Weight: 5, Root: true},
		{ID: "n1", Name: "a", Weight: 2},
		{ID: "n2", Name: `say "hi"`, Weight: 3},
		{ID: "n3", Name: "orphan", Weight: 1, Root: true},
	}, nodes)
	assert.Equal(t, []Edge{
		{FromID: "n0", ToID: "n1", Order: 1},
		{FromID: "n0", ToID: "n2", Order: 2},
	}, edges)
}

func TestDotGenerator(t *testing.T) {
	out, err := Generate("dot", "demo", sampleRegistry(t))
	require.NoError(t, err)
	assert.Equal(t, `digraph "demo" {
  rankdir=TB;
  label="Forest: demo";
  node [shape=box, style=rounded];
  n0 [label="root\n(5)", style="rounded,bold"];
  n1 [label="a\n(2)"];
  n2 [label="say \"hi\"\n(3)"];
  n3 [label="orphan\n(1)", style="rounded,bold"];
  n0 -> n1 [label="1"];
  n0 -> n2 [label="2"];
}
`, out)
}

func TestMermaidGenerator(t *testing.T) {
	out, err := Generate("mermaid", "demo", sampleRegistry(t))
	require.NoError(t, err)
	assert.Equal(t, `graph TD;
  subgraph Forest ["demo"]
    n0["root (5)"];
    n1["a (2)"];
    n2["say #quot;hi#quot; (3)"];
    n3["orphan (1)"];
    n0 --> n1;
    n0 --> n2;
  end
`, out)
}

func TestGenerateUnknownFormat(t *testing.T) {
	_, err := Generate("png", "demo", runtime.NewRegistry())
	assert.ErrorContains(t, err, `unknown diagram format "png"`)
}

func TestEmptyRegistry(t *testing.T) {
	nodes, edges := FromRegistry(runtime.NewRegistry())
	assert.Empty(t, nodes)
	assert.Empty(t, edges)
}

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// editCatalog is a small catalog for exercising the mutation API.
func editCatalog() *Catalog {
	return NewCatalog(
		&NodeDefinition{
			Type:   "source",
			Inputs: nil,
			Outputs: []PortDefinition{
				{ID: "out", Type: Vec3},
				{ID: "aux", Type: Float},
			},
		},
		&NodeDefinition{
			Type: "target",
			Inputs: []PortDefinition{
				{ID: "in", Type: Vec3},
				{ID: "factor", Type: Float},
				{ID: "anything", Type: Any},
			},
		},
	)
}

func TestAddNodeAssignsUniqueIDs(t *testing.T) {
	g := New()
	a := g.AddNode("source", 10, 20)
	b := g.AddNode("source", 0, 0)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 10.0, a.Position.X)
	assert.Same(t, a, g.Node(a.ID))
	assert.Len(t, g.NodesOfType("source"), 2)
}

func TestConnect(t *testing.T) {
	cat := editCatalog()
	g := New()
	src := g.AddNode("source", 0, 0)
	dst := g.AddNode("target", 100, 0)

	c, err := g.Connect(cat, src.ID, "out", dst.ID, "in")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Same(t, c, g.Driver(dst.ID, "in"))
}

func TestConnectRejectsIncompatibleTypes(t *testing.T) {
	cat := editCatalog()
	g := New()
	src := g.AddNode("source", 0, 0)
	dst := g.AddNode("target", 0, 0)

	_, err := g.Connect(cat, src.ID, "out", dst.ID, "factor")
	assert.ErrorIs(t, err, ErrIncompatible)

	// The wildcard input accepts anything.
	_, err = g.Connect(cat, src.ID, "out", dst.ID, "anything")
	assert.NoError(t, err)
	_, err = g.Connect(cat, src.ID, "aux", dst.ID, "anything")
	assert.NoError(t, err)
}

func TestConnectRejectsUnknownEndpoints(t *testing.T) {
	cat := editCatalog()
	g := New()
	src := g.AddNode("source", 0, 0)
	dst := g.AddNode("target", 0, 0)

	_, err := g.Connect(cat, "ghost", "out", dst.ID, "in")
	assert.ErrorIs(t, err, ErrNodeNotFound)

	_, err = g.Connect(cat, src.ID, "nope", dst.ID, "in")
	assert.ErrorIs(t, err, ErrPortNotFound)

	_, err = g.Connect(cat, src.ID, "out", dst.ID, "nope")
	assert.ErrorIs(t, err, ErrPortNotFound)

	// Connecting output-to-output or input-to-input is a port error.
	_, err = g.Connect(cat, dst.ID, "in", src.ID, "out")
	assert.ErrorIs(t, err, ErrPortNotFound)
}

func TestConnectReplacesExistingDriver(t *testing.T) {
	cat := editCatalog()
	g := New()
	first := g.AddNode("source", 0, 0)
	second := g.AddNode("source", 0, 0)
	dst := g.AddNode("target", 0, 0)

	c1, err := g.Connect(cat, first.ID, "out", dst.ID, "in")
	require.NoError(t, err)
	c2, err := g.Connect(cat, second.ID, "out", dst.ID, "in")
	require.NoError(t, err)

	// The input keeps exactly one driver.
	assert.Len(t, g.Connections, 1)
	assert.Same(t, c2, g.Driver(dst.ID, "in"))
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestConnectAllowsFanOut(t *testing.T) {
	cat := editCatalog()
	g := New()
	src := g.AddNode("source", 0, 0)
	d1 := g.AddNode("target", 0, 0)
	d2 := g.AddNode("target", 0, 0)

	_, err := g.Connect(cat, src.ID, "out", d1.ID, "in")
	require.NoError(t, err)
	_, err = g.Connect(cat, src.ID, "out", d2.ID, "in")
	require.NoError(t, err)
	assert.Len(t, g.Connections, 2)
}

func TestRemoveNodeDropsConnections(t *testing.T) {
	cat := editCatalog()
	g := New()
	src := g.AddNode("source", 0, 0)
	dst := g.AddNode("target", 0, 0)
	_, err := g.Connect(cat, src.ID, "out", dst.ID, "in")
	require.NoError(t, err)

	g.RemoveNode(src.ID)
	assert.Nil(t, g.Node(src.ID))
	assert.Empty(t, g.Connections)
}

func TestDisconnect(t *testing.T) {
	cat := editCatalog()
	g := New()
	src := g.AddNode("source", 0, 0)
	dst := g.AddNode("target", 0, 0)
	c, err := g.Connect(cat, src.ID, "out", dst.ID, "in")
	require.NoError(t, err)

	g.Disconnect(c.ID)
	assert.Nil(t, g.Driver(dst.ID, "in"))

	// Disconnecting an unknown ID is a no-op.
	g.Disconnect("ghost")
}

func TestSetLiteral(t *testing.T) {
	n := &Node{ID: "n", Type: "target"}
	n.SetLiteral("factor", Scalar(2.5))
	n.SetLiteral("anything", Raw("3"))

	assert.Equal(t, Scalar(2.5), n.Literals["factor"])
	assert.Equal(t, Raw("3"), n.Literals["anything"])
}

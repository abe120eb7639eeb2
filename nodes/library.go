package nodes

import (
	"github.com/gogpu/shadergraph/glsl"
	"github.com/gogpu/shadergraph/graph"
)

// Well-known node types and pins, aliased from the stage assembler's
// renderer contract.
const (
	// TypeOutput is the designated sink node type. It is host-only: the
	// compiler anchors each stage's traversal at one of its input pins
	// and never emits the node itself.
	TypeOutput = glsl.SinkNodeType

	// PinOffset is the vertex-displacement root pin on the output node.
	PinOffset = glsl.VertexRootPin

	// PinColor is the fragment-color root pin on the output node.
	PinColor = glsl.FragmentRootPin
)

// Library builds the built-in catalog. Each call returns a fresh value so
// callers can hold isolated catalogs.
func Library() *graph.Catalog {
	defs := []*graph.NodeDefinition{
		{
			Type: TypeOutput,
			Name: "Output",
			Inputs: []graph.PortDefinition{
				{ID: PinOffset, Name: "Vertex Offset", Type: graph.Vec3},
				{ID: PinColor, Name: "Color", Type: graph.Vec3},
			},
			// No Generate: the sink contributes no statement of its own.
		},
		{
			Type: "comment",
			Name: "Comment",
			Inputs: []graph.PortDefinition{
				{ID: "attach", Name: "Attach", Type: graph.Any},
			},
			// Host-only editor annotation, invisible to the shader.
		},
	}
	defs = append(defs, inputDefs()...)
	defs = append(defs, vectorDefs()...)
	defs = append(defs, mathDefs()...)
	defs = append(defs, noiseDefs()...)
	return graph.NewCatalog(defs...)
}

// arg returns the resolved expression for an input port, or the rule's own
// default when the port is unconnected and has no literal.
func arg(inputs map[string]string, id, fallback string) string {
	if v := inputs[id]; v != "" {
		return v
	}
	return fallback
}

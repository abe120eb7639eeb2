package nodes

import (
	"fmt"

	"github.com/gogpu/shadergraph/graph"
)

// vectorDefs returns the value construction and decomposition nodes.
func vectorDefs() []*graph.NodeDefinition {
	return []*graph.NodeDefinition{
		{
			Type: "float",
			Name: "Float",
			Inputs: []graph.PortDefinition{
				{ID: "value", Name: "Value", Type: graph.Float},
			},
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Value", Type: graph.Float},
			},
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("float %s = %s;", outVar, arg(in, "value", "0.0"))}
			},
		},
		{
			Type: "vec2",
			Name: "Vector 2",
			Inputs: []graph.PortDefinition{
				{ID: "x", Name: "X", Type: graph.Float},
				{ID: "y", Name: "Y", Type: graph.Float},
			},
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Vector", Type: graph.Vec2},
			},
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("vec2 %s = vec2(%s, %s);",
					outVar, arg(in, "x", "0.0"), arg(in, "y", "0.0"))}
			},
		},
		{
			Type: "vec3",
			Name: "Vector 3",
			Inputs: []graph.PortDefinition{
				{ID: "x", Name: "X", Type: graph.Float},
				{ID: "y", Name: "Y", Type: graph.Float},
				{ID: "z", Name: "Z", Type: graph.Float},
			},
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Vector", Type: graph.Vec3},
			},
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("vec3 %s = vec3(%s, %s, %s);",
					outVar, arg(in, "x", "0.0"), arg(in, "y", "0.0"), arg(in, "z", "0.0"))}
			},
		},
		{
			Type: "decompose",
			Name: "Decompose",
			Inputs: []graph.PortDefinition{
				{ID: "v", Name: "Vector", Type: graph.Vec3},
			},
			Outputs: []graph.PortDefinition{
				{ID: "x", Name: "X", Type: graph.Float},
				{ID: "y", Name: "Y", Type: graph.Float},
				{ID: "z", Name: "Z", Type: graph.Float},
			},
			// Downstream references are suffixed per consumed output:
			// a decompose bound to n_s is read as n_s_x, n_s_y, n_s_z.
			SuffixOutputs: true,
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				v := arg(in, "v", "vec3(0.0)")
				return graph.Emit{Statement: fmt.Sprintf(
					"float %[1]s_x = %[2]s.x;\nfloat %[1]s_y = %[2]s.y;\nfloat %[1]s_z = %[2]s.z;",
					outVar, v)}
			},
		},
	}
}

package nodes

import (
	"fmt"

	"github.com/gogpu/shadergraph/graph"
)

// inputDefs returns the geometry and environment input nodes. They read
// the stage-neutral local_* aliases and the fixed uniforms declared by the
// stage templates, so the same node compiles in either stage.
func inputDefs() []*graph.NodeDefinition {
	return []*graph.NodeDefinition{
		{
			Type: "position",
			Name: "Position",
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Position", Type: graph.Vec3},
			},
			Generate: func(_ map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("vec3 %s = local_position;", outVar)}
			},
		},
		{
			Type: "normal",
			Name: "Normal",
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Normal", Type: graph.Vec3},
			},
			Generate: func(_ map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("vec3 %s = local_normal;", outVar)}
			},
		},
		{
			Type: "uv",
			Name: "UV",
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "UV", Type: graph.Vec2},
			},
			Generate: func(_ map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("vec2 %s = local_uv;", outVar)}
			},
		},
		{
			Type: "time",
			Name: "Time",
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Seconds", Type: graph.Float},
			},
			Generate: func(_ map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("float %s = u_time;", outVar)}
			},
		},
	}
}

package nodes

import (
	"fmt"

	"github.com/gogpu/shadergraph/graph"
)

// Shared helper functions required by the noise node. They are emitted at
// most once per stage regardless of how many noise instances the graph
// holds; deduplication is keyed on content.
const (
	hashHelper = `float sg_hash(vec2 p) {
    return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453123);
}`

	noiseHelper = `float sg_noise(vec2 p) {
    vec2 i = floor(p);
    vec2 f = fract(p);
    vec2 u = f * f * (3.0 - 2.0 * f);
    float a = sg_hash(i);
    float b = sg_hash(i + vec2(1.0, 0.0));
    float c = sg_hash(i + vec2(0.0, 1.0));
    float d = sg_hash(i + vec2(1.0, 1.0));
    return mix(mix(a, b, u.x), mix(c, d, u.x), u.y);
}`
)

func noiseDefs() []*graph.NodeDefinition {
	return []*graph.NodeDefinition{
		{
			Type: "noise",
			Name: "Value Noise",
			Inputs: []graph.PortDefinition{
				{ID: "p", Name: "Point", Type: graph.Vec2},
			},
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Noise", Type: graph.Float},
			},
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{
					Statement: fmt.Sprintf("float %s = sg_noise(%s);", outVar, arg(in, "p", "local_uv")),
					Helpers:   []string{hashHelper, noiseHelper},
				}
			},
		},
	}
}

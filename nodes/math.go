package nodes

import (
	"fmt"

	"github.com/gogpu/shadergraph/graph"
)

// binaryVec3 builds an arithmetic node over two Vec3 operands.
func binaryVec3(nodeType, name, op, fallback string) *graph.NodeDefinition {
	return &graph.NodeDefinition{
		Type: nodeType,
		Name: name,
		Inputs: []graph.PortDefinition{
			{ID: "a", Name: "A", Type: graph.Vec3},
			{ID: "b", Name: "B", Type: graph.Vec3},
		},
		Outputs: []graph.PortDefinition{
			{ID: "out", Name: "Result", Type: graph.Vec3},
		},
		Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
			return graph.Emit{Statement: fmt.Sprintf("vec3 %s = %s %s %s;",
				outVar, arg(in, "a", fallback), op, arg(in, "b", fallback))}
		},
	}
}

// unaryFloat builds a componentless math node over one scalar operand.
func unaryFloat(nodeType, name, fn string) *graph.NodeDefinition {
	return &graph.NodeDefinition{
		Type: nodeType,
		Name: name,
		Inputs: []graph.PortDefinition{
			{ID: "x", Name: "X", Type: graph.Float},
		},
		Outputs: []graph.PortDefinition{
			{ID: "out", Name: "Result", Type: graph.Float},
		},
		Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
			return graph.Emit{Statement: fmt.Sprintf("float %s = %s(%s);",
				outVar, fn, arg(in, "x", "0.0"))}
		},
	}
}

func mathDefs() []*graph.NodeDefinition {
	return []*graph.NodeDefinition{
		binaryVec3("add", "Add", "+", "vec3(0.0)"),
		binaryVec3("subtract", "Subtract", "-", "vec3(0.0)"),
		binaryVec3("multiply", "Multiply", "*", "vec3(1.0)"),
		binaryVec3("divide", "Divide", "/", "vec3(1.0)"),

		unaryFloat("sin", "Sine", "sin"),
		unaryFloat("cos", "Cosine", "cos"),
		unaryFloat("floor", "Floor", "floor"),
		unaryFloat("fract", "Fract", "fract"),

		{
			Type: "power",
			Name: "Power",
			Inputs: []graph.PortDefinition{
				{ID: "base", Name: "Base", Type: graph.Float},
				{ID: "exponent", Name: "Exponent", Type: graph.Float},
			},
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Result", Type: graph.Float},
			},
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("float %s = pow(%s, %s);",
					outVar, arg(in, "base", "0.0"), arg(in, "exponent", "1.0"))}
			},
		},
		{
			Type: "scale",
			Name: "Scale",
			Inputs: []graph.PortDefinition{
				{ID: "v", Name: "Vector", Type: graph.Vec3},
				{ID: "factor", Name: "Factor", Type: graph.Float},
			},
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Result", Type: graph.Vec3},
			},
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("vec3 %s = %s * %s;",
					outVar, arg(in, "v", "vec3(0.0)"), arg(in, "factor", "1.0"))}
			},
		},
		{
			Type: "mix",
			Name: "Mix",
			Inputs: []graph.PortDefinition{
				{ID: "a", Name: "A", Type: graph.Vec3},
				{ID: "b", Name: "B", Type: graph.Vec3},
				{ID: "t", Name: "Factor", Type: graph.Float},
			},
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Result", Type: graph.Vec3},
			},
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("vec3 %s = mix(%s, %s, %s);",
					outVar, arg(in, "a", "vec3(0.0)"), arg(in, "b", "vec3(1.0)"), arg(in, "t", "0.5"))}
			},
		},
		{
			Type: "clamp",
			Name: "Clamp",
			Inputs: []graph.PortDefinition{
				{ID: "v", Name: "Vector", Type: graph.Vec3},
				{ID: "min", Name: "Min", Type: graph.Float},
				{ID: "max", Name: "Max", Type: graph.Float},
			},
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Result", Type: graph.Vec3},
			},
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("vec3 %s = clamp(%s, %s, %s);",
					outVar, arg(in, "v", "vec3(0.0)"), arg(in, "min", "0.0"), arg(in, "max", "1.0"))}
			},
		},
		{
			Type: "dot",
			Name: "Dot Product",
			Inputs: []graph.PortDefinition{
				{ID: "a", Name: "A", Type: graph.Vec3},
				{ID: "b", Name: "B", Type: graph.Vec3},
			},
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Result", Type: graph.Float},
			},
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("float %s = dot(%s, %s);",
					outVar, arg(in, "a", "vec3(0.0)"), arg(in, "b", "vec3(0.0)"))}
			},
		},
		{
			Type: "length",
			Name: "Length",
			Inputs: []graph.PortDefinition{
				{ID: "v", Name: "Vector", Type: graph.Vec3},
			},
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Length", Type: graph.Float},
			},
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("float %s = length(%s);",
					outVar, arg(in, "v", "vec3(0.0)"))}
			},
		},
		{
			Type: "normalize",
			Name: "Normalize",
			Inputs: []graph.PortDefinition{
				{ID: "v", Name: "Vector", Type: graph.Vec3},
			},
			Outputs: []graph.PortDefinition{
				{ID: "out", Name: "Result", Type: graph.Vec3},
			},
			Generate: func(in map[string]string, outVar string, _ *graph.Node) graph.Emit {
				return graph.Emit{Statement: fmt.Sprintf("vec3 %s = normalize(%s);",
					outVar, arg(in, "v", "vec3(0.0, 0.0, 1.0)"))}
			},
		},
	}
}

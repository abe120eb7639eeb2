// Package shadergraph compiles user-authored node graphs into shader
// source for a two-stage rasterization pipeline.
//
// A graph is a set of typed nodes and directed connections (see the graph
// package). Compilation anchors at two named input pins of the designated
// sink node — one for the vertex-displacement stage, one for the
// fragment-color stage — walks each stage's reachable sub-graph in
// dependency order, and assembles the emitted statements into GLSL ES 3.00
// sources with a fixed uniform/varying contract.
//
// Example:
//
//	g := graph.New()
//	cat := nodes.Library()
//	out := g.AddNode(nodes.TypeOutput, 0, 0)
//	t := g.AddNode("time", -200, 0)
//	s := g.AddNode("sin", -100, 0)
//	g.Connect(cat, t.ID, "out", s.ID, "x")
//	// ... route s into a vec3 and onto out's color pin ...
//	src, err := shadergraph.Compile(g)
//
// The compiler is a pure function of its snapshot: it holds no state
// between calls and is safe to invoke concurrently over independent
// graphs.
package shadergraph

import (
	"fmt"

	"github.com/gogpu/shadergraph/glsl"
	"github.com/gogpu/shadergraph/graph"
	"github.com/gogpu/shadergraph/nodes"
)

// CompileOptions configures compilation.
type CompileOptions struct {
	// Catalog is the node-type table. Nil selects the built-in library.
	Catalog *graph.Catalog

	// GLSL configures the stage assembler.
	GLSL glsl.Options
}

// DefaultOptions returns sensible default options.
func DefaultOptions() CompileOptions {
	return CompileOptions{GLSL: glsl.DefaultOptions()}
}

// Compile compiles a graph with the built-in node library and the default
// stage templates.
//
// It returns (nil, nil) when the graph has no sink node; an undriven root
// pin on a present sink still compiles using the stage's documented
// sentinel. The only error condition is a dependency cycle reachable from
// a root pin.
func Compile(g *graph.Graph) (*glsl.ShaderSource, error) {
	return CompileWithOptions(g, DefaultOptions())
}

// CompileWithOptions compiles a graph with custom options.
func CompileWithOptions(g *graph.Graph, opts CompileOptions) (*glsl.ShaderSource, error) {
	cat := opts.Catalog
	if cat == nil {
		cat = nodes.Library()
	}
	return glsl.Compile(g, cat, opts.GLSL)
}

// Validate runs the structural checks over a graph, resolving a nil
// catalog to the built-in library. On top of the model-level checks it
// flags surplus sink nodes: compilation anchors at the first one and the
// rest are dead weight. Findings are editor diagnostics; none of them
// block compilation.
func Validate(g *graph.Graph, cat *graph.Catalog) []graph.Issue {
	if cat == nil {
		cat = nodes.Library()
	}
	issues := graph.Validate(g, cat)
	if sinks := g.NodesOfType(nodes.TypeOutput); len(sinks) > 1 {
		for _, n := range sinks[1:] {
			issues = append(issues, graph.Issue{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("extra %q node; only the first anchors compilation", nodes.TypeOutput),
				Severity: graph.SeverityWarning,
			})
		}
	}
	return issues
}

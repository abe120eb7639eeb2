// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/shadergraph/codegen"
	"github.com/gogpu/shadergraph/graph"
)

// Options configures stage assembly.
type Options struct {
	// SinkType is the node type designated as the graph's sink.
	// Defaults to SinkNodeType if empty.
	SinkType string

	// Vertex and Fragment override the built-in stage templates. Nil
	// selects VertexStage and FragmentStage.
	Vertex   *StageSpec
	Fragment *StageSpec
}

// DefaultOptions returns the renderer-contract defaults.
func DefaultOptions() Options {
	return Options{SinkType: SinkNodeType}
}

// ShaderSource is the compiled pair of stage sources.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// Compile assembles both stage sources from a graph snapshot.
//
// It returns (nil, nil) when the graph holds no sink node at all. A sink
// present with undriven root pins still compiles: each stage falls back to
// its sentinel expression. The only returnable error is a dependency cycle
// reachable from a root pin, reported as a wrapped *codegen.CycleError.
func Compile(g *graph.Graph, cat *graph.Catalog, options Options) (*ShaderSource, error) {
	if options.SinkType == "" {
		options.SinkType = SinkNodeType
	}
	vertexSpec := VertexStage
	if options.Vertex != nil {
		vertexSpec = *options.Vertex
	}
	fragmentSpec := FragmentStage
	if options.Fragment != nil {
		fragmentSpec = *options.Fragment
	}

	var sink *graph.Node
	for _, n := range g.Nodes {
		if n.Type == options.SinkType {
			sink = n
			break
		}
	}
	if sink == nil {
		return nil, nil
	}

	vertex, err := compileStage(g, cat, sink, vertexSpec)
	if err != nil {
		return nil, err
	}
	fragment, err := compileStage(g, cat, sink, fragmentSpec)
	if err != nil {
		return nil, err
	}
	return &ShaderSource{Vertex: vertex, Fragment: fragment}, nil
}

func compileStage(g *graph.Graph, cat *graph.Catalog, sink *graph.Node, spec StageSpec) (string, error) {
	res, err := codegen.Generate(g, cat, sink, spec.RootPin)
	if err != nil {
		return "", fmt.Errorf("glsl: %s stage: %w", spec.Name, err)
	}
	return Assemble(spec, res), nil
}

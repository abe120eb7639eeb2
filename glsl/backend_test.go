// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shadergraph/codegen"
	"github.com/gogpu/shadergraph/glsl"
	"github.com/gogpu/shadergraph/graph"
	"github.com/gogpu/shadergraph/nodes"
)

func node(id, typ string) *graph.Node {
	return &graph.Node{ID: id, Type: typ}
}

func conn(fromNode, fromPort, toNode, toPort string) *graph.Connection {
	return &graph.Connection{
		ID:       fromNode + ">" + toNode,
		FromNode: fromNode,
		FromPort: fromPort,
		ToNode:   toNode,
		ToPort:   toPort,
	}
}

func TestCompileNoSink(t *testing.T) {
	g := &graph.Graph{Nodes: []*graph.Node{node("f", "float")}}
	src, err := glsl.Compile(g, nodes.Library(), glsl.DefaultOptions())
	require.NoError(t, err)
	assert.Nil(t, src)
}

func TestCompileSentinels(t *testing.T) {
	g := &graph.Graph{Nodes: []*graph.Node{node("out", nodes.TypeOutput)}}
	src, err := glsl.Compile(g, nodes.Library(), glsl.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, src)

	assert.Contains(t, src.Vertex, "vec3 displaced = a_position + vec3(0.0);")
	assert.Contains(t, src.Fragment, "vec3 color = vec3(1.0, 0.0, 1.0);")
}

func TestCompileContractDeclarations(t *testing.T) {
	g := &graph.Graph{Nodes: []*graph.Node{node("out", nodes.TypeOutput)}}
	src, err := glsl.Compile(g, nodes.Library(), glsl.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, src)

	for _, decl := range []string{
		"in vec3 a_position;",
		"uniform mat4 u_model;",
		"uniform mat4 u_view;",
		"uniform mat4 u_projection;",
		"uniform float u_time;",
		"out vec3 v_normal;",
	} {
		assert.Contains(t, src.Vertex, decl)
	}
	for _, decl := range []string{
		"uniform float u_selected;",
		"uniform float u_objectIndex;",
		"uniform float u_debugNormals;",
		"layout(location = 0) out vec4 fragColor;",
		"layout(location = 1) out vec4 objectId;",
	} {
		assert.Contains(t, src.Fragment, decl)
	}
	assert.True(t, strings.HasPrefix(src.Vertex, "#version 300 es\n"))
	assert.True(t, strings.HasPrefix(src.Fragment, "#version 300 es\n"))
}

func TestCompileStageIsolation(t *testing.T) {
	g := &graph.Graph{
		Nodes: []*graph.Node{
			node("out", nodes.TypeOutput),
			node("vx", "vec3"),
			node("vf", "vec3"),
		},
		Connections: []*graph.Connection{
			conn("vx", "out", "out", nodes.PinOffset),
			conn("vf", "out", "out", nodes.PinColor),
		},
	}
	src, err := glsl.Compile(g, nodes.Library(), glsl.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, src)

	assert.Contains(t, src.Vertex, "n_vx")
	assert.NotContains(t, src.Vertex, "n_vf")
	assert.Contains(t, src.Fragment, "n_vf")
	assert.NotContains(t, src.Fragment, "n_vx")
}

func TestCompileDeterministic(t *testing.T) {
	build := func(reversed bool) *graph.Graph {
		ns := []*graph.Node{
			node("out", nodes.TypeOutput),
			node("t", "time"),
			node("s", "sin"),
			node("v", "vec3"),
		}
		cs := []*graph.Connection{
			conn("t", "out", "s", "x"),
			conn("s", "out", "v", "x"),
			conn("s", "out", "v", "y"),
			conn("v", "out", "out", nodes.PinColor),
			conn("v", "out", "out", nodes.PinOffset),
		}
		if reversed {
			for i, j := 0, len(ns)-1; i < j; i, j = i+1, j-1 {
				ns[i], ns[j] = ns[j], ns[i]
			}
			for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
				cs[i], cs[j] = cs[j], cs[i]
			}
		}
		return &graph.Graph{Nodes: ns, Connections: cs}
	}

	a, err := glsl.Compile(build(false), nodes.Library(), glsl.DefaultOptions())
	require.NoError(t, err)
	b, err := glsl.Compile(build(true), nodes.Library(), glsl.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a.Vertex, b.Vertex)
	assert.Equal(t, a.Fragment, b.Fragment)
}

func TestCompileLiteralFlow(t *testing.T) {
	f := node("f", "float")
	f.SetLiteral("value", graph.Scalar(2))
	g := &graph.Graph{
		Nodes: []*graph.Node{node("out", nodes.TypeOutput), f, node("v", "vec3")},
		Connections: []*graph.Connection{
			conn("f", "out", "v", "x"),
			conn("v", "out", "out", nodes.PinColor),
		},
	}
	src, err := glsl.Compile(g, nodes.Library(), glsl.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, src)

	assert.Contains(t, src.Fragment, "float n_f = 2.0;")
	assert.Contains(t, src.Fragment, "vec3 n_v = vec3(n_f, 0.0, 0.0);")
	assert.Contains(t, src.Fragment, "vec3 color = n_v;")
}

func TestCompileCycle(t *testing.T) {
	g := &graph.Graph{
		Nodes: []*graph.Node{
			node("out", nodes.TypeOutput),
			node("a", "add"),
			node("b", "add"),
		},
		Connections: []*graph.Connection{
			conn("a", "out", "b", "a"),
			conn("b", "out", "a", "a"),
			conn("a", "out", "out", nodes.PinColor),
		},
	}
	src, err := glsl.Compile(g, nodes.Library(), glsl.DefaultOptions())
	require.Error(t, err)
	assert.Nil(t, src)

	var cycle *codegen.CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Contains(t, err.Error(), "fragment stage")
}

func TestCompileHelpersOnce(t *testing.T) {
	g := &graph.Graph{
		Nodes: []*graph.Node{
			node("out", nodes.TypeOutput),
			node("n1", "noise"),
			node("n2", "noise"),
			node("v", "vec3"),
		},
		Connections: []*graph.Connection{
			conn("n1", "out", "v", "x"),
			conn("n2", "out", "v", "y"),
			conn("v", "out", "out", nodes.PinColor),
		},
	}
	src, err := glsl.Compile(g, nodes.Library(), glsl.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, src)

	assert.Equal(t, 1, strings.Count(src.Fragment, "float sg_noise(vec2 p) {"))
	assert.Equal(t, 1, strings.Count(src.Fragment, "float sg_hash(vec2 p) {"))
	assert.Less(t,
		strings.Index(src.Fragment, "float sg_hash(vec2 p) {"),
		strings.Index(src.Fragment, "void main() {"))

	// Nothing reaches the vertex root, so no helper leaks there.
	assert.NotContains(t, src.Vertex, "sg_noise")
}

func TestCompileStageSpecOverride(t *testing.T) {
	custom := glsl.StageSpec{
		Name:         "fragment",
		RootPin:      glsl.FragmentRootPin,
		Sentinel:     "vec3(0.5)",
		OutputAssign: "vec3 shade = %s;",
	}
	options := glsl.DefaultOptions()
	options.Fragment = &custom

	g := &graph.Graph{Nodes: []*graph.Node{node("out", nodes.TypeOutput)}}
	src, err := glsl.Compile(g, nodes.Library(), options)
	require.NoError(t, err)
	require.NotNil(t, src)

	assert.Contains(t, src.Fragment, "vec3 shade = vec3(0.5);")
	assert.NotContains(t, src.Fragment, "fragColor")
}

func TestCompileZeroOptions(t *testing.T) {
	g := &graph.Graph{Nodes: []*graph.Node{node("out", nodes.TypeOutput)}}
	src, err := glsl.Compile(g, nodes.Library(), glsl.Options{})
	require.NoError(t, err)
	require.NotNil(t, src)
}

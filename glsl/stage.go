// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// Root designation: compilation anchors at named input pins of the sink
// node, one per stage.
const (
	// SinkNodeType is the node type the assembler searches for.
	SinkNodeType = "output"

	// VertexRootPin anchors the vertex-displacement stage.
	VertexRootPin = "offset"

	// FragmentRootPin anchors the fragment-color stage.
	FragmentRootPin = "color"
)

// StageSpec describes one stage's fixed template. The assembler is
// parameterized by it; the two built-in specs below are the renderer
// contract.
type StageSpec struct {
	// Name identifies the stage in error messages.
	Name string

	// RootPin is the sink input pin anchoring this stage's traversal.
	RootPin string

	// Declarations are the attribute/varying/uniform/output lines
	// emitted after the version and precision directives. They are
	// fixed: never derived from the graph.
	Declarations []string

	// Prologue opens the entry point body with the stage-neutral
	// aliases node rules reference (local_position, local_normal,
	// local_uv).
	Prologue []string

	// Sentinel is substituted for the root expression when the root pin
	// has no driver, keeping the stage compiling with a conspicuous
	// fallback.
	Sentinel string

	// OutputAssign is the designated output assignment; its single %s
	// slot receives the root expression or the sentinel.
	OutputAssign string

	// Epilogue closes the entry point with the stage's fixed-function
	// steps. Lines carry their own inner indentation.
	Epilogue []string
}

// VertexStage is the vertex-displacement stage template. The graph result
// is a displacement added to the model-space position.
var VertexStage = StageSpec{
	Name:    "vertex",
	RootPin: VertexRootPin,
	Declarations: []string{
		"in vec3 a_position;",
		"in vec3 a_normal;",
		"in vec2 a_uv;",
		"",
		"uniform mat4 u_model;",
		"uniform mat4 u_view;",
		"uniform mat4 u_projection;",
		"uniform float u_time;",
		"",
		"out vec3 v_position;",
		"out vec3 v_normal;",
		"out vec2 v_uv;",
	},
	Prologue: []string{
		"vec3 local_position = a_position;",
		"vec3 local_normal = a_normal;",
		"vec2 local_uv = a_uv;",
	},
	Sentinel:     "vec3(0.0)",
	OutputAssign: "vec3 displaced = a_position + %s;",
	Epilogue: []string{
		"v_position = (u_model * vec4(displaced, 1.0)).xyz;",
		"v_normal = mat3(u_model) * a_normal;",
		"v_uv = a_uv;",
		"gl_Position = u_projection * u_view * u_model * vec4(displaced, 1.0);",
	},
}

// FragmentStage is the fragment-color stage template. After the graph
// color is bound it applies two fixed non-graph steps: the normal
// visualization override and the selection highlight blend, then writes
// the two render targets. The magenta sentinel makes an unconnected color
// pin impossible to mistake for a real material.
var FragmentStage = StageSpec{
	Name:    "fragment",
	RootPin: FragmentRootPin,
	Declarations: []string{
		"in vec3 v_position;",
		"in vec3 v_normal;",
		"in vec2 v_uv;",
		"",
		"uniform float u_time;",
		"uniform float u_selected;",
		"uniform float u_objectIndex;",
		"uniform float u_debugNormals;",
		"",
		"layout(location = 0) out vec4 fragColor;",
		"layout(location = 1) out vec4 objectId;",
	},
	Prologue: []string{
		"vec3 local_position = v_position;",
		"vec3 local_normal = normalize(v_normal);",
		"vec2 local_uv = v_uv;",
	},
	Sentinel:     "vec3(1.0, 0.0, 1.0)",
	OutputAssign: "vec3 color = %s;",
	Epilogue: []string{
		"if (u_debugNormals > 0.5) {",
		"    color = local_normal * 0.5 + 0.5;",
		"}",
		"if (u_selected > 0.5) {",
		"    color = mix(color, vec3(1.0, 0.6, 0.1), 0.3);",
		"}",
		"fragColor = vec4(color, 1.0);",
		"objectId = vec4(vec3(u_objectIndex / 255.0), 1.0);",
	},
}

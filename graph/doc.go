// Package graph defines the shader graph data model: typed ports, node and
// connection records, the immutable node catalog, and editing-time helpers
// for mutating a graph under the single-driver and port-compatibility rules.
//
// The compiler packages (codegen, glsl) treat a Graph as a read-only
// snapshot; all mutation happens here, driven by the (external) editor.
package graph

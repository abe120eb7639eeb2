// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"github.com/gogpu/shadergraph/graph"
)

// Result is the output of one stage's generation pass.
type Result struct {
	// Statements are the emitted statements in dependency-first order,
	// one (possibly multi-line) entry per emitted node.
	Statements []string

	// Helpers are the stage-global helper functions required by the
	// emitted statements, deduplicated by content, in first-need order.
	Helpers []string

	// RootExpr is the expression the stage template binds to its output
	// slot. Empty when the root pin has no driver; the assembler then
	// substitutes the stage's sentinel.
	RootExpr string
}

// Empty reports whether the pass emitted nothing at all.
func (r Result) Empty() bool {
	return r.RootExpr == "" && len(r.Statements) == 0
}

// visitState tracks the three-phase walk used for cycle detection. A node
// is in-progress while its inputs are being resolved; re-entering an
// in-progress node means the graph cycles through it.
type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	done
)

// walker holds the per-call generation state. A fresh walker is built for
// every Generate call; nothing is shared between invocations, so
// concurrent compiles over independent snapshots are safe.
type walker struct {
	cat   *graph.Catalog
	byID  map[string]*graph.Node
	edges map[[2]string]*graph.Connection // (toNode, toPort) -> first-seen driver

	visited    map[string]visitState
	names      map[string]string
	statements []string
	helpers    []string
	helperSeen map[string]struct{}
}

func newWalker(g *graph.Graph, cat *graph.Catalog) *walker {
	w := &walker{
		cat:        cat,
		byID:       make(map[string]*graph.Node, len(g.Nodes)),
		edges:      make(map[[2]string]*graph.Connection, len(g.Connections)),
		visited:    make(map[string]visitState),
		names:      make(map[string]string),
		helperSeen: make(map[string]struct{}),
	}
	for _, n := range g.Nodes {
		if _, dup := w.byID[n.ID]; !dup {
			w.byID[n.ID] = n
		}
	}
	// Only the first-seen driver of an input is honored; a well-formed
	// graph never holds a second one.
	for _, c := range g.Connections {
		key := [2]string{c.ToNode, c.ToPort}
		if _, dup := w.edges[key]; !dup {
			w.edges[key] = c
		}
	}
	return w
}

// Generate runs one stage's pass: it anchors the walk at the connection
// terminating at (sink, rootPin) and emits the reachable sub-graph in
// dependency-first order. An undriven root pin yields an empty Result and
// no error. The only returnable error is *CycleError.
func Generate(g *graph.Graph, cat *graph.Catalog, sink *graph.Node, rootPin string) (Result, error) {
	if sink == nil {
		return Result{}, nil
	}
	w := newWalker(g, cat)

	sinkDef, ok := cat.Lookup(sink.Type)
	if !ok {
		return Result{}, nil
	}
	pin, ok := sinkDef.Input(rootPin)
	if !ok {
		return Result{}, nil
	}
	if w.edges[[2]string{sink.ID, rootPin}] == nil {
		return Result{}, nil
	}

	expr, err := w.resolveInput(sink, pin)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Statements: w.statements,
		Helpers:    w.helpers,
		RootExpr:   expr,
	}, nil
}

// resolveInput produces the expression for one declared input port:
// the driving connection's upstream binding if one exists, else the node's
// literal for the port, else the empty unset marker. Broken upstream
// references and host-only upstream nodes resolve to the port's zero
// value; they are never surfaced as errors.
func (w *walker) resolveInput(n *graph.Node, port graph.PortDefinition) (string, error) {
	if c := w.edges[[2]string{n.ID, port.ID}]; c != nil {
		up, ok := w.byID[c.FromNode]
		if !ok {
			return zeroExpr(port.Type), nil
		}
		upDef, ok := w.cat.Lookup(up.Type)
		if !ok || upDef.Generate == nil {
			return zeroExpr(port.Type), nil
		}
		if _, ok := upDef.Output(c.FromPort); !ok {
			// The edge originates from an output the upstream type never
			// declares; no statement would ever bind that name.
			return zeroExpr(port.Type), nil
		}
		if err := w.emit(up, upDef); err != nil {
			return "", err
		}
		name := w.names[up.ID]
		if upDef.SuffixOutputs {
			// Multi-output bindings are read per consumed port, e.g.
			// n_split_x rather than n_split.
			name += "_" + c.FromPort
		}
		return name, nil
	}

	if lit, ok := n.Literals[port.ID]; ok {
		return w.literalExpr(lit, port.Type), nil
	}
	return "", nil
}

// literalExpr renders a literal for emission. Raw text that fails numeric
// normalization compiles to the port's zero value; the graph always
// compiles.
func (w *walker) literalExpr(lit graph.Literal, t graph.PortType) string {
	switch v := lit.(type) {
	case graph.Scalar:
		return formatScalar(float64(v))
	case graph.Raw:
		if s, ok := normalizeRaw(string(v)); ok {
			return s
		}
		return zeroExpr(t)
	default:
		return zeroExpr(t)
	}
}

// emit generates the statement for one node, resolving its inputs first.
// A node already emitted is skipped; a node currently being resolved is a
// cycle.
func (w *walker) emit(n *graph.Node, def *graph.NodeDefinition) error {
	switch w.visited[n.ID] {
	case done:
		return nil
	case inProgress:
		return &CycleError{NodeID: n.ID}
	}
	w.visited[n.ID] = inProgress

	// Bind the name up front so every downstream consumer, including
	// ones reached later in this same walk, reads the same binding.
	w.names[n.ID] = varName(n.ID)

	inputs := make(map[string]string, len(def.Inputs))
	for _, port := range def.Inputs {
		expr, err := w.resolveInput(n, port)
		if err != nil {
			return err
		}
		inputs[port.ID] = expr
	}

	e := def.Generate(inputs, w.names[n.ID], n)
	for _, h := range e.Helpers {
		if _, seen := w.helperSeen[h]; seen {
			continue
		}
		w.helperSeen[h] = struct{}{}
		w.helpers = append(w.helpers, h)
	}
	w.statements = append(w.statements, e.Statement)

	w.visited[n.ID] = done
	return nil
}

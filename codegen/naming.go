// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/shadergraph/graph"
)

// varName derives a node's bound variable name from its ID. The derivation
// is fixed, so re-running generation over the same graph always produces
// the same bindings. The n_ prefix keeps names clear of GLSL reserved
// words, and uuid-shaped IDs stay distinct under the replacement below.
func varName(nodeID string) string {
	var b strings.Builder
	b.Grow(len(nodeID) + 2)
	b.WriteString("n_")
	for _, r := range nodeID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// zeroExpr returns the safe zero value for a port type. Dangling
// references and opaque upstream nodes resolve to it.
func zeroExpr(t graph.PortType) string {
	switch t {
	case graph.Vec2:
		return "vec2(0.0)"
	case graph.Vec3:
		return "vec3(0.0)"
	default:
		return "0.0"
	}
}

// formatScalar renders a scalar literal as well-formed GLSL float text.
// Non-finite values have no GLSL literal form and render as the zero
// literal.
func formatScalar(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0.0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// normalizeRaw normalizes free-text numeric literals: text parsing as a
// number but lacking a decimal point or exponent gets ".0" appended so the
// emitted token is a float literal; text already carrying one passes
// through unchanged. Non-numeric text reports ok=false.
func normalizeRaw(s string) (string, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", false
	}
	if _, err := strconv.ParseFloat(t, 64); err != nil {
		return "", false
	}
	if !strings.ContainsAny(t, ".eE") {
		t += ".0"
	}
	return t, true
}

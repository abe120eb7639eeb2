// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/shadergraph/codegen"
)

// writer accumulates one stage's source text.
type writer struct {
	out    strings.Builder
	indent int
}

// Assemble renders one stage source from a generation result and the
// stage's template. The output is a pure function of its arguments.
func Assemble(spec StageSpec, res codegen.Result) string {
	var w writer

	w.writeLine("#version 300 es")
	w.writeLine("")
	w.writeLine("precision highp float;")
	w.writeLine("")

	for _, line := range spec.Declarations {
		w.writeLine("%s", line)
	}
	w.writeLine("")

	// Shared helper functions, deduplicated upstream, before main.
	for _, helper := range res.Helpers {
		for _, line := range strings.Split(helper, "\n") {
			w.writeLine("%s", line)
		}
		w.writeLine("")
	}

	w.writeLine("void main() {")
	w.pushIndent()

	for _, line := range spec.Prologue {
		w.writeLine("%s", line)
	}
	w.writeLine("")

	for _, stmt := range res.Statements {
		for _, line := range strings.Split(stmt, "\n") {
			w.writeLine("%s", line)
		}
	}
	if len(res.Statements) > 0 {
		w.writeLine("")
	}

	root := res.RootExpr
	if root == "" {
		root = spec.Sentinel
	}
	w.writeLine(spec.OutputAssign, root)

	for _, line := range spec.Epilogue {
		w.writeLine("%s", line)
	}

	w.popIndent()
	w.writeLine("}")

	return w.out.String()
}

// writeLine writes a line with indentation and newline.
//
//nolint:goprintffuncname
func (w *writer) writeLine(format string, args ...any) {
	if format == "" && len(args) == 0 {
		w.out.WriteByte('\n')
		return
	}
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

func (w *writer) pushIndent() {
	w.indent++
}

func (w *writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}

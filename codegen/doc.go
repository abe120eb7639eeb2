// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package codegen implements the dependency-ordered statement generator.
//
// Generation walks backward from a designated root pin on the sink node,
// resolving each declared input to an expression (an upstream binding, a
// normalized literal, or a documented fallback) and emitting one statement
// per reachable node in dependency-first order. Every node is emitted at
// most once; fan-out consumers share the bound variable name. The walk is
// a pure function of its snapshot: re-running it over the same graph
// yields byte-identical statements regardless of input slice order.
package codegen

// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl assembles generated statements into complete GLSL ES 3.00
// stage sources.
//
// One assembler serves both stages: each stage is described by a StageSpec
// carrying its fixed declarations, entry prologue, output assignment and
// epilogue, so the vertex and fragment templates cannot drift apart. The
// uniform and varying names, the output target order, and the sentinel
// fallback expressions are a bit-exact contract with the renderer and
// never vary between equivalent graphs.
package glsl

// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import "fmt"

// CycleError reports a dependency cycle reachable from the root pin. It is
// the only error generation can return: every other malformed-graph shape
// resolves to a documented fallback expression instead.
type CycleError struct {
	// NodeID is the node whose inputs were being resolved when the walk
	// re-entered it.
	NodeID string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("codegen: dependency cycle through node %s", e.NodeID)
}

package graph

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Severity indicates whether a finding blocks nothing (the compiler is
// lenient by design) but should be surfaced as an error or merely as an
// advisory in the editor.
type Severity int

const (
	SeverityError   Severity = iota // broken reference or malformed record
	SeverityWarning                 // suspicious but compilable
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Issue describes a single validation finding.
type Issue struct {
	NodeID   string // offending node, empty for graph-level findings
	Message  string
	Severity Severity
}

func (i Issue) String() string {
	if i.NodeID == "" {
		return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("[%s] node %s: %s", i.Severity, i.NodeID, i.Message)
}

// Validate runs structural checks over a graph snapshot and returns all
// findings. It never mutates the graph and never fails the compile path:
// the generator resolves every condition reported here to a documented
// fallback, so validation exists purely to give the editor diagnostics.
func Validate(g *Graph, cat *Catalog) []Issue {
	var issues []Issue
	issues = append(issues, validateShape(g)...)
	issues = append(issues, validateNodes(g, cat)...)
	issues = append(issues, validateConnections(g, cat)...)
	return issues
}

// validateShape checks record-level shape with struct tags.
func validateShape(g *Graph) []Issue {
	v := validator.New()
	var issues []Issue
	for _, n := range g.Nodes {
		if err := v.Struct(n); err != nil {
			issues = append(issues, Issue{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("malformed node record: %v", err),
				Severity: SeverityError,
			})
		}
	}
	for _, c := range g.Connections {
		if err := v.Struct(c); err != nil {
			issues = append(issues, Issue{
				Message:  fmt.Sprintf("malformed connection record %s: %v", c.ID, err),
				Severity: SeverityError,
			})
		}
	}
	return issues
}

func validateNodes(g *Graph, cat *Catalog) []Issue {
	var issues []Issue
	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if seen[n.ID] {
			issues = append(issues, Issue{
				NodeID:   n.ID,
				Message:  "duplicate node ID",
				Severity: SeverityError,
			})
		}
		seen[n.ID] = true

		if _, ok := cat.Lookup(n.Type); !ok {
			issues = append(issues, Issue{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("unknown node type %q (compiles as opaque)", n.Type),
				Severity: SeverityWarning,
			})
		}
	}
	return issues
}

func validateConnections(g *Graph, cat *Catalog) []Issue {
	var issues []Issue
	drivers := make(map[[2]string]string, len(g.Connections))
	for _, c := range g.Connections {
		if prev, dup := drivers[[2]string{c.ToNode, c.ToPort}]; dup {
			issues = append(issues, Issue{
				NodeID:   c.ToNode,
				Message:  fmt.Sprintf("input %s has two drivers (%s and %s); only the first is honored", c.ToPort, prev, c.ID),
				Severity: SeverityError,
			})
		} else {
			drivers[[2]string{c.ToNode, c.ToPort}] = c.ID
		}

		issues = append(issues, validateEndpoint(g, cat, c, c.FromNode, c.FromPort, false)...)
		issues = append(issues, validateEndpoint(g, cat, c, c.ToNode, c.ToPort, true)...)
	}
	return issues
}

func validateEndpoint(g *Graph, cat *Catalog, c *Connection, nodeID, portID string, input bool) []Issue {
	n := g.Node(nodeID)
	if n == nil {
		return []Issue{{
			Message:  fmt.Sprintf("connection %s references missing node %s", c.ID, nodeID),
			Severity: SeverityError,
		}}
	}
	def, ok := cat.Lookup(n.Type)
	if !ok {
		return nil // already reported as an unknown-type warning
	}
	if input {
		if _, ok := def.Input(portID); !ok {
			return []Issue{{
				NodeID:   nodeID,
				Message:  fmt.Sprintf("connection %s targets undeclared input %q of %q", c.ID, portID, n.Type),
				Severity: SeverityError,
			}}
		}
		return nil
	}
	if _, ok := def.Output(portID); !ok {
		return []Issue{{
			NodeID:   nodeID,
			Message:  fmt.Sprintf("connection %s originates from undeclared output %q of %q", c.ID, portID, n.Type),
			Severity: SeverityError,
		}}
	}
	return nil
}

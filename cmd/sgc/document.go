package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gogpu/shadergraph/graph"
)

// document is the on-disk graph format consumed by sgc. Persistence is a
// collaborator concern, so the codec lives here rather than in the model:
// the compiler only ever sees the decoded snapshot.
type document struct {
	Nodes       []documentNode      `json:"nodes"`
	Connections []*graph.Connection `json:"connections"`
}

type documentNode struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Position graph.Position `json:"position"`

	// Literals maps input port IDs to JSON numbers or strings.
	Literals map[string]any `json:"literals,omitempty"`
}

// loadDocument reads and decodes a graph document into a model snapshot.
func loadDocument(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph document: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	g := graph.New()
	for _, dn := range doc.Nodes {
		n := &graph.Node{ID: dn.ID, Type: dn.Type, Position: dn.Position}
		for portID, raw := range dn.Literals {
			switch v := raw.(type) {
			case float64:
				n.SetLiteral(portID, graph.Scalar(v))
			case string:
				n.SetLiteral(portID, graph.Raw(v))
			default:
				return nil, fmt.Errorf("decode %s: node %s port %s: unsupported literal %T", path, dn.ID, portID, raw)
			}
		}
		g.Nodes = append(g.Nodes, n)
	}
	g.Connections = doc.Connections
	return g, nil
}

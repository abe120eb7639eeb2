package graph

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Editing errors returned by Connect.
var (
	// ErrNodeNotFound indicates a connection endpoint names a node ID
	// that is not in the graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrPortNotFound indicates a connection endpoint names a port the
	// node's catalog entry does not declare on that side.
	ErrPortNotFound = errors.New("graph: port not found")

	// ErrIncompatible indicates the two port types fail the
	// compatibility rule.
	ErrIncompatible = errors.New("graph: incompatible port types")
)

// Position is a node's location on the editor canvas. It has no effect on
// compilation.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one node instance in a graph.
type Node struct {
	ID       string   `json:"id"   validate:"required"`
	Type     string   `json:"type" validate:"required"`
	Position Position `json:"position"`

	// Literals maps input port IDs to literal values used when the port
	// has no incoming connection. Serialization of literals is the
	// persistence layer's concern, not the model's.
	Literals map[string]Literal `json:"-"`
}

// SetLiteral stores a literal value for an input port.
func (n *Node) SetLiteral(portID string, v Literal) {
	if n.Literals == nil {
		n.Literals = make(map[string]Literal)
	}
	n.Literals[portID] = v
}

// Connection is a directed edge from an output port to an input port.
type Connection struct {
	ID       string `json:"id"        validate:"required"`
	FromNode string `json:"from_node" validate:"required"`
	FromPort string `json:"from_port" validate:"required"`
	ToNode   string `json:"to_node"   validate:"required"`
	ToPort   string `json:"to_port"   validate:"required"`
}

// Graph is a snapshot of nodes and connections. Node and connection order
// is irrelevant to compilation: the generator's traversal is driven by
// connectivity from the root, never by slice position.
type Graph struct {
	Nodes       []*Node       `json:"nodes"`
	Connections []*Connection `json:"connections"`
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode appends a node of the given type with a fresh unique ID and
// returns it. It does not consult a catalog: the editor may hold nodes
// whose type has no catalog entry (they compile as opaque).
func (g *Graph) AddNode(nodeType string, x, y float64) *Node {
	n := &Node{
		ID:       uuid.NewString(),
		Type:     nodeType,
		Position: Position{X: x, Y: y},
	}
	g.Nodes = append(g.Nodes, n)
	return n
}

// Node returns the first node with the given ID, or nil.
func (g *Graph) Node(id string) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// NodesOfType returns all nodes with the given type, in slice order.
func (g *Graph) NodesOfType(nodeType string) []*Node {
	var out []*Node
	for _, n := range g.Nodes {
		if n.Type == nodeType {
			out = append(out, n)
		}
	}
	return out
}

// RemoveNode deletes the node with the given ID along with every
// connection touching it.
func (g *Graph) RemoveNode(id string) {
	for i, n := range g.Nodes {
		if n.ID == id {
			g.Nodes = append(g.Nodes[:i], g.Nodes[i+1:]...)
			break
		}
	}
	kept := g.Connections[:0]
	for _, c := range g.Connections {
		if c.FromNode != id && c.ToNode != id {
			kept = append(kept, c)
		}
	}
	g.Connections = kept
}

// Driver returns the connection terminating at (nodeID, portID), or nil.
// When the graph holds more than one (which Connect never produces), the
// first in slice order wins.
func (g *Graph) Driver(nodeID, portID string) *Connection {
	for _, c := range g.Connections {
		if c.ToNode == nodeID && c.ToPort == portID {
			return c
		}
	}
	return nil
}

// Connect adds a directed edge between two ports, enforcing the
// editing-time rules: both endpoints must exist in the graph and in cat,
// the source must be an output and the target an input, and the two port
// types must be compatible. An existing driver on the target input is
// replaced, keeping the at-most-one-driver invariant. Fan-out from an
// output is unrestricted.
func (g *Graph) Connect(cat *Catalog, fromNode, fromPort, toNode, toPort string) (*Connection, error) {
	from := g.Node(fromNode)
	if from == nil {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, fromNode)
	}
	to := g.Node(toNode)
	if to == nil {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, toNode)
	}

	fromDef, ok := cat.Lookup(from.Type)
	if !ok {
		return nil, fmt.Errorf("%w: node type %q", ErrNodeNotFound, from.Type)
	}
	toDef, ok := cat.Lookup(to.Type)
	if !ok {
		return nil, fmt.Errorf("%w: node type %q", ErrNodeNotFound, to.Type)
	}

	src, ok := fromDef.Output(fromPort)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s is not an output of %q", ErrPortNotFound, fromNode, fromPort, from.Type)
	}
	dst, ok := toDef.Input(toPort)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s is not an input of %q", ErrPortNotFound, toNode, toPort, to.Type)
	}

	if !Compatible(src.Type, dst.Type) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIncompatible, src.Type, dst.Type)
	}

	// An input has at most one driver: reconnecting replaces it.
	if prev := g.Driver(toNode, toPort); prev != nil {
		g.Disconnect(prev.ID)
	}

	c := &Connection{
		ID:       uuid.NewString(),
		FromNode: fromNode,
		FromPort: fromPort,
		ToNode:   toNode,
		ToPort:   toPort,
	}
	g.Connections = append(g.Connections, c)
	return c, nil
}

// Disconnect removes the connection with the given ID.
func (g *Graph) Disconnect(id string) {
	for i, c := range g.Connections {
		if c.ID == id {
			g.Connections = append(g.Connections[:i], g.Connections[i+1:]...)
			return
		}
	}
}

package graph

// PortType is the closed set of value types a port can carry.
type PortType uint8

const (
	// Float is a single scalar value.
	Float PortType = iota

	// Vec2 is a 2-component vector.
	Vec2

	// Vec3 is a 3-component vector.
	Vec3

	// Any is the wildcard type, compatible with every other type.
	Any
)

// String returns the GLSL-flavored name of the type.
func (t PortType) String() string {
	switch t {
	case Float:
		return "float"
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Any:
		return "any"
	default:
		return "unknown"
	}
}

// Compatible reports whether a connection between two port types is legal.
// Either side being the wildcard makes the pair compatible; otherwise the
// tags must match exactly. This is an editing-time constraint only: the
// compiler never re-checks it, and a graph holding an incompatible edge
// compiles as-is with undefined numeric meaning.
func Compatible(a, b PortType) bool {
	return a == Any || b == Any || a == b
}

// PortDefinition describes one named, typed connection point on a node
// type. Definitions are owned by the catalog and never mutated.
type PortDefinition struct {
	// ID is the port identifier used by connections and literal data.
	ID string

	// Name is the display name shown by the editor.
	Name string

	// Type is the value type the port carries.
	Type PortType

	// Color optionally overrides the editor's per-type port color,
	// as a "#rrggbb" string. Empty means the type default.
	Color string
}

// Emit is the result of a node's generation rule: one statement binding
// the node's output variable, plus any stage-global helper functions the
// statement depends on. Helpers are deduplicated by content and emitted
// once per stage no matter how many node instances require them.
type Emit struct {
	Statement string
	Helpers   []string
}

// GenerateFunc produces the statement for one node instance.
//
// inputs maps each declared input port ID to its resolved expression: the
// upstream node's bound variable, a normalized literal, or the empty string
// when the port is unconnected and carries no literal (the rule supplies
// its own default). outVar is the variable name bound to this node, derived
// deterministically from the node ID. node carries the instance's literal
// data for rules that consume non-port literals.
type GenerateFunc func(inputs map[string]string, outVar string, node *Node) Emit

// NodeDefinition is one catalog entry: the declared ports of a node type
// and its code-generation rule.
type NodeDefinition struct {
	// Type is the node type identifier, the key into the catalog.
	Type string

	// Name is the display name shown by the editor.
	Name string

	// Inputs and Outputs are the declared ports, in editor order.
	// Input resolution happens in Inputs order.
	Inputs  []PortDefinition
	Outputs []PortDefinition

	// SuffixOutputs marks multi-output node types whose bound variable
	// name is suffixed with the consumed output port ID (for example a
	// decompose node binding n_s emits n_s_x, n_s_y, n_s_z). Consumers
	// reference the suffixed name instead of the bare binding.
	SuffixOutputs bool

	// Generate is the code-generation rule. A nil Generate marks a
	// host-only node: it is never emitted and resolves to a zero value
	// wherever it is referenced as an input.
	Generate GenerateFunc
}

// Input returns the declared input port with the given ID.
func (d *NodeDefinition) Input(id string) (PortDefinition, bool) {
	for _, p := range d.Inputs {
		if p.ID == id {
			return p, true
		}
	}
	return PortDefinition{}, false
}

// Output returns the declared output port with the given ID.
func (d *NodeDefinition) Output(id string) (PortDefinition, bool) {
	for _, p := range d.Outputs {
		if p.ID == id {
			return p, true
		}
	}
	return PortDefinition{}, false
}

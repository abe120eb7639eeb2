package graph

// Literal is a per-port literal value stored on a node instance. It is a
// closed set: each variant carries exactly the data its kind needs, so the
// generator switches on the concrete type instead of probing untyped maps.
type Literal interface {
	literal() // marker method restricting implementations to this package
}

// Scalar is a numeric literal.
type Scalar float64

func (Scalar) literal() {}

// Raw is a literal entered as free text in the editor. Numeric-looking raw
// text is normalized to a well-formed float literal at generation time;
// non-numeric text compiles to the zero default.
type Raw string

func (Raw) literal() {}

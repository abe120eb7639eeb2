package graph

// Catalog is the immutable node-type table consulted during graph editing
// and code generation. It is populated once at build time and never mutated
// afterward; compilers receive it as an explicit value, so tests can run
// isolated catalogs side by side.
type Catalog struct {
	defs map[string]*NodeDefinition
}

// NewCatalog builds a catalog from a fixed set of definitions. Later
// duplicates of a node type silently replace earlier ones.
func NewCatalog(defs ...*NodeDefinition) *Catalog {
	c := &Catalog{defs: make(map[string]*NodeDefinition, len(defs))}
	for _, d := range defs {
		c.defs[d.Type] = d
	}
	return c
}

// Lookup returns the definition for a node type.
func (c *Catalog) Lookup(nodeType string) (*NodeDefinition, bool) {
	d, ok := c.defs[nodeType]
	return d, ok
}

// Count returns the number of registered node types.
func (c *Catalog) Count() int {
	return len(c.defs)
}

// Types returns all registered node type identifiers, in no particular
// order. Intended for editor palettes and diagnostics.
func (c *Catalog) Types() []string {
	out := make([]string, 0, len(c.defs))
	for t := range c.defs {
		out = append(out, t)
	}
	return out
}

// Package nodes provides the built-in node library: the catalog of node
// types the editor offers and the GLSL generation rule for each. The
// library is assembled once by Library and treated as immutable.
package nodes

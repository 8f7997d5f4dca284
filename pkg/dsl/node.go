package dsl

import "github.com/aretw0/arkhe/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder[T any] struct {
	id        string
	space     string
	value     T
	coherence float64
	builder   *Builder[T]
}

// In sets the name of the node's state space.
func (n *NodeBuilder[T]) In(space string) *NodeBuilder[T] {
	n.space = space
	return n
}

// Value sets the initial state.
func (n *NodeBuilder[T]) Value(v T) *NodeBuilder[T] {
	n.value = v
	return n
}

// Coherence overrides the local coherence (default 1.0). No range is enforced.
func (n *NodeBuilder[T]) Coherence(c float64) *NodeBuilder[T] {
	n.coherence = c
	return n
}

// Add continues with another node of the same builder.
func (n *NodeBuilder[T]) Add(id string) *NodeBuilder[T] {
	return n.builder.Add(id)
}

// Build ends a chain by building the whole hypergraph.
func (n *NodeBuilder[T]) Build() *domain.Hypergraph[T] {
	return n.builder.Build()
}

// Node returns a new domain.Node.
// This is primarily used by the Builder, but exposed for advanced usage.
func (n *NodeBuilder[T]) Node() *domain.Node[T] {
	node := domain.NewNode(n.id, n.space, n.value)
	node.LocalCoherence = n.coherence
	return node
}

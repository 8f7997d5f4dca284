package dsl

import (
	"github.com/aretw0/arkhe/pkg/domain"
)

// Builder manages the hypergraph construction.
type Builder[T any] struct {
	name  string
	order []string
	nodes map[string]*NodeBuilder[T]
}

// New creates a new hypergraph builder.
func New[T any](name string) *Builder[T] {
	return &Builder[T]{
		name:  name,
		nodes: make(map[string]*NodeBuilder[T]),
	}
}

// Add starts a new node in the hypergraph.
// If the node already exists, it returns the existing builder.
func (b *Builder[T]) Add(id string) *NodeBuilder[T] {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder[T]{
		id:        id,
		coherence: domain.DefaultCoherence,
		builder:   b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Build creates a fresh hypergraph from the declared nodes.
// Each call returns independent nodes.
func (b *Builder[T]) Build() *domain.Hypergraph[T] {
	g := domain.NewHypergraph[T](b.name)
	for _, id := range b.order {
		g.AddNode(b.nodes[id].Node())
	}
	return g
}

package domain

import "sort"

// Hypergraph is a named collection of nodes keyed by id.
// It is not safe for concurrent use.
type Hypergraph[T any] struct {
	Name      string
	nodes     map[string]*Node[T]
	handovers []HandoverLink
}

// NewHypergraph creates an empty hypergraph.
func NewHypergraph[T any](name string) *Hypergraph[T] {
	return &Hypergraph[T]{
		Name:  name,
		nodes: make(map[string]*Node[T]),
	}
}

// AddNode inserts node under node.ID.
// A node with the same id is replaced; nothing signals the overwrite.
func (g *Hypergraph[T]) AddNode(node *Node[T]) {
	g.nodes[node.ID] = node
}

// Node looks up a node by id.
func (g *Hypergraph[T]) Node(id string) (*Node[T], bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Len returns the number of nodes.
func (g *Hypergraph[T]) Len() int {
	return len(g.nodes)
}

// NodeIDs returns the ids of all nodes in ascending order.
func (g *Hypergraph[T]) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Nodes returns all nodes ordered by id.
func (g *Hypergraph[T]) Nodes() []*Node[T] {
	ids := g.NodeIDs()
	nodes := make([]*Node[T], 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// AddHandover attaches a handover link. Links are kept in insertion order and
// never deduplicated; their node ids are not checked.
func (g *Hypergraph[T]) AddHandover(link HandoverLink) {
	g.handovers = append(g.handovers, link)
}

// Handovers returns a copy of the attached links in insertion order.
func (g *Hypergraph[T]) Handovers() []HandoverLink {
	return append([]HandoverLink(nil), g.handovers...)
}

// GlobalCoherence is the mean LocalCoherence of all nodes, or 0 for an empty graph.
func (g *Hypergraph[T]) GlobalCoherence() float64 {
	if len(g.nodes) == 0 {
		return 0
	}
	sum := 0.0
	for _, n := range g.nodes {
		sum += n.LocalCoherence
	}
	return sum / float64(len(g.nodes))
}

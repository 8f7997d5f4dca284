/*
Package arkhe is a small algebra of typed state: nodes hold values, handovers map one
node's state into a new value, and handovers compose into new handovers.

# Concept

A Node carries a typed current state inside a named state space. A Handover is a named
mapping from S to T tagged with a PreservationProtocol that says how much information
it is expected to keep. Compose chains two handovers; the composite's id joins the two
ids with "_" and its protocol is always Transmutative. A Hypergraph collects nodes by id.

Nothing here schedules or persists anything. Operations are synchronous, and a mapper
that panics propagates its panic to the caller.

# Usage

	package main

	import (
		"fmt"
		"strconv"

		"github.com/aretw0/arkhe/pkg/domain"
	)

	func main() {
		g := domain.NewHypergraph[int]("demo")
		g.AddNode(domain.NewNode("n1", "R", 5))

		double := domain.NewHandover("double", domain.Conservative, func(x int) int { return x * 2 })
		stringify := domain.NewHandover("stringify", domain.Transmutative, strconv.Itoa)
		h := domain.Compose(double, stringify)

		n1, _ := g.Node("n1")
		fmt.Println(h.ID, h.Execute(n1)) // double_stringify 10
	}

# Packages

  - pkg/domain: Nodes, handovers, composition and hypergraphs.
  - pkg/dsl: Fluent hypergraph builder.
  - pkg/registry: Catalog of type-erased handovers addressed by id.
  - pkg/observability: Hooks, slog logging and Prometheus metrics for handover calls.
*/
package arkhe

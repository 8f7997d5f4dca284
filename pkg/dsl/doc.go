/*
Package dsl provides a fluent builder for constructing Arkhe hypergraphs in Go code.

Example usage:

	g := dsl.New[int]("demo").
		Add("n1").In("R").Value(5).
		Add("n2").In("R").Value(7).Coherence(0.5).
		Build()

	n1, _ := g.Node("n1")
*/
package dsl

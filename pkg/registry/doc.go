/*
Package registry keeps handovers of different types in one catalog, addressed by id.

Handovers are stored type-erased (see Erase), which lets a caller assemble a chain
from names known only at run time:

	reg := registry.NewRegistry()
	reg.Register(registry.Erase(domain.NewHandover("double", domain.Conservative, func(x int) int { return x * 2 })))
	reg.Register(registry.Erase(domain.NewHandover("stringify", domain.Transmutative, strconv.Itoa)))

	h, err := reg.Chain("double", "stringify")
	// h.ID == "double_stringify", h.Apply(5) == "10"

Type mismatches between links surface as panics when the chain is applied.
*/
package registry

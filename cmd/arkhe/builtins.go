package main

import (
	"strconv"

	"github.com/aretw0/arkhe/pkg/domain"
	"github.com/aretw0/arkhe/pkg/registry"
)

// protocolFor returns the configured protocol for id, or def.
func (a *app) protocolFor(id string, def domain.PreservationProtocol) domain.PreservationProtocol {
	if p, ok := a.cfg.Protocols[id]; ok {
		return p
	}
	return def
}

func (a *app) doubleHandover() *domain.Handover[int, int] {
	return domain.NewHandover("double", a.protocolFor("double", domain.Conservative), func(x int) int { return x * 2 })
}

func (a *app) stringifyHandover() *domain.Handover[int, string] {
	return domain.NewHandover("stringify", a.protocolFor("stringify", domain.Transmutative), strconv.Itoa)
}

// builtins registers the handovers the CLI can chain by name.
func (a *app) builtins() *registry.Registry {
	reg := registry.NewRegistry()
	reg.Register(registry.Erase(a.doubleHandover()))
	reg.Register(registry.Erase(a.stringifyHandover()))
	reg.Register(registry.Erase(domain.NewHandover("increment", a.protocolFor("increment", domain.Conservative), func(x int) int { return x + 1 })))
	reg.Register(registry.Erase(domain.NewHandover("negate", a.protocolFor("negate", domain.Conservative), func(x int) int { return -x })))
	reg.Register(registry.Erase(domain.NewHandover("square", a.protocolFor("square", domain.Destructive), func(x int) int { return x * x })))
	reg.Register(registry.Erase(domain.NewHandover("exclaim", a.protocolFor("exclaim", domain.Creative), func(s string) string { return s + "!" })))
	return reg
}

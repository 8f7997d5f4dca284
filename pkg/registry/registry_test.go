package registry_test

import (
	"strconv"
	"testing"

	"github.com/aretw0/arkhe/pkg/domain"
	"github.com/aretw0/arkhe/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *registry.Registry {
	reg := registry.NewRegistry()
	reg.Register(registry.Erase(domain.NewHandover("double", domain.Conservative, func(x int) int { return x * 2 })))
	reg.Register(registry.Erase(domain.NewHandover("increment", domain.Creative, func(x int) int { return x + 1 })))
	reg.Register(registry.Erase(domain.NewHandover("stringify", domain.Transmutative, strconv.Itoa)))
	return reg
}

func TestErase_CopiesMetadata(t *testing.T) {
	h := domain.NewHandover("neg", domain.Destructive, func(x int) int { return -x })
	h.Fidelity = 0.3

	e := registry.Erase(h)
	assert.Equal(t, "neg", e.ID)
	assert.Equal(t, domain.Destructive, e.Protocol)
	assert.Equal(t, 0.3, e.Fidelity)
	assert.Equal(t, -4, e.Apply(4))
}

func TestErase_WrongInputTypePanics(t *testing.T) {
	e := registry.Erase(domain.NewHandover("double", domain.Conservative, func(x int) int { return x * 2 }))
	assert.Panics(t, func() { e.Apply("five") })
}

func TestRegistry_Get(t *testing.T) {
	reg := newRegistry()

	h, err := reg.Get("double")
	require.NoError(t, err)
	assert.Equal(t, 10, h.Apply(5))

	_, err = reg.Get("missing")
	assert.ErrorIs(t, err, registry.ErrHandoverNotFound)
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	reg := newRegistry()
	reg.Register(registry.Erase(domain.NewHandover("double", domain.Creative, func(x int) int { return x + x + 1 })))

	h, err := reg.Get("double")
	require.NoError(t, err)
	assert.Equal(t, 11, h.Apply(5))
	assert.Equal(t, []string{"double", "increment", "stringify"}, reg.IDs())
}

func TestRegistry_Chain(t *testing.T) {
	reg := newRegistry()

	h, err := reg.Chain("double", "increment", "stringify")
	require.NoError(t, err)
	assert.Equal(t, "double_increment_stringify", h.ID)
	assert.Equal(t, domain.Transmutative, h.Protocol)
	assert.Equal(t, "11", h.Execute(domain.NewNode[any]("n1", "R", 5)))
}

func TestRegistry_ChainSingle(t *testing.T) {
	reg := newRegistry()

	h, err := reg.Chain("increment")
	require.NoError(t, err)
	assert.Equal(t, "increment", h.ID)
	assert.Equal(t, domain.Creative, h.Protocol)
}

func TestRegistry_ChainErrors(t *testing.T) {
	reg := newRegistry()

	_, err := reg.Chain()
	assert.ErrorIs(t, err, registry.ErrEmptyChain)

	_, err = reg.Chain("double", "nope")
	assert.ErrorIs(t, err, registry.ErrHandoverNotFound)
}

func TestRegistry_ChainTypeMismatchPanics(t *testing.T) {
	reg := newRegistry()

	h, err := reg.Chain("stringify", "double")
	require.NoError(t, err)
	assert.Panics(t, func() { h.Apply(3) })
}

func TestErase_NilInputForNilableTypes(t *testing.T) {
	describe := domain.NewHandover("describe", domain.Transmutative, func(err error) string {
		if err == nil {
			return "ok"
		}
		return err.Error()
	})
	assert.Equal(t, "ok", describe.Apply(nil))
	assert.Equal(t, "ok", registry.Erase(describe).Apply(nil))

	id := registry.Erase(domain.Identity[any]("id"))
	assert.Nil(t, id.Execute(domain.NewNode[any]("n", "R", nil)))

	deref := registry.Erase(domain.NewHandover("isNil", domain.Destructive, func(p *int) bool { return p == nil }))
	assert.Equal(t, true, deref.Apply(nil))
}

func TestErase_NilInputForValueTypeUsesZero(t *testing.T) {
	e := registry.Erase(domain.NewHandover("inc", domain.Creative, func(x int) int { return x + 1 }))
	assert.Equal(t, 1, e.Apply(nil))
}

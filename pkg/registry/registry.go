package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/arkhe/pkg/domain"
)

var (
	// ErrHandoverNotFound is returned when an id is not registered.
	ErrHandoverNotFound = errors.New("handover not found")
	// ErrEmptyChain is returned by Chain when no ids are given.
	ErrEmptyChain = errors.New("chain requires at least one handover")
)

// Erased is a handover whose input and output types are checked at run time.
type Erased = domain.Handover[any, any]

// Erase wraps a typed handover so it can be stored next to handovers of other types.
// The id, protocol and fidelity are copied. Applying the result to a value that is not
// an S panics, like any failing mapper would. A nil input reaches the mapper as the
// zero S, so nilable S (interfaces, pointers, maps...) accept nil.
func Erase[S, T any](h *domain.Handover[S, T]) *Erased {
	mapper := h.Mapper()
	erased := domain.NewHandover(h.ID, h.Protocol, func(v any) any {
		var s S
		if v != nil {
			s = v.(S)
		}
		return mapper(s)
	})
	erased.Fidelity = h.Fidelity
	return erased
}

// Registry manages the available handovers.
// It is not safe for concurrent use.
type Registry struct {
	handovers map[string]*Erased
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handovers: make(map[string]*Erased),
	}
}

// Register adds a handover to the registry under its id.
// If a handover with the same id exists, it is overwritten.
func (r *Registry) Register(h *Erased) {
	r.handovers[h.ID] = h
}

// Get looks up a handover by id.
func (r *Registry) Get(id string) (*Erased, error) {
	h, ok := r.handovers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHandoverNotFound, id)
	}
	return h, nil
}

// IDs returns the registered ids in ascending order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.handovers))
	for id := range r.handovers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Chain composes the named handovers from left to right.
// A single id returns the registered handover itself.
func (r *Registry) Chain(ids ...string) (*Erased, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyChain
	}

	acc, err := r.Get(ids[0])
	if err != nil {
		return nil, err
	}
	for _, id := range ids[1:] {
		next, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		acc = domain.Compose(acc, next)
	}
	return acc, nil
}

package domain

// IDSeparator joins the ids of composed handovers.
const IDSeparator = "_"

// DefaultFidelity is the Fidelity every new Handover starts with.
const DefaultFidelity = 1.0

// Mapper is the function a Handover applies. It should be free of side effects,
// though nothing enforces it.
type Mapper[S, T any] func(S) T

// Handover maps the state of a Node[S] into a value of type T.
type Handover[S, T any] struct {
	ID       string
	Protocol PreservationProtocol
	// Fidelity has no enforced range.
	Fidelity float64

	mapper Mapper[S, T]
}

// NewHandover creates a handover that owns mapper. Fidelity is set to DefaultFidelity.
func NewHandover[S, T any](id string, protocol PreservationProtocol, mapper Mapper[S, T]) *Handover[S, T] {
	return &Handover[S, T]{
		ID:       id,
		Protocol: protocol,
		Fidelity: DefaultFidelity,
		mapper:   mapper,
	}
}

// Execute applies the mapper to source.CurrentState. The source is not modified.
// A panicking mapper is not recovered.
func (h *Handover[S, T]) Execute(source *Node[S]) T {
	return h.mapper(source.CurrentState)
}

// Apply runs the mapper on a bare value.
func (h *Handover[S, T]) Apply(value S) T {
	return h.mapper(value)
}

// Mapper returns the function owned by the handover.
func (h *Handover[S, T]) Mapper() Mapper[S, T] {
	return h.mapper
}

// Compose chains h1 and h2 into a handover computing h2(h1(a)).
//
// The result's id is h1.ID + IDSeparator + h2.ID and its protocol is always
// Transmutative, whatever the protocols of the inputs: composition may lose the
// guarantees of either side. Composition is associative.
func Compose[A, B, C any](h1 *Handover[A, B], h2 *Handover[B, C]) *Handover[A, C] {
	first, second := h1.mapper, h2.mapper
	return NewHandover(
		h1.ID+IDSeparator+h2.ID,
		Transmutative,
		func(a A) C {
			return second(first(a))
		},
	)
}

// Identity returns the Conservative handover that maps every value to itself.
func Identity[T any](id string) *Handover[T, T] {
	return NewHandover(id, Conservative, func(v T) T { return v })
}

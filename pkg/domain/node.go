package domain

// DefaultCoherence is the LocalCoherence every new Node starts with.
const DefaultCoherence = 1.0

// Node holds a typed current state inside a named state space.
type Node[T any] struct {
	ID string
	// StateSpace is the name of the space the node lives in.
	StateSpace   string
	CurrentState T
	// LocalCoherence has no enforced range.
	LocalCoherence float64
}

// NewNode creates a node with LocalCoherence set to DefaultCoherence.
// Neither id nor stateSpace is validated; both may be empty.
func NewNode[T any](id, stateSpace string, initial T) *Node[T] {
	return &Node[T]{
		ID:             id,
		StateSpace:     stateSpace,
		CurrentState:   initial,
		LocalCoherence: DefaultCoherence,
	}
}

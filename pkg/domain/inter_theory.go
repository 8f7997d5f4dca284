package domain

// Converter couples a source node with a target node. It may modify the target.
type Converter[S, T, R any] func(source *Node[S], target *Node[T]) R

// InterTheoryHandover connects nodes that belong to different models
// (e.g. a vacuum model feeding a warp model). Unlike Handover it sees both
// nodes, and its converter is allowed to update the target.
type InterTheoryHandover[S, T, R any] struct {
	SourceModel string
	TargetModel string

	converter Converter[S, T, R]
}

// NewInterTheoryHandover creates a handover from sourceModel to targetModel.
func NewInterTheoryHandover[S, T, R any](sourceModel, targetModel string, converter Converter[S, T, R]) *InterTheoryHandover[S, T, R] {
	return &InterTheoryHandover[S, T, R]{
		SourceModel: sourceModel,
		TargetModel: targetModel,
		converter:   converter,
	}
}

// ID names the handover after the two models, joined by IDSeparator.
func (h *InterTheoryHandover[S, T, R]) ID() string {
	return h.SourceModel + IDSeparator + h.TargetModel
}

// Execute runs the converter. A panicking converter is not recovered.
func (h *InterTheoryHandover[S, T, R]) Execute(source *Node[S], target *Node[T]) R {
	return h.converter(source, target)
}

// Link describes h as going from source to target. Inter-theory handovers are
// tagged Transmutative with the default fidelity.
func (h *InterTheoryHandover[S, T, R]) Link(source, target string) HandoverLink {
	return HandoverLink{
		HandoverID: h.ID(),
		Protocol:   Transmutative,
		Fidelity:   DefaultFidelity,
		Source:     source,
		Target:     target,
	}
}

package domain

// HandoverLink records that a handover connects two nodes of a hypergraph.
// It carries the handover's metadata, not its mapper, so handovers of any
// type can be attached to the same graph.
type HandoverLink struct {
	HandoverID string
	Protocol   PreservationProtocol
	Fidelity   float64
	Source     string
	Target     string
}

// LinkOf describes h as going from source to target.
// Neither node id is checked against any hypergraph.
func LinkOf[S, T any](h *Handover[S, T], source, target string) HandoverLink {
	return HandoverLink{
		HandoverID: h.ID,
		Protocol:   h.Protocol,
		Fidelity:   h.Fidelity,
		Source:     source,
		Target:     target,
	}
}

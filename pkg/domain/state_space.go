package domain

// StateSpace describes a space a node lives in.
// Nodes refer to a space by name only; the record is descriptive.
type StateSpace struct {
	Dimension uint
	Topology  string
	Algebra   string
}

package domain

import (
	"fmt"
	"strings"
)

// PreservationProtocol describes how faithfully a Handover is expected to preserve
// information. It is metadata only; nothing enforces it.
type PreservationProtocol int

const (
	// Conservative handovers keep all information of the source.
	Conservative PreservationProtocol = iota
	// Creative handovers add information that was not present in the source.
	Creative
	// Destructive handovers discard information.
	Destructive
	// Transmutative handovers change the nature of the information.
	// Composed handovers always carry this tag.
	Transmutative
)

var protocolNames = [...]string{
	Conservative:  "conservative",
	Creative:      "creative",
	Destructive:   "destructive",
	Transmutative: "transmutative",
}

// Protocols returns every protocol in declaration order.
func Protocols() []PreservationProtocol {
	return []PreservationProtocol{Conservative, Creative, Destructive, Transmutative}
}

func (p PreservationProtocol) String() string {
	if p < 0 || int(p) >= len(protocolNames) {
		return fmt.Sprintf("PreservationProtocol(%d)", int(p))
	}
	return protocolNames[p]
}

// Valid reports whether p is one of the declared protocols.
func (p PreservationProtocol) Valid() bool {
	return p >= Conservative && p <= Transmutative
}

// ParseProtocol converts a case-insensitive name (e.g. "Creative") to a PreservationProtocol.
func ParseProtocol(name string) (PreservationProtocol, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range protocolNames {
		if n == key {
			return PreservationProtocol(i), nil
		}
	}
	return Conservative, fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
}

// MarshalText implements encoding.TextMarshaler.
func (p PreservationProtocol) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProtocol, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PreservationProtocol) UnmarshalText(text []byte) error {
	parsed, err := ParseProtocol(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

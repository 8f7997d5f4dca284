package domain

import "errors"

// ErrUnknownProtocol is returned when a protocol name does not match any PreservationProtocol.
var ErrUnknownProtocol = errors.New("unknown preservation protocol")

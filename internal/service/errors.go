package service

import "errors"

var (
	// ErrInvalidRequirement is returned for a requirement without a
	// protocol or an id.
	ErrInvalidRequirement = errors.New("requirement must have a protocol and an id")
)

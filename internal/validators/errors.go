package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRunID         = errors.New("run id is required")
	ErrEmptyProtocol      = errors.New("protocol is required")
	ErrInvalidRequirement = errors.New("invalid requirement id")
	ErrInvalidVerdict     = errors.New("invalid verdict")
	ErrEmptyCapturedAt    = errors.New("capture time is required")
)

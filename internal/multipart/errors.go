package multipart

import "errors"

var (
	// ErrTruncatedHeader is returned when the declared part count needs more
	// header bytes than the body holds.
	ErrTruncatedHeader = errors.New("multipart: truncated header")
	// ErrPartOutOfRange is returned when an (offset, length) pair points
	// outside the body, or a part index is outside the declared count.
	ErrPartOutOfRange = errors.New("multipart: part out of range")
)

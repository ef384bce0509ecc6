package store

import "errors"

// Sentinel errors of the capture store. Callers match them with [errors.Is].
var (
	// ErrDuplicateCapture is returned when the run already holds a verdict
	// for the requirement.
	ErrDuplicateCapture = errors.New("capture already recorded for this run and requirement")

	// ErrCaptureNotSaved is returned when an INSERT affects no row.
	ErrCaptureNotSaved = errors.New("capture was not saved")

	// ErrUnsupportedDSN is returned by [Open] for an empty DSN.
	ErrUnsupportedDSN = errors.New("unsupported capture database dsn")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRows       = errors.New("failed to scan capture rows")
)

package store

import (
	"context"

	"github.com/MKhiriev/go-eas-suite/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/capture_repository_mock.go -package=mock

// CaptureRepository persists requirement verdicts.
type CaptureRepository interface {
	// Save stores one capture. A second verdict for the same run and
	// requirement fails with ErrDuplicateCapture.
	Save(ctx context.Context, capture models.Capture) error
	// ListByRun returns the captures of a run ordered by capture time.
	ListByRun(ctx context.Context, runID string) ([]models.Capture, error)
	// Summarize counts the verdicts of a run.
	Summarize(ctx context.Context, runID string) (models.CaptureSummary, error)
}

// ErrorClassificator sorts driver errors into [ErrorClassification] values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

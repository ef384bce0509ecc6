package tui

import (
	"context"

	"github.com/MKhiriev/go-eas-suite/models"
)

// CaptureLister loads the captures of a run.
type CaptureLister interface {
	ListByRun(ctx context.Context, runID string) ([]models.Capture, error)
}

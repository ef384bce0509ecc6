package service

import (
	"context"

	"github.com/MKhiriev/go-eas-suite/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/capture_service_mock.go -package=mock

// CaptureService records the verdicts of one suite run.
type CaptureService interface {
	// RunID identifies the run every capture is recorded under.
	RunID() string

	// Capture records a passed or failed verdict for req.
	Capture(ctx context.Context, req models.Requirement, passed bool, detail string) error
	// Skip records that req could not be checked against this server.
	Skip(ctx context.Context, req models.Requirement, reason string) error

	Summary(ctx context.Context) (models.CaptureSummary, error)
	Captures(ctx context.Context) ([]models.Capture, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/internal/metrics"
	"github.com/MKhiriev/go-eas-suite/internal/store"
	"github.com/MKhiriev/go-eas-suite/internal/utils"
	"github.com/MKhiriev/go-eas-suite/internal/validators"
	"github.com/MKhiriev/go-eas-suite/models"
)

type captureService struct {
	repo     store.CaptureRepository
	runID    string
	runLabel string
	now      func() time.Time

	validator validators.Validator
	logger    *logger.Logger
}

// NewCaptureService starts a run with a fresh time-ordered id; every capture
// goes to repo.
func NewCaptureService(repo store.CaptureRepository, runLabel string, logger *logger.Logger) CaptureService {
	return &captureService{
		repo:      repo,
		runID:     utils.NewUUIDGenerator().Generate(),
		runLabel:  runLabel,
		now:       time.Now,
		validator: validators.NewCaptureValidator(),
		logger:    logger,
	}
}

func (s *captureService) RunID() string {
	return s.runID
}

func (s *captureService) Capture(ctx context.Context, req models.Requirement, passed bool, detail string) error {
	verdict := models.VerdictFailed
	if passed {
		verdict = models.VerdictPassed
	}
	return s.record(ctx, req, verdict, detail)
}

func (s *captureService) Skip(ctx context.Context, req models.Requirement, reason string) error {
	return s.record(ctx, req, models.VerdictSkipped, reason)
}

func (s *captureService) record(ctx context.Context, req models.Requirement, verdict models.Verdict, detail string) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequirement, err)
	}

	c := models.Capture{
		RunID:         s.runID,
		RunLabel:      s.runLabel,
		Protocol:      req.Protocol,
		RequirementID: req.ID,
		Description:   req.Description,
		Verdict:       verdict,
		Detail:        detail,
		CapturedAt:    s.now(),
	}
	if err := s.validator.Validate(ctx, c); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		s.logger.Err(err).
			Str("func", "captureService.record").
			Str("requirement", req.Protocol+"/"+req.ID).
			Msg("capture was not recorded")
		return err
	}
	metrics.CaptureObserve(req.Protocol, string(verdict))

	event := s.logger.Info()
	if verdict == models.VerdictFailed {
		event = s.logger.Warn()
	}
	event.Str("run_id", s.runID).
		Str("requirement", req.Protocol+"/"+req.ID).
		Str("verdict", string(verdict)).
		Str("detail", detail).
		Msg("requirement captured")

	return nil
}

func (s *captureService) Summary(ctx context.Context) (models.CaptureSummary, error) {
	return s.repo.Summarize(ctx, s.runID)
}

func (s *captureService) Captures(ctx context.Context) ([]models.Capture, error) {
	return s.repo.ListByRun(ctx, s.runID)
}

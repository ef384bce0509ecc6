package suite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-eas-suite/internal/activesync"
	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/internal/service"
	"github.com/MKhiriev/go-eas-suite/models"
)

type Runner struct {
	client    *activesync.Client
	captures  service.CaptureService
	scenarios []Scenario
	logger    *logger.Logger
}

// NewRunner builds a runner for scenarios. With none given the default
// catalog is used.
func NewRunner(client *activesync.Client, captures service.CaptureService, logger *logger.Logger, scenarios ...Scenario) *Runner {
	if len(scenarios) == 0 {
		scenarios = Default()
	}
	return &Runner{
		client:    client,
		captures:  captures,
		scenarios: scenarios,
		logger:    logger,
	}
}

// Scenarios returns the scenarios in run order.
func (r *Runner) Scenarios() []Scenario {
	return r.scenarios
}

// Run executes every scenario in order and records its verdict. A failing
// scenario does not stop the run; a capture that cannot be stored or a
// cancelled ctx does.
func (r *Runner) Run(ctx context.Context) (models.CaptureSummary, error) {
	state := &State{}
	for _, s := range r.scenarios {
		if err := ctx.Err(); err != nil {
			return models.CaptureSummary{}, err
		}
		if err := r.runOne(ctx, s, state); err != nil {
			return models.CaptureSummary{}, err
		}
	}
	return r.captures.Summary(ctx)
}

func (r *Runner) runOne(ctx context.Context, s Scenario, state *State) error {
	log := r.logger.With().Str("scenario", s.Name()).Logger()
	req := s.Requirement()

	start := time.Now()
	err := s.Run(ctx, r.client, state)
	log.Debug().Dur("duration", time.Since(start)).Err(err).Msg("scenario finished")

	var recErr error
	switch {
	case err == nil:
		recErr = r.captures.Capture(ctx, req, true, "")
	case errors.Is(err, activesync.ErrPrecondition):
		recErr = r.captures.Skip(ctx, req, err.Error())
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		recErr = r.captures.Capture(ctx, req, false, err.Error())
	}
	if recErr != nil {
		return fmt.Errorf("record %s: %w", s.Name(), recErr)
	}
	return nil
}

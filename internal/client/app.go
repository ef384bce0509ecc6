package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-eas-suite/internal/activesync"
	"github.com/MKhiriev/go-eas-suite/internal/config"
	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/internal/service"
	"github.com/MKhiriev/go-eas-suite/internal/store"
	"github.com/MKhiriev/go-eas-suite/internal/suite"
	"github.com/MKhiriev/go-eas-suite/internal/tui"
)

type App struct {
	client   *activesync.Client
	storages *store.Storages
	services *service.Services
	runner   *suite.Runner
	out      io.Writer
	logger   *logger.Logger
}

// NewActiveSyncClient builds the transport and the client described by cfg.
func NewActiveSyncClient(cfg *config.StructuredConfig, log *logger.Logger) (*activesync.Client, error) {
	transport, err := activesync.NewHTTPTransport(cfg.Transport(), log)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}
	client, err := activesync.NewClient(cfg.Session(), transport, cfg.PollingBudget(), log)
	if err != nil {
		return nil, fmt.Errorf("create activesync client: %w", err)
	}
	return client, nil
}

// NewApp prepares a run of scenarios (the default catalog when empty). The
// report is written to out.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, scenarios []suite.Scenario, out io.Writer, log *logger.Logger) (*App, error) {
	client, err := NewActiveSyncClient(cfg, log)
	if err != nil {
		return nil, err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("create capture storage: %w", err)
	}

	services := service.NewServices(storages, cfg.Suite, log)
	return &App{
		client:   client,
		storages: storages,
		services: services,
		runner:   suite.NewRunner(client, services.CaptureService, log, scenarios...),
		out:      out,
		logger:   log,
	}, nil
}

// RunID identifies the captures of this run.
func (a *App) RunID() string {
	return a.services.CaptureService.RunID()
}

// Captures exposes the capture repository, e.g. for the browser.
func (a *App) Captures() tui.CaptureLister {
	return a.storages.Captures
}

// Run executes the scenarios and prints the report. It returns ErrRunFailed
// when any requirement failed.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Str("run_id", a.RunID()).
		Int("scenarios", len(a.runner.Scenarios())).
		Str("protocol_version", a.client.Session().ProtocolVersion).
		Msg("starting conformance run")

	summary, err := a.runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("run scenarios: %w", err)
	}

	captures, err := a.services.CaptureService.Captures(ctx)
	if err != nil {
		return fmt.Errorf("load captures: %w", err)
	}
	if _, err = io.WriteString(a.out, tui.RenderReport(summary, captures)); err != nil {
		return err
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRunFailed, summary.Failed, summary.Total())
	}
	return nil
}

// Close releases the capture storage.
func (a *App) Close() error {
	return a.storages.Close()
}

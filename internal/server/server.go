package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-eas-suite/internal/logger"
)

// RunUntilSignal runs s until SIGTERM, SIGINT or SIGQUIT arrives or ctx is
// done.
func RunUntilSignal(ctx context.Context, s Server, logger *logger.Logger) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	logger.Info().Str("url", s.URL()).Msg("launching stub server")
	return s.Run(ctx)
}

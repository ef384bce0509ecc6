// Package service holds the run-level services of the suite on top of the
// capture store.
package service

import (
	"github.com/MKhiriev/go-eas-suite/internal/config"
	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/internal/store"
)

type Services struct {
	CaptureService CaptureService
}

func NewServices(storages *store.Storages, cfg config.Suite, logger *logger.Logger) *Services {
	return &Services{
		CaptureService: NewCaptureService(storages.Captures, cfg.RunLabel, logger),
	}
}

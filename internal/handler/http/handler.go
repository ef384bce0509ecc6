package http

import (
	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/internal/utils"
)

// Settings configures the loopback server.
type Settings struct {
	// Username and Password are checked against basic auth. An empty
	// Username accepts every request.
	Username string
	Password string

	// Versions are advertised in MS-ASProtocolVersions.
	Versions []string
}

type Handler struct {
	script   *Script
	settings Settings
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(script *Script, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("activesync stub handler created")
	return &Handler{
		script:   script,
		settings: settings,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Script returns the reply script the handler serves from.
func (h *Handler) Script() *Script {
	return h.script
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-eas-suite/internal/activesync"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Group(func(r chi.Router) {
		r.Use(h.withBasicAuth)
		r.Options(activesync.EndpointPath, h.options)
		r.Post(activesync.EndpointPath, h.command)
		r.Post(activesync.AutodiscoverPath, h.autodiscover)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

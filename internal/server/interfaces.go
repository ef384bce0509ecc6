package server

import "context"

// Server is the lifecycle contract of the loopback server.
type Server interface {
	// Addr is the bound listen address, with the port resolved when ":0"
	// was requested.
	Addr() string

	// URL is the base URL clients connect to.
	URL() string

	// Run serves until ctx is done, then shuts down.
	Run(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown(ctx context.Context) error
}

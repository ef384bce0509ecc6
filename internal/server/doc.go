// Package server runs the loopback ActiveSync server: it binds the listener,
// serves until the context ends and then shuts down gracefully.
package server

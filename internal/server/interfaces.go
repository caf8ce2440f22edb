package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts
	// down gracefully.
	RunServer() error

	// Run serves until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error
}

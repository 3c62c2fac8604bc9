package server

import "context"

// Server defines the lifecycle contract of the gateway's transport servers.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts
	// down gracefully.
	RunServer()

	// Run serves until ctx is done or a listener fails, then shuts down
	// gracefully. It returns the listener error, if any.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every started server.
	Shutdown()
}

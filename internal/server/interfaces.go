package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down.
	RunServer()

	// Run serves until ctx is done or a transport fails, then shuts every
	// transport down. It returns the transport failure, if any.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the servers. Calling it more than once is safe.
	Shutdown()
}

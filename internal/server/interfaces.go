package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received and the server has shut down.
	RunServer()

	// Run is RunServer driven by ctx instead of OS signals. It returns once
	// ctx is done and in-flight requests have finished, or when the listener
	// fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

package server

import "context"

type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts
	// every transport down gracefully.
	RunServer() error

	// Run is RunServer driven by ctx instead of process signals.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown()
}

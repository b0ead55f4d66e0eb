package server

import "context"

type Server interface {
	// RunServer serves requests until ctx is cancelled or the process gets a
	// stop signal, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}

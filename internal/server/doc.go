// Package server runs the HTTP transport.
//
// It owns the server lifecycle: startup, stop signal handling and graceful
// shutdown with a bounded drain period.
package server

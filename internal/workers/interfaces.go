// Package workers runs background jobs next to the HTTP server.
//
// Every job implements [Worker] and is started by [Workers.Run], which
// returns once all jobs have stopped.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Package workers provides abstractions for managing and running
// background jobs in the client application.
// It defines the Job interface and a Jobs aggregate that allows
// starting and stopping multiple jobs in a unified way.
package workers

import (
	"context"
	"time"
)

// Job is the interface that must be implemented by any background job.
// Start launches the job's goroutines and returns immediately; Stop blocks
// until they have drained.
//
// Example implementation:
//
//	type MyJob struct{}
//
//	func (j *MyJob) Start(ctx context.Context, interval time.Duration) {
//	    // spawn background processing
//	}
//
//	func (j *MyJob) Stop() {}
type Job interface {
	Start(ctx context.Context, retryInterval time.Duration)
	Stop()
}

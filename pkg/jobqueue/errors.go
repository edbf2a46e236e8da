package jobqueue

import "errors"

var (
	// ErrStopped indicates that the queue's manager goroutine has terminated
	// and no further jobs can be submitted or removed.
	ErrStopped = errors.New("job queue is stopped")

	// ErrInvalidConfig indicates invalid queue configuration parameters.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNilJob indicates a nil job was submitted.
	ErrNilJob = errors.New("job cannot be nil")
)

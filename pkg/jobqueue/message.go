package jobqueue

// Message is a notification from the queue to the application. Drain the
// message channel non-blockingly once per frame, or block on it to wait for
// Empty.
//
// The concrete types are Completed, PendingRemoved, RunningRemoved,
// CompletedRemoved and Empty.
type Message[K comparable, I, O any] interface {
	message()
}

// Completed reports that a job finished and its output was retained.
type Completed[K comparable, I, O any] struct {
	Key    K
	Output O
}

// PendingRemoved reports that a job was removed before it was ever scheduled.
// The input is returned to the caller.
type PendingRemoved[K comparable, I, O any] struct {
	Key   K
	Input I
}

// RunningRemoved reports that a job was removed while a worker was executing
// it. The in-flight computation still runs to completion but its result is
// discarded.
type RunningRemoved[K comparable, I, O any] struct {
	Key K
}

// CompletedRemoved reports that a completed job was removed; its retained
// output is handed back.
type CompletedRemoved[K comparable, I, O any] struct {
	Key    K
	Output O
}

// Empty reports that the queue has fully drained: no pending and no running
// jobs remain. It fires once per drain, and again after any subsequent batch
// drains.
type Empty[K comparable, I, O any] struct{}

func (Completed[K, I, O]) message()        {}
func (PendingRemoved[K, I, O]) message()   {}
func (RunningRemoved[K, I, O]) message()   {}
func (CompletedRemoved[K, I, O]) message() {}
func (Empty[K, I, O]) message()            {}

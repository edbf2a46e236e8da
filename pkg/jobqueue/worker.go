package jobqueue

import (
	log "github.com/sirupsen/logrus"
)

// worker is a plain receive-compute-send loop. Workers hold no shared mutable
// state and never touch the graph; they terminate when the queue's done
// channel closes. A panicking handler is not recovered: it indicates a
// contract violation in the caller's job code and takes only its own worker
// down.
type worker[K comparable, D comparable, I, O any] struct {
	id      int
	jobs    <-chan workerJob[K, D, I, O]
	results chan<- workerResult[K, D, I, O]
	handler Handler[K, D, I, O]
	done    <-chan struct{}
	log     *log.Entry
}

func (w *worker[K, D, I, O]) run() {
	w.log.Trace("job queue worker started")
	defer w.log.Trace("job queue worker stopped")
	for {
		select {
		case <-w.done:
			return
		case job := <-w.jobs:
			output := w.handler(job.key, job.input, job.deps)
			// The deps slice rides back with the result so the manager can
			// recycle its backing array.
			select {
			case w.results <- workerResult[K, D, I, O]{key: job.key, output: output, deps: job.deps}:
			case <-w.done:
				return
			}
		}
	}
}

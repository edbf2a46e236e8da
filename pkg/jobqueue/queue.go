package jobqueue

import (
	"fmt"
	"runtime"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vnykmshr/voxelflow/pkg/metrics"
)

// Config holds configuration options for creating a queue.
type Config struct {
	// Name labels this queue in logs and metrics.
	Name string

	// Workers is the number of worker goroutines. Defaults to
	// runtime.NumCPU() when 0.
	Workers int

	// InFlight bounds how many jobs may be dispatched to workers at once
	// (the backpressure window). Jobs submitted while the window is full are
	// parked and pulled in as capacity frees up. Defaults to 2*Workers.
	InFlight int

	// MessageBuffer is the capacity of the notification channel. The manager
	// blocks once it fills, so size it for the worst-case burst between two
	// drains. Defaults to 1024.
	MessageBuffer int

	// DependencyBufferCap bounds how many dependency-output slices the
	// manager retains for reuse. Defaults to 64.
	DependencyBufferCap int

	// Metrics configures Prometheus instrumentation.
	Metrics metrics.Config
}

func (c Config) withDefaults() (Config, error) {
	if c.Workers < 0 || c.InFlight < 0 || c.MessageBuffer < 0 || c.DependencyBufferCap < 0 {
		return c, fmt.Errorf("%w: counts must not be negative", ErrInvalidConfig)
	}
	if c.Name == "" {
		c.Name = "default"
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.InFlight == 0 {
		c.InFlight = 2 * c.Workers
	}
	if c.MessageBuffer == 0 {
		c.MessageBuffer = 1024
	}
	if c.DependencyBufferCap == 0 {
		c.DependencyBufferCap = 64
	}
	return c, nil
}

// Queue is the public, goroutine-safe front door to the scheduler: submit
// jobs, cancel jobs, and receive lifecycle notifications. Internally it is a
// set of channel endpoints into the manager goroutine, which exclusively owns
// all graph state.
//
// A Queue owns its goroutines: StopAndJoin shuts them down deterministically.
type Queue[K comparable, D comparable, I, O any] struct {
	toManager chan request[K, D, I]
	messages  chan Message[K, I, O]
	done      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// New starts a queue with the given configuration and job handler. The
// handler runs on every worker goroutine concurrently.
func New[K comparable, D comparable, I, O any](cfg Config, handler Handler[K, D, I, O]) (*Queue[K, D, I, O], error) {
	if handler == nil {
		return nil, fmt.Errorf("%w: handler cannot be nil", ErrInvalidConfig)
	}
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	var qm *queueMetrics
	if cfg.Metrics.Enabled {
		registry := metrics.DefaultRegistry
		if cfg.Metrics.Registry != nil {
			registry = metrics.NewRegistry(cfg.Metrics.Registry)
		}
		qm = newQueueMetrics(registry, cfg.Name)
	}
	logger := log.WithField("queue", cfg.Name)

	q := &Queue[K, D, I, O]{
		toManager: make(chan request[K, D, I]),
		messages:  make(chan Message[K, I, O], cfg.MessageBuffer),
		done:      make(chan struct{}),
	}
	toWorker := make(chan workerJob[K, D, I, O], cfg.InFlight)
	fromWorker := make(chan workerResult[K, D, I, O], cfg.InFlight+cfg.Workers)

	mgr := newManager(
		q.toManager, toWorker, fromWorker, q.messages, q.done,
		cfg.InFlight, cfg.DependencyBufferCap, qm, logger,
	)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		mgr.run()
	}()

	for i := 0; i < cfg.Workers; i++ {
		w := &worker[K, D, I, O]{
			id:      i,
			jobs:    toWorker,
			results: fromWorker,
			handler: handler,
			done:    q.done,
			log:     logger.WithField("worker", i),
		}
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			w.run()
		}()
	}
	return q, nil
}

// Add submits a job. Idempotent per key: if a job with the same key already
// exists, the submission is dropped. Fails only when the queue is stopped.
func (q *Queue[K, D, I, O]) Add(job Job[K, D, I]) error {
	if job == nil {
		return ErrNilJob
	}
	select {
	case q.toManager <- request[K, D, I]{job: job}:
		return nil
	case <-q.done:
		return ErrStopped
	}
}

// Remove cancels a job and any of its dependencies that no other job still
// needs. Idempotent for unknown keys. Removal is advisory for jobs already
// running: the computation finishes but its result is discarded.
func (q *Queue[K, D, I, O]) Remove(key K) error {
	select {
	case q.toManager <- request[K, D, I]{remove: key, isRemove: true}:
		return nil
	case <-q.done:
		return ErrStopped
	}
}

// Messages returns the notification channel. Drain it non-blockingly once
// per frame (for range with a default case), or receive on it to block until
// the next event.
func (q *Queue[K, D, I, O]) Messages() <-chan Message[K, I, O] {
	return q.messages
}

// StopAndJoin shuts the queue down and blocks until the manager and all
// workers have exited. Jobs executing at that moment run to completion;
// their results are dropped. Safe to call more than once.
func (q *Queue[K, D, I, O]) StopAndJoin() {
	q.stopOnce.Do(func() {
		close(q.done)
	})
	q.wg.Wait()
}

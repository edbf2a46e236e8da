package jobqueue

import (
	log "github.com/sirupsen/logrus"
)

// request is a command from the Queue handle to the manager.
type request[K comparable, D comparable, I any] struct {
	job      Job[K, D, I] // nil for removals
	remove   K
	isRemove bool
}

// workerJob is a scheduled job handed to a worker: all dependencies are
// completed and their outputs snapshotted into deps.
type workerJob[K comparable, D comparable, I, O any] struct {
	key   K
	input I
	deps  []DependencyOutput[D, O]
}

// workerResult carries a finished job back to the manager, returning the
// dependency-output slice so its backing array can be reused.
type workerResult[K comparable, D comparable, I, O any] struct {
	key    K
	output O
	deps   []DependencyOutput[D, O]
}

type jobState uint8

const (
	statePending jobState = iota
	stateRunning
	stateCompleted
)

// jobStatus tracks a node's lifecycle. input is only valid while pending
// (moved out on dispatch, not copied), output only once completed.
type jobStatus[I, O any] struct {
	state  jobState
	input  I
	output O
}

type addItem[K comparable, D comparable, I any] struct {
	job       Job[K, D, I]
	hasParent bool
	parent    K
	kind      D
}

// manager owns the dependency graph and all job-status bookkeeping. It is the
// only goroutine that reads or writes graph state, so none of its fields need
// synchronization. It terminates when the queue's done channel closes; that
// is the only shutdown condition.
type manager[K comparable, D comparable, I, O any] struct {
	fromQueue  <-chan request[K, D, I]
	toWorker   chan<- workerJob[K, D, I, O]
	fromWorker <-chan workerResult[K, D, I, O]
	toQueue    chan<- Message[K, I, O]
	done       <-chan struct{}

	// inFlight bounds the number of jobs dispatched to workers at once.
	// Jobs submitted while the window is full are parked, not inserted.
	inFlight int

	graph  *depGraph[K, D]
	status map[K]*jobStatus[I, O]
	parked *fifoMap[K, Job[K, D, I]]
	ready  *fifoMap[K, struct{}]

	pending uint32
	running uint32

	// Reused scratch space, sized once and kept across handles.
	depBufs  [][]DependencyOutput[D, O]
	addStack []addItem[K, D, I]
	newKeys  []K
	bfsQueue []K
	bfsSeen  map[K]struct{}
	depKeys  []K

	metrics *queueMetrics
	log     *log.Entry
}

func newManager[K comparable, D comparable, I, O any](
	fromQueue <-chan request[K, D, I],
	toWorker chan<- workerJob[K, D, I, O],
	fromWorker <-chan workerResult[K, D, I, O],
	toQueue chan<- Message[K, I, O],
	done <-chan struct{},
	inFlight int,
	depBufferCap int,
	qm *queueMetrics,
	logger *log.Entry,
) *manager[K, D, I, O] {
	return &manager[K, D, I, O]{
		fromQueue:  fromQueue,
		toWorker:   toWorker,
		fromWorker: fromWorker,
		toQueue:    toQueue,
		done:       done,
		inFlight:   inFlight,
		graph:      newDepGraph[K, D](),
		status:     make(map[K]*jobStatus[I, O]),
		parked:     newFifoMap[K, Job[K, D, I]](),
		ready:      newFifoMap[K, struct{}](),
		depBufs:    make([][]DependencyOutput[D, O], 0, depBufferCap),
		bfsSeen:    make(map[K]struct{}),
		metrics:    qm,
		log:        logger,
	}
}

func (m *manager[K, D, I, O]) run() {
	m.log.Trace("job queue manager started")
	defer m.log.Trace("job queue manager stopped")
	for {
		select {
		case <-m.done:
			return
		case req := <-m.fromQueue:
			var ok bool
			if req.isRemove {
				ok = m.tryRemoveJobAndOrphanedDependencies(req.remove)
			} else {
				ok = m.tryAddJob(req.job)
			}
			if !ok {
				return
			}
			m.observeGauges()
		case res := <-m.fromWorker:
			if !m.handleFromWorker(res) {
				return
			}
			m.observeGauges()
		}
	}
}

// tryAddJob is idempotent per key: a job whose key is already in the graph or
// in the parked buffer is dropped.
func (m *manager[K, D, I, O]) tryAddJob(job Job[K, D, I]) bool {
	key := job.Key()
	if _, ok := m.status[key]; ok {
		return true
	}
	if m.parked.contains(key) {
		return true
	}
	m.parked.push(key, job)
	return m.runAndAddJobsUntilTarget()
}

// forceAddJobAndDependencies inserts a job and its whole dependency closure
// into the graph as pending nodes, then tries to schedule every node it
// inserted. The walk is an explicit work-list, not recursion, so deep
// dependency chains cannot overflow the stack.
func (m *manager[K, D, I, O]) forceAddJobAndDependencies(job Job[K, D, I]) {
	m.addStack = m.addStack[:0]
	m.newKeys = m.newKeys[:0]
	m.addStack = append(m.addStack, addItem[K, D, I]{job: job})
	for len(m.addStack) > 0 {
		it := m.addStack[len(m.addStack)-1]
		m.addStack = m.addStack[:len(m.addStack)-1]
		key := it.job.Key()
		if it.hasParent {
			m.graph.addEdge(it.parent, key, it.kind)
		}
		if _, ok := m.status[key]; ok {
			continue
		}
		// Force-adding supersedes a parked entry for the same key.
		m.parked.remove(key)
		input, deps := it.job.Decompose()
		m.graph.addNode(key)
		m.status[key] = &jobStatus[I, O]{state: statePending, input: input}
		m.pending++
		m.newKeys = append(m.newKeys, key)
		m.log.WithField("job", key).Trace("added job")
		for _, dep := range deps {
			m.addStack = append(m.addStack, addItem[K, D, I]{
				job:       dep.Job,
				hasParent: true,
				parent:    key,
				kind:      dep.Kind,
			})
		}
	}
	for _, key := range m.newKeys {
		m.tryScheduleJob(key)
	}
}

// tryScheduleJob marks a pending job ready once every dependency is
// completed. Calling it for a non-pending or unknown key is a no-op, so it is
// safe to call defensively after any graph mutation.
func (m *manager[K, D, I, O]) tryScheduleJob(key K) {
	st, ok := m.status[key]
	if !ok || st.state != statePending {
		return
	}
	for dep := range m.graph.dependenciesOf(key) {
		if dst, ok := m.status[dep]; !ok || dst.state != stateCompleted {
			return
		}
	}
	m.ready.push(key, struct{}{})
}

// runPendingJob dispatches one pending job to the workers, snapshotting its
// dependency outputs. The input moves out of the status record; it is not
// copied.
func (m *manager[K, D, I, O]) runPendingJob(key K) bool {
	st, ok := m.status[key]
	if !ok || st.state != statePending {
		return true
	}
	deps := m.takeDepBuf()
	for dep, kind := range m.graph.dependenciesOf(key) {
		deps = append(deps, DependencyOutput[D, O]{Kind: kind, Output: m.status[dep].output})
	}
	input := st.input
	var zero I
	st.input = zero
	st.state = stateRunning
	m.pending--
	m.running++
	m.log.WithField("job", key).Trace("running job")
	select {
	case m.toWorker <- workerJob[K, D, I, O]{key: key, input: input, deps: deps}:
		return true
	case <-m.done:
		return false
	}
}

func (m *manager[K, D, I, O]) runJobsUntilTarget() bool {
	for m.ready.len() > 0 && int(m.running) < m.inFlight {
		key, _, _ := m.ready.popFront()
		if !m.runPendingJob(key) {
			return false
		}
	}
	return true
}

// runAndAddJobsUntilTarget first dispatches jobs that are already ready, so
// work deep in the graph gets priority, then pulls parked jobs in as long as
// the in-flight window has room.
func (m *manager[K, D, I, O]) runAndAddJobsUntilTarget() bool {
	if !m.runJobsUntilTarget() {
		return false
	}
	for m.parked.len() > 0 && int(m.running) < m.inFlight {
		_, job, _ := m.parked.popFront()
		m.forceAddJobAndDependencies(job)
		if !m.runJobsUntilTarget() {
			return false
		}
	}
	return true
}

// handleFromWorker applies a worker result. A result for a job that is no
// longer running under that key is stale (the job was removed, and possibly
// re-added, while executing) and is silently discarded.
func (m *manager[K, D, I, O]) handleFromWorker(res workerResult[K, D, I, O]) bool {
	m.reclaimDepBuf(res.deps)
	st, ok := m.status[res.key]
	if !ok || st.state != stateRunning {
		m.log.WithField("job", res.key).Trace("discarded stale result")
		m.countStale()
		return true
	}
	st.state = stateCompleted
	st.output = res.output
	m.log.WithField("job", res.key).Trace("completed job")
	m.countCompleted()
	if !m.send(Completed[K, I, O]{Key: res.key, Output: res.output}) {
		return false
	}
	if !m.decrementRunningJobs() {
		return false
	}
	for depender := range m.graph.dependentsOf(res.key) {
		m.tryScheduleJob(depender)
	}
	return m.runAndAddJobsUntilTarget()
}

// tryRemoveJobAndOrphanedDependencies cancels a job and, transitively, every
// dependency of it that no other job still needs. Breadth-first from the
// removed key over dependency edges; a node is only removable once it has no
// dependents left.
func (m *manager[K, D, I, O]) tryRemoveJobAndOrphanedDependencies(key K) bool {
	if _, ok := m.parked.remove(key); ok {
		return true // Never made it into the graph.
	}
	if _, ok := m.status[key]; !ok {
		return true // Unknown key: removal is idempotent.
	}
	m.bfsQueue = m.bfsQueue[:0]
	clear(m.bfsSeen)
	m.bfsQueue = append(m.bfsQueue, key)
	m.bfsSeen[key] = struct{}{}
	for head := 0; head < len(m.bfsQueue); head++ {
		k := m.bfsQueue[head]
		if m.graph.hasDependents(k) {
			// Still needed. Forget we saw it so a later removal in this
			// same traversal can re-discover it.
			delete(m.bfsSeen, k)
			continue
		}
		st, ok := m.status[k]
		if !ok {
			continue
		}
		m.depKeys = m.depKeys[:0]
		for dep := range m.graph.dependenciesOf(k) {
			m.depKeys = append(m.depKeys, dep)
		}
		m.graph.removeNode(k)
		m.ready.remove(k)
		delete(m.status, k)
		m.log.WithField("job", k).Trace("removed job")
		m.countRemoved()
		switch st.state {
		case statePending:
			if !m.send(PendingRemoved[K, I, O]{Key: k, Input: st.input}) {
				return false
			}
			if !m.decrementPendingJobs() {
				return false
			}
		case stateRunning:
			// The in-flight computation still runs; its result will no
			// longer match a running status and gets discarded.
			if !m.send(RunningRemoved[K, I, O]{Key: k}) {
				return false
			}
			if !m.decrementRunningJobs() {
				return false
			}
		case stateCompleted:
			if !m.send(CompletedRemoved[K, I, O]{Key: k, Output: st.output}) {
				return false
			}
		}
		for _, dep := range m.depKeys {
			if _, seen := m.bfsSeen[dep]; !seen {
				m.bfsSeen[dep] = struct{}{}
				m.bfsQueue = append(m.bfsQueue, dep)
			}
		}
	}
	return true
}

func (m *manager[K, D, I, O]) decrementPendingJobs() bool {
	if m.pending == 0 {
		panic("jobqueue: pending job count underflow")
	}
	m.pending--
	if m.pending == 0 && m.running == 0 {
		return m.send(Empty[K, I, O]{})
	}
	return true
}

func (m *manager[K, D, I, O]) decrementRunningJobs() bool {
	if m.running == 0 {
		panic("jobqueue: running job count underflow")
	}
	m.running--
	if m.running == 0 && m.pending == 0 {
		return m.send(Empty[K, I, O]{})
	}
	return true
}

func (m *manager[K, D, I, O]) send(msg Message[K, I, O]) bool {
	select {
	case m.toQueue <- msg:
		return true
	case <-m.done:
		return false
	}
}

func (m *manager[K, D, I, O]) takeDepBuf() []DependencyOutput[D, O] {
	if n := len(m.depBufs); n > 0 {
		buf := m.depBufs[n-1]
		m.depBufs = m.depBufs[:n-1]
		return buf
	}
	return nil
}

func (m *manager[K, D, I, O]) reclaimDepBuf(buf []DependencyOutput[D, O]) {
	if buf == nil || len(m.depBufs) == cap(m.depBufs) {
		return
	}
	m.depBufs = append(m.depBufs, buf[:0])
}

func (m *manager[K, D, I, O]) observeGauges() {
	if m.metrics == nil {
		return
	}
	m.metrics.pending.Set(float64(m.pending))
	m.metrics.running.Set(float64(m.running))
	m.metrics.parked.Set(float64(m.parked.len()))
}

func (m *manager[K, D, I, O]) countCompleted() {
	if m.metrics != nil {
		m.metrics.completed.Inc()
	}
}

func (m *manager[K, D, I, O]) countStale() {
	if m.metrics != nil {
		m.metrics.stale.Inc()
	}
}

func (m *manager[K, D, I, O]) countRemoved() {
	if m.metrics != nil {
		m.metrics.removed.Inc()
	}
}

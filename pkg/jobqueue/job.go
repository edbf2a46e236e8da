package jobqueue

// Job is a unit of work identified by a caller-supplied key. A job decomposes
// into an input value and the dependency jobs that must complete before it may
// run. Key must be deterministic and independent of the dependency set: the
// queue guarantees at most one job per key is ever in the graph.
type Job[K comparable, D comparable, I any] interface {
	// Key returns the job's identity.
	Key() K

	// Decompose splits the job into its input and its dependencies.
	// It is called exactly once, on the manager goroutine, when the job is
	// inserted into the graph.
	Decompose() (I, []Dependency[K, D, I])
}

// Dependency names a job that must complete first, tagged with a kind that
// tells the depender why it needs it (for example "regular samples" versus
// "positive-X border samples").
type Dependency[K comparable, D comparable, I any] struct {
	Kind D
	Job  Job[K, D, I]
}

// DependencyOutput pairs a dependency kind with the completed output of the
// dependency it was attached to. Outputs are shared between dependents, so
// they must be treated as immutable.
type DependencyOutput[D comparable, O any] struct {
	Kind   D
	Output O
}

// Handler computes a job's output from its input and the outputs of its
// dependencies. Handlers run concurrently on worker goroutines and must not
// share mutable state. A handler that panics takes its worker down with it;
// panics signal contract violations, not runtime conditions.
type Handler[K comparable, D comparable, I, O any] func(key K, input I, deps []DependencyOutput[D, O]) O

// JobFunc adapts a key, an input and a dependency list into a Job without
// defining a new type.
type JobFunc[K comparable, D comparable, I any] struct {
	JobKey K
	Input  I
	Deps   []Dependency[K, D, I]
}

// Key implements Job.
func (j JobFunc[K, D, I]) Key() K { return j.JobKey }

// Decompose implements Job.
func (j JobFunc[K, D, I]) Decompose() (I, []Dependency[K, D, I]) { return j.Input, j.Deps }

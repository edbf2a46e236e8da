/*
Package jobqueue provides an asynchronous, dependency-aware job scheduler.

Jobs are keyed values that decompose into an input and a set of dependency
jobs. A single manager goroutine owns a mutable dependency DAG and all status
bookkeeping; N worker goroutines execute job handlers. All coordination is by
channel ownership transfer, never by shared locks.

Guarantees:

  - At most one job per key is ever in the graph (submission is idempotent).
  - A job is dispatched only after every dependency has completed, and it
    receives a consistent snapshot of their outputs.
  - The in-flight window bounds how many jobs run concurrently; excess
    submissions are parked and drained in FIFO order as capacity frees up.
  - Removing a job also removes dependencies nobody else needs, and a result
    arriving for a removed job is silently discarded.
  - An Empty message fires each time the queue fully drains.

There is no FIFO ordering across unrelated jobs: scheduling follows graph
topology, not submission order.

Example usage:

	queue, err := jobqueue.New[string, string, int, int](
		jobqueue.Config{Workers: 4},
		func(key string, input int, deps []jobqueue.DependencyOutput[string, int]) int {
			sum := input
			for _, d := range deps {
				sum += d.Output
			}
			return sum
		},
	)
	if err != nil {
		return err
	}
	defer queue.StopAndJoin()

	base := jobqueue.JobFunc[string, string, int]{JobKey: "base", Input: 1}
	queue.Add(jobqueue.JobFunc[string, string, int]{
		JobKey: "total",
		Input:  10,
		Deps:   []jobqueue.Dependency[string, string, int]{{Kind: "sum", Job: base}},
	})

	for msg := range queue.Messages() {
		if done, ok := msg.(jobqueue.Completed[string, int, int]); ok && done.Key == "total" {
			fmt.Println(done.Output)
			break
		}
	}
*/
package jobqueue

package benchmark

import (
	"fmt"
	"testing"

	"github.com/vnykmshr/voxelflow/pkg/jobqueue"
)

type benchJob = jobqueue.JobFunc[int, uint8, int]

// BenchmarkJobQueueThroughput measures end-to-end completion of independent
// jobs across worker counts.
func BenchmarkJobQueueThroughput(b *testing.B) {
	workerCounts := []int{2, 4, 8}

	for _, workers := range workerCounts {
		b.Run(workerLabel(workers), func(b *testing.B) {
			handler := func(_ int, input int, _ []jobqueue.DependencyOutput[uint8, int]) int {
				return input * 2
			}
			queue, err := jobqueue.New(jobqueue.Config{
				Workers:       workers,
				InFlight:      workers * 4,
				MessageBuffer: 4096,
			}, handler)
			if err != nil {
				b.Fatalf("failed to create queue: %v", err)
			}
			defer queue.StopAndJoin()

			b.ReportAllocs()
			b.ResetTimer()
			completed := 0
			for i := 0; i < b.N; i++ {
				if err := queue.Add(benchJob{JobKey: i, Input: i}); err != nil {
					b.Fatalf("failed to add job: %v", err)
				}
				// Drain opportunistically so the message buffer never stalls
				// the manager.
			drain:
				for {
					select {
					case msg := <-queue.Messages():
						if _, ok := msg.(jobqueue.Completed[int, int, int]); ok {
							completed++
						}
					default:
						break drain
					}
				}
			}
			for completed < b.N {
				if _, ok := (<-queue.Messages()).(jobqueue.Completed[int, int, int]); ok {
					completed++
				}
			}
		})
	}
}

// BenchmarkJobQueueDependencyChain measures scheduling overhead for a linear
// dependency chain, where every completion unlocks exactly one job.
func BenchmarkJobQueueDependencyChain(b *testing.B) {
	const depth = 64

	handler := func(_ int, input int, deps []jobqueue.DependencyOutput[uint8, int]) int {
		total := input
		for _, d := range deps {
			total += d.Output
		}
		return total
	}
	queue, err := jobqueue.New(jobqueue.Config{
		Workers:       4,
		InFlight:      8,
		MessageBuffer: 4096,
	}, handler)
	if err != nil {
		b.Fatalf("failed to create queue: %v", err)
	}
	defer queue.StopAndJoin()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Keys are disjoint per iteration so every chain is fresh.
		base := i * depth
		chain := jobqueue.Job[int, uint8, int](benchJob{JobKey: base, Input: 1})
		for j := 1; j < depth; j++ {
			chain = benchJob{
				JobKey: base + j,
				Input:  1,
				Deps:   []jobqueue.Dependency[int, uint8, int]{{Kind: 0, Job: chain}},
			}
		}
		if err := queue.Add(chain); err != nil {
			b.Fatalf("failed to add chain: %v", err)
		}
		for done := 0; done < depth; {
			if _, ok := (<-queue.Messages()).(jobqueue.Completed[int, int, int]); ok {
				done++
			}
		}
	}
}

func workerLabel(workers int) string {
	return fmt.Sprintf("workers-%d", workers)
}

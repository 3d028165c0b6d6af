package concurrent

import (
	"sync"
)

// WorkerPool fixed number of goroutines draining a buffered job queue.
// usage: AddJob..., Close, Start, Wait, then CollectResults / CollectOrdered.
type WorkerPool[T JobI, G any] struct {
	numWorkers int
	jobQueue   chan Job[T]
	results    chan Result[G]
	wg         sync.WaitGroup
	nextID     int
}

// NewWorkerPool. jobQueueSize must be >= number of jobs added before Start.
func NewWorkerPool[T JobI, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan Job[T], jobQueueSize),
		results:    make(chan Result[G], jobQueueSize),
	}
}

// AddJob enqueues item with the next sequential id, starting at 0.
func (wp *WorkerPool[T, G]) AddJob(item T) {
	wp.jobQueue <- Job[T]{ID: wp.nextID, JobItem: item}
	wp.nextID++
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

func (wp *WorkerPool[T, G]) Start(fn JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(fn)
	}
}

func (wp *WorkerPool[T, G]) worker(fn JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- Result[G]{ID: job.ID, Value: fn(job.JobItem)}
	}
}

func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// CollectResults results in completion order.
func (wp *WorkerPool[T, G]) CollectResults() <-chan Result[G] {
	return wp.results
}

// CollectOrdered results indexed by job id. call after Wait.
func (wp *WorkerPool[T, G]) CollectOrdered() []G {
	ordered := make([]G, wp.nextID)
	for res := range wp.results {
		ordered[res.ID] = res.Value
	}
	return ordered
}

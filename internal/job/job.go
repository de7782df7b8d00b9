package job

import (
	"time"
)

type Job interface {
	Execute()
}

type JobQueue chan Job

type Dispatcher struct {
	queue JobQueue
}

func NewDispatcher(size int) *Dispatcher {
	return &Dispatcher{queue: make(JobQueue, size)}
}

func (d *Dispatcher) Queue() JobQueue {
	return d.queue
}

// Dispatch queues the job after the delay. The returned stop function drops
// the job if it has not entered the queue yet; stopping a queued or executed
// job has no effect.
func (d *Dispatcher) Dispatch(j Job, delay time.Duration) (stop func()) {
	timer := time.AfterFunc(delay, func() {
		d.queue <- j
	})

	return func() {
		timer.Stop()
	}
}

type WorkerPool struct {
	workers []Worker
}

func NewWorkerPool(size int, queue JobQueue) *WorkerPool {
	workers := make([]Worker, size)
	for i := 0; i < size; i++ {
		workers[i] = NewWorker(queue)
	}
	return &WorkerPool{workers}
}

func (p *WorkerPool) Start() {
	for _, worker := range p.workers {
		worker.Start()
	}
}

type Worker struct {
	jobQueue JobQueue
}

func NewWorker(jobQueue JobQueue) Worker {
	return Worker{jobQueue}
}

func (w *Worker) Start() {
	go func() {
		for job := range w.jobQueue {
			job.Execute()
		}
	}()
}

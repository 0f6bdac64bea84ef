// Package worker runs simulated generation jobs on a small pool. Each
// submission carries its own context: cancelling it (for example when the
// hosting editor is closed) halts that job at its next step without
// touching the pool or other jobs.
package worker

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Job is a unit of work. Execute must return promptly once ctx is
// cancelled; long operations check ctx between steps.
type Job interface {
	Execute(ctx context.Context) error
	ID() string
}

// submission pairs a job with the cancellation token it was queued under.
type submission struct {
	ctx context.Context
	job Job
}

// Worker pulls submissions from its own channel, registering that channel
// with the shared pool whenever it is idle.
type Worker struct {
	id         int
	workerPool chan chan submission
	jobChannel chan submission
	quit       chan bool
	wg         *sync.WaitGroup
	log        *logrus.Logger
}

// NewWorker creates a worker attached to the dispatcher's pool.
func NewWorker(id int, workerPool chan chan submission, wg *sync.WaitGroup, log *logrus.Logger) Worker {
	return Worker{
		id:         id,
		workerPool: workerPool,
		jobChannel: make(chan submission),
		quit:       make(chan bool),
		wg:         wg,
		log:        log,
	}
}

// Start makes the worker listen for submissions on its job channel.
func (w Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			w.workerPool <- w.jobChannel

			select {
			case sub := <-w.jobChannel:
				w.run(sub)
			case <-w.quit:
				w.log.WithField("worker", w.id).Debug("Worker stopping")
				return
			}
		}
	}()
}

func (w Worker) run(sub submission) {
	entry := w.log.WithFields(logrus.Fields{"worker": w.id, "job": sub.job.ID()})

	// A submission whose session was cancelled while queued still runs its
	// Execute: the first ctx check inside returns immediately, and wrappers
	// that track terminal state get to observe the cancellation.
	entry.Info("Job started")
	if err := sub.job.Execute(sub.ctx); err != nil {
		if sub.ctx.Err() != nil {
			entry.WithField("error", err.Error()).Warn("Job cancelled")
		} else {
			entry.WithField("error", err.Error()).Error("Job failed")
		}
		return
	}
	entry.Info("Job finished")
}

// Stop signals the worker to exit after its current job.
func (w Worker) Stop() {
	go func() {
		w.quit <- true
	}()
}

// Dispatcher owns the pool of workers and the bounded submission queue.
type Dispatcher struct {
	maxWorkers int
	workerPool chan chan submission
	jobQueue   chan submission
	workers    []Worker
	wg         sync.WaitGroup
	quit       chan bool
	log        *logrus.Logger
}

// NewDispatcher creates a dispatcher with maxWorkers workers and a queue of
// jobQueueSize pending submissions.
func NewDispatcher(maxWorkers, jobQueueSize int, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		maxWorkers: maxWorkers,
		workerPool: make(chan chan submission, maxWorkers),
		jobQueue:   make(chan submission, jobQueueSize),
		workers:    make([]Worker, 0, maxWorkers),
		quit:       make(chan bool),
		log:        log,
	}
}

// Run starts the workers and the dispatch loop.
func (d *Dispatcher) Run() {
	d.log.WithField("workers", d.maxWorkers).Info("Dispatcher starting")
	for i := 1; i <= d.maxWorkers; i++ {
		w := NewWorker(i, d.workerPool, &d.wg, d.log)
		d.workers = append(d.workers, w)
		w.Start()
	}
	go d.dispatch()
}

func (d *Dispatcher) dispatch() {
	for {
		select {
		case sub := <-d.jobQueue:
			go func(sub submission) {
				jobChannel := <-d.workerPool
				jobChannel <- sub
			}(sub)
		case <-d.quit:
			return
		}
	}
}

// Submit queues a job under ctx. It returns false when the queue is full;
// the job is discarded in that case, not retried.
func (d *Dispatcher) Submit(ctx context.Context, job Job) bool {
	select {
	case d.jobQueue <- submission{ctx: ctx, job: job}:
		d.log.WithField("job", job.ID()).Debug("Job submitted")
		return true
	default:
		d.log.WithField("job", job.ID()).Warn("Job queue full, submission dropped")
		return false
	}
}

// Stop shuts down the dispatch loop and waits for all workers to finish
// their current jobs.
func (d *Dispatcher) Stop() {
	d.quit <- true
	for _, w := range d.workers {
		w.Stop()
	}
	d.wg.Wait()
	d.log.Info("Dispatcher stopped")
}

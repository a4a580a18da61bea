package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/core-banking/internal/logger"
)

const jobTimeout = 10 * time.Minute

// WorkerPool runs queued jobs on a fixed number of goroutines. Jobs from the
// same batch may run concurrently; the transfer engine's per-account locking
// keeps overlapping account access safe.
type WorkerPool struct {
	workerCount int
	jobDelay    time.Duration
	jobs        chan Job
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewWorkerPool(workerCount int, jobDelay time.Duration, queueSize int) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workerCount: workerCount,
		jobDelay:    jobDelay,
		jobs:        make(chan Job, queueSize),
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (wp *WorkerPool) Start() {
	for i := 1; i <= wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Submit queues a job for execution. It returns false when the queue is full
// or the pool is shutting down; the job is dropped, not blocked on.
func (wp *WorkerPool) Submit(job Job) bool {
	select {
	case <-wp.ctx.Done():
		return false
	case wp.jobs <- job:
		return true
	default:
		logger.Warn("worker pool queue full, dropping job", logger.Fields{
			"job": job.Name(),
		})
		return false
	}
}

// Stop cancels running jobs and waits for the workers to drain.
func (wp *WorkerPool) Stop() {
	wp.cancel()
	wp.wg.Wait()
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			return
		case job, ok := <-wp.jobs:
			if !ok {
				return
			}

			wp.processJob(id, job)

			if wp.jobDelay > 0 {
				select {
				case <-time.After(wp.jobDelay):
				case <-wp.ctx.Done():
					return
				}
			}
		}
	}
}

func (wp *WorkerPool) processJob(workerID int, job Job) {
	ctx, cancel := context.WithTimeout(wp.ctx, jobTimeout)
	defer cancel()

	start := time.Now()
	err := job.Execute(ctx)
	if err != nil {
		logger.Error("scheduled job failed", err, logger.Fields{
			"worker":     workerID,
			"job":        job.Name(),
			"durationMs": time.Since(start).Milliseconds(),
		})
		return
	}

	logger.Info("scheduled job finished", logger.Fields{
		"worker":     workerID,
		"job":        job.Name(),
		"durationMs": time.Since(start).Milliseconds(),
	})
}

package scheduler

import "context"

// Job is one unit of periodic work. The accrual run, the recurring payment
// run and the rate refresh are each a Job.
type Job interface {
	// Execute runs the job; the context is cancelled on shutdown.
	Execute(ctx context.Context) error

	// Name identifies the job in logs.
	Name() string
}

// FuncJob adapts a plain function to the Job interface.
type FuncJob struct {
	JobName string
	Run     func(ctx context.Context) error
}

func (j FuncJob) Execute(ctx context.Context) error { return j.Run(ctx) }
func (j FuncJob) Name() string                      { return j.JobName }

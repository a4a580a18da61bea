package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/api-sage/core-banking/internal/logger"
)

// ScheduleTime is a time of day at which the scheduler fires a batch.
type ScheduleTime struct {
	Hour   int
	Minute int
}

func (st ScheduleTime) String() string {
	return fmt.Sprintf("%02d:%02d", st.Hour, st.Minute)
}

// ParseScheduleTime parses a time string in HH:MM format.
func ParseScheduleTime(s string) (ScheduleTime, error) {
	var hour, minute int
	_, err := fmt.Sscanf(s, "%d:%d", &hour, &minute)
	if err != nil {
		return ScheduleTime{}, fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}

	if hour < 0 || hour > 23 {
		return ScheduleTime{}, fmt.Errorf("invalid hour: %d (must be 0-23)", hour)
	}
	if minute < 0 || minute > 59 {
		return ScheduleTime{}, fmt.Errorf("invalid minute: %d (must be 0-59)", minute)
	}

	return ScheduleTime{Hour: hour, Minute: minute}, nil
}

// Scheduler fires the configured jobs at fixed times of day, plus once at
// startup when RunOnStartup is set.
type Scheduler struct {
	workerPool    *WorkerPool
	scheduleTimes []ScheduleTime
	runOnStartup  bool
	jobs          []Job

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	lastRun map[string]string
}

type Config struct {
	ScheduleTimes []string
	WorkerCount   int
	JobDelay      time.Duration
	QueueSize     int
	RunOnStartup  bool
	Jobs          []Job
}

func New(config Config) (*Scheduler, error) {
	scheduleTimes := make([]ScheduleTime, 0, len(config.ScheduleTimes))
	for _, timeStr := range config.ScheduleTimes {
		st, err := ParseScheduleTime(timeStr)
		if err != nil {
			return nil, fmt.Errorf("parse schedule time %q: %w", timeStr, err)
		}
		scheduleTimes = append(scheduleTimes, st)
	}

	if len(scheduleTimes) == 0 {
		return nil, fmt.Errorf("at least one schedule time is required")
	}
	if len(config.Jobs) == 0 {
		return nil, fmt.Errorf("at least one job is required")
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		workerPool:    NewWorkerPool(config.WorkerCount, config.JobDelay, config.QueueSize),
		scheduleTimes: scheduleTimes,
		runOnStartup:  config.RunOnStartup,
		jobs:          config.Jobs,
		ctx:           ctx,
		cancel:        cancel,
		lastRun:       make(map[string]string),
	}, nil
}

func (s *Scheduler) Start() {
	logger.Info("scheduler starting", logger.Fields{
		"scheduleTimes": fmt.Sprintf("%v", s.scheduleTimes),
		"jobs":          len(s.jobs),
	})

	s.workerPool.Start()

	if s.runOnStartup {
		s.submitBatch()
	}

	s.wg.Add(1)
	go s.scheduleLoop()
}

// Stop shuts down the ticker loop and the worker pool.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	s.workerPool.Stop()
	logger.Info("scheduler stopped", nil)
}

func (s *Scheduler) scheduleLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case now := <-ticker.C:
			s.maybeFire(now)
		}
	}
}

// maybeFire submits a batch when the wall clock matches a schedule time. The
// lastRun guard keeps a slow minute tick from firing the same slot twice and
// a fast one from firing on consecutive checks within the same minute.
func (s *Scheduler) maybeFire(now time.Time) {
	current := ScheduleTime{Hour: now.Hour(), Minute: now.Minute()}
	date := now.Format("2006-01-02")

	for _, st := range s.scheduleTimes {
		if st != current {
			continue
		}

		key := st.String()
		s.mu.Lock()
		already := s.lastRun[key] == date
		if !already {
			s.lastRun[key] = date
		}
		s.mu.Unlock()

		if !already {
			logger.Info("scheduler firing batch", logger.Fields{
				"scheduleTime": key,
			})
			s.submitBatch()
		}
	}
}

func (s *Scheduler) submitBatch() {
	for _, job := range s.jobs {
		s.workerPool.Submit(job)
	}
}

package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheduleTime(t *testing.T) {
	tests := []struct {
		input   string
		want    ScheduleTime
		wantErr bool
	}{
		{input: "02:00", want: ScheduleTime{Hour: 2, Minute: 0}},
		{input: "23:59", want: ScheduleTime{Hour: 23, Minute: 59}},
		{input: "0:5", want: ScheduleTime{Hour: 0, Minute: 5}},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "-1:30", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseScheduleTime(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestScheduleTimeString(t *testing.T) {
	assert.Equal(t, "02:05", ScheduleTime{Hour: 2, Minute: 5}.String())
}

func TestNewRequiresTimesAndJobs(t *testing.T) {
	noop := FuncJob{JobName: "noop", Run: func(context.Context) error { return nil }}

	_, err := New(Config{Jobs: []Job{noop}})
	assert.Error(t, err)

	_, err = New(Config{ScheduleTimes: []string{"02:00"}})
	assert.Error(t, err)

	_, err = New(Config{ScheduleTimes: []string{"25:00"}, Jobs: []Job{noop}})
	assert.Error(t, err)

	s, err := New(Config{ScheduleTimes: []string{"02:00"}, Jobs: []Job{noop}})
	require.NoError(t, err)
	require.NotNil(t, s)
	s.cancel()
}

func TestMaybeFireRunsOncePerSlotPerDay(t *testing.T) {
	var runs atomic.Int32
	job := FuncJob{JobName: "count", Run: func(context.Context) error {
		runs.Add(1)
		return nil
	}}

	s, err := New(Config{
		ScheduleTimes: []string{"02:00"},
		WorkerCount:   1,
		QueueSize:     4,
		Jobs:          []Job{job},
	})
	require.NoError(t, err)
	s.workerPool.Start()
	defer s.workerPool.Stop()

	slot := time.Date(2026, 3, 10, 2, 0, 30, 0, time.UTC)

	s.maybeFire(slot)
	s.maybeFire(slot.Add(10 * time.Second))
	s.maybeFire(slot.Add(20 * time.Second))

	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond,
		"the same slot must fire exactly once per day")

	// A different wall-clock time never fires.
	s.maybeFire(slot.Add(time.Hour))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	// The next day the slot fires again.
	s.maybeFire(slot.AddDate(0, 0, 1))
	require.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 10*time.Millisecond)
}

func TestStartupRunSubmitsEveryJob(t *testing.T) {
	var first, second atomic.Int32
	s, err := New(Config{
		ScheduleTimes: []string{"02:00"},
		WorkerCount:   2,
		QueueSize:     4,
		RunOnStartup:  true,
		Jobs: []Job{
			FuncJob{JobName: "first", Run: func(context.Context) error { first.Add(1); return nil }},
			FuncJob{JobName: "second", Run: func(context.Context) error { second.Add(1); return nil }},
		},
	})
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool {
		return first.Load() == 1 && second.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestWorkerPoolDropsWhenQueueFull(t *testing.T) {
	release := make(chan struct{})
	blocking := FuncJob{JobName: "blocking", Run: func(ctx context.Context) error {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	}}

	wp := NewWorkerPool(1, 0, 1)
	wp.Start()
	defer func() {
		close(release)
		wp.Stop()
	}()

	// First job occupies the worker, second fills the queue; after that the
	// pool sheds load instead of blocking the scheduler loop.
	require.True(t, wp.Submit(blocking))
	require.Eventually(t, func() bool { return wp.Submit(blocking) }, time.Second, time.Millisecond)
	assert.False(t, wp.Submit(blocking))
}

func TestWorkerPoolStopCancelsRunningJob(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})
	job := FuncJob{JobName: "waits", Run: func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}}

	wp := NewWorkerPool(1, 0, 1)
	wp.Start()
	require.True(t, wp.Submit(job))
	<-started

	wp.Stop()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("running job was not cancelled on Stop")
	}
}

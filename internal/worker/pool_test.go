package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testJob struct {
	executed *atomic.Int32
	err      error
	panics   bool
}

func (j *testJob) Process(ctx context.Context) error {
	j.executed.Add(1)
	if j.panics {
		panic("boom")
	}
	return j.err
}

type slowJob struct{ sawDeadline atomic.Bool }

func (j *slowJob) Name() string { return "slow" }

func (j *slowJob) Process(ctx context.Context) error {
	<-ctx.Done()
	j.sawDeadline.Store(errors.Is(ctx.Err(), context.DeadlineExceeded))
	return ctx.Err()
}

func TestPool_RunsJobsAndSurvivesFailures(t *testing.T) {
	var executed atomic.Int32
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	assert.True(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.True(t, pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")}))
	assert.True(t, pool.Enqueue(&testJob{executed: &executed, panics: true}))
	assert.True(t, pool.Enqueue(&testJob{executed: &executed}))

	assert.Eventually(t, func() bool { return executed.Load() == 4 }, time.Second, 10*time.Millisecond)
}

func TestPool_TryEnqueueFull(t *testing.T) {
	var executed atomic.Int32
	// not started, so nothing drains the queue
	pool := NewPool(1, 1)

	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))

	pool.Stop()
	pool.Stop()
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}), "enqueue after stop must not block")
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
}

func TestPool_JobTimeout(t *testing.T) {
	pool := NewPool(1, 1, WithJobTimeout(20*time.Millisecond))
	pool.Start()
	defer pool.Stop()

	job := &slowJob{}
	assert.True(t, pool.Enqueue(job))
	assert.Eventually(t, job.sawDeadline.Load, time.Second, 5*time.Millisecond)
	assert.Equal(t, "slow", jobName(job))
	assert.Equal(t, "*worker.testJob", jobName(&testJob{}))
}

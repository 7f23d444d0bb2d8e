package worker

import (
	"context"
	"time"

	"github.com/osse101/Adventure_Go/internal/logger"
	"github.com/osse101/Adventure_Go/internal/session"
)

// SweepJob force-closes stale adventures. It is run on an interval by the scheduler.
type SweepJob struct {
	service session.Service
	now     func() time.Time
}

// NewSweepJob creates a sweep job
func NewSweepJob(service session.Service) *SweepJob {
	return &SweepJob{service: service, now: time.Now}
}

// Name implements Named
func (j *SweepJob) Name() string { return "adventure-sweep" }

// Process implements Job
func (j *SweepJob) Process(ctx context.Context) error {
	if n := j.service.Sweep(ctx, j.now()); n > 0 {
		logger.FromContext(ctx).Info(LogMsgSweepCompleted, "swept", n)
	}
	return nil
}

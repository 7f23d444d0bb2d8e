package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Adventure_Go/internal/logger"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = time.Minute

// Job is a unit of background work
type Job interface {
	Process(ctx context.Context) error
}

// Named jobs are logged under their name instead of their Go type
type Named interface {
	Name() string
}

// Pool runs jobs on a fixed set of goroutines fed from a bounded queue
type Pool struct {
	size    int
	queue   chan Job
	timeout time.Duration

	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// PoolOption customises a Pool
type PoolOption func(*Pool)

// WithJobTimeout overrides DefaultJobTimeout
func WithJobTimeout(d time.Duration) PoolOption {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewPool creates a pool with at least one worker
func NewPool(workers int, queueSize int, opts ...PoolOption) *Pool {
	p := &Pool{
		size:    max(workers, 1),
		queue:   make(chan Job, max(queueSize, 0)),
		timeout: DefaultJobTimeout,
		quit:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start launches the workers
func (p *Pool) Start() {
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.loop()
	}
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case job := <-p.queue:
			p.run(job)
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	log := logger.FromContext(ctx).With("job", jobName(job))

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanicked, "panic", r)
		}
	}()

	start := time.Now()
	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err, "elapsed", time.Since(start))
	}
}

func jobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", job)
}

// Enqueue waits for queue space. It reports false if the pool stops first.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.queue <- job:
		return true
	case <-p.quit:
		return false
	}
}

// TryEnqueue adds a job without waiting. It reports false when the queue is
// full or the pool has stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.queue <- job:
		return true
	default:
		return false
	}
}

// Stop signals the workers and waits for running jobs. Queued jobs that have
// not started are discarded. Safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
	})
}

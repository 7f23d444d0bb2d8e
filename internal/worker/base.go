package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Adventure_Go/internal/logger"
)

// BaseWorker tracks one-shot timers keyed by id and the goroutines they start
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[uuid.UUID]*time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

func (w *BaseWorker) init() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timers == nil {
		w.timers = make(map[uuid.UUID]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

func (w *BaseWorker) closing() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// schedule runs fn after d, replacing any timer already held for id.
// A non-positive d runs fn straight away.
func (w *BaseWorker) schedule(id uuid.UUID, d time.Duration, fn func()) {
	w.stopTimer(id)
	if w.closing() {
		return
	}
	if d <= 0 {
		w.run(fn)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.timers[id] = time.AfterFunc(d, func() {
		w.removeTimer(id)
		if w.closing() {
			return
		}
		w.run(fn)
	})
}

// run executes fn in a goroutine that Shutdown waits for
func (w *BaseWorker) run(fn func()) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		fn()
	}()
}

func (w *BaseWorker) stopTimer(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[id]; ok {
		timer.Stop()
		delete(w.timers, id)
	}
}

func (w *BaseWorker) removeTimer(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.timers, id)
}

func (w *BaseWorker) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWorkerShuttingDown, "worker", workerName)

	w.once.Do(func() { close(w.shutdown) })

	w.mu.Lock()
	for id, timer := range w.timers {
		timer.Stop()
		log.Debug(LogMsgTimerCancelled, "worker", workerName, "id", id)
	}
	w.timers = make(map[uuid.UUID]*time.Timer)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWorkerShutdownComplete, "worker", workerName)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWorkerShutdownTimeout, "worker", workerName)
		return ctx.Err()
	}
}

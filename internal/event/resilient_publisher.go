package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Adventure_Go/internal/logger"
)

type retryItem struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps a Publisher with background retries and a
// dead-letter file for events that never get through.
type ResilientPublisher struct {
	inner      Publisher
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	queue        chan retryItem
	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher starts the retry worker
func NewResilientPublisher(inner Publisher, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.worker()

	return p, nil
}

// Publish never fails the caller; failures are retried in the background
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry makes one synchronous attempt and queues a retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "eventType", event.Type, "error", err)
	p.enqueue(retryItem{event: event, attempt: 1, lastErr: err})
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case p.queue <- item:
	default:
		logger.Warn(LogMsgRetryQueueFull, "eventType", item.event.Type)
		p.writeDeadLetter(item)
	}
}

func (p *ResilientPublisher) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			return
		case item := <-p.queue:
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	timer := time.NewTimer(CalculateRetryDelay(p.retryDelay, item.attempt))
	defer timer.Stop()

	select {
	case <-p.shutdown:
		p.writeDeadLetter(item)
		return
	case <-timer.C:
	}

	err := p.inner.Publish(context.Background(), item.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "eventType", item.event.Type, "attempt", item.attempt)
		return
	}

	item.lastErr = err
	if item.attempt >= p.maxRetries {
		logger.Error(LogMsgEventRetryExhausted, "eventType", item.event.Type, "attempts", item.attempt)
		p.writeDeadLetter(item)
		return
	}

	logger.Warn(LogMsgEventRetryFailed, "eventType", item.event.Type, "attempt", item.attempt, "error", err)
	item.attempt++
	p.enqueue(item)
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	if err := p.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "eventType", item.event.Type, "error", err)
	}
}

// Shutdown stops the worker and dead-letters anything still queued
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.shutdownOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	drained := 0
	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return p.deadLetter.Close()
		}
	}
}

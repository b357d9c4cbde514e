// Package publisher emits audit events to a store, optionally through a bounded
// async buffer so request paths never block on a slow sink.
package publisher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	audit "promptserver/pkg/platform/audit"
)

// Publisher is append-only. In async mode a single worker drains the buffer and
// Close waits for it to finish.
type Publisher struct {
	store  audit.Store
	logger *slog.Logger
	now    func() time.Time

	buffer  int
	events  chan audit.Event
	wg      sync.WaitGroup
	closeMu sync.RWMutex
	closed  bool

	dropped   int64
	droppedMu sync.Mutex
}

type Option func(*Publisher)

// WithAsyncBuffer enables async mode with a buffer of size n. Events emitted
// while the buffer is full are dropped and counted.
func WithAsyncBuffer(n int) Option {
	return func(p *Publisher) {
		p.buffer = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		p.now = now
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.buffer > 0 {
		p.events = make(chan audit.Event, p.buffer)
		p.wg.Add(1)
		go p.run()
	}
	return p
}

func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now().UTC()
	}
	if p.events == nil {
		return p.store.Append(ctx, event)
	}

	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if p.closed {
		return p.store.Append(ctx, event)
	}
	select {
	case p.events <- event:
	default:
		p.droppedMu.Lock()
		p.dropped++
		p.droppedMu.Unlock()
		p.logger.WarnContext(ctx, "audit buffer full, dropping event",
			"action", event.Action,
			"subject", event.Subject,
		)
	}
	return nil
}

// Dropped reports how many events were discarded because the buffer was full.
func (p *Publisher) Dropped() int64 {
	p.droppedMu.Lock()
	defer p.droppedMu.Unlock()
	return p.dropped
}

// Close drains pending events. Safe to call more than once.
func (p *Publisher) Close() {
	if p.events == nil {
		return
	}
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return
	}
	p.closed = true
	close(p.events)
	p.closeMu.Unlock()
	p.wg.Wait()
}

func (p *Publisher) run() {
	defer p.wg.Done()
	for event := range p.events {
		// Request contexts are gone by the time the worker runs.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := p.store.Append(ctx, event); err != nil {
			p.logger.Error("failed to append audit event",
				"action", event.Action,
				"subject", event.Subject,
				"error", err,
			)
		}
		cancel()
	}
}

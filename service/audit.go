package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"mydirectory/domain"
	"mydirectory/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

var (
	// ErrAuditBufferFull is returned by AsyncAuditSink.Append when the event was dropped.
	ErrAuditBufferFull = errors.New("audit buffer is full")
	// ErrAuditSinkClosed is returned by AsyncAuditSink.Append after Close.
	ErrAuditSinkClosed = errors.New("audit sink is closed")
)

// NewEvent builds an audit event with a fresh id.
func NewEvent(now time.Time, typ domain.EventType, origin domain.Origin, name, ip string, ttlSec *int64, details string) domain.Event {
	return domain.Event{
		ID:      uuid.NewString(),
		Time:    now.UTC(),
		Type:    typ,
		Name:    name,
		IP:      ip,
		TTLSec:  ttlSec,
		Origin:  origin,
		Details: details,
	}
}

// FanOutAuditSink delivers every event to each of its sinks.
type FanOutAuditSink []interfaces.AuditSink

// Append forwards event to all sinks and combines their errors.
func (f FanOutAuditSink) Append(ctx context.Context, event domain.Event) error {
	var err error
	for _, s := range f {
		err = multierr.Append(err, s.Append(ctx, event))
	}
	return err
}

// Close closes all sinks and combines their errors.
func (f FanOutAuditSink) Close() error {
	var err error
	for _, s := range f {
		err = multierr.Append(err, s.Close())
	}
	return err
}

// AsyncAuditSink decouples event producers from a slow sink. Append never
// blocks: when the buffer is full the event is dropped and counted.
type AsyncAuditSink struct {
	next    interfaces.AuditSink
	metrics *Metrics
	logger  log.Logger

	mu     sync.RWMutex
	closed bool
	events chan domain.Event
	done   chan struct{}
}

// NewAsyncAuditSink starts a worker that forwards queued events to next.
// Panics on nil next, metrics or logger.
func NewAsyncAuditSink(next interfaces.AuditSink, buffer int, metrics *Metrics, logger log.Logger) *AsyncAuditSink {
	if buffer <= 0 {
		buffer = 1
	}
	s := &AsyncAuditSink{
		next:    NilPanic(next, "service.audit.go: next sink is required"),
		metrics: NilPanic(metrics, "service.audit.go: metrics is required"),
		logger:  log.WithPrefix(NilPanic(logger, "service.audit.go: logger is required"), "component", "AsyncAuditSink"),
		events:  make(chan domain.Event, buffer),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *AsyncAuditSink) run() {
	defer close(s.done)
	for e := range s.events {
		if err := s.next.Append(context.Background(), e); err != nil {
			level.Warn(s.logger).Log("msg", "audit write failed", "event", e.Type, "err", err)
		}
	}
}

// Append queues event for delivery.
func (s *AsyncAuditSink) Append(_ context.Context, event domain.Event) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrAuditSinkClosed
	}
	select {
	case s.events <- event:
		return nil
	default:
		s.metrics.AuditDropped()
		return ErrAuditBufferFull
	}
}

// Close drains queued events, then closes the wrapped sink.
func (s *AsyncAuditSink) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.events)
	s.mu.Unlock()

	<-s.done
	return s.next.Close()
}

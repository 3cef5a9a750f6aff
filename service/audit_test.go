package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mydirectory/domain"
	"mydirectory/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	now := time.Date(2026, 2, 19, 13, 0, 0, 0, time.FixedZone("CET", 3600))
	e := NewEvent(now, domain.EventLookup, domain.OriginUDP, testName, testIP, Ptr(int64(42)), "FOUND")

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, time.UTC, e.Time.Location())
	assert.True(t, now.Equal(e.Time))
	assert.Equal(t, domain.EventLookup, e.Type)
	assert.Equal(t, domain.OriginUDP, e.Origin)
	require.NotNil(t, e.TTLSec)
	assert.Equal(t, int64(42), *e.TTLSec)

	other := NewEvent(now, domain.EventLookup, domain.OriginUDP, "", "", nil, "")
	assert.NotEqual(t, e.ID, other.ID)
}

func TestFanOutAuditSink(t *testing.T) {
	first := &mock.AuditSinkMock{}
	second := &mock.AuditSinkMock{
		AppendFunc: func(ctx context.Context, event domain.Event) error { return assert.AnError },
		CloseFunc:  func() error { return errors.New("close failed") },
	}
	sink := FanOutAuditSink{first, second}

	err := sink.Append(context.Background(), domain.Event{Type: domain.EventRegister})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Len(t, first.AppendCalls(), 1)
	assert.Len(t, second.AppendCalls(), 1)

	err = sink.Close()
	assert.EqualError(t, err, "close failed")
	assert.Len(t, first.CloseCalls(), 1)
	assert.Len(t, second.CloseCalls(), 1)
}

func TestAsyncAuditSink_DeliversAndDrains(t *testing.T) {
	next := &mock.AuditSinkMock{}
	sink := NewAsyncAuditSink(next, 16, NewMetrics(prometheus.NewRegistry()), log.NewNopLogger())

	for i := 0; i < 10; i++ {
		require.NoError(t, sink.Append(context.Background(), domain.Event{Type: domain.EventRenew}))
	}
	require.NoError(t, sink.Close())

	assert.Len(t, next.AppendCalls(), 10)
	assert.Len(t, next.CloseCalls(), 1)
	assert.ErrorIs(t, sink.Append(context.Background(), domain.Event{}), ErrAuditSinkClosed)
	assert.NoError(t, sink.Close(), "second close is a no-op")
	assert.Len(t, next.CloseCalls(), 1)
}

func TestAsyncAuditSink_DropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	var once sync.Once
	started := make(chan struct{})
	next := &mock.AuditSinkMock{
		AppendFunc: func(ctx context.Context, event domain.Event) error {
			once.Do(func() { close(started) })
			<-release
			return nil
		},
	}
	metrics := NewMetrics(prometheus.NewRegistry())
	sink := NewAsyncAuditSink(next, 1, metrics, log.NewNopLogger())

	// The first event occupies the worker, the second fills the buffer.
	require.NoError(t, sink.Append(context.Background(), domain.Event{}))
	<-started
	require.NoError(t, sink.Append(context.Background(), domain.Event{}))

	err := sink.Append(context.Background(), domain.Event{})
	assert.ErrorIs(t, err, ErrAuditBufferFull)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.auditDropped))

	close(release)
	require.NoError(t, sink.Close())
	assert.Len(t, next.AppendCalls(), 2)
}

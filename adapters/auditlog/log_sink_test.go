package auditlog

import (
	"bytes"
	"context"
	"testing"
	"time"

	"mydirectory/domain"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSink_Append(t *testing.T) {
	ttl := int64(60)
	tests := []struct {
		name     string
		event    domain.Event
		contains []string
		absent   []string
	}{
		{
			name: "register",
			event: domain.Event{
				ID:     "id-1",
				Time:   time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC),
				Type:   domain.EventRegister,
				Name:   "alpha.group1.pro2",
				IP:     "10.0.0.1",
				TTLSec: &ttl,
				Origin: domain.OriginTCP,
			},
			contains: []string{
				"level=info", "component=audit", "event_id=id-1", "event_ts=2026-02-19T12:00:00Z",
				"type=REGISTER", "origin=TCP", "name=alpha.group1.pro2", "ip=10.0.0.1", "ttl_sec=60",
			},
			absent: []string{"details="},
		},
		{
			name: "error",
			event: domain.Event{
				ID:      "id-2",
				Type:    domain.EventError,
				Origin:  domain.OriginUDP,
				Details: "lookup failed",
			},
			contains: []string{"level=warn", "type=ERROR", `details="lookup failed"`},
			absent:   []string{"name=", "ip=", "ttl_sec="},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sink := NewLogSink(log.NewLogfmtLogger(&buf))

			require.NoError(t, sink.Append(context.Background(), tt.event))

			line := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, line, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, line, s)
			}
		})
	}
}

func TestLogSink_Close(t *testing.T) {
	assert.NoError(t, NewLogSink(log.NewNopLogger()).Close())
}

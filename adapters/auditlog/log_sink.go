// Package auditlog writes audit events to a go-kit logger.
package auditlog

import (
	"context"
	"time"

	"mydirectory/domain"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// LogSink logs every audit event as one structured line.
type LogSink struct {
	logger log.Logger
}

// NewLogSink creates a LogSink writing through logger with component=audit.
func NewLogSink(logger log.Logger) *LogSink {
	return &LogSink{logger: log.WithPrefix(logger, "component", "audit")}
}

// Append logs event. ERROR events are logged at warn, everything else at info.
func (s *LogSink) Append(_ context.Context, event domain.Event) error {
	keyvals := []interface{}{
		"msg", "audit event",
		"event_id", event.ID,
		"event_ts", event.Time.Format(time.RFC3339Nano),
		"type", event.Type,
		"origin", event.Origin,
	}
	if event.Name != "" {
		keyvals = append(keyvals, "name", event.Name)
	}
	if event.IP != "" {
		keyvals = append(keyvals, "ip", event.IP)
	}
	if event.TTLSec != nil {
		keyvals = append(keyvals, "ttl_sec", *event.TTLSec)
	}
	if event.Details != "" {
		keyvals = append(keyvals, "details", event.Details)
	}

	logger := level.Info(s.logger)
	if event.Type == domain.EventError {
		logger = level.Warn(s.logger)
	}
	return logger.Log(keyvals...)
}

// Close is a no-op; the logger's writer is owned by the caller.
func (s *LogSink) Close() error {
	return nil
}

package myredis

import (
	"context"
	"encoding/json"
	"fmt"

	"mydirectory/domain"
	"mydirectory/service"

	"github.com/go-redis/redis/v8"
)

// AuditSink appends audit events as JSON to a capped Redis list.
type AuditSink struct {
	client redis.UniversalClient
	key    string
	maxLen int64
}

// NewAuditSink creates a sink writing to list key. maxLen <= 0 keeps every event.
func NewAuditSink(client redis.UniversalClient, key string, maxLen int64) *AuditSink {
	return &AuditSink{
		client: service.NilPanic(client, "myredis.audit_sink.go: client is required"),
		key:    key,
		maxLen: maxLen,
	}
}

// Append pushes event and trims the list to the newest maxLen entries in one round trip.
func (s *AuditSink) Append(ctx context.Context, event domain.Event) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return service.NewServerError("Redis marshal event error", fmt.Errorf("can't marshal %s event, err: %w", event.Type, err))
	}

	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, s.key, bytes)
		if s.maxLen > 0 {
			pipe.LTrim(ctx, s.key, -s.maxLen, -1)
		}
		return nil
	})
	if err != nil {
		return service.NewServerError("Redis append event error", fmt.Errorf("can't append %s event to redis (key='%s'), err: %w", event.Type, s.key, err))
	}

	return nil
}

// Close closes the underlying client.
func (s *AuditSink) Close() error {
	return s.client.Close()
}

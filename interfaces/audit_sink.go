package interfaces

import (
	"context"

	"mydirectory/domain"
)

// AuditSink receives the stream of registry audit events.
//
//go:generate moq -stub -out mock/audit_sink.go -pkg mock . AuditSink
type AuditSink interface {
	// Append records one event.
	// Returns:
	// 1) nil when the event was accepted;
	// 2) an error when the event could not be stored or queued. Callers treat
	//    audit delivery as best-effort and never fail a client operation on it.
	Append(ctx context.Context, event domain.Event) error

	// Close flushes pending events and releases the sink's resources.
	Close() error
}

package domain

import "time"

// EventType names a registry state transition recorded in the audit trail.
type EventType string

const (
	EventRegister   EventType = "REGISTER"
	EventRenew      EventType = "RENEW"
	EventExpire     EventType = "EXPIRE"
	EventLookup     EventType = "LOOKUP"
	EventInvalidate EventType = "INVALIDATE"
	EventError      EventType = "ERROR"
)

// Origin tags the front-end an event came through.
type Origin string

const (
	OriginTCP  Origin = "TCP"
	OriginUDP  Origin = "UDP"
	OriginHTTP Origin = "HTTP"
	// OriginCore is used when no front-end is known (e.g. direct calls in tests).
	OriginCore Origin = "CORE"
)

// Event is an immutable audit record. Name, IP and TTLSec are optional.
type Event struct {
	ID      string    `json:"id"`
	Time    time.Time `json:"ts"`
	Type    EventType `json:"type"`
	Name    string    `json:"name,omitempty"`
	IP      string    `json:"ip,omitempty"`
	TTLSec  *int64    `json:"ttlSec,omitempty"`
	Origin  Origin    `json:"origin"`
	Details string    `json:"details,omitempty"`
}

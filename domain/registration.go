package domain

import "time"

// MaxTTLSeconds is the largest TTL that fits the six-digit wire field.
const MaxTTLSeconds int64 = 999_999

// Registration represents a lease held by a named service on one IPv4 address.
// Values are immutable: a renewal produces a new Registration.
type Registration struct {
	Name      string    // dotted service name, e.g. radio.group3.pro2
	IP        string    // IPv4 address in dotted-decimal form
	ExpiresAt time.Time // absolute expiry instant
}

// NewRegistration creates a registration that expires ttl after now.
func NewRegistration(name, ip string, now time.Time, ttl time.Duration) Registration {
	return Registration{Name: name, IP: ip, ExpiresAt: now.Add(ttl)}
}

// Renew returns a copy whose lease expires ttl after now.
// The expiry never moves backwards.
func (r Registration) Renew(now time.Time, ttl time.Duration) Registration {
	expiresAt := now.Add(ttl)
	if expiresAt.Before(r.ExpiresAt) {
		expiresAt = r.ExpiresAt
	}
	return Registration{Name: r.Name, IP: r.IP, ExpiresAt: expiresAt}
}

// Live reports whether the lease is still valid at now.
func (r Registration) Live(now time.Time) bool {
	return now.Before(r.ExpiresAt)
}

// RemainingTTL returns the whole seconds left until expiry, rounded up and
// clamped to [0, MaxTTLSeconds].
func (r Registration) RemainingTTL(now time.Time) int64 {
	left := r.ExpiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	secs := int64(left / time.Second)
	if left%time.Second != 0 {
		secs++
	}
	if secs > MaxTTLSeconds {
		return MaxTTLSeconds
	}
	return secs
}

// Lookup is a resolved registration with the TTL left at resolution time.
type Lookup struct {
	Registration
	TTLSec int64 // remaining seconds, see Registration.RemainingTTL
}

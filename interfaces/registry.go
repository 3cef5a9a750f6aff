package interfaces

import (
	"context"
	"time"

	"mydirectory/domain"
)

// Registry is the directory's single source of truth for registrations.
// Implementations serialize all calls.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// Register creates or refreshes the lease for name on ip.
	// Returns:
	// 1) (ttlSeconds, nil) on success;
	// 2) (0, bad_request) when name or ip is invalid;
	// 3) (0, name_on_other_ip) when name is held by a live registration on another ip.
	Register(ctx context.Context, name, ip string) (int64, error)

	// Update renews an existing lease.
	// Returns:
	// 1) (ttlSeconds, nil) on success;
	// 2) (0, update_unknown) when name has no live registration;
	// 3) (0, name_on_other_ip) when the registration is bound to another ip.
	Update(ctx context.Context, name, ip string) (int64, error)

	// FindByName resolves a live registration by name; none_registered when absent or expired.
	FindByName(ctx context.Context, name string) (domain.Lookup, error)

	// FindByIP resolves a live registration by IPv4 address; none_registered when absent or expired.
	FindByIP(ctx context.Context, ip string) (domain.Lookup, error)

	// RemoveExpiredNow drops every expired registration and returns how many were removed.
	RemoveExpiredNow(ctx context.Context) int

	// Snapshot returns all live registrations ordered by name.
	Snapshot(ctx context.Context) []domain.Lookup

	// DefaultTTL is the lease length granted on register and renew.
	DefaultTTL() time.Duration
}

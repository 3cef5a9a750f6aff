package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"mydirectory/domain"
	"mydirectory/interfaces"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Registry implements interfaces.Registry. It keeps registrations in two
// indexes (by name and by IP) that are only touched under mu, so every
// operation is atomic with respect to every other one. Expired entries are
// swept lazily at the start of each operation; there is no background timer.
//
// Audit events are handed to the sink before the lock is released, so the
// sink sees them in registry order. Sinks must not block; wrap slow ones in
// an AsyncAuditSink.
type Registry struct {
	clock      clock.Clock
	defaultTTL time.Duration
	audit      interfaces.AuditSink
	metrics    *Metrics
	logger     log.Logger

	mu       sync.Mutex
	byName   map[string]domain.Registration
	nameByIP map[string]string
}

// NewRegistry creates an empty registry granting defaultTTL leases. Panics on
// a non-positive defaultTTL or nil clk, audit, metrics or logger.
func NewRegistry(defaultTTL time.Duration, clk clock.Clock, audit interfaces.AuditSink, metrics *Metrics, logger log.Logger) *Registry {
	if defaultTTL <= 0 {
		panic("service.registry.go: defaultTTL must be positive")
	}
	return &Registry{
		clock:      NilPanic(clk, "service.registry.go: clock is required"),
		defaultTTL: defaultTTL,
		audit:      NilPanic(audit, "service.registry.go: audit sink is required"),
		metrics:    NilPanic(metrics, "service.registry.go: metrics is required"),
		logger:     log.WithPrefix(NilPanic(logger, "service.registry.go: logger is required"), "component", "Registry"),
		byName:     make(map[string]domain.Registration),
		nameByIP:   make(map[string]string),
	}
}

// DefaultTTL returns the lease length granted by Register and Update.
func (r *Registry) DefaultTTL() time.Duration {
	return r.defaultTTL
}

// Register creates the lease for name on ip, or refreshes it when name is
// already held by ip. A name held by a live registration on another ip is
// rejected with StatusNameOnOtherIP, as is an ip bound to a different live
// name. A rejected register changes no lease and records no REGISTER event.
// Same-name same-ip re-registration is recorded as REGISTER, not RENEW.
func (r *Registry) Register(ctx context.Context, name, ip string) (int64, error) {
	if err := validateRegistration(name, ip); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var events []domain.Event
	defer func() { r.publish(ctx, events) }()

	now := r.clock.Now()
	origin := OriginFrom(ctx)
	events = r.sweepLocked(now, origin)

	existing, ok := r.byName[name]
	if ok && existing.IP != ip {
		return 0, NewNameOnOtherIPError(fmt.Sprintf("name %q is registered on another ip", name))
	}

	if other, taken := r.nameByIP[ip]; taken && other != name {
		return 0, NewNameOnOtherIPError(fmt.Sprintf("ip %s is registered to another name", ip))
	}

	var reg domain.Registration
	if ok {
		reg = existing.Renew(now, r.defaultTTL)
	} else {
		reg = domain.NewRegistration(name, ip, now, r.defaultTTL)
	}
	r.storeLocked(reg)

	ttl := reg.RemainingTTL(now)
	events = append(events, NewEvent(now, domain.EventRegister, origin, name, ip, Ptr(ttl), ""))
	return ttl, nil
}

// Update renews the lease for name. The lease is reset to now+DefaultTTL,
// never extended additively.
func (r *Registry) Update(ctx context.Context, name, ip string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var events []domain.Event
	defer func() { r.publish(ctx, events) }()

	now := r.clock.Now()
	origin := OriginFrom(ctx)
	events = r.sweepLocked(now, origin)

	existing, ok := r.byName[name]
	if !ok {
		return 0, NewUpdateUnknownError(fmt.Sprintf("name %q is not registered", name))
	}
	if existing.IP != ip {
		return 0, NewNameOnOtherIPError(fmt.Sprintf("name %q is registered on another ip", name))
	}

	reg := existing.Renew(now, r.defaultTTL)
	r.storeLocked(reg)

	ttl := reg.RemainingTTL(now)
	events = append(events, NewEvent(now, domain.EventRenew, origin, name, ip, Ptr(ttl), ""))
	return ttl, nil
}

// FindByName resolves the live registration for name.
func (r *Registry) FindByName(ctx context.Context, name string) (domain.Lookup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var events []domain.Event
	defer func() { r.publish(ctx, events) }()

	now := r.clock.Now()
	events = r.sweepLocked(now, OriginFrom(ctx))

	reg, ok := r.byName[name]
	if !ok {
		return domain.Lookup{}, NewNoneRegisteredError(fmt.Sprintf("no registration for name %q", name))
	}
	return domain.Lookup{Registration: reg, TTLSec: reg.RemainingTTL(now)}, nil
}

// FindByIP resolves the live registration bound to ip.
func (r *Registry) FindByIP(ctx context.Context, ip string) (domain.Lookup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var events []domain.Event
	defer func() { r.publish(ctx, events) }()

	now := r.clock.Now()
	events = r.sweepLocked(now, OriginFrom(ctx))

	name, ok := r.nameByIP[ip]
	if !ok {
		return domain.Lookup{}, NewNoneRegisteredError(fmt.Sprintf("no registration for ip %q", ip))
	}
	reg := r.byName[name]
	return domain.Lookup{Registration: reg, TTLSec: reg.RemainingTTL(now)}, nil
}

// RemoveExpiredNow removes every registration whose lease has ended.
func (r *Registry) RemoveExpiredNow(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var events []domain.Event
	defer func() { r.publish(ctx, events) }()

	events = r.sweepLocked(r.clock.Now(), OriginFrom(ctx))
	return len(events)
}

// Snapshot returns the live registrations ordered by name.
func (r *Registry) Snapshot(ctx context.Context) []domain.Lookup {
	r.mu.Lock()
	defer r.mu.Unlock()

	var events []domain.Event
	defer func() { r.publish(ctx, events) }()

	now := r.clock.Now()
	events = r.sweepLocked(now, OriginFrom(ctx))

	out := make([]domain.Lookup, 0, len(r.byName))
	for _, reg := range r.byName {
		out = append(out, domain.Lookup{Registration: reg, TTLSec: reg.RemainingTTL(now)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// storeLocked writes reg to both indexes.
func (r *Registry) storeLocked(reg domain.Registration) {
	r.byName[reg.Name] = reg
	r.nameByIP[reg.IP] = reg.Name
	r.metrics.SetRegistrations(len(r.byName))
}

// sweepLocked removes expired registrations from both indexes together and
// returns one EXPIRE event per removed entry.
func (r *Registry) sweepLocked(now time.Time, origin domain.Origin) []domain.Event {
	var events []domain.Event
	for name, reg := range r.byName {
		if reg.Live(now) {
			continue
		}
		delete(r.byName, name)
		if r.nameByIP[reg.IP] == name {
			delete(r.nameByIP, reg.IP)
		}
		events = append(events, NewEvent(now, domain.EventExpire, origin, name, reg.IP, Ptr(int64(0)), "lease expired"))
	}
	if len(events) > 0 {
		r.metrics.SetRegistrations(len(r.byName))
	}
	return events
}

// publish hands events to the audit sink under mu; failures are logged, never
// returned.
func (r *Registry) publish(ctx context.Context, events []domain.Event) {
	for _, e := range events {
		if err := r.audit.Append(ctx, e); err != nil {
			level.Warn(r.logger).Log("msg", "audit append failed", "event", e.Type, "name", e.Name, "err", err)
		}
	}
}

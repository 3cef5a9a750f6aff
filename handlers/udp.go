package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"

	"mydirectory/domain"
	"mydirectory/interfaces"
	"mydirectory/service"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// MaxDatagramBytes is the size of the receive buffer; longer datagrams are truncated.
const MaxDatagramBytes = 2048

// QueryServer serves the UDP query protocol. Datagrams are handled one at a
// time, in arrival order; replies go back to the sender's address.
type QueryServer struct {
	registry interfaces.Registry
	audit    interfaces.AuditSink
	metrics  *service.Metrics
	clock    clock.Clock
	logger   log.Logger

	mu   sync.Mutex
	conn net.PacketConn
}

// NewQueryServer creates a QueryServer. Panics on nil dependencies.
func NewQueryServer(registry interfaces.Registry, audit interfaces.AuditSink, metrics *service.Metrics, clk clock.Clock, logger log.Logger) *QueryServer {
	return &QueryServer{
		registry: service.NilPanic(registry, "handlers.udp.go: registry is required"),
		audit:    service.NilPanic(audit, "handlers.udp.go: audit sink is required"),
		metrics:  service.NilPanic(metrics, "handlers.udp.go: metrics is required"),
		clock:    service.NilPanic(clk, "handlers.udp.go: clock is required"),
		logger:   log.WithPrefix(service.NilPanic(logger, "handlers.udp.go: logger is required"), "component", "QueryServer"),
	}
}

// Serve reads datagrams from conn until it is closed or ctx is done and
// returns nil on a normal stop.
func (s *QueryServer) Serve(ctx context.Context, conn net.PacketConn) error {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	level.Info(s.logger).Log("msg", "query server listening", "addr", conn.LocalAddr())
	buf := make([]byte, MaxDatagramBytes)
	for {
		n, addr, err := conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			level.Warn(s.logger).Log("msg", "receive failed", "err", err)
			continue
		}

		resp := s.handle(ctx, buf[:n])
		out, err := json.Marshal(resp)
		if err != nil {
			level.Error(s.logger).Log("msg", "failed to encode reply", "err", err)
			continue
		}
		if _, err := conn.WriteTo(out, addr); err != nil {
			level.Warn(s.logger).Log("msg", "failed to send reply", "peer", addr, "err", err)
		}
	}
}

// Close stops the receive loop.
func (s *QueryServer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// handle resolves one lookup datagram. Every outcome is audited with origin UDP.
func (s *QueryServer) handle(ctx context.Context, payload []byte) (resp QueryResponse) {
	ctx = service.WithOrigin(ctx, domain.OriginUDP)
	defer func() {
		if p := recover(); p != nil {
			level.Error(s.logger).Log("msg", "panic while handling datagram", "panic", fmt.Sprint(p))
			s.record(ctx, domain.EventError, "", "", nil, fmt.Sprintf("panic: %v", p))
			resp = toQueryStatus(service.StatusServerError)
		}
		s.metrics.ObserveRequest(domain.OriginUDP, cmdLookup, service.Status(resp.Status))
	}()

	q, err := fromQueryDatagram(payload)
	if err != nil {
		se := service.ToStatusError(err)
		s.record(ctx, domain.EventInvalidate, "", "", nil, se.Message)
		return toQueryStatus(se.Status)
	}

	var found domain.Lookup
	if q.Name != "" {
		found, err = s.registry.FindByName(ctx, q.Name)
	} else {
		found, err = s.registry.FindByIP(ctx, q.IP)
	}

	switch status := service.StatusOf(err); status {
	case service.StatusOK:
		s.record(ctx, domain.EventLookup, found.Name, found.IP, service.Ptr(found.TTLSec), "FOUND")
		return toQueryFound(found)
	case service.StatusNoneRegistered:
		s.record(ctx, domain.EventLookup, q.Name, q.IP, service.Ptr(int64(0)), "NOT_FOUND")
		return toQueryStatus(status)
	case service.StatusServerError:
		level.Error(s.logger).Log("msg", "lookup failed", "name", q.Name, "ip", q.IP, "err", err)
		s.record(ctx, domain.EventError, q.Name, q.IP, nil, err.Error())
		return toQueryStatus(status)
	default:
		s.record(ctx, domain.EventInvalidate, q.Name, q.IP, nil, err.Error())
		return toQueryStatus(status)
	}
}

func (s *QueryServer) record(ctx context.Context, typ domain.EventType, name, ip string, ttlSec *int64, details string) {
	event := service.NewEvent(s.clock.Now(), typ, domain.OriginUDP, name, ip, ttlSec, details)
	if err := s.audit.Append(ctx, event); err != nil {
		level.Warn(s.logger).Log("msg", "audit append failed", "event", typ, "err", err)
	}
}

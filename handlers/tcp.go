package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"mydirectory/domain"
	"mydirectory/interfaces"
	"mydirectory/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
)

var (
	errLineTooLong = errors.New("request line too long")
	errEmptyLine   = errors.New("empty request")
)

// ControlServerConfig bounds the resources a single control connection may use.
type ControlServerConfig struct {
	ReadTimeout    time.Duration // deadline for the request line
	WriteTimeout   time.Duration // deadline for the reply line
	MaxLineBytes   int           // request lines longer than this are rejected
	MaxConnections int           // connections served concurrently
}

// ControlServer serves the TCP control protocol: one JSON request line in,
// one JSON reply line out, then the connection is closed.
type ControlServer struct {
	registry interfaces.Registry
	metrics  *service.Metrics
	logger   log.Logger
	cfg      ControlServerConfig

	mu       sync.Mutex
	listener net.Listener
}

// NewControlServer creates a ControlServer. Zero config fields fall back to
// a 5s read timeout, 2048 byte lines and 64 concurrent connections.
func NewControlServer(registry interfaces.Registry, metrics *service.Metrics, cfg ControlServerConfig, logger log.Logger) *ControlServer {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 5 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = cfg.ReadTimeout
	}
	if cfg.MaxLineBytes <= 0 {
		cfg.MaxLineBytes = 2048
	}
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = 64
	}
	return &ControlServer{
		registry: service.NilPanic(registry, "handlers.tcp.go: registry is required"),
		metrics:  service.NilPanic(metrics, "handlers.tcp.go: metrics is required"),
		logger:   log.WithPrefix(service.NilPanic(logger, "handlers.tcp.go: logger is required"), "component", "ControlServer"),
		cfg:      cfg,
	}
}

// Serve accepts connections on lis until it is closed or ctx is done, serving
// each on its own goroutine. It waits for in-flight connections and returns
// nil on a normal stop.
func (s *ControlServer) Serve(ctx context.Context, lis net.Listener) error {
	s.mu.Lock()
	s.listener = lis
	s.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { _ = lis.Close() })
	defer stop()

	var conns errgroup.Group
	conns.SetLimit(s.cfg.MaxConnections)

	level.Info(s.logger).Log("msg", "control server listening", "addr", lis.Addr())
	for {
		conn, err := lis.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				_ = conns.Wait()
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				level.Warn(s.logger).Log("msg", "accept timeout", "err", err)
				continue
			}
			_ = conns.Wait()
			return fmt.Errorf("control server accept failed, err: %w", err)
		}
		conns.Go(func() error {
			s.serveConn(ctx, conn)
			return nil
		})
	}
}

// Close stops the accept loop.
func (s *ControlServer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	err := s.listener.Close()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// serveConn runs one AwaitRequest -> Dispatch -> Reply exchange and closes conn.
func (s *ControlServer) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	logger := log.With(s.logger, "peer", conn.RemoteAddr())

	verb := cmdUnknown
	resp := toControlStatus(service.StatusServerError)
	defer func() {
		if p := recover(); p != nil {
			level.Error(logger).Log("msg", "panic while serving control connection", "panic", fmt.Sprint(p))
			resp = toControlStatus(service.StatusServerError)
		}
		s.metrics.ObserveRequest(domain.OriginTCP, verb, service.Status(resp.Status))
		s.reply(logger, conn, resp)
	}()

	_ = conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	line, err := readLine(conn, s.cfg.MaxLineBytes)
	switch {
	case errors.Is(err, errLineTooLong), errors.Is(err, errEmptyLine):
		level.Debug(logger).Log("msg", "rejecting request line", "err", err)
		resp = toControlStatus(service.StatusUnknownCommand)
		return
	case errors.Is(err, os.ErrDeadlineExceeded):
		level.Warn(logger).Log("msg", "read timeout", "timeout", s.cfg.ReadTimeout)
		return
	case err != nil:
		level.Error(logger).Log("msg", "failed to read request", "err", err)
		return
	}

	verb, resp = s.exchange(ctx, line, remoteIP(conn.RemoteAddr()), logger)
}

// exchange parses line, dispatches it to the registry and builds the reply.
func (s *ControlServer) exchange(ctx context.Context, line []byte, peerIP string, logger log.Logger) (string, ControlResponse) {
	cmd, err := fromControlLine(line, peerIP)
	if err != nil {
		level.Debug(logger).Log("msg", "malformed control request", "err", err)
		return cmdUnknown, toControlStatus(service.StatusOf(err))
	}

	ctx = service.WithOrigin(ctx, domain.OriginTCP)
	var ttl int64
	switch cmd.Verb {
	case cmdRegister:
		ttl, err = s.registry.Register(ctx, cmd.Name, cmd.IP)
	case cmdRenew:
		ttl, err = s.registry.Update(ctx, cmd.Name, cmd.IP)
	}

	switch status := service.StatusOf(err); status {
	case service.StatusOK:
		level.Info(logger).Log("msg", "lease granted", "cmd", cmd.Verb, "name", cmd.Name, "ip", cmd.IP, "ttl", ttl)
		return cmd.Verb, toControlOK(ttl)
	case service.StatusServerError:
		level.Error(logger).Log("msg", "control request failed", "cmd", cmd.Verb, "name", cmd.Name, "err", err)
		return cmd.Verb, toControlStatus(status)
	default:
		level.Info(logger).Log("msg", "control request rejected", "cmd", cmd.Verb, "name", cmd.Name, "ip", cmd.IP, "status", status)
		return cmd.Verb, toControlStatus(status)
	}
}

func (s *ControlServer) reply(logger log.Logger, conn net.Conn, resp ControlResponse) {
	_ = conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	if err := json.NewEncoder(conn).Encode(resp); err != nil {
		level.Warn(logger).Log("msg", "failed to write reply", "err", err)
	}
}

// readLine reads one newline-terminated line of at most max bytes (newline
// excluded). A final line without newline is accepted at EOF.
func readLine(r io.Reader, max int) ([]byte, error) {
	br := bufio.NewReader(io.LimitReader(r, int64(max)+1))
	line, err := br.ReadBytes('\n')
	switch {
	case err == nil:
		line = line[:len(line)-1]
	case errors.Is(err, io.EOF):
		if len(line) > max {
			return nil, errLineTooLong
		}
	default:
		return nil, err
	}
	if len(line) == 0 {
		return nil, errEmptyLine
	}
	return line, nil
}

// remoteIP returns the host part of addr, or "" when it has none.
func remoteIP(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return ""
	}
	return host
}

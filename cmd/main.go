package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mydirectory/adapters/auditlog"
	"mydirectory/adapters/myredis"
	"mydirectory/handlers"
	"mydirectory/interfaces"
	"mydirectory/service"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting directory service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"directory_port_tcp", config.TCPPort,
		"directory_port_udp", config.UDPPort,
		"service_port_http", config.HTTPPort,
		"default_ttl", config.DefaultTTL,
		"redis_addr", config.Redis.Addr,
	)

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := service.NewMetrics(promRegistry)
	clk := clock.New()

	// Audit sinks: log always, Redis when configured; delivered off the request path.
	var audit interfaces.AuditSink
	{
		sinks := service.FanOutAuditSink{auditlog.NewLogSink(logger)}
		if config.Redis.Addr != "" {
			redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr,
				myredis.WithTimeouts(2*time.Second),
				myredis.WithMaxRetries(1),
			)
			if err != nil {
				level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
				os.Exit(1)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = redisClient.Ping(ctx).Err()
			cancel()
			if err != nil {
				level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
				os.Exit(1)
			}
			level.Info(logger).Log("msg", "Connected to Redis", "audit_key", config.AuditRedisKey)

			sinks = append(sinks, myredis.NewAuditSink(redisClient, config.AuditRedisKey, config.AuditRedisMaxLen))
		}
		audit = service.NewAsyncAuditSink(sinks, config.AuditBuffer, metrics, logger)
	}
	defer func() {
		if err := audit.Close(); err != nil {
			level.Error(logger).Log("msg", "Failed to close audit sink", "err", err)
		}
	}()

	registry := service.NewRegistry(config.DefaultTTL, clk, audit, metrics, logger)

	controlServer := handlers.NewControlServer(registry, metrics, handlers.ControlServerConfig{
		ReadTimeout:    config.ReadTimeout,
		MaxLineBytes:   config.MaxLineBytes,
		MaxConnections: config.MaxConnections,
	}, logger)
	queryServer := handlers.NewQueryServer(registry, audit, metrics, clk, logger)

	tcpListener, err := net.Listen("tcp", fmt.Sprintf(":%d", config.TCPPort))
	if err != nil {
		level.Error(logger).Log("msg", "Failed to listen on TCP port", "port", config.TCPPort, "err", err)
		os.Exit(1)
	}
	udpConn, err := net.ListenPacket("udp", fmt.Sprintf(":%d", config.UDPPort))
	if err != nil {
		_ = tcpListener.Close()
		level.Error(logger).Log("msg", "Failed to listen on UDP port", "port", config.UDPPort, "err", err)
		os.Exit(1)
	}

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return controlServer.Serve(gctx, tcpListener)
	})
	g.Go(func() error {
		return queryServer.Serve(gctx, udpConn)
	})

	if config.HTTPPort != 0 {
		e, err := newEcho(registry, promRegistry, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to set up admin API", "err", err)
			stop()
		} else {
			g.Go(func() error {
				addr := fmt.Sprintf(":%d", config.HTTPPort)
				level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("HTTP server error, err: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				// Graceful shutdown with timeout
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				return e.Shutdown(shutdownCtx)
			})
		}
	}

	if err := g.Wait(); err != nil {
		level.Error(logger).Log("msg", "Server error", "err", err)
	}
	level.Info(logger).Log("msg", "Server stopped")
}

// newEcho builds the admin API: OpenAPI validation, registry handlers and /metrics.
func newEcho(registry interfaces.Registry, gatherer prometheus.Gatherer, logger log.Logger) (*echo.Echo, error) {
	doc, err := handlers.LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validator, err := handlers.OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)
	e.Use(validator)
	handlers.RegisterHandlers(e, handlers.NewHTTPServer(registry, logger))
	handlers.RegisterMetricsHandler(e, gatherer)
	return e, nil
}

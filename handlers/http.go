// Package handlers contains the directory's protocol servers: the TCP control
// server, the UDP query server and the read-only admin HTTP API.
//
//go:generate oapi-codegen -config openapi-api.config.yaml openapi/directory.openapi.yaml
package handlers

import (
	"fmt"
	"net/http"

	"mydirectory/domain"
	"mydirectory/interfaces"
	"mydirectory/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServer implements ServerInterface generated from OpenAPI spec.
type HTTPServer struct {
	registry interfaces.Registry
	logger   log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(registry interfaces.Registry, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		registry: service.NilPanic(registry, "handlers.http.go: registry is required"),
		logger:   logger,
	}
}

// GetHealth (GET /healthz) always returns 200 while the process is serving.
func (h *HTTPServer) GetHealth(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// ListRegistrations (GET /v1/registrations) returns live registrations ordered by name,
// or only the one bound to params.IP. An unbound IP yields an empty list.
func (h *HTTPServer) ListRegistrations(ectx echo.Context, params ListRegistrationsParams) error {
	ctx := service.WithOrigin(ectx.Request().Context(), domain.OriginHTTP)

	if params.IP == nil {
		return ectx.JSON(http.StatusOK, toRegistrationsResponse(h.registry.Snapshot(ctx)))
	}

	found, err := h.registry.FindByIP(ctx, *params.IP)
	if service.IsNoneRegistered(err) {
		return ectx.JSON(http.StatusOK, toRegistrationsResponse(nil))
	}
	if err != nil {
		return fmt.Errorf("listRegistrations failed to find ip %s, err: %w", *params.IP, err)
	}
	return ectx.JSON(http.StatusOK, toRegistrationsResponse([]domain.Lookup{found}))
}

// GetRegistration (GET /v1/registrations/{name}) returns one live registration; 404 when absent.
func (h *HTTPServer) GetRegistration(ectx echo.Context, name string) error {
	ctx := service.WithOrigin(ectx.Request().Context(), domain.OriginHTTP)

	found, err := h.registry.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("getRegistration failed to find name %s, err: %w", name, err)
	}
	return ectx.JSON(http.StatusOK, toRegistrationInfo(found))
}

// RegisterMetricsHandler exposes gatherer on GET /metrics.
func RegisterMetricsHandler(e *echo.Echo, gatherer prometheus.Gatherer) {
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

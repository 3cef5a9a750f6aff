package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewStatusToHTTPStatusMap(), logger).Handler
}

// NewStatusToHTTPStatusMap creates a directory status to http status mapping.
func NewStatusToHTTPStatusMap() map[Status]int {
	return map[Status]int{
		StatusUnknownCommand: http.StatusBadRequest,
		StatusBadRequest:     http.StatusBadRequest,
		StatusNameOnOtherIP:  http.StatusConflict,
		StatusUpdateUnknown:  http.StatusNotFound,
		StatusNoneRegistered: http.StatusNotFound,
		StatusServerError:    http.StatusInternalServerError,
	}
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	statusToHTTPStatus map[Status]int
	logger             log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(statusToHTTPStatus map[Status]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		statusToHTTPStatus: statusToHTTPStatus,
		logger:             logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(status Status) int {
	code, ok := h.statusToHTTPStatus[status]
	if ok {
		return code
	}

	return http.StatusInternalServerError
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	statusErr := ToStatusError(err)
	if statusErr == nil {
		statusErr = NewStatusError(StatusServerError, "an internal server error has occurred", err)
	}

	var statusCode int
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status := StatusServerError
		if he.Code < http.StatusInternalServerError {
			status = StatusBadRequest
		}
		if he.Internal != nil {
			if herr, ok := he.Internal.(*echo.HTTPError); ok {
				he = herr
			}
			var requestError *openapi3filter.RequestError
			if errors.As(he.Internal, &requestError) {
				status = StatusBadRequest
			}
		}

		m, ok := he.Message.(string)
		if !ok {
			m = http.StatusText(he.Code)
		}
		statusErr = NewStatusError(status, m, err)
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(statusErr.Status)
	}

	logger := level.Info(h.logger)
	if statusCode >= http.StatusInternalServerError {
		logger = level.Error(h.logger)
	}
	logger.Log(
		"msg", "HTTP request error",
		"path", c.Request().URL.Path,
		"status", statusCode,
		"err", err,
	)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(statusCode)
		return
	}
	_ = c.JSON(statusCode, ErrResponse{Error: statusErr})
}

// ErrResponse from server.
type ErrResponse struct {
	Error *StatusError `json:"error,omitempty"`
}

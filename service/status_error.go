package service

import (
	"errors"
	"fmt"
)

// Status is a six-digit wire status code.
type Status string

const (
	// StatusOK means the operation succeeded.
	StatusOK Status = "000000"
	// StatusUnknownCommand means the command is unknown or the request line is malformed.
	StatusUnknownCommand Status = "000001"
	// StatusNameOnOtherIP means the name is held by a live registration on another IP.
	StatusNameOnOtherIP Status = "000002"
	// StatusUpdateUnknown means a renew was requested for a name that is not registered.
	StatusUpdateUnknown Status = "000003"
	// StatusNoneRegistered means no live registration matches the query.
	StatusNoneRegistered Status = "000100"
	// StatusBadRequest means the request body, name or IPv4 address is invalid.
	StatusBadRequest Status = "000200"
	// StatusServerError means an internal server error has occurred.
	StatusServerError Status = "000500"
)

// StatusError represents a failed directory operation that maps 1:1 onto a wire status.
type StatusError struct {
	// Status is the machine-readable code sent to clients.
	Status Status `json:"status"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to protocol clients.
	Inner error `json:"-"`
}

// NewStatusError creates a new StatusError.
func NewStatusError(status Status, message string, inner error) *StatusError {
	return &StatusError{
		Status:  status,
		Message: message,
		Inner:   inner,
	}
}

func NewBadRequestError(message string, inner error) *StatusError {
	return NewStatusError(StatusBadRequest, message, inner)
}

func NewNameOnOtherIPError(message string) *StatusError {
	return NewStatusError(StatusNameOnOtherIP, message, nil)
}

func NewUpdateUnknownError(message string) *StatusError {
	return NewStatusError(StatusUpdateUnknown, message, nil)
}

func NewNoneRegisteredError(message string) *StatusError {
	return NewStatusError(StatusNoneRegistered, message, nil)
}

// NewServerError wraps inner as an internal error unless it already carries a status.
func NewServerError(message string, inner error) *StatusError {
	if se := ToStatusError(inner); se != nil {
		return se
	}
	return NewStatusError(StatusServerError, message, inner)
}

func (e StatusError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Status, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Status, e.Message)
}

// Unwrap the error returning the error's reason.
func (e StatusError) Unwrap() error {
	return e.Inner
}

// ToStatusError returns the StatusError in err's chain, or nil if there is none.
func ToStatusError(err error) *StatusError {
	var e *StatusError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// StatusOf maps err onto the status sent to clients: nil is StatusOK, a
// StatusError yields its own code, anything else is StatusServerError.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	if se := ToStatusError(err); se != nil {
		return se.Status
	}
	return StatusServerError
}

func IsStatus(err error, status Status) bool {
	se := ToStatusError(err)
	if se != nil {
		return se.Status == status
	}
	return false
}

func IsNoneRegistered(err error) bool {
	return IsStatus(err, StatusNoneRegistered)
}

func IsBadRequest(err error) bool {
	return IsStatus(err, StatusBadRequest)
}

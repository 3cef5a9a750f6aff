package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewStatusError(StatusBadRequest, "invalid input", inner)
	require.NotNil(t, e)
	assert.Equal(t, StatusBadRequest, e.Status)
	assert.Equal(t, "invalid input", e.Message)
	assert.Same(t, inner, e.Inner)
	assert.Equal(t, "000200 invalid input: underlying", e.Error())
}

func TestNewServerError_KeepsExistingStatus(t *testing.T) {
	conflict := NewNameOnOtherIPError("taken")
	e := NewServerError("wrapped", fmt.Errorf("register: %w", conflict))
	assert.Same(t, conflict, e)

	plain := NewServerError("boom", assert.AnError)
	assert.Equal(t, StatusServerError, plain.Status)
	assert.ErrorIs(t, plain, assert.AnError)
}

func TestToStatusError(t *testing.T) {
	e := NewUpdateUnknownError("unknown")
	assert.Same(t, e, ToStatusError(fmt.Errorf("ctx: %w", e)))
	assert.Nil(t, ToStatusError(errors.New("plain")))
	assert.Nil(t, ToStatusError(nil))
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{name: "nil", err: nil, want: StatusOK},
		{name: "name on other ip", err: NewNameOnOtherIPError("x"), want: StatusNameOnOtherIP},
		{name: "update unknown", err: NewUpdateUnknownError("x"), want: StatusUpdateUnknown},
		{name: "none registered", err: NewNoneRegisteredError("x"), want: StatusNoneRegistered},
		{name: "bad request wrapped", err: fmt.Errorf("ctx: %w", NewBadRequestError("x", nil)), want: StatusBadRequest},
		{name: "plain error", err: assert.AnError, want: StatusServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestStatusCodesAreSixDigits(t *testing.T) {
	for _, s := range []Status{
		StatusOK, StatusUnknownCommand, StatusNameOnOtherIP, StatusUpdateUnknown,
		StatusNoneRegistered, StatusBadRequest, StatusServerError,
	} {
		assert.Len(t, string(s), 6, "status %q", s)
	}
}

func TestIsNoneRegistered(t *testing.T) {
	assert.True(t, IsNoneRegistered(NewNoneRegisteredError("gone")))
	assert.False(t, IsNoneRegistered(NewBadRequestError("bad", nil)))
	assert.True(t, IsBadRequest(NewBadRequestError("bad", nil)))
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistration_RemainingTTL(t *testing.T) {
	now := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      int64
	}{
		{name: "exact seconds", expiresAt: now.Add(60 * time.Second), want: 60},
		{name: "rounds up partial second", expiresAt: now.Add(59*time.Second + time.Millisecond), want: 60},
		{name: "one millisecond left", expiresAt: now.Add(time.Millisecond), want: 1},
		{name: "expired now", expiresAt: now, want: 0},
		{name: "expired in the past", expiresAt: now.Add(-time.Hour), want: 0},
		{name: "clamped to six digits", expiresAt: now.Add(2_000_000 * time.Second), want: MaxTTLSeconds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Registration{Name: "radio.group3.pro2", IP: "10.0.0.5", ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, r.RemainingTTL(now))
		})
	}
}

func TestRegistration_Live(t *testing.T) {
	now := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)
	r := NewRegistration("radio.group3.pro2", "10.0.0.5", now, time.Minute)

	assert.True(t, r.Live(now))
	assert.True(t, r.Live(now.Add(time.Minute-time.Nanosecond)))
	assert.False(t, r.Live(now.Add(time.Minute)))
}

func TestRegistration_Renew(t *testing.T) {
	now := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)
	r := NewRegistration("radio.group3.pro2", "10.0.0.5", now, time.Minute)

	renewed := r.Renew(now.Add(30*time.Second), time.Minute)
	assert.Equal(t, now.Add(90*time.Second), renewed.ExpiresAt)
	assert.Equal(t, now.Add(time.Minute), r.ExpiresAt, "original must not change")
	assert.Equal(t, r.Name, renewed.Name)
	assert.Equal(t, r.IP, renewed.IP)

	// A shorter TTL never pulls the expiry backwards.
	shorter := renewed.Renew(now.Add(30*time.Second), time.Second)
	assert.Equal(t, renewed.ExpiresAt, shorter.ExpiresAt)
}

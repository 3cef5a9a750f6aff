package service

import (
	"fmt"

	"mydirectory/domain"
)

// FormatTTL renders seconds as the six-digit, zero-padded TTL wire field,
// clamped to [0, domain.MaxTTLSeconds].
func FormatTTL(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > domain.MaxTTLSeconds {
		seconds = domain.MaxTTLSeconds
	}
	return fmt.Sprintf("%06d", seconds)
}

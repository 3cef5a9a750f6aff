package service

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxNameLength is the longest service name accepted by the directory.
const MaxNameLength = 30

var namePattern = regexp.MustCompile(`^.*\.group[0-9]+\.pro2[xy]?$`)

// ValidName reports whether name ends in .group<digits>.pro2, optionally
// followed by x or y, and is at most MaxNameLength bytes long.
func ValidName(name string) bool {
	if name == "" || len(name) > MaxNameLength {
		return false
	}
	return namePattern.MatchString(name)
}

// ValidIPv4 reports whether ip is exactly four dot-separated decimal octets in [0,255].
func ValidIPv4(ip string) bool {
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if p == "" || strings.IndexFunc(p, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
			return false
		}
		v, err := strconv.ParseUint(p, 10, 16)
		if err != nil || v > 255 {
			return false
		}
	}
	return true
}

// validateRegistration returns a bad request error for an invalid name or address.
func validateRegistration(name, ip string) error {
	if !ValidName(name) {
		return NewBadRequestError("invalid service name", nil)
	}
	if !ValidIPv4(ip) {
		return NewBadRequestError("invalid IPv4 address", nil)
	}
	return nil
}

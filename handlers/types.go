package handlers

import (
	"encoding/json"
	"fmt"
	"time"
)

// ControlRequest is one line of the TCP control protocol.
// Keys are optional on the wire; absence is kept as nil.
type ControlRequest struct {
	Cmd  *string `json:"CMD"`
	Name *string `json:"NAME"`
	IPv4 *string `json:"IPv4"`
	IP   *string `json:"IP"`
}

// UnmarshalJSON matches keys exactly; "name" or "Ip" are not NAME or IP.
func (r *ControlRequest) UnmarshalJSON(data []byte) error {
	return unmarshalExactKeys(data, map[string]**string{
		"CMD":  &r.Cmd,
		"NAME": &r.Name,
		"IPv4": &r.IPv4,
		"IP":   &r.IP,
	})
}

// ControlResponse is the single reply line of the TCP control protocol.
type ControlResponse struct {
	Status string `json:"STATUS"`
	TTL    string `json:"TTL,omitempty"`
}

// QueryRequest is the body of a UDP lookup datagram. Exactly one key must be set.
type QueryRequest struct {
	Name *string `json:"NAME"`
	IP   *string `json:"IP"`
}

// UnmarshalJSON matches keys exactly, like ControlRequest.
func (r *QueryRequest) UnmarshalJSON(data []byte) error {
	return unmarshalExactKeys(data, map[string]**string{
		"NAME": &r.Name,
		"IP":   &r.IP,
	})
}

// QueryResponse is the reply datagram of the UDP query protocol.
type QueryResponse struct {
	Status string `json:"STATUS"`
	Name   string `json:"NAME,omitempty"`
	IPv4   string `json:"IPv4,omitempty"`
	TTL    string `json:"TTL,omitempty"`
}

// ListRegistrationsParams defines parameters for ListRegistrations.
type ListRegistrationsParams struct {
	// IP restricts the listing to the registration bound to this address.
	IP *string `query:"ip"`
}

// RegistrationInfo is one registration in the admin API.
type RegistrationInfo struct {
	Name      string    `json:"name"`
	Ipv4      string    `json:"ipv4"`
	TTLSec    int64     `json:"ttl_sec"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegistrationsResponse is the body of GET /v1/registrations.
type RegistrationsResponse struct {
	Registrations []RegistrationInfo `json:"registrations"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// unmarshalExactKeys decodes a JSON object and copies the string values of the
// listed keys into fields. Other keys, including case variants, are ignored.
func unmarshalExactKeys(data []byte, fields map[string]**string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, dst := range fields {
		v, ok := raw[key]
		if !ok {
			continue
		}
		var s *string
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("key %s: %w", key, err)
		}
		*dst = s
	}
	return nil
}

package handlers

import (
	"mydirectory/domain"
	"mydirectory/service"
)

func toControlOK(ttlSec int64) ControlResponse {
	return ControlResponse{Status: string(service.StatusOK), TTL: service.FormatTTL(ttlSec)}
}

func toControlStatus(status service.Status) ControlResponse {
	return ControlResponse{Status: string(status)}
}

func toQueryFound(l domain.Lookup) QueryResponse {
	return QueryResponse{
		Status: string(service.StatusOK),
		Name:   l.Name,
		IPv4:   l.IP,
		TTL:    service.FormatTTL(l.TTLSec),
	}
}

func toQueryStatus(status service.Status) QueryResponse {
	return QueryResponse{Status: string(status)}
}

// toRegistrationsResponse converts lookups to the admin API response.
func toRegistrationsResponse(lookups []domain.Lookup) RegistrationsResponse {
	out := make([]RegistrationInfo, 0, len(lookups))
	for _, l := range lookups {
		out = append(out, toRegistrationInfo(l))
	}
	return RegistrationsResponse{Registrations: out}
}

func toRegistrationInfo(l domain.Lookup) RegistrationInfo {
	return RegistrationInfo{
		Name:      l.Name,
		Ipv4:      l.IP,
		TTLSec:    l.TTLSec,
		ExpiresAt: l.ExpiresAt.UTC(),
	}
}

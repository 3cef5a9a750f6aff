package handlers

import (
	"context"
	"testing"
	"time"

	"mydirectory/domain"
	"mydirectory/interfaces/mock"
	"mydirectory/service"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkflow_RegisterLookupRenewExpire drives both protocols against one registry
// and checks the audit trail they leave behind.
func TestWorkflow_RegisterLookupRenewExpire(t *testing.T) {
	clk := newTestClock()
	recorder := &mock.AuditSinkMock{}
	metrics := service.NewMetrics(prometheus.NewRegistry())
	audit := service.NewAsyncAuditSink(service.FanOutAuditSink{recorder}, 64, metrics, log.NewNopLogger())
	registry := service.NewRegistry(30*time.Second, clk, audit, metrics, log.NewNopLogger())

	tcpAddr, _ := startControlServer(t, registry, ControlServerConfig{})
	udpAddr, _ := startQueryServer(t, registry, audit)

	// 1. Register
	resp := sendControl(t, tcpAddr, `{"CMD":"REGISTER","NAME":"svc.group7.pro2y","IPv4":"192.168.1.7"}`+"\n")
	require.Equal(t, ControlResponse{Status: "000000", TTL: "000030"}, resp)

	// 2. Lookup by name and by ip
	clk.Add(10 * time.Second)
	assert.Equal(t,
		QueryResponse{Status: "000000", Name: "svc.group7.pro2y", IPv4: "192.168.1.7", TTL: "000020"},
		sendQuery(t, udpAddr, `{"NAME":"svc.group7.pro2y"}`))
	assert.Equal(t,
		QueryResponse{Status: "000000", Name: "svc.group7.pro2y", IPv4: "192.168.1.7", TTL: "000020"},
		sendQuery(t, udpAddr, `{"IP":"192.168.1.7"}`))

	// 3. Renew resets the lease
	resp = sendControl(t, tcpAddr, `{"CMD":"RENEW","NAME":"svc.group7.pro2y","IPv4":"192.168.1.7"}`+"\n")
	require.Equal(t, ControlResponse{Status: "000000", TTL: "000030"}, resp)

	// 4. Expire
	clk.Add(30 * time.Second)
	assert.Equal(t, QueryResponse{Status: "000100"}, sendQuery(t, udpAddr, `{"NAME":"svc.group7.pro2y"}`))
	assert.Equal(t, 0, registry.RemoveExpiredNow(service.WithOrigin(context.Background(), domain.OriginCore)))

	require.NoError(t, audit.Close())

	var types []domain.EventType
	for _, c := range recorder.AppendCalls() {
		types = append(types, c.Event.Type)
	}
	assert.Equal(t, []domain.EventType{
		domain.EventRegister,
		domain.EventLookup,
		domain.EventLookup,
		domain.EventRenew,
		domain.EventExpire,
		domain.EventLookup,
	}, types)

	calls := recorder.AppendCalls()
	assert.Equal(t, domain.OriginTCP, calls[0].Event.Origin)
	assert.Equal(t, domain.OriginUDP, calls[4].Event.Origin, "sweep is attributed to the request that triggered it")
	assert.Equal(t, "NOT_FOUND", calls[5].Event.Details)
	assert.Len(t, recorder.CloseCalls(), 1)
}

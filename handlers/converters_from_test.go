package handlers

import (
	"testing"

	"mydirectory/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromControlLine(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		peerIP        string
		expected      controlCommand
		expectedError string
	}{
		{
			name:     "register with IPv4",
			line:     `{"CMD":"REGISTER","NAME":"alpha.group1.pro2","IPv4":"10.0.0.1"}`,
			peerIP:   "127.0.0.1",
			expected: controlCommand{Verb: cmdRegister, Name: testName, IP: testIP},
		},
		{
			name:     "lower case renew with IP key",
			line:     `  {"CMD":"renew","NAME":"alpha.group1.pro2","IP":"10.0.0.1"}  `,
			expected: controlCommand{Verb: cmdRenew, Name: testName, IP: testIP},
		},
		{
			name:     "update is renew",
			line:     `{"CMD":"Update","NAME":"alpha.group1.pro2","IPv4":"10.0.0.1"}`,
			expected: controlCommand{Verb: cmdRenew, Name: testName, IP: testIP},
		},
		{
			name:     "IPv4 wins over IP",
			line:     `{"CMD":"REGISTER","NAME":"alpha.group1.pro2","IPv4":"10.0.0.1","IP":"10.0.0.2"}`,
			expected: controlCommand{Verb: cmdRegister, Name: testName, IP: testIP},
		},
		{
			name:     "peer fallback",
			line:     `{"CMD":"REGISTER","NAME":"alpha.group1.pro2"}`,
			peerIP:   "192.168.0.9",
			expected: controlCommand{Verb: cmdRegister, Name: testName, IP: "192.168.0.9"},
		},
		{
			name:     "lower case ip key is not IP",
			line:     `{"CMD":"REGISTER","NAME":"alpha.group1.pro2","ip":"10.0.0.9"}`,
			peerIP:   "127.0.0.1",
			expected: controlCommand{Verb: cmdRegister, Name: testName, IP: "127.0.0.1"},
		},
		{
			name:          "lower case keys",
			line:          `{"cmd":"REGISTER","name":"alpha.group1.pro2","IPv4":"10.0.0.1"}`,
			expectedError: "CMD and NAME are required",
		},
		{
			name:          "not json",
			line:          `REGISTER alpha.group1.pro2`,
			expectedError: "request is not a JSON object",
		},
		{
			name:          "missing CMD",
			line:          `{"NAME":"alpha.group1.pro2"}`,
			expectedError: "CMD and NAME are required",
		},
		{
			name:          "unknown command",
			line:          `{"CMD":"LOOKUP","NAME":"alpha.group1.pro2"}`,
			expectedError: "unknown command LOOKUP",
		},
		{
			name:          "non string value",
			line:          `{"CMD":"REGISTER","NAME":42}`,
			expectedError: "request is not a JSON object",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := fromControlLine([]byte(tt.line), tt.peerIP)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Equal(t, service.StatusUnknownCommand, service.StatusOf(err))
				assert.Equal(t, tt.expectedError, service.ToStatusError(err).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestFromQueryDatagram(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		expected      lookupQuery
		expectedError string
	}{
		{name: "by name", payload: `{"NAME":"alpha.group1.pro2"}`, expected: lookupQuery{Name: testName}},
		{name: "by ip", payload: `{"IP":"10.0.0.1"}`, expected: lookupQuery{IP: testIP}},
		{name: "bad json", payload: `NAME=x`, expectedError: "bad json"},
		{name: "neither", payload: `{"OTHER":"x"}`, expectedError: "missing NAME or IP"},
		{name: "both", payload: `{"NAME":"a","IP":"b"}`, expectedError: "NAME and IP are mutually exclusive"},
		{name: "empty name", payload: `{"NAME":""}`, expectedError: "empty NAME"},
		{name: "empty ip", payload: `{"IP":""}`, expectedError: "empty IP"},
		{name: "lower case name key", payload: `{"name":"alpha.group1.pro2"}`, expectedError: "missing NAME or IP"},
		{name: "mixed case ip key", payload: `{"Ip":"10.0.0.1"}`, expectedError: "missing NAME or IP"},
		{name: "case variant does not shadow NAME", payload: `{"NAME":"alpha.group1.pro2","name":"b.group1.pro2"}`, expected: lookupQuery{Name: testName}},
		{name: "non string NAME", payload: `{"NAME":42}`, expectedError: "bad json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := fromQueryDatagram([]byte(tt.payload))
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Equal(t, service.StatusBadRequest, service.StatusOf(err))
				assert.Equal(t, tt.expectedError, service.ToStatusError(err).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, q)
		})
	}
}

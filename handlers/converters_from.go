package handlers

import (
	"bytes"
	"encoding/json"
	"strings"

	"mydirectory/service"
)

// Control protocol commands.
const (
	cmdRegister = "REGISTER"
	cmdRenew    = "RENEW"
	cmdUpdate   = "UPDATE"
	cmdLookup   = "LOOKUP"
	// cmdUnknown labels requests whose command could not be determined.
	cmdUnknown = "UNKNOWN"
)

// controlCommand is a validated control request.
type controlCommand struct {
	Verb string // cmdRegister or cmdRenew
	Name string
	IP   string
}

// lookupQuery is a validated query request; exactly one of Name and IP is set.
type lookupQuery struct {
	Name string
	IP   string
}

// fromControlLine parses one control line. peerIP is used when the request
// carries neither IPv4 nor IP. Every failure is service.StatusUnknownCommand.
func fromControlLine(line []byte, peerIP string) (controlCommand, error) {
	var req ControlRequest
	if err := json.Unmarshal(bytes.TrimSpace(line), &req); err != nil {
		return controlCommand{}, service.NewStatusError(service.StatusUnknownCommand, "request is not a JSON object", err)
	}
	if req.Cmd == nil || req.Name == nil {
		return controlCommand{}, service.NewStatusError(service.StatusUnknownCommand, "CMD and NAME are required", nil)
	}

	cmd := controlCommand{Name: *req.Name}
	switch strings.ToUpper(*req.Cmd) {
	case cmdRegister:
		cmd.Verb = cmdRegister
	case cmdRenew, cmdUpdate:
		cmd.Verb = cmdRenew
	default:
		return controlCommand{}, service.NewStatusError(service.StatusUnknownCommand, "unknown command "+*req.Cmd, nil)
	}

	switch {
	case req.IPv4 != nil:
		cmd.IP = *req.IPv4
	case req.IP != nil:
		cmd.IP = *req.IP
	default:
		cmd.IP = peerIP
	}
	return cmd, nil
}

// fromQueryDatagram parses one lookup datagram. Every failure is service.StatusBadRequest.
func fromQueryDatagram(payload []byte) (lookupQuery, error) {
	var req QueryRequest
	if err := json.Unmarshal(bytes.TrimSpace(payload), &req); err != nil {
		return lookupQuery{}, service.NewBadRequestError("bad json", err)
	}
	switch {
	case req.Name == nil && req.IP == nil:
		return lookupQuery{}, service.NewBadRequestError("missing NAME or IP", nil)
	case req.Name != nil && req.IP != nil:
		return lookupQuery{}, service.NewBadRequestError("NAME and IP are mutually exclusive", nil)
	case req.Name != nil && *req.Name == "":
		return lookupQuery{}, service.NewBadRequestError("empty NAME", nil)
	case req.IP != nil && *req.IP == "":
		return lookupQuery{}, service.NewBadRequestError("empty IP", nil)
	}
	return lookupQuery{Name: service.Value(req.Name), IP: service.Value(req.IP)}, nil
}

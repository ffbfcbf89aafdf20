package relay

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
)

// The relay speaks exactly two synthetic JSON frames of its own; every
// other payload passes through untouched.

const frameVersion = 1

// SessionAssignedFrame tells a freshly joined Horizon which session code
// it got (it may have omitted one at handshake).
type SessionAssignedFrame struct {
	V         int    `json:"v"`
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
}

// ErrorFrame is the structured reply for control intent that had no
// Horizon to act on it.
type ErrorFrame struct {
	V       int    `json:"v"`
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const errCodeHorizonOffline = "horizon_offline"

// controlIntentTypes are the Voyager message types that imply an expected
// effect on the Horizon side, worth an explicit offline error. Anything
// else is ordinary best-effort data and is dropped silently.
var controlIntentTypes = map[string]struct{}{
	"list":   {},
	"create": {},
	"close":  {},
	"stdin":  {},
	"resize": {},
}

func BuildSessionAssigned(sessionID string) Frame {
	data, err := json.Marshal(SessionAssignedFrame{
		V:         frameVersion,
		Type:      "session_assigned",
		SessionID: sessionID,
	})
	if err != nil {
		panic(fmt.Sprintf("marshal session_assigned: %v", err))
	}
	return Frame{MsgType: websocket.TextMessage, Data: data}
}

// BuildHorizonOfflineReply inspects a Voyager frame that had no Horizon to
// go to. Only parseable text frames naming a control-intent type get a
// reply; ok is false for everything else.
func BuildHorizonOfflineReply(in Frame) (Frame, bool) {
	if in.MsgType != websocket.TextMessage {
		return Frame{}, false
	}
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(in.Data, &probe); err != nil {
		return Frame{}, false
	}
	if _, control := controlIntentTypes[probe.Type]; !control {
		return Frame{}, false
	}

	data, err := json.Marshal(ErrorFrame{
		V:       frameVersion,
		Type:    "error",
		Code:    errCodeHorizonOffline,
		Message: "Horizon is not connected for this session",
	})
	if err != nil {
		return Frame{}, false
	}
	return Frame{MsgType: websocket.TextMessage, Data: data}, true
}

// CloseSignal is queued behind any frames already buffered, so a peer
// being closed still gets what was routed to it first.
func CloseSignal() Frame {
	return Frame{MsgType: websocket.CloseMessage}
}

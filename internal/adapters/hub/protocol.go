package hub

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// Client frame types.
const (
	TypeJoinBoard      = "JoinBoard"
	TypeLeaveBoard     = "LeaveBoard"
	TypeJoinDashboard  = "JoinDashboard"
	TypeLeaveDashboard = "LeaveDashboard"
	TypePing           = "Ping"
)

// Server frame types.
const (
	typeAck   = "ack"
	typeEvent = "event"
)

const (
	msgBoardIDRequired = "boardId is required"
	msgRateLimited     = "rate limit exceeded"
	msgMalformed       = "malformed message"
	msgUnknownType     = "unknown message type"
)

// inbound is a client frame.
type inbound struct {
	Type    string `json:"type"`
	Ref     string `json:"ref,omitempty"`
	BoardID string `json:"boardId,omitempty"`
}

// ack answers one client frame.
type ack struct {
	Type  string `json:"type"`
	Ref   string `json:"ref,omitempty"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// event carries a group notification.
type event struct {
	Type    string `json:"type"`
	Event   string `json:"event"`
	Group   string `json:"group"`
	Payload any    `json:"payload,omitempty"`
}

func decodeInbound(data []byte) (inbound, error) {
	var in inbound
	err := sonic.Unmarshal(data, &in)
	return in, err
}

// boardID parses the frame's board id. The nil UUID is rejected.
func (in inbound) boardID() (uuid.UUID, bool) {
	id, err := uuid.Parse(in.BoardID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func encodeAck(ref string, failure string) ([]byte, error) {
	return sonic.Marshal(ack{Type: typeAck, Ref: ref, OK: failure == "", Error: failure})
}

func encodeEvent(group, name string, payload any) ([]byte, error) {
	return sonic.Marshal(event{Type: typeEvent, Event: name, Group: group, Payload: payload})
}

package ports

import "context"

// Message is one notification delivered to a connection.
type Message struct {
	Group string `json:"group"`
	Event string `json:"event"`
	// Payload is optional. Board invalidations carry none; receivers re-fetch.
	Payload any `json:"payload,omitempty"`
}

// Sender delivers a message to a single live connection.
// Implemented by the realtime transport; called by the group registry.
// Send must not block on a slow receiver: implementations enqueue or fail.
type Sender interface {
	Send(ctx context.Context, connectionID string, msg Message) error
}

// Notifier broadcasts best-effort notifications to a group.
// Implemented by the group registry; called by the board service.
type Notifier interface {
	// Broadcast delivers event to every member of group at the instant of
	// the call and returns the number of successful deliveries. Delivery
	// failures are logged by the implementation and never returned.
	Broadcast(ctx context.Context, group, event string, payload any) int
}

// GroupMembership is the transport-facing side of the group registry.
type GroupMembership interface {
	// Connect registers a live connection.
	Connect(connectionID string)

	// Disconnect removes the connection and all of its memberships.
	Disconnect(connectionID string) int

	// Join adds the connection to group. Joining twice is a no-op.
	Join(connectionID, group string)

	// Leave removes the connection from group. Leaving a group the
	// connection is not in is a no-op.
	Leave(connectionID, group string)

	// Touch records activity for the connection.
	Touch(connectionID string)
}

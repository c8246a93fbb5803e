// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// The persistence Gateway is implemented by outbound adapters and called by the
// application layer. Sender and GroupMembership connect the realtime transport
// to the in-process group registry.
package ports

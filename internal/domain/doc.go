// Package domain contains shared domain types used across entity sub-packages.
// Board entities live in domain/board and the pure ordering algorithms in
// domain/ordering. This root package holds the error kinds every board
// operation reports (not found, validation, conflict, unexpected) and the
// Outcome classification used by logs, metrics and hub acknowledgements.
package domain

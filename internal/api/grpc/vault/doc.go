// Package vault implements the VaultService gRPC API.
//
// It validates requests, forwards the caller identity to the vault service
// and maps domain errors to gRPC status codes: role violations become
// PermissionDenied, deadline and balance precondition failures become
// FailedPrecondition with the context values in the message.
package vault

// Package common holds helpers shared by the client commands.
//
// It provides a lightweight gRPC client wrapper with timeouts and a helper
// to resolve the caller identity presented to the vault.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

// Package client implements the inhereth-cli subcommands.
//
// Each runner connects to the vault server, performs one operation with the
// resolved caller identity and reports the outcome. Precondition failures
// come back as gRPC status errors and are surfaced to the user as-is; the
// vault never retries on the caller's behalf.
package client

// Package server boots the inhereth-server process: it loads the settings,
// builds the ledger and the vault service, and serves the gRPC API until
// the context is canceled.
package server

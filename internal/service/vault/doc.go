// Package vault is the host side of the custody state machine: it deploys
// the vault from configuration, serializes every operation so each one runs
// to completion atomically, supplies the clock, and logs the emitted events.
//
// The transport layer depends on the Service type and nothing below it.
package vault

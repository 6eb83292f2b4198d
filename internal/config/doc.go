// Package config defines the settings shared by the inhereth binaries and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the gRPC server address, call timeout, log level and
// the vault deployment parameters (creator, heir, funding).
package config

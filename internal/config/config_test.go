package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and format validations for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing address.
	cfg := new(Config)

	require.Error(t, Validate(cfg))

	// Bad address.
	cfg = &Config{
		ServerAddress: "bad:address",
	}

	require.Error(t, Validate(cfg))

	// Missing vault owner.
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
	}

	require.Error(t, Validate(cfg))

	// Unknown log level.
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
		LogLevel:      "loud",
		Vault:         VaultConfig{Owner: "0xa11ce"},
	}

	require.Error(t, Validate(cfg))

	// Okay; heir may be empty and the timeout is defaulted.
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
		LogLevel:      "debug",
		Vault: VaultConfig{
			Owner:   "0xa11ce",
			Funding: 3,
		},
	}

	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultTimeout, cfg.Timeout)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := &Config{
		ServerAddress: "127.0.0.1:50051",
		Timeout:       2 * time.Second,
		Vault: VaultConfig{
			Owner:   "0xa11ce",
			Heir:    "0xb0b",
			Funding: 3,
		},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.ServerAddress, loaded.ServerAddress)
	require.Equal(t, cfg.Timeout, loaded.Timeout)
	require.Equal(t, cfg.Vault, loaded.Vault)
}

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/afosan/inhereth/internal/logger"
)

// VaultConfig describes the vault deployed when the server boots.
type VaultConfig struct {
	// Owner is the creator identity: it becomes the vault's first owner
	// and is credited with the funding before it moves into the vault.
	Owner string `yaml:"owner"`
	// Heir is the first designated successor. It is stored as supplied:
	// empty or equal to the owner are both accepted.
	Heir string `yaml:"heir"`
	// Funding is the value locked into the vault at deployment.
	Funding uint64 `yaml:"funding"`
}

// Config holds connection and deployment parameters shared by the binaries.
type Config struct {
	// ServerAddress is the gRPC address of the vault server.
	ServerAddress string `yaml:"server_addr"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel selects the logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// Vault describes the vault the server deploys at startup.
	Vault VaultConfig `yaml:"vault"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "inhereth-settings.yaml"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerAddressRequired is returned when the server address is missing.
	errServerAddressRequired = errors.New("server address must be provided")
	// errVaultOwnerRequired is returned when the deployment owner is missing.
	errVaultOwnerRequired = errors.New("vault owner must be provided")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and formatting.
// The heir is deliberately not validated: the vault accepts any successor
// identity, including an empty one.
func Validate(cfg *Config) error {
	if cfg.ServerAddress == "" {
		return errServerAddressRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server address: %w", err)
	}

	if cfg.Vault.Owner == "" {
		return errVaultOwnerRequired
	}

	// Set default timeout if not specified.
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.LogLevel != "" {
		if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("unknown log level %q", cfg.LogLevel)
		}
	}

	return nil
}

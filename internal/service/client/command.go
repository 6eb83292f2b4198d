package client

import (
	"context"
	"fmt"
	"time"

	"github.com/afosan/inhereth/internal/config"
	"github.com/afosan/inhereth/internal/logger"
	pb "github.com/afosan/inhereth/internal/pb/v1"
	"github.com/afosan/inhereth/internal/service/common"
)

// Options configures a single client operation.
type Options struct {
	// ConfigPath to the YAML settings file, defaults to the standard filename.
	ConfigPath string

	// ServerAddress overrides the server address from config when specified.
	ServerAddress string

	// Caller is the identity presented to the vault. When empty, the
	// current OS username is used.
	Caller string
}

// RunWithdraw asks the vault to pay amount out to the owner.
func RunWithdraw(ctx context.Context, opts *Options, amount uint64) error {
	return withClient(ctx, opts, "withdraw", func(ctx context.Context, c *common.Client, caller string) error {
		resp, err := c.Withdraw(ctx, caller, amount)
		if err != nil {
			return err
		}

		logger.Infof(ctx, "Withdrew %d, period now ends at %s",
			resp.GetAmount(), formatUnix(resp.GetPeriodEndAt()))

		return nil
	})
}

// RunResetPeriod asks the vault to refresh the deadline without a payout.
func RunResetPeriod(ctx context.Context, opts *Options) error {
	return withClient(ctx, opts, "reset-period", func(ctx context.Context, c *common.Client, caller string) error {
		resp, err := c.ResetPeriod(ctx, caller)
		if err != nil {
			return err
		}

		logger.Infof(ctx, "Period reset, now ends at %s", formatUnix(resp.GetPeriodEndAt()))

		return nil
	})
}

// RunClaim claims custodianship for the heir and nominates the next successor.
func RunClaim(ctx context.Context, opts *Options, newHeir string) error {
	return withClient(ctx, opts, "claim", func(ctx context.Context, c *common.Client, caller string) error {
		resp, err := c.ClaimInheritance(ctx, caller, newHeir)
		if err != nil {
			return err
		}

		logger.Infof(ctx, "Inheritance claimed: owner is now %s, heir is %s",
			resp.GetOwner(), formatHeir(resp.GetHeir()))

		return nil
	})
}

// RunStatus prints the current vault state.
func RunStatus(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "inhereth-cli.status")

	c, err := dial(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = c.Close()
	}()

	resp, err := c.GetVaultState(ctx)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Vault state: %s", formatState(resp))

	return nil
}

// withClient wires the shared plumbing of the mutating commands: settings,
// caller resolution, connection lifecycle.
func withClient(
	ctx context.Context,
	opts *Options,
	name string,
	operation func(ctx context.Context, c *common.Client, caller string) error,
) error {
	ctx = logger.WithName(ctx, "inhereth-cli."+name)

	caller, err := common.ResolveCaller(opts.Caller)
	if err != nil {
		return err
	}

	ctx = logger.WithKV(ctx, "caller", caller)

	c, err := dial(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = c.Close()
	}()

	return operation(ctx, c, caller)
}

// dial loads the settings and connects to the vault server.
func dial(ctx context.Context, opts *Options) (*common.Client, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	return common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
}

// formatState converts a vault state response to a readable log message.
func formatState(state *pb.VaultStateResponse) string {
	if state == nil {
		return "<nil state>"
	}

	return fmt.Sprintf("owner %s, heir %s, balance %d, period ends at %s (period %s)",
		state.GetOwner(),
		formatHeir(state.GetHeir()),
		state.GetBalance(),
		formatUnix(state.GetPeriodEndAt()),
		time.Duration(state.GetPeriodSeconds())*time.Second)
}

// formatHeir renders an empty successor explicitly; the vault accepts one.
func formatHeir(heir string) string {
	if heir == "" {
		return "<none>"
	}

	return heir
}

// formatUnix renders unix seconds as RFC 3339 in UTC.
func formatUnix(seconds int64) string {
	return time.Unix(seconds, 0).UTC().Format(time.RFC3339)
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/afosan/inhereth/internal/config"
	"github.com/afosan/inhereth/internal/service/client"
	"github.com/afosan/inhereth/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// serverAddress overrides the server address from config.
	serverAddress string
	// caller is the identity presented to the vault.
	caller string

	// rootCmd represents the base command for interacting with the vault.
	rootCmd = &cobra.Command{
		Use:   "inhereth-cli",
		Short: "Interact with the inheritance vault server.",
		Long: `Client for the inheritance vault gRPC server.

The caller identity is taken from --caller, falling back to the current OS
username. The vault enforces roles itself: withdraw and reset-period require
the owner before the deadline, claim requires the heir after it.`,
	}

	// withdrawCmd pays value out to the owner.
	withdrawCmd = &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Withdraw value to the owner and refresh the deadline.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			amount, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			return client.RunWithdraw(ctx, clientOptions(), amount)
		},
	}

	// resetPeriodCmd refreshes the deadline without a payout.
	resetPeriodCmd = &cobra.Command{
		Use:   "reset-period",
		Short: "Prove liveness: refresh the deadline without withdrawing.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.RunResetPeriod(ctx, clientOptions())
		},
	}

	// claimCmd claims custodianship after a missed deadline.
	claimCmd = &cobra.Command{
		Use:   "claim [new-heir]",
		Short: "Claim the vault as heir and nominate the next heir.",
		Long: `Claims custodianship once the owner's deadline has passed.

The new heir argument may be omitted or empty; the vault accepts any
successor identity, including none.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var newHeir string
			if len(args) > 0 {
				newHeir = args[0]
			}

			ctx, stop := signalContext()
			defer stop()

			return client.RunClaim(ctx, clientOptions(), newHeir)
		},
	}

	// statusCmd prints the current vault state.
	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Print the current vault state.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return client.RunStatus(ctx, clientOptions())
		},
	}
)

// signalContext returns a context canceled on SIGTERM/SIGINT.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

// clientOptions gathers the shared flags into client options.
func clientOptions() *client.Options {
	return &client.Options{
		ConfigPath:    configPath,
		ServerAddress: serverAddress,
		Caller:        caller,
	}
}

// Execute runs the inhereth-cli and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&serverAddress, "server", "s", "", "vault server address override")
	rootCmd.PersistentFlags().
		StringVarP(&caller, "caller", "a", "", "caller identity (defaults to the OS username)")

	rootCmd.AddCommand(withdrawCmd, resetPeriodCmd, claimCmd, statusCmd)
}

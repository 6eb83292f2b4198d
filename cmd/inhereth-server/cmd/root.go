package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/afosan/inhereth/internal/config"
	"github.com/afosan/inhereth/internal/service/server"
	"github.com/afosan/inhereth/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "inhereth-server [listen-address]",
		Short: "Run the inheritance vault gRPC server.",
		Long: `Starts the gRPC server hosting a single inheritance vault.

The vault is deployed at startup from the configuration file: the configured
owner is funded and the funding is locked into the vault. The owner must
withdraw or reset the period before the deadline; once it passes, the heir
may claim the vault and nominate the next heir.

Only the port from server_addr in the config is used for listening
(e.g., :50051). A listen address argument overrides it (e.g., :9090).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			return server.Run(ctx, &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
			})
		},
	}
)

// Execute runs the inhereth-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
}

package integration

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/afosan/inhereth/internal/config"
	"github.com/afosan/inhereth/internal/service/common"
	"github.com/afosan/inhereth/internal/service/server"
)

// startGRPC starts a vault server with a temporary config file.
// Returns a stop function to gracefully shut the server down.
func startGRPC(t *testing.T, addr string) (stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			ServerAddress: addr,
			Timeout:       5 * time.Second,
			Vault: config.VaultConfig{
				Owner:   "0xa11ce",
				Heir:    "0xb0b",
				Funding: 3,
			},
		}),
	)

	go func() {
		options := &server.Options{
			ConfigPath:    cfgPath,
			ListenAddress: "",
		}

		_ = server.Run(ctx, options)
	}()

	// Wait briefly for the server to start listening.
	time.Sleep(150 * time.Millisecond)

	return func() {
		cancel()
		time.Sleep(100 * time.Millisecond)
	}
}

// TestGRPC_VaultRoundtrip starts the real server and walks the vault
// operations over the wire: status, withdraw, reset-period, and the
// precondition failures a live deployment would produce on day one.
func TestGRPC_VaultRoundtrip(t *testing.T) {
	t.Parallel()

	// Reserve a free port for the test server.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	stop := startGRPC(t, addr)
	defer stop()

	ctx := context.Background()

	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	// The deployed vault is fully funded with a fresh deadline.
	state, err := c.GetVaultState(ctx)
	require.NoError(t, err)
	require.Equal(t, "0xa11ce", state.GetOwner())
	require.Equal(t, "0xb0b", state.GetHeir())
	require.Equal(t, uint64(3), state.GetBalance())
	require.Greater(t, state.GetPeriodEndAt(), time.Now().Unix())

	// The owner withdraws a unit and refreshes the deadline.
	withdraw, err := c.Withdraw(ctx, "0xa11ce", 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), withdraw.GetAmount())

	state, err = c.GetVaultState(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(2), state.GetBalance())

	// Liveness proof without a payout.
	reset, err := c.ResetPeriod(ctx, "0xa11ce")
	require.NoError(t, err)
	require.Zero(t, reset.GetAmount())

	// A stranger cannot withdraw.
	_, err = c.Withdraw(ctx, "0xeve", 1)
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	// Overdrafts are refused with the balance in the message.
	_, err = c.Withdraw(ctx, "0xa11ce", 10)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "have 2")

	// The heir is thirty days early.
	_, err = c.ClaimInheritance(ctx, "0xb0b", "0xca511")
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

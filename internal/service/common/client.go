//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/afosan/inhereth/internal/config"
	pb "github.com/afosan/inhereth/internal/pb/v1"
)

// Client wraps the gRPC VaultService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the vault server.
	conn *grpc.ClientConn
	// api is the generated VaultService client interface.
	api pb.VaultServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errCallerRequired is returned when a caller identity is not provided.
	errCallerRequired = errors.New("caller must be provided")
)

// Dial establishes a gRPC connection to the vault server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial vault server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewVaultServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Withdraw requests a payout to the owner.
func (c *Client) Withdraw(ctx context.Context, caller string, amount uint64) (*pb.WithdrawResponse, error) {
	if caller == "" {
		return nil, errCallerRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.Withdraw(callCtx, &pb.WithdrawRequest{
		Caller: caller,
		Amount: amount,
	})
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	return resp, nil
}

// ResetPeriod requests a deadline refresh without a payout.
func (c *Client) ResetPeriod(ctx context.Context, caller string) (*pb.WithdrawResponse, error) {
	if caller == "" {
		return nil, errCallerRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ResetPeriod(callCtx, &pb.ResetPeriodRequest{Caller: caller})
	if err != nil {
		return nil, fmt.Errorf("reset period: %w", err)
	}

	return resp, nil
}

// ClaimInheritance claims custodianship and nominates the next successor.
// The new heir may be empty; the vault accepts any successor identity.
func (c *Client) ClaimInheritance(ctx context.Context, caller, newHeir string) (*pb.ClaimInheritanceResponse, error) {
	if caller == "" {
		return nil, errCallerRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ClaimInheritance(callCtx, &pb.ClaimInheritanceRequest{
		Caller:  caller,
		NewHeir: newHeir,
	})
	if err != nil {
		return nil, fmt.Errorf("claim inheritance: %w", err)
	}

	return resp, nil
}

// GetVaultState retrieves the current vault state.
func (c *Client) GetVaultState(ctx context.Context) (*pb.VaultStateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetVaultState(callCtx, new(pb.GetVaultStateRequest))
	if err != nil {
		return nil, fmt.Errorf("get vault state: %w", err)
	}

	return resp, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}

package vault

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/afosan/inhereth/internal/config"
	"github.com/afosan/inhereth/internal/domain/custody"
	"github.com/afosan/inhereth/internal/ledger"
)

// fakeClock is an adjustable time source for deterministic deadlines.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time { return c.current }

func (c *fakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

// newTestService deploys a vault at a fixed time with the given funding.
func newTestService(t *testing.T, funding uint64) (*Service, *ledger.Ledger, *fakeClock) {
	t.Helper()

	clock := &fakeClock{
		current: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
	l := ledger.New()

	s, err := newService(context.Background(), config.VaultConfig{
		Owner:   "0xa11ce",
		Heir:    "0xb0b",
		Funding: funding,
	}, l, clock.Now)
	require.NoError(t, err)

	return s, l, clock
}

// TestNewService_DeploysFundedVault verifies the deployment moves the
// funding into the vault account and initializes the snapshot.
func TestNewService_DeploysFundedVault(t *testing.T) {
	t.Parallel()

	s, l, clock := newTestService(t, 3)

	require.Equal(t, uint64(3), l.Balance(Account))
	require.Zero(t, l.Balance("0xa11ce"))

	state := s.State(context.Background())
	require.Equal(t, custody.Address("0xa11ce"), state.Owner)
	require.Equal(t, custody.Address("0xb0b"), state.Heir)
	require.Equal(t, clock.current.Add(custody.Period), state.PeriodEndAt)
	require.Equal(t, uint64(3), state.Balance)
	require.Equal(t, custody.Period, state.Period)
}

// TestService_WithdrawConservation checks the vault debit equals the
// owner's ledger credit exactly.
func TestService_WithdrawConservation(t *testing.T) {
	t.Parallel()

	s, l, clock := newTestService(t, 3)
	clock.Advance(24 * time.Hour)

	event, err := s.Withdraw(context.Background(), "0xa11ce", 1)

	require.NoError(t, err)
	require.Equal(t, uint64(1), event.Amount)
	require.Equal(t, clock.current.Add(custody.Period), event.NewPeriodEndAt)

	require.Equal(t, uint64(2), l.Balance(Account))
	require.Equal(t, uint64(1), l.Balance("0xa11ce"))
	require.Equal(t, uint64(2), s.State(context.Background()).Balance)
}

// TestService_DeadlineFlow walks the missed-deadline story through the
// service: the owner is locked out, the heir claims, a stranger never can.
func TestService_DeadlineFlow(t *testing.T) {
	t.Parallel()

	s, _, clock := newTestService(t, 3)
	ctx := context.Background()

	// Before the deadline the heir cannot claim.
	clock.Advance(custody.Period - time.Second)

	_, err := s.ClaimInheritance(ctx, "0xb0b", "0xca511")

	var notEndedErr *custody.PeriodNotEndedError

	require.ErrorAs(t, err, &notEndedErr)

	// Past the deadline the owner cannot withdraw or reset.
	clock.Advance(2 * time.Second)

	_, err = s.Withdraw(ctx, "0xa11ce", 1)

	var endedErr *custody.PeriodEndedError

	require.ErrorAs(t, err, &endedErr)

	_, err = s.ResetPeriod(ctx, "0xa11ce")
	require.ErrorAs(t, err, &endedErr)

	// A stranger cannot claim; the heir can.
	_, err = s.ClaimInheritance(ctx, "0xeve", "0xca511")
	require.ErrorIs(t, err, custody.ErrNotHeir)

	event, err := s.ClaimInheritance(ctx, "0xb0b", "0xca511")

	require.NoError(t, err)
	require.Equal(t, custody.Address("0xb0b"), event.NewOwner)
	require.Equal(t, custody.Address("0xca511"), event.NewHeir)

	state := s.State(ctx)
	require.Equal(t, custody.Address("0xb0b"), state.Owner)
	require.Equal(t, custody.Address("0xca511"), state.Heir)
	require.Equal(t, uint64(3), state.Balance)
	require.Equal(t, clock.current.Add(custody.Period), state.PeriodEndAt)
}

// TestService_ResetPeriodKeepsBalance verifies liveness proof moves only
// the deadline and reports a zero amount.
func TestService_ResetPeriodKeepsBalance(t *testing.T) {
	t.Parallel()

	s, l, clock := newTestService(t, 3)
	ctx := context.Background()
	clock.Advance(12 * time.Hour)

	event, err := s.ResetPeriod(ctx, "0xa11ce")

	require.NoError(t, err)
	require.Zero(t, event.Amount)
	require.Equal(t, clock.current.Add(custody.Period), s.State(ctx).PeriodEndAt)
	require.Equal(t, uint64(3), l.Balance(Account))
}

package vault

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/afosan/inhereth/internal/domain/custody"
	pb "github.com/afosan/inhereth/internal/pb/v1"
	vaultsvc "github.com/afosan/inhereth/internal/service/vault"
)

// fakeService implements the vault Service interface for unit testing the transport.
type fakeService struct {
	// err is returned by every mutating operation when set.
	err error
	// state is the snapshot served by State.
	state vaultsvc.Snapshot
	// deadline is the refreshed deadline reported by successful operations.
	deadline time.Time
}

func (f *fakeService) Withdraw(_ context.Context, _ custody.Address, amount uint64) (*custody.WithdrawEvent, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &custody.WithdrawEvent{Amount: amount, NewPeriodEndAt: f.deadline}, nil
}

func (f *fakeService) ResetPeriod(context.Context, custody.Address) (*custody.WithdrawEvent, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &custody.WithdrawEvent{Amount: 0, NewPeriodEndAt: f.deadline}, nil
}

func (f *fakeService) ClaimInheritance(_ context.Context, caller, newHeir custody.Address) (*custody.InheritanceEvent, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &custody.InheritanceEvent{NewOwner: caller, NewHeir: newHeir}, nil
}

func (f *fakeService) State(context.Context) vaultsvc.Snapshot { return f.state }

// TestServer_Validation ensures requests without a caller identity are
// rejected with InvalidArgument before reaching the service.
func TestServer_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(new(fakeService))
	ctx := context.Background()

	_, err := s.Withdraw(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.Withdraw(ctx, &pb.WithdrawRequest{Amount: 1})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ResetPeriod(ctx, &pb.ResetPeriodRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ClaimInheritance(ctx, &pb.ClaimInheritanceRequest{NewHeir: "0xca511"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_ErrorMapping verifies the domain error taxonomy surfaces as
// the right status codes with the context values preserved in the message.
func TestServer_ErrorMapping(t *testing.T) {
	t.Parallel()

	deadline := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC)

	cases := map[string]struct {
		err  error
		code codes.Code
	}{
		"not owner": {custody.ErrNotOwner, codes.PermissionDenied},
		"not heir":  {custody.ErrNotHeir, codes.PermissionDenied},
		"not enough balance": {
			&custody.NotEnoughBalanceError{Balance: 3, Requested: 4},
			codes.FailedPrecondition,
		},
		"period ended": {
			&custody.PeriodEndedError{PeriodEndAt: deadline, Now: deadline.Add(time.Second)},
			codes.FailedPrecondition,
		},
		"period not ended": {
			&custody.PeriodNotEndedError{PeriodEndAt: deadline, Now: deadline},
			codes.FailedPrecondition,
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := NewServer(&fakeService{err: tc.err})

			_, err := s.Withdraw(context.Background(), &pb.WithdrawRequest{
				Caller: "0xeve",
				Amount: 4,
			})

			require.Equal(t, tc.code, status.Code(err))
			require.Contains(t, status.Convert(err).Message(), tc.err.Error())
		})
	}
}

// TestServer_Roundtrip exercises the happy paths of all four RPCs.
func TestServer_Roundtrip(t *testing.T) {
	t.Parallel()

	deadline := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC)
	svc := &fakeService{
		deadline: deadline,
		state: vaultsvc.Snapshot{
			Owner:       "0xa11ce",
			Heir:        "0xb0b",
			PeriodEndAt: deadline,
			Balance:     3,
			Period:      custody.Period,
		},
	}
	s := NewServer(svc)
	ctx := context.Background()

	withdraw, err := s.Withdraw(ctx, &pb.WithdrawRequest{Caller: "0xa11ce", Amount: 1})
	require.NoError(t, err)
	require.Equal(t, uint64(1), withdraw.GetAmount())
	require.Equal(t, deadline.Unix(), withdraw.GetPeriodEndAt())

	reset, err := s.ResetPeriod(ctx, &pb.ResetPeriodRequest{Caller: "0xa11ce"})
	require.NoError(t, err)
	require.Zero(t, reset.GetAmount())
	require.Equal(t, deadline.Unix(), reset.GetPeriodEndAt())

	claim, err := s.ClaimInheritance(ctx, &pb.ClaimInheritanceRequest{
		Caller:  "0xb0b",
		NewHeir: "0xca511",
	})
	require.NoError(t, err)
	require.Equal(t, "0xb0b", claim.GetOwner())
	require.Equal(t, "0xca511", claim.GetHeir())

	state, err := s.GetVaultState(ctx, new(pb.GetVaultStateRequest))
	require.NoError(t, err)
	require.Equal(t, "0xa11ce", state.GetOwner())
	require.Equal(t, "0xb0b", state.GetHeir())
	require.Equal(t, deadline.Unix(), state.GetPeriodEndAt())
	require.Equal(t, uint64(3), state.GetBalance())
	require.Equal(t, int64(custody.Period/time.Second), state.GetPeriodSeconds())
}

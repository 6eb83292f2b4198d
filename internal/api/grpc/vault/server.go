package vault

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/afosan/inhereth/internal/domain/custody"
	pb "github.com/afosan/inhereth/internal/pb/v1"
	vaultsvc "github.com/afosan/inhereth/internal/service/vault"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	Withdraw(ctx context.Context, caller custody.Address, amount uint64) (*custody.WithdrawEvent, error)
	ResetPeriod(ctx context.Context, caller custody.Address) (*custody.WithdrawEvent, error)
	ClaimInheritance(ctx context.Context, caller, newHeir custody.Address) (*custody.InheritanceEvent, error)
	State(ctx context.Context) vaultsvc.Snapshot
}

// Server implements the VaultService gRPC API.
type Server struct {
	pb.UnimplementedVaultServiceServer

	// service provides the business logic for vault operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// Withdraw pays value out to the vault owner and refreshes the deadline.
func (s *Server) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.WithdrawResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetCaller() == "" {
		return nil, status.Error(codes.InvalidArgument, "caller is required")
	}

	event, err := s.service.Withdraw(ctx, custody.Address(req.GetCaller()), req.GetAmount())
	if err != nil {
		return nil, toStatusError(err)
	}

	return toWithdrawResponse(event), nil
}

// ResetPeriod refreshes the deadline without moving value. The response is
// a zero-amount withdraw, mirroring the domain event reuse.
func (s *Server) ResetPeriod(ctx context.Context, req *pb.ResetPeriodRequest) (*pb.WithdrawResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetCaller() == "" {
		return nil, status.Error(codes.InvalidArgument, "caller is required")
	}

	event, err := s.service.ResetPeriod(ctx, custody.Address(req.GetCaller()))
	if err != nil {
		return nil, toStatusError(err)
	}

	return toWithdrawResponse(event), nil
}

// ClaimInheritance hands the vault to the heir after a missed deadline.
// The nominated successor is forwarded as supplied, including empty.
func (s *Server) ClaimInheritance(ctx context.Context, req *pb.ClaimInheritanceRequest) (*pb.ClaimInheritanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetCaller() == "" {
		return nil, status.Error(codes.InvalidArgument, "caller is required")
	}

	event, err := s.service.ClaimInheritance(ctx,
		custody.Address(req.GetCaller()), custody.Address(req.GetNewHeir()))
	if err != nil {
		return nil, toStatusError(err)
	}

	state := s.service.State(ctx)

	return &pb.ClaimInheritanceResponse{
		Owner:       string(event.NewOwner),
		Heir:        string(event.NewHeir),
		PeriodEndAt: state.PeriodEndAt.Unix(),
	}, nil
}

// GetVaultState returns the current vault state. No side effects.
func (s *Server) GetVaultState(ctx context.Context, _ *pb.GetVaultStateRequest) (*pb.VaultStateResponse, error) {
	state := s.service.State(ctx)

	return &pb.VaultStateResponse{
		Owner:         string(state.Owner),
		Heir:          string(state.Heir),
		PeriodEndAt:   state.PeriodEndAt.Unix(),
		Balance:       state.Balance,
		PeriodSeconds: int64(state.Period.Seconds()),
	}, nil
}

// toWithdrawResponse converts a domain WithdrawEvent to its wire form.
func toWithdrawResponse(event *custody.WithdrawEvent) *pb.WithdrawResponse {
	return &pb.WithdrawResponse{
		Amount:      event.Amount,
		PeriodEndAt: event.NewPeriodEndAt.Unix(),
	}
}

// toStatusError maps domain errors to gRPC status codes, keeping the
// structured context values in the message.
func toStatusError(err error) error {
	var (
		balanceErr  *custody.NotEnoughBalanceError
		endedErr    *custody.PeriodEndedError
		notEndedErr *custody.PeriodNotEndedError
	)

	switch {
	case errors.Is(err, custody.ErrNotOwner), errors.Is(err, custody.ErrNotHeir):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.As(err, &balanceErr), errors.As(err, &endedErr), errors.As(err, &notEndedErr):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "operation failed")
	}
}

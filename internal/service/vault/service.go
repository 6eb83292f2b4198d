package vault

import (
	"context"
	"sync"
	"time"

	"github.com/afosan/inhereth/internal/config"
	"github.com/afosan/inhereth/internal/domain/custody"
	"github.com/afosan/inhereth/internal/ledger"
	"github.com/afosan/inhereth/internal/logger"
)

// Account is the ledger account holding the vault's funds.
const Account = custody.Address("vault")

// Snapshot is a consistent read of the vault state for external observers.
type Snapshot struct {
	// Owner is the current custodian.
	Owner custody.Address
	// Heir is the designated successor.
	Heir custody.Address
	// PeriodEndAt is the current deadline.
	PeriodEndAt time.Time
	// Balance is the value held by the vault.
	Balance uint64
	// Period is the fixed activity period.
	Period time.Duration
}

// Service owns one deployed vault. The single mutex is the host's
// atomic-execution guarantee: operations never interleave, each one
// either fully commits or leaves no trace.
type Service struct {
	// mu serializes all operations on the vault.
	mu sync.Mutex
	// vault is the deployed custody state machine.
	vault *custody.Vault
	// ledger is the host's value ledger shared with the vault.
	ledger *ledger.Ledger
	// now supplies the current time; replaceable in tests.
	now func() time.Time
}

// NewService deploys a vault described by the configuration: the creator
// is credited with the funding, the funding moves into the vault account,
// and the vault starts its first period.
func NewService(ctx context.Context, cfg config.VaultConfig, l *ledger.Ledger) (*Service, error) {
	return newService(ctx, cfg, l, time.Now)
}

// newService is NewService with a replaceable clock for tests.
func newService(ctx context.Context, cfg config.VaultConfig, l *ledger.Ledger, now func() time.Time) (*Service, error) {
	s := &Service{
		ledger: l,
		now:    now,
	}

	creator := custody.Address(cfg.Owner)
	heir := custody.Address(cfg.Heir)

	l.Credit(creator, cfg.Funding)

	if err := l.Transfer(creator, Account, cfg.Funding); err != nil {
		return nil, err
	}

	deployedAt := s.now()
	s.vault = custody.NewVault(creator, heir, cfg.Funding, deployedAt, l.ForAccount(Account))

	logger.InfoKV(ctx, "Vault deployed",
		"owner", creator,
		"heir", heir,
		"funding", cfg.Funding,
		"period_end_at", s.vault.PeriodEndAt())

	return s, nil
}

// Withdraw pays amount to the owner and refreshes the deadline.
func (s *Service) Withdraw(ctx context.Context, caller custody.Address, amount uint64) (*custody.WithdrawEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.vault.Withdraw(caller, amount, s.now())
	if err != nil {
		logger.WarnKV(ctx, "Withdraw rejected", "caller", caller, "amount", amount, "error", err)

		return nil, err
	}

	logger.InfoKV(ctx, "Withdraw",
		"caller", caller,
		"amount", event.Amount,
		"new_period_end_at", event.NewPeriodEndAt)

	return event, nil
}

// ResetPeriod refreshes the deadline without moving value.
func (s *Service) ResetPeriod(ctx context.Context, caller custody.Address) (*custody.WithdrawEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.vault.ResetPeriod(caller, s.now())
	if err != nil {
		logger.WarnKV(ctx, "ResetPeriod rejected", "caller", caller, "error", err)

		return nil, err
	}

	// The zero-amount withdraw log marks liveness proof without a payout.
	logger.InfoKV(ctx, "Withdraw",
		"caller", caller,
		"amount", event.Amount,
		"new_period_end_at", event.NewPeriodEndAt)

	return event, nil
}

// ClaimInheritance hands the vault to the heir after a missed deadline.
func (s *Service) ClaimInheritance(ctx context.Context, caller, newHeir custody.Address) (*custody.InheritanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.vault.ClaimInheritance(caller, newHeir, s.now())
	if err != nil {
		logger.WarnKV(ctx, "ClaimInheritance rejected", "caller", caller, "error", err)

		return nil, err
	}

	logger.InfoKV(ctx, "Inheritance",
		"new_owner", event.NewOwner,
		"new_heir", event.NewHeir)

	return event, nil
}

// State returns a consistent snapshot of the vault. No side effects.
func (s *Service) State(_ context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Owner:       s.vault.Owner(),
		Heir:        s.vault.Heir(),
		PeriodEndAt: s.vault.PeriodEndAt(),
		Balance:     s.vault.Balance(),
		Period:      custody.Period,
	}
}

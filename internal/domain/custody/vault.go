package custody

import "time"

// Period is how long the owner has to prove activity after every
// successful operation. It is fixed for the lifetime of a vault.
const Period = 30 * 24 * time.Hour

// Address identifies a party on the value ledger.
// The domain treats it as an opaque token; no format is assumed.
type Address string

// Ledger moves value out of the vault to a recipient account.
// The host environment provides the implementation; transfers are
// exact-amount and atomic.
type Ledger interface {
	Transfer(to Address, amount uint64) error
}

// Vault is the custody state machine: current owner, designated heir,
// the activity deadline and the held balance. All fields are mutated
// exclusively through Withdraw, ResetPeriod and ClaimInheritance.
type Vault struct {
	// owner is the current custodian. Changes only on a successful claim.
	owner Address
	// heir is the designated successor. Changes only on a successful claim.
	heir Address
	// periodEndAt is the absolute deadline. Every successful operation
	// moves it to now + Period; it never moves backwards.
	periodEndAt time.Time
	// balance is the value held by the vault, decreased only by Withdraw.
	balance uint64
	// ledger pays out withdrawals to the owner.
	ledger Ledger
}

// WithdrawEvent is emitted by a successful Withdraw or ResetPeriod.
// ResetPeriod reports a zero amount: activity proof without a payout.
type WithdrawEvent struct {
	// Amount is the value paid out to the owner.
	Amount uint64
	// NewPeriodEndAt is the refreshed deadline.
	NewPeriodEndAt time.Time
}

// InheritanceEvent is emitted by a successful ClaimInheritance.
type InheritanceEvent struct {
	// NewOwner is the custodian after the claim (the previous heir).
	NewOwner Address
	// NewHeir is the successor nominated by the claimant.
	NewHeir Address
}

// NewVault creates a vault owned by creator, funded with the given amount.
// The heir is stored as supplied: it may be empty or equal to the creator,
// no validation is performed. The first deadline is now + Period.
func NewVault(creator, heir Address, funding uint64, now time.Time, ledger Ledger) *Vault {
	return &Vault{
		owner:       creator,
		heir:        heir,
		periodEndAt: now.Add(Period),
		balance:     funding,
		ledger:      ledger,
	}
}

// Owner returns the current custodian.
func (v *Vault) Owner() Address { return v.owner }

// Heir returns the designated successor.
func (v *Vault) Heir() Address { return v.heir }

// PeriodEndAt returns the current deadline.
func (v *Vault) PeriodEndAt() time.Time { return v.periodEndAt }

// Balance returns the value currently held by the vault.
func (v *Vault) Balance() uint64 { return v.balance }

// Withdraw pays amount out of the vault to the owner and refreshes the
// deadline. Only the owner may call it, only while the period has not
// ended (now == periodEndAt still counts as not ended), and only up to
// the held balance. The deadline is extended before the ledger transfer
// executes, so any reentrant call triggered by the transfer observes the
// refreshed deadline. A ledger failure rolls everything back.
func (v *Vault) Withdraw(caller Address, amount uint64, now time.Time) (*WithdrawEvent, error) {
	if err := v.checkOwnerActive(caller, now); err != nil {
		return nil, err
	}

	if amount > v.balance {
		return nil, &NotEnoughBalanceError{
			Balance:   v.balance,
			Requested: amount,
		}
	}

	prevEndAt, prevBalance := v.periodEndAt, v.balance

	// Deadline first, transfer second. Keep this ordering.
	v.periodEndAt = now.Add(Period)
	v.balance -= amount

	if err := v.ledger.Transfer(v.owner, amount); err != nil {
		v.periodEndAt, v.balance = prevEndAt, prevBalance

		return nil, err
	}

	return &WithdrawEvent{
		Amount:         amount,
		NewPeriodEndAt: v.periodEndAt,
	}, nil
}

// ResetPeriod refreshes the deadline without moving value: the owner's
// way of proving liveness. Guards are the same as Withdraw minus the
// balance check. The emitted event carries a zero amount.
func (v *Vault) ResetPeriod(caller Address, now time.Time) (*WithdrawEvent, error) {
	if err := v.checkOwnerActive(caller, now); err != nil {
		return nil, err
	}

	v.periodEndAt = now.Add(Period)

	return &WithdrawEvent{
		Amount:         0,
		NewPeriodEndAt: v.periodEndAt,
	}, nil
}

// ClaimInheritance transfers custodianship to the heir once the deadline
// has strictly passed. The claimant nominates the next heir, which is
// stored unvalidated: it may be empty, the new owner or the old owner.
// The balance is untouched and the deadline starts a fresh period.
func (v *Vault) ClaimInheritance(caller, newHeir Address, now time.Time) (*InheritanceEvent, error) {
	if caller != v.heir {
		return nil, ErrNotHeir
	}

	if !now.After(v.periodEndAt) {
		return nil, &PeriodNotEndedError{
			PeriodEndAt: v.periodEndAt,
			Now:         now,
		}
	}

	v.owner = v.heir
	v.heir = newHeir
	v.periodEndAt = now.Add(Period)

	return &InheritanceEvent{
		NewOwner: v.owner,
		NewHeir:  v.heir,
	}, nil
}

// checkOwnerActive enforces the shared guards of the owner operations:
// the caller must be the owner and the period must not have ended.
func (v *Vault) checkOwnerActive(caller Address, now time.Time) error {
	if caller != v.owner {
		return ErrNotOwner
	}

	if now.After(v.periodEndAt) {
		return &PeriodEndedError{
			PeriodEndAt: v.periodEndAt,
			Now:         now,
		}
	}

	return nil
}

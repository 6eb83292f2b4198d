package ledger

import (
	"fmt"
	"sync"

	"github.com/afosan/inhereth/internal/domain/custody"
)

// Ledger tracks balances per address. All operations are atomic; a
// transfer either moves the exact amount or changes nothing.
type Ledger struct {
	// mu protects balances.
	mu sync.RWMutex
	// balances holds the confirmed balance per address.
	balances map[custody.Address]uint64
}

// InsufficientFundsError reports a transfer exceeding the source balance.
type InsufficientFundsError struct {
	// From is the account that could not cover the transfer.
	From custody.Address
	// Balance is the value held by the account.
	Balance uint64
	// Requested is the amount the transfer asked for.
	Requested uint64
}

// Error implements the error interface.
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on %s: have %d, requested %d",
		e.From, e.Balance, e.Requested)
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		balances: make(map[custody.Address]uint64),
	}
}

// Credit increases the balance of an address. Intended for funding
// accounts when the host boots.
func (l *Ledger) Credit(addr custody.Address, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[addr] += amount
}

// Balance returns the current balance of an address.
func (l *Ledger) Balance(addr custody.Address) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balances[addr]
}

// Transfer moves amount from one address to another. It fails with
// InsufficientFundsError when the source cannot cover the amount, in
// which case no balance changes.
func (l *Ledger) Transfer(from, to custody.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	held := l.balances[from]
	if held < amount {
		return &InsufficientFundsError{
			From:      from,
			Balance:   held,
			Requested: amount,
		}
	}

	l.balances[from] = held - amount
	l.balances[to] += amount

	return nil
}

// AccountLedger binds the ledger to a single source account, satisfying
// the custody.Ledger interface: every transfer is debited from that
// account. The vault service uses it to pay withdrawals out of the
// vault's own account.
type AccountLedger struct {
	// ledger is the underlying shared ledger.
	ledger *Ledger
	// account is the fixed source of every transfer.
	account custody.Address
}

// ForAccount returns a view of the ledger that sends from the given account.
func (l *Ledger) ForAccount(account custody.Address) *AccountLedger {
	return &AccountLedger{
		ledger:  l,
		account: account,
	}
}

// Transfer moves amount from the bound account to the recipient.
func (a *AccountLedger) Transfer(to custody.Address, amount uint64) error {
	return a.ledger.Transfer(a.account, to, amount)
}

package custody

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotOwner is returned when Withdraw or ResetPeriod is called by
	// anyone but the current owner.
	ErrNotOwner = errors.New("caller is not the owner")
	// ErrNotHeir is returned when ClaimInheritance is called by anyone
	// but the current heir.
	ErrNotHeir = errors.New("caller is not the heir")
)

// NotEnoughBalanceError reports a withdrawal exceeding the held balance.
type NotEnoughBalanceError struct {
	// Balance is the value held at call time.
	Balance uint64
	// Requested is the amount the caller asked for.
	Requested uint64
}

// Error implements the error interface.
func (e *NotEnoughBalanceError) Error() string {
	return fmt.Sprintf("not enough balance: have %d, requested %d", e.Balance, e.Requested)
}

// PeriodEndedError reports an owner operation attempted after the deadline.
type PeriodEndedError struct {
	// PeriodEndAt is the deadline that had already passed.
	PeriodEndAt time.Time
	// Now is the call time that exceeded it.
	Now time.Time
}

// Error implements the error interface.
func (e *PeriodEndedError) Error() string {
	return fmt.Sprintf("period ended at %s, now %s",
		e.PeriodEndAt.Format(time.RFC3339), e.Now.Format(time.RFC3339))
}

// PeriodNotEndedError reports a claim attempted before the deadline passed.
type PeriodNotEndedError struct {
	// PeriodEndAt is the deadline that has not yet passed.
	PeriodEndAt time.Time
	// Now is the call time.
	Now time.Time
}

// Error implements the error interface.
func (e *PeriodNotEndedError) Error() string {
	return fmt.Sprintf("period has not ended yet: ends at %s, now %s",
		e.PeriodEndAt.Format(time.RFC3339), e.Now.Format(time.RFC3339))
}

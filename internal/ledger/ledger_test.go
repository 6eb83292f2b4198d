package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/afosan/inhereth/internal/domain/custody"
)

// TestCreditAndBalance verifies credits accumulate per address.
func TestCreditAndBalance(t *testing.T) {
	t.Parallel()

	l := New()

	require.Zero(t, l.Balance("0xa11ce"))

	l.Credit("0xa11ce", 5)
	l.Credit("0xa11ce", 2)

	require.Equal(t, uint64(7), l.Balance("0xa11ce"))
	require.Zero(t, l.Balance("0xb0b"))
}

// TestTransfer checks the exact-amount move and the overdraft failure
// leaving both sides untouched.
func TestTransfer(t *testing.T) {
	t.Parallel()

	l := New()
	l.Credit("0xa11ce", 5)

	require.NoError(t, l.Transfer("0xa11ce", "0xb0b", 3))
	require.Equal(t, uint64(2), l.Balance("0xa11ce"))
	require.Equal(t, uint64(3), l.Balance("0xb0b"))

	err := l.Transfer("0xa11ce", "0xb0b", 3)

	var fundsErr *InsufficientFundsError

	require.ErrorAs(t, err, &fundsErr)
	require.Equal(t, custody.Address("0xa11ce"), fundsErr.From)
	require.Equal(t, uint64(2), fundsErr.Balance)
	require.Equal(t, uint64(3), fundsErr.Requested)

	require.Equal(t, uint64(2), l.Balance("0xa11ce"))
	require.Equal(t, uint64(3), l.Balance("0xb0b"))
}

// TestForAccount verifies the bound view debits its fixed account.
func TestForAccount(t *testing.T) {
	t.Parallel()

	l := New()
	l.Credit("vault", 4)

	var payer custody.Ledger = l.ForAccount("vault")

	require.NoError(t, payer.Transfer("0xa11ce", 4))
	require.Zero(t, l.Balance("vault"))
	require.Equal(t, uint64(4), l.Balance("0xa11ce"))

	require.Error(t, payer.Transfer("0xa11ce", 1))
}

// Package ledger implements the in-memory value ledger the vault host
// provides: per-address balances with exact-amount, all-or-nothing
// transfers. It is the execution environment's money, not the vault's
// business logic.
package ledger

// Package custody contains the core domain logic of the inheritance vault.
//
// A Vault holds value for its owner, who must prove activity before a
// rolling deadline by withdrawing or resetting the period. Once the deadline
// passes, the designated heir may claim the vault and nominate the next
// heir. All three transitions are guarded by caller identity and deadline
// checks and either fully commit or fail with no state change.
package custody

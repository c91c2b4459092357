package ports

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Ledger failure kinds, most specific classification first. Adapters that
// only see opaque RPC strings may return plain errors; the lifecycle
// classifier falls back to substring matching for those.
var (
	ErrUserRejected         = errors.New("user rejected transaction")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrPreconditionViolated = errors.New("ledger precondition violated")
)

// PreconditionError carries the contract-side revert reason, e.g.
// "Already has starter vehicle", "cooldown", "staked".
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPreconditionViolated.Error(), e.Reason)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPreconditionViolated
}

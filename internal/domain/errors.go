package domain

import (
	"errors"
	"fmt"
)

var (
	// Input errors
	ErrUnknownKind   = errors.New("unknown transaction type")
	ErrAmountMissing = errors.New("amount must be provided")

	// Account errors
	ErrDuplicateTransaction  = errors.New("transaction id already processed")
	ErrAccountLocked         = errors.New("account is locked")
	ErrInsufficientAvailable = errors.New("insufficient available funds")
	ErrInsufficientHeld      = errors.New("insufficient held funds")
	ErrTransactionNotFound   = errors.New("transaction not found")
)

// LifecycleError reports a dispute, resolve or chargeback applied to a
// ledger entry that is not in the state the operation requires.
type LifecycleError struct {
	Tx        TxID
	Attempted Kind
	EntryKind Kind
	Status    EntryStatus
}

func (e *LifecycleError) Error() string {
	if e.EntryKind == KindWithdrawal {
		return fmt.Sprintf("tx %d: cannot %s a withdrawal", e.Tx, e.Attempted)
	}

	return fmt.Sprintf("tx %d: cannot %s entry in state %s", e.Tx, e.Attempted, e.Status)
}

// Reason maps a rejection to a stable snake_case code, used as a metric
// label and log field.
func Reason(err error) string {
	var lifecycleErr *LifecycleError

	switch {
	case errors.Is(err, ErrAmountMissing):
		return "amount_missing"
	case errors.Is(err, ErrDuplicateTransaction):
		return "duplicate_transaction"
	case errors.Is(err, ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, ErrInsufficientAvailable):
		return "insufficient_available"
	case errors.Is(err, ErrInsufficientHeld):
		return "insufficient_held"
	case errors.Is(err, ErrTransactionNotFound):
		return "transaction_not_found"
	case errors.Is(err, ErrUnknownKind):
		return "unknown_kind"
	case errors.As(err, &lifecycleErr):
		return "invalid_lifecycle_transition"
	}

	return "unknown"
}

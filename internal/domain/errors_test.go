package domain

import (
	"fmt"
	"testing"
)

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrAmountMissing, "amount_missing"},
		{ErrDuplicateTransaction, "duplicate_transaction"},
		{ErrAccountLocked, "account_locked"},
		{ErrInsufficientAvailable, "insufficient_available"},
		{ErrInsufficientHeld, "insufficient_held"},
		{ErrTransactionNotFound, "transaction_not_found"},
		{ErrUnknownKind, "unknown_kind"},
		{fmt.Errorf("apply: %w", ErrAccountLocked), "account_locked"},
		{&LifecycleError{Tx: 1, Attempted: KindDispute, Status: EntryDisputed}, "invalid_lifecycle_transition"},
		{fmt.Errorf("boom"), "unknown"},
	}

	for _, tt := range tests {
		if got := Reason(tt.err); got != tt.want {
			t.Errorf("Reason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestLifecycleError_Error(t *testing.T) {
	withdrawalErr := &LifecycleError{Tx: 7, Attempted: KindDispute, EntryKind: KindWithdrawal, Status: EntryPosted}
	if got, want := withdrawalErr.Error(), "tx 7: cannot dispute a withdrawal"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	disputedErr := &LifecycleError{Tx: 8, Attempted: KindDispute, EntryKind: KindDeposit, Status: EntryDisputed}
	if got, want := disputedErr.Error(), "tx 8: cannot dispute entry in state disputed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"deposit", "withdrawal", "dispute", "resolve", "chargeback"} {
		if _, err := ParseKind(valid); err != nil {
			t.Errorf("ParseKind(%q) returned error: %v", valid, err)
		}
	}

	if _, err := ParseKind("transfer"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

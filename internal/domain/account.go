package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EntryStatus is the dispute-lifecycle state of a retained ledger entry.
type EntryStatus string

const (
	EntryPosted       EntryStatus = "posted"
	EntryDisputed     EntryStatus = "disputed"
	EntryChargebacked EntryStatus = "chargebacked"
)

// entry is the retained record for an accepted deposit or withdrawal.
// Kind records what the transaction was; Status tracks its dispute
// lifecycle. Withdrawal entries are kept only so later references to their
// id can be rejected.
type entry struct {
	Kind   Kind
	Status EntryStatus
	Amount decimal.Decimal
}

// Account owns one client's balances and the lifecycle of every
// transaction posted to it. It is a pure state machine: no concurrency,
// and each operation either fully applies or leaves the receiver
// untouched.
type Account struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool

	entries map[TxID]entry
}

// NewAccount creates an empty account for client.
func NewAccount(client ClientID) *Account {
	return &Account{
		Client:  client,
		entries: make(map[TxID]entry),
	}
}

// Total returns available + held. It is derived, never stored.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// Apply dispatches tx to the operation matching its kind.
func (a *Account) Apply(tx Transaction) error {
	switch tx.Kind {
	case KindDeposit:
		return a.Deposit(tx)
	case KindWithdrawal:
		return a.Withdraw(tx)
	case KindDispute:
		return a.Dispute(tx)
	case KindResolve:
		return a.Resolve(tx)
	case KindChargeback:
		return a.Chargeback(tx)
	}

	return fmt.Errorf("%w: %q", ErrUnknownKind, tx.Kind)
}

// Deposit credits available funds. Locked accounts still accept deposits.
func (a *Account) Deposit(tx Transaction) error {
	if _, ok := a.entries[tx.Tx]; ok {
		return ErrDuplicateTransaction
	}

	if !tx.Amount.Valid {
		return ErrAmountMissing
	}

	a.Available = a.Available.Add(tx.Amount.Decimal)
	a.entries[tx.Tx] = entry{Kind: KindDeposit, Status: EntryPosted, Amount: tx.Amount.Decimal}

	return nil
}

// Withdraw debits available funds. The balance must stay strictly
// positive: withdrawing the exact available amount is rejected.
func (a *Account) Withdraw(tx Transaction) error {
	if a.Locked {
		return ErrAccountLocked
	}

	if _, ok := a.entries[tx.Tx]; ok {
		return ErrDuplicateTransaction
	}

	if !tx.Amount.Valid {
		return ErrAmountMissing
	}

	if a.Available.LessThanOrEqual(tx.Amount.Decimal) {
		return ErrInsufficientAvailable
	}

	a.Available = a.Available.Sub(tx.Amount.Decimal)
	a.entries[tx.Tx] = entry{Kind: KindWithdrawal, Status: EntryPosted, Amount: tx.Amount.Decimal}

	return nil
}

// Dispute moves a posted deposit's funds from available to held.
func (a *Account) Dispute(tx Transaction) error {
	e, err := a.lookup(tx, EntryPosted)
	if err != nil {
		return err
	}

	if a.Available.LessThan(e.Amount) {
		return ErrInsufficientAvailable
	}

	e.Status = EntryDisputed
	a.entries[tx.Tx] = e
	a.Available = a.Available.Sub(e.Amount)
	a.Held = a.Held.Add(e.Amount)

	return nil
}

// Resolve returns a disputed entry's funds to available. The entry becomes
// posted again and may be disputed anew.
func (a *Account) Resolve(tx Transaction) error {
	e, err := a.lookup(tx, EntryDisputed)
	if err != nil {
		return err
	}

	if a.Held.LessThan(e.Amount) {
		return ErrInsufficientHeld
	}

	e.Status = EntryPosted
	a.entries[tx.Tx] = e
	a.Held = a.Held.Sub(e.Amount)
	a.Available = a.Available.Add(e.Amount)

	return nil
}

// Chargeback removes a disputed entry's held funds and locks the account
// permanently. The entry is terminal afterwards: it can never be disputed,
// resolved or charged back again.
func (a *Account) Chargeback(tx Transaction) error {
	e, err := a.lookup(tx, EntryDisputed)
	if err != nil {
		return err
	}

	if a.Held.LessThan(e.Amount) {
		return ErrInsufficientHeld
	}

	e.Status = EntryChargebacked
	a.entries[tx.Tx] = e
	a.Held = a.Held.Sub(e.Amount)
	a.Locked = true

	return nil
}

// lookup fetches the ledger entry referenced by tx and checks it is a
// deposit in the wanted lifecycle state. Withdrawals are never eligible
// for dispute processing.
func (a *Account) lookup(tx Transaction, want EntryStatus) (entry, error) {
	e, ok := a.entries[tx.Tx]
	if !ok {
		return entry{}, ErrTransactionNotFound
	}

	if e.Kind == KindWithdrawal || e.Status != want {
		return entry{}, &LifecycleError{Tx: tx.Tx, Attempted: tx.Kind, EntryKind: e.Kind, Status: e.Status}
	}

	return e, nil
}

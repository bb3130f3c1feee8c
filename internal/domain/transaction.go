package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ClientID identifies an account. It is also the sharding key for the
// worker pool.
type ClientID uint16

// TxID identifies a transaction. Ids are unique across the whole input,
// not per account.
type TxID uint32

// Kind is the transaction type as it appears in the input.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// ParseKind validates a raw transaction type string.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return k, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Transaction is one immutable input record. Amount is present only for
// deposits and withdrawals; the remaining kinds reference a prior
// transaction id instead.
type Transaction struct {
	Kind   Kind
	Client ClientID
	Tx     TxID
	Amount decimal.NullDecimal
}

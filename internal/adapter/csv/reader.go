package csv

import (
	enccsv "encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/payments/internal/domain"
)

// RowError describes a malformed input row. The pipeline logs it and moves
// on to the next row; it never aborts the run.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Reader decodes transactions from the `type,client,tx,amount` format.
type Reader struct {
	csv  *enccsv.Reader
	line int
}

// NewReader creates a Reader on r. Field counts are flexible because the
// amount column is absent for dispute, resolve and chargeback rows.
func NewReader(r io.Reader) *Reader {
	cr := enccsv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{csv: cr}
}

// Read returns the next transaction. It returns io.EOF at end of input and
// a *RowError for any row that cannot be decoded.
func (r *Reader) Read() (domain.Transaction, error) {
	for {
		record, err := r.csv.Read()
		if err == io.EOF {
			return domain.Transaction{}, io.EOF
		}

		r.line++

		if err != nil {
			return domain.Transaction{}, &RowError{Line: r.line, Err: err}
		}

		if r.line == 1 && len(record) > 0 && strings.TrimSpace(record[0]) == "type" {
			continue // header
		}

		tx, err := decode(record)
		if err != nil {
			return domain.Transaction{}, &RowError{Line: r.line, Err: err}
		}

		return tx, nil
	}
}

func decode(record []string) (domain.Transaction, error) {
	if len(record) < 3 {
		return domain.Transaction{}, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}

	kind, err := domain.ParseKind(strings.TrimSpace(record[0]))
	if err != nil {
		return domain.Transaction{}, err
	}

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("client: %w", err)
	}

	txID, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("tx: %w", err)
	}

	tx := domain.Transaction{
		Kind:   kind,
		Client: domain.ClientID(client),
		Tx:     domain.TxID(txID),
	}

	if len(record) > 3 {
		if raw := strings.TrimSpace(record[3]); raw != "" {
			amt, err := decimal.NewFromString(raw)
			if err != nil {
				return domain.Transaction{}, fmt.Errorf("amount: %w", err)
			}

			tx.Amount = decimal.NullDecimal{Decimal: amt, Valid: true}
		}
	}

	return tx, nil
}

package csv

import (
	enccsv "encoding/csv"
	"io"
	"strconv"

	"github.com/iho/payments/internal/domain"
)

// Write renders the final account table, one row per account with every
// amount at exactly 4 decimal places. Row order follows the input slice;
// consumers must not depend on it.
func Write(w io.Writer, accounts []*domain.Account) error {
	cw := enccsv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	for _, account := range accounts {
		record := []string{
			strconv.FormatUint(uint64(account.Client), 10),
			account.Available.StringFixed(4),
			account.Held.StringFixed(4),
			account.Total().StringFixed(4),
			strconv.FormatBool(account.Locked),
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

package engine

import (
	"github.com/rs/zerolog"

	"github.com/iho/payments/internal/domain"
)

// Reporter receives every rejected transaction. Rejections are operator
// diagnostics and stay off the data output stream.
type Reporter interface {
	Rejected(tx domain.Transaction, err error)
}

// LogReporter reports rejections through zerolog.
type LogReporter struct {
	logger zerolog.Logger
}

// NewLogReporter creates a new LogReporter.
func NewLogReporter(logger zerolog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Rejected logs the dropped transaction with its rejection reason.
func (r *LogReporter) Rejected(tx domain.Transaction, err error) {
	evt := r.logger.Warn().
		Err(err).
		Str("reason", domain.Reason(err)).
		Str("kind", string(tx.Kind)).
		Uint16("client", uint16(tx.Client)).
		Uint32("tx", uint32(tx.Tx))

	if tx.Amount.Valid {
		evt = evt.Str("amount", tx.Amount.Decimal.String())
	}

	evt.Msg("transaction rejected")
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxLedgerBalance is the upper bound for a ledger's running balance.
const MaxLedgerBalance int64 = 999_999_999

// Ledger is the aggregate root holding an agency's running balance.
// TotalBalance is mutated only through the transaction engine.
type Ledger struct {
	ID           string
	AgencyID     string
	Name         string
	TotalBalance int64
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApplyDelta computes the balance after applying a signed delta and
// validates it against [0, MaxLedgerBalance]. The sum is computed in
// arbitrary precision before truncating to int64, so an intermediate
// result beyond the int64 range cannot wrap past the bound check.
func (l *Ledger) ApplyDelta(delta int64) (int64, error) {
	candidate := decimal.NewFromInt(l.TotalBalance).Add(decimal.NewFromInt(delta))

	if candidate.IsNegative() || candidate.GreaterThan(decimal.NewFromInt(MaxLedgerBalance)) {
		return 0, ErrInvalidLedgerAmount
	}

	return candidate.IntPart(), nil
}

package domain

import "time"

// Detail represents one recorded financial transaction against a ledger.
// BalanceAfterTransaction snapshots the ledger's total balance immediately
// after this detail was applied; it is rewritten only when this same
// detail is later updated.
type Detail struct {
	ID                      string
	LedgerID                string
	UserID                  string
	FundType                FundType
	Amount                  int64
	BalanceAfterTransaction int64
	StoreInfo               string
	Description             string
	PaymentDate             time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Validate validates a detail before it is recorded.
func (d *Detail) Validate() error {
	if !d.FundType.IsValid() {
		return ErrUnknownFundType
	}

	if d.Amount <= 0 {
		return ErrInvalidAmount
	}

	return nil
}

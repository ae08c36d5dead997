package domain

import "time"

// Event types
const (
	EventTypeTransactionRecorded = "transaction.recorded"
	EventTypeTransactionAmended  = "transaction.amended"
	EventTypeTransactionReversed = "transaction.reversed"
	EventTypeLedgerCreated       = "ledger.created"
)

// Aggregate types
const (
	AggregateTypeLedger = "ledger"
	AggregateTypeDetail = "detail"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// TransactionRecordedEvent payload
type TransactionRecordedEvent struct {
	DetailID     string `json:"detail_id"`
	LedgerID     string `json:"ledger_id"`
	FundType     string `json:"fund_type"`
	Amount       int64  `json:"amount"`
	TotalBalance int64  `json:"total_balance"`
}

// TransactionAmendedEvent payload
type TransactionAmendedEvent struct {
	DetailID     string `json:"detail_id"`
	LedgerID     string `json:"ledger_id"`
	OldAmount    int64  `json:"old_amount"`
	NewAmount    int64  `json:"new_amount"`
	TotalBalance int64  `json:"total_balance"`
}

// TransactionReversedEvent payload
type TransactionReversedEvent struct {
	DetailID     string `json:"detail_id"`
	LedgerID     string `json:"ledger_id"`
	FundType     string `json:"fund_type"`
	Amount       int64  `json:"amount"`
	TotalBalance int64  `json:"total_balance"`
}

// LedgerCreatedEvent payload
type LedgerCreatedEvent struct {
	LedgerID string `json:"ledger_id"`
	AgencyID string `json:"agency_id"`
	Name     string `json:"name"`
}

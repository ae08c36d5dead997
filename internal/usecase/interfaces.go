package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fundledger/fundledger/internal/domain"
)

// LedgerRepository defines data access for ledgers.
type LedgerRepository interface {
	Create(ctx context.Context, ledger *domain.Ledger) error
	GetByID(ctx context.Context, id string) (*domain.Ledger, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Ledger, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance int64, updatedAt time.Time) error
	ListByAgency(ctx context.Context, agencyID string, limit, offset int) ([]*domain.Ledger, error)
}

// DetailRepository defines data access for ledger details.
type DetailRepository interface {
	Create(ctx context.Context, tx Transaction, detail *domain.Detail) error
	GetByID(ctx context.Context, id string) (*domain.Detail, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Detail, error)
	Update(ctx context.Context, tx Transaction, detail *domain.Detail) error
	Delete(ctx context.Context, tx Transaction, id string) error
	ListByLedger(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.Detail, error)
	SumSignedAmounts(ctx context.Context, ledgerID string) (decimal.Decimal, error)
}

// ReceiptRepository defines data access for receipts.
type ReceiptRepository interface {
	CreateBatch(ctx context.Context, tx Transaction, receipts []*domain.Receipt) error
	GetByID(ctx context.Context, id string) (*domain.Receipt, error)
	ListByDetail(ctx context.Context, detailID string) ([]*domain.Receipt, error)
	Delete(ctx context.Context, id string) error
	DeleteByDetail(ctx context.Context, tx Transaction, detailID string) error
}

// DocumentRepository defines data access for documents.
type DocumentRepository interface {
	CreateBatch(ctx context.Context, tx Transaction, documents []*domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	ListByDetail(ctx context.Context, detailID string) ([]*domain.Document, error)
	Delete(ctx context.Context, id string) error
	DeleteByDetail(ctx context.Context, tx Transaction, detailID string) error
}

// AgencyRepository defines data access for agency memberships.
type AgencyRepository interface {
	GetMember(ctx context.Context, userID, agencyID string) (*domain.AgencyUser, error)
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
}

// Authorizer is the capability check required before mutating ledger state.
// Implementations resolve the user's membership in the ledger's owning
// agency; the engine itself stays free of identity concerns.
type Authorizer interface {
	RequireStaff(ctx context.Context, userID, agencyID string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs a unit of work on transient persistence conflicts
// (deadlocks, serialization failures). Domain failures are never retried.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

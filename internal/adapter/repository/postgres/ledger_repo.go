package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fundledger/fundledger/internal/domain"
	"github.com/fundledger/fundledger/internal/infrastructure/postgres/generated"
	"github.com/fundledger/fundledger/internal/usecase"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new ledger.
func (r *LedgerRepository) Create(ctx context.Context, ledger *domain.Ledger) error {
	_, err := r.queries.CreateLedger(ctx, generated.CreateLedgerParams{
		ID:           ledger.ID,
		AgencyID:     ledger.AgencyID,
		Name:         ledger.Name,
		TotalBalance: ledger.TotalBalance,
		Version:      ledger.Version,
		CreatedAt:    timeToPgTimestamptz(ledger.CreatedAt),
		UpdatedAt:    timeToPgTimestamptz(ledger.UpdatedAt),
	})

	return err
}

// GetByID retrieves a ledger by ID.
func (r *LedgerRepository) GetByID(ctx context.Context, id string) (*domain.Ledger, error) {
	row, err := r.queries.GetLedgerByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLedgerNotFound
		}

		return nil, err
	}

	return rowToLedger(row), nil
}

// GetByIDForUpdate retrieves a ledger by ID with a FOR UPDATE lock.
func (r *LedgerRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Ledger, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetLedgerByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLedgerNotFound
		}

		return nil, err
	}

	return rowToLedger(row), nil
}

// UpdateBalance updates the running balance of a ledger.
func (r *LedgerRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance int64, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateLedgerBalance(ctx, generated.UpdateLedgerBalanceParams{
		ID:           id,
		TotalBalance: balance,
		UpdatedAt:    timeToPgTimestamptz(updatedAt),
	})
}

// ListByAgency lists ledgers belonging to an agency with pagination.
func (r *LedgerRepository) ListByAgency(ctx context.Context, agencyID string, limit, offset int) ([]*domain.Ledger, error) {
	rows, err := r.queries.ListLedgersByAgency(ctx, generated.ListLedgersByAgencyParams{
		AgencyID: agencyID,
		Limit:    int32(limit),
		Offset:   int32(offset),
	})
	if err != nil {
		return nil, err
	}

	ledgers := make([]*domain.Ledger, 0, len(rows))
	for _, row := range rows {
		ledgers = append(ledgers, rowToLedger(row))
	}

	return ledgers, nil
}

func rowToLedger(row generated.Ledger) *domain.Ledger {
	return &domain.Ledger{
		ID:           row.ID,
		AgencyID:     row.AgencyID,
		Name:         row.Name,
		TotalBalance: row.TotalBalance,
		Version:      row.Version,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fundledger/fundledger/internal/domain"
	"github.com/fundledger/fundledger/internal/infrastructure/postgres/generated"
	"github.com/fundledger/fundledger/internal/usecase"
)

// DetailRepository implements usecase.DetailRepository.
type DetailRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewDetailRepository creates a new DetailRepository.
func NewDetailRepository(pool *pgxpool.Pool) *DetailRepository {
	return &DetailRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new ledger detail within a transaction.
func (r *DetailRepository) Create(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateDetail(ctx, generated.CreateDetailParams{
		ID:                      detail.ID,
		LedgerID:                detail.LedgerID,
		UserID:                  detail.UserID,
		FundType:                string(detail.FundType),
		Amount:                  detail.Amount,
		BalanceAfterTransaction: detail.BalanceAfterTransaction,
		StoreInfo:               detail.StoreInfo,
		Description:             detail.Description,
		PaymentDate:             timeToPgTimestamptz(detail.PaymentDate),
		CreatedAt:               timeToPgTimestamptz(detail.CreatedAt),
		UpdatedAt:               timeToPgTimestamptz(detail.UpdatedAt),
	})

	return err
}

// GetByID retrieves a detail by ID.
func (r *DetailRepository) GetByID(ctx context.Context, id string) (*domain.Detail, error) {
	row, err := r.queries.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDetailNotFound
		}

		return nil, err
	}

	return rowToDetail(row), nil
}

// GetByIDForUpdate retrieves a detail by ID with a FOR UPDATE lock.
func (r *DetailRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Detail, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetDetailByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDetailNotFound
		}

		return nil, err
	}

	return rowToDetail(row), nil
}

// Update rewrites the mutable fields of a detail within a transaction.
func (r *DetailRepository) Update(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateDetail(ctx, generated.UpdateDetailParams{
		ID:                      detail.ID,
		Amount:                  detail.Amount,
		BalanceAfterTransaction: detail.BalanceAfterTransaction,
		StoreInfo:               detail.StoreInfo,
		Description:             detail.Description,
		PaymentDate:             timeToPgTimestamptz(detail.PaymentDate),
		UpdatedAt:               timeToPgTimestamptz(detail.UpdatedAt),
	})
}

// Delete removes a detail within a transaction.
func (r *DetailRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.DeleteDetail(ctx, id)
}

// ListByLedger lists details of a ledger, newest first, with pagination.
func (r *DetailRepository) ListByLedger(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.Detail, error) {
	rows, err := r.queries.ListDetailsByLedger(ctx, generated.ListDetailsByLedgerParams{
		LedgerID: ledgerID,
		Limit:    int32(limit),
		Offset:   int32(offset),
	})
	if err != nil {
		return nil, err
	}

	details := make([]*domain.Detail, 0, len(rows))
	for _, row := range rows {
		details = append(details, rowToDetail(row))
	}

	return details, nil
}

// SumSignedAmounts computes the signed sum of all detail amounts of a ledger.
func (r *DetailRepository) SumSignedAmounts(ctx context.Context, ledgerID string) (decimal.Decimal, error) {
	total, err := r.queries.SumSignedDetailAmounts(ctx, ledgerID)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

func rowToDetail(row generated.LedgerDetail) *domain.Detail {
	return &domain.Detail{
		ID:                      row.ID,
		LedgerID:                row.LedgerID,
		UserID:                  row.UserID,
		FundType:                domain.FundType(row.FundType),
		Amount:                  row.Amount,
		BalanceAfterTransaction: row.BalanceAfterTransaction,
		StoreInfo:               row.StoreInfo,
		Description:             row.Description,
		PaymentDate:             row.PaymentDate.Time,
		CreatedAt:               row.CreatedAt.Time,
		UpdatedAt:               row.UpdatedAt.Time,
	}
}

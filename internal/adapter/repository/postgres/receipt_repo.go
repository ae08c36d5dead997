package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fundledger/fundledger/internal/domain"
	"github.com/fundledger/fundledger/internal/infrastructure/postgres/generated"
	"github.com/fundledger/fundledger/internal/usecase"
)

// ReceiptRepository implements usecase.ReceiptRepository.
type ReceiptRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewReceiptRepository creates a new ReceiptRepository.
func NewReceiptRepository(pool *pgxpool.Pool) *ReceiptRepository {
	return &ReceiptRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CreateBatch creates receipts within a transaction.
func (r *ReceiptRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, receipts []*domain.Receipt) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	for _, receipt := range receipts {
		_, err := queries.CreateReceipt(ctx, generated.CreateReceiptParams{
			ID:        receipt.ID,
			DetailID:  receipt.DetailID,
			ImageUrl:  receipt.ImageURL,
			CreatedAt: timeToPgTimestamptz(receipt.CreatedAt),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a receipt by ID.
func (r *ReceiptRepository) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	row, err := r.queries.GetReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReceiptNotFound
		}

		return nil, err
	}

	return rowToReceipt(row), nil
}

// ListByDetail lists receipts attached to a detail.
func (r *ReceiptRepository) ListByDetail(ctx context.Context, detailID string) ([]*domain.Receipt, error) {
	rows, err := r.queries.ListReceiptsByDetail(ctx, detailID)
	if err != nil {
		return nil, err
	}

	receipts := make([]*domain.Receipt, 0, len(rows))
	for _, row := range rows {
		receipts = append(receipts, rowToReceipt(row))
	}

	return receipts, nil
}

// Delete removes a receipt.
func (r *ReceiptRepository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteReceipt(ctx, id)
}

// DeleteByDetail removes all receipts of a detail within a transaction.
func (r *ReceiptRepository) DeleteByDetail(ctx context.Context, tx usecase.Transaction, detailID string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.DeleteReceiptsByDetail(ctx, detailID)
}

func rowToReceipt(row generated.LedgerReceipt) *domain.Receipt {
	return &domain.Receipt{
		ID:        row.ID,
		DetailID:  row.DetailID,
		ImageURL:  row.ImageUrl,
		CreatedAt: row.CreatedAt.Time,
	}
}

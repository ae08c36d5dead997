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

// DocumentRepository implements usecase.DocumentRepository.
type DocumentRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CreateBatch creates documents within a transaction.
func (r *DocumentRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, documents []*domain.Document) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	for _, document := range documents {
		_, err := queries.CreateDocument(ctx, generated.CreateDocumentParams{
			ID:        document.ID,
			DetailID:  document.DetailID,
			ImageUrl:  document.ImageURL,
			CreatedAt: timeToPgTimestamptz(document.CreatedAt),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a document by ID.
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	row, err := r.queries.GetDocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}

		return nil, err
	}

	return rowToDocument(row), nil
}

// ListByDetail lists documents attached to a detail.
func (r *DocumentRepository) ListByDetail(ctx context.Context, detailID string) ([]*domain.Document, error) {
	rows, err := r.queries.ListDocumentsByDetail(ctx, detailID)
	if err != nil {
		return nil, err
	}

	documents := make([]*domain.Document, 0, len(rows))
	for _, row := range rows {
		documents = append(documents, rowToDocument(row))
	}

	return documents, nil
}

// Delete removes a document.
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteDocument(ctx, id)
}

// DeleteByDetail removes all documents of a detail within a transaction.
func (r *DocumentRepository) DeleteByDetail(ctx context.Context, tx usecase.Transaction, detailID string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.DeleteDocumentsByDetail(ctx, detailID)
}

func rowToDocument(row generated.LedgerDocument) *domain.Document {
	return &domain.Document{
		ID:        row.ID,
		DetailID:  row.DetailID,
		ImageURL:  row.ImageUrl,
		CreatedAt: row.CreatedAt.Time,
	}
}

package usecase

import (
	"context"
	"time"

	"github.com/fundledger/fundledger/internal/domain"
)

// EvidenceUseCase coordinates receipts and documents attached to a detail.
// It never touches balance state.
type EvidenceUseCase struct {
	txManager    TransactionManager
	detailRepo   DetailRepository
	receiptRepo  ReceiptRepository
	documentRepo DocumentRepository
	idGen        IDGenerator
	cache        Cache
}

// NewEvidenceUseCase creates a new EvidenceUseCase.
func NewEvidenceUseCase(
	txManager TransactionManager,
	detailRepo DetailRepository,
	receiptRepo ReceiptRepository,
	documentRepo DocumentRepository,
	idGen IDGenerator,
	cache Cache,
) *EvidenceUseCase {
	return &EvidenceUseCase{
		txManager:    txManager,
		detailRepo:   detailRepo,
		receiptRepo:  receiptRepo,
		documentRepo: documentRepo,
		idGen:        idGen,
		cache:        cache,
	}
}

// AddReceipts attaches receipt images to an existing detail.
func (uc *EvidenceUseCase) AddReceipts(ctx context.Context, detailID string, imageURLs []string) ([]*domain.Receipt, error) {
	detail, err := uc.detailRepo.GetByID(ctx, detailID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	receipts := make([]*domain.Receipt, 0, len(imageURLs))
	for _, url := range imageURLs {
		if err := domain.ValidateImageURL(url); err != nil {
			return nil, err
		}

		receipts = append(receipts, &domain.Receipt{
			ID:        uc.idGen.Generate(),
			DetailID:  detail.ID,
			ImageURL:  url,
			CreatedAt: now,
		})
	}

	if len(receipts) == 0 {
		return receipts, nil
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := uc.receiptRepo.CreateBatch(ctx, tx, receipts); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, detail.ID)

	return receipts, nil
}

// RemoveReceipt removes a receipt from a detail. The receipt must belong to
// the given detail; a mismatch reads as not found.
func (uc *EvidenceUseCase) RemoveReceipt(ctx context.Context, detailID, receiptID string) error {
	receipt, err := uc.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return err
	}

	if receipt.DetailID != detailID {
		return domain.ErrReceiptNotFound
	}

	if err := uc.receiptRepo.Delete(ctx, receipt.ID); err != nil {
		return err
	}

	uc.invalidate(ctx, detailID)

	return nil
}

// AddDocuments attaches supporting documents to an existing detail.
func (uc *EvidenceUseCase) AddDocuments(ctx context.Context, detailID string, imageURLs []string) ([]*domain.Document, error) {
	detail, err := uc.detailRepo.GetByID(ctx, detailID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	documents := make([]*domain.Document, 0, len(imageURLs))
	for _, url := range imageURLs {
		if err := domain.ValidateImageURL(url); err != nil {
			return nil, err
		}

		documents = append(documents, &domain.Document{
			ID:        uc.idGen.Generate(),
			DetailID:  detail.ID,
			ImageURL:  url,
			CreatedAt: now,
		})
	}

	if len(documents) == 0 {
		return documents, nil
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := uc.documentRepo.CreateBatch(ctx, tx, documents); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, detail.ID)

	return documents, nil
}

// RemoveDocument removes a document from a detail.
func (uc *EvidenceUseCase) RemoveDocument(ctx context.Context, detailID, documentID string) error {
	document, err := uc.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	if document.DetailID != detailID {
		return domain.ErrDocumentNotFound
	}

	if err := uc.documentRepo.Delete(ctx, document.ID); err != nil {
		return err
	}

	uc.invalidate(ctx, detailID)

	return nil
}

func (uc *EvidenceUseCase) invalidate(ctx context.Context, detailID string) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, detailCacheKey(detailID))
	}
}

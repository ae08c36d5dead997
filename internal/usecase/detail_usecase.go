package usecase

import (
	"context"
	"encoding/json"

	"github.com/fundledger/fundledger/internal/domain"
)

// DetailUseCase reads detail views, optionally through the cache.
type DetailUseCase struct {
	detailRepo   DetailRepository
	receiptRepo  ReceiptRepository
	documentRepo DocumentRepository
	cache        Cache
}

// NewDetailUseCase creates a new DetailUseCase.
func NewDetailUseCase(detailRepo DetailRepository, receiptRepo ReceiptRepository, documentRepo DocumentRepository, cache Cache) *DetailUseCase {
	return &DetailUseCase{
		detailRepo:   detailRepo,
		receiptRepo:  receiptRepo,
		documentRepo: documentRepo,
		cache:        cache,
	}
}

// GetDetail retrieves a detail with its evidence. Cached views are served
// until a write to the detail invalidates them.
func (uc *DetailUseCase) GetDetail(ctx context.Context, detailID string) (*DetailInfo, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, detailCacheKey(detailID)); err == nil {
			var info DetailInfo
			if json.Unmarshal(data, &info) == nil {
				return &info, nil
			}
		}
	}

	detail, err := uc.detailRepo.GetByID(ctx, detailID)
	if err != nil {
		return nil, err
	}

	receipts, err := uc.receiptRepo.ListByDetail(ctx, detailID)
	if err != nil {
		return nil, err
	}

	documents, err := uc.documentRepo.ListByDetail(ctx, detailID)
	if err != nil {
		return nil, err
	}

	info := &DetailInfo{Detail: detail, Receipts: receipts, Documents: documents}

	if uc.cache != nil {
		if data, err := json.Marshal(info); err == nil {
			_ = uc.cache.Set(ctx, detailCacheKey(detailID), data, DetailCacheTTL)
		}
	}

	return info, nil
}

// ListDetailsInput represents input for listing a ledger's details.
type ListDetailsInput struct {
	LedgerID string
	Limit    int
	Offset   int
}

// ListDetails lists details for a ledger in commit order.
func (uc *DetailUseCase) ListDetails(ctx context.Context, input ListDetailsInput) ([]*domain.Detail, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.detailRepo.ListByLedger(ctx, input.LedgerID, input.Limit, input.Offset)
}

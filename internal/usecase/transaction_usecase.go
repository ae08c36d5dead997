package usecase

import (
	"context"
	"time"

	"github.com/fundledger/fundledger/internal/domain"
	"github.com/fundledger/fundledger/internal/infrastructure/metrics"
)

// TransactionUseCase is the ledger balance transaction engine. Every
// operation runs as one atomic unit of work: the ledger row is locked for
// the duration of the read-compute-write, so concurrent operations on the
// same ledger apply sequentially and cumulatively. Operations on different
// ledgers proceed in parallel without coordination.
type TransactionUseCase struct {
	txManager    TransactionManager
	ledgerRepo   LedgerRepository
	detailRepo   DetailRepository
	receiptRepo  ReceiptRepository
	documentRepo DocumentRepository
	outboxRepo   OutboxRepository
	authorizer   Authorizer
	idGen        IDGenerator
	retrier      Retrier
	cache        Cache
	metrics      *metrics.Metrics
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TransactionManager,
	ledgerRepo LedgerRepository,
	detailRepo DetailRepository,
	receiptRepo ReceiptRepository,
	documentRepo DocumentRepository,
	outboxRepo OutboxRepository,
	authorizer Authorizer,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
	metrics *metrics.Metrics,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:    txManager,
		ledgerRepo:   ledgerRepo,
		detailRepo:   detailRepo,
		receiptRepo:  receiptRepo,
		documentRepo: documentRepo,
		outboxRepo:   outboxRepo,
		authorizer:   authorizer,
		idGen:        idGen,
		retrier:      retrier,
		cache:        cache,
		metrics:      metrics,
	}
}

// DetailInfo is a detail together with its attached evidence.
type DetailInfo struct {
	Detail    *domain.Detail
	Receipts  []*domain.Receipt
	Documents []*domain.Document
}

// CreateTransactionInput represents input for recording a transaction.
type CreateTransactionInput struct {
	LedgerID          string
	UserID            string
	FundType          domain.FundType
	Amount            int64
	StoreInfo         string
	Description       string
	PaymentDate       time.Time
	ReceiptImageURLs  []string
	DocumentImageURLs []string
}

// CreateTransaction records a new transaction against a ledger: it applies
// the signed amount to the running balance, snapshots the resulting balance
// on the new detail and attaches any evidence, all atomically.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*DetailInfo, error) {
	// Validate inputs before starting the transaction
	delta, err := domain.SignedAmount(input.FundType, input.Amount)
	if err != nil {
		return nil, err
	}

	var info *DetailInfo

	err = uc.retry(ctx, func() error {
		var opErr error
		info, opErr = uc.createTransaction(ctx, input, delta)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsRecorded.Inc()
		uc.metrics.LedgerBalance.WithLabelValues(input.LedgerID).Set(float64(info.Detail.BalanceAfterTransaction))
	}

	return info, nil
}

func (uc *TransactionUseCase) createTransaction(ctx context.Context, input CreateTransactionInput, delta int64) (*DetailInfo, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	// Lock the ledger row for the read-compute-write
	ledger, err := uc.ledgerRepo.GetByIDForUpdate(txCtx, tx, input.LedgerID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.RequireStaff(txCtx, input.UserID, ledger.AgencyID); err != nil {
		return nil, err
	}

	newBalance, err := ledger.ApplyDelta(delta)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if err := uc.ledgerRepo.UpdateBalance(txCtx, tx, ledger.ID, newBalance, now); err != nil {
		return nil, err
	}

	detail := &domain.Detail{
		ID:                      uc.idGen.Generate(),
		LedgerID:                ledger.ID,
		UserID:                  input.UserID,
		FundType:                input.FundType,
		Amount:                  input.Amount,
		BalanceAfterTransaction: newBalance,
		StoreInfo:               input.StoreInfo,
		Description:             input.Description,
		PaymentDate:             input.PaymentDate,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := detail.Validate(); err != nil {
		return nil, err
	}

	if err := uc.detailRepo.Create(txCtx, tx, detail); err != nil {
		return nil, err
	}

	receipts, err := uc.attachReceipts(txCtx, tx, detail.ID, input.ReceiptImageURLs, now)
	if err != nil {
		return nil, err
	}

	documents, err := uc.attachDocuments(txCtx, tx, detail.ID, input.DocumentImageURLs, now)
	if err != nil {
		return nil, err
	}

	if uc.outboxRepo != nil {
		event := &domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   detail.ID,
			AggregateType: domain.AggregateTypeDetail,
			EventType:     domain.EventTypeTransactionRecorded,
			Payload: map[string]any{
				"detail_id":     detail.ID,
				"ledger_id":     ledger.ID,
				"fund_type":     string(detail.FundType),
				"amount":        detail.Amount,
				"total_balance": newBalance,
			},
			CreatedAt: now,
			Published: false,
		}
		if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	return &DetailInfo{Detail: detail, Receipts: receipts, Documents: documents}, nil
}

// UpdateTransactionInput represents input for editing a recorded transaction.
// The fund type of a detail is immutable; only the amount and metadata change.
type UpdateTransactionInput struct {
	DetailID    string
	UserID      string
	Amount      int64
	StoreInfo   string
	Description string
	PaymentDate time.Time
}

// UpdateTransaction edits an existing detail. The ledger balance moves by
// the modification delta (new signed amount minus old signed amount), since
// the original effect is already reflected in the running balance.
func (uc *TransactionUseCase) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (*DetailInfo, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var info *DetailInfo

	err := uc.retry(ctx, func() error {
		var opErr error
		info, opErr = uc.updateTransaction(ctx, input)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateDetail(ctx, input.DetailID)

	if uc.metrics != nil {
		uc.metrics.TransactionsAmended.Inc()
		uc.metrics.LedgerBalance.WithLabelValues(info.Detail.LedgerID).Set(float64(info.Detail.BalanceAfterTransaction))
	}

	return info, nil
}

func (uc *TransactionUseCase) updateTransaction(ctx context.Context, input UpdateTransactionInput) (*DetailInfo, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	// Lock order is always detail then ledger
	detail, err := uc.detailRepo.GetByIDForUpdate(txCtx, tx, input.DetailID)
	if err != nil {
		return nil, err
	}

	ledger, err := uc.ledgerRepo.GetByIDForUpdate(txCtx, tx, detail.LedgerID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.RequireStaff(txCtx, input.UserID, ledger.AgencyID); err != nil {
		return nil, err
	}

	delta, err := domain.ModificationDelta(detail.FundType, detail.Amount, input.Amount)
	if err != nil {
		return nil, err
	}

	newBalance, err := ledger.ApplyDelta(delta)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if err := uc.ledgerRepo.UpdateBalance(txCtx, tx, ledger.ID, newBalance, now); err != nil {
		return nil, err
	}

	oldAmount := detail.Amount

	detail.Amount = input.Amount
	detail.BalanceAfterTransaction = newBalance
	detail.StoreInfo = input.StoreInfo
	detail.Description = input.Description
	detail.PaymentDate = input.PaymentDate
	detail.UpdatedAt = now

	if err := uc.detailRepo.Update(txCtx, tx, detail); err != nil {
		return nil, err
	}

	if uc.outboxRepo != nil {
		event := &domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   detail.ID,
			AggregateType: domain.AggregateTypeDetail,
			EventType:     domain.EventTypeTransactionAmended,
			Payload: map[string]any{
				"detail_id":     detail.ID,
				"ledger_id":     ledger.ID,
				"old_amount":    oldAmount,
				"new_amount":    detail.Amount,
				"total_balance": newBalance,
			},
			CreatedAt: now,
			Published: false,
		}
		if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	receipts, err := uc.receiptRepo.ListByDetail(ctx, detail.ID)
	if err != nil {
		return nil, err
	}

	documents, err := uc.documentRepo.ListByDetail(ctx, detail.ID)
	if err != nil {
		return nil, err
	}

	return &DetailInfo{Detail: detail, Receipts: receipts, Documents: documents}, nil
}

// DeleteTransaction removes a detail and reverses its effect on the ledger
// balance. Its receipts and documents are deleted in the same unit of work.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, detailID string) error {
	var ledgerID string
	var newBalance int64

	err := uc.retry(ctx, func() error {
		var opErr error
		ledgerID, newBalance, opErr = uc.deleteTransaction(ctx, detailID)
		return opErr
	})
	if err != nil {
		return err
	}

	uc.invalidateDetail(ctx, detailID)

	if uc.metrics != nil {
		uc.metrics.TransactionsReversed.Inc()
		uc.metrics.LedgerBalance.WithLabelValues(ledgerID).Set(float64(newBalance))
	}

	return nil
}

func (uc *TransactionUseCase) deleteTransaction(ctx context.Context, detailID string) (string, int64, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	detail, err := uc.detailRepo.GetByIDForUpdate(txCtx, tx, detailID)
	if err != nil {
		return "", 0, err
	}

	ledger, err := uc.ledgerRepo.GetByIDForUpdate(txCtx, tx, detail.LedgerID)
	if err != nil {
		return "", 0, err
	}

	signed, err := domain.SignedAmount(detail.FundType, detail.Amount)
	if err != nil {
		return "", 0, err
	}

	// A bound violation here means the stored state was already
	// inconsistent; the rollback leaves everything untouched.
	newBalance, err := ledger.ApplyDelta(-signed)
	if err != nil {
		return "", 0, err
	}

	now := time.Now().UTC()

	if err := uc.ledgerRepo.UpdateBalance(txCtx, tx, ledger.ID, newBalance, now); err != nil {
		return "", 0, err
	}

	// Cascade is explicit: evidence rows go in the same unit of work
	if err := uc.receiptRepo.DeleteByDetail(txCtx, tx, detail.ID); err != nil {
		return "", 0, err
	}

	if err := uc.documentRepo.DeleteByDetail(txCtx, tx, detail.ID); err != nil {
		return "", 0, err
	}

	if err := uc.detailRepo.Delete(txCtx, tx, detail.ID); err != nil {
		return "", 0, err
	}

	if uc.outboxRepo != nil {
		event := &domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   detail.ID,
			AggregateType: domain.AggregateTypeDetail,
			EventType:     domain.EventTypeTransactionReversed,
			Payload: map[string]any{
				"detail_id":     detail.ID,
				"ledger_id":     ledger.ID,
				"fund_type":     string(detail.FundType),
				"amount":        detail.Amount,
				"total_balance": newBalance,
			},
			CreatedAt: now,
			Published: false,
		}
		if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
			return "", 0, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return "", 0, err
	}

	return ledger.ID, newBalance, nil
}

func (uc *TransactionUseCase) attachReceipts(ctx context.Context, tx Transaction, detailID string, urls []string, now time.Time) ([]*domain.Receipt, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	receipts := make([]*domain.Receipt, 0, len(urls))
	for _, url := range urls {
		if err := domain.ValidateImageURL(url); err != nil {
			return nil, err
		}

		receipts = append(receipts, &domain.Receipt{
			ID:        uc.idGen.Generate(),
			DetailID:  detailID,
			ImageURL:  url,
			CreatedAt: now,
		})
	}

	if err := uc.receiptRepo.CreateBatch(ctx, tx, receipts); err != nil {
		return nil, err
	}

	return receipts, nil
}

func (uc *TransactionUseCase) attachDocuments(ctx context.Context, tx Transaction, detailID string, urls []string, now time.Time) ([]*domain.Document, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	documents := make([]*domain.Document, 0, len(urls))
	for _, url := range urls {
		if err := domain.ValidateImageURL(url); err != nil {
			return nil, err
		}

		documents = append(documents, &domain.Document{
			ID:        uc.idGen.Generate(),
			DetailID:  detailID,
			ImageURL:  url,
			CreatedAt: now,
		})
	}

	if err := uc.documentRepo.CreateBatch(ctx, tx, documents); err != nil {
		return nil, err
	}

	return documents, nil
}

// retry funnels a unit of work through the configured retrier, if any.
// Only transient persistence conflicts are retried; domain failures pass
// through unchanged.
func (uc *TransactionUseCase) retry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}
	return uc.retrier.Retry(ctx, operation)
}

func (uc *TransactionUseCase) invalidateDetail(ctx context.Context, detailID string) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, detailCacheKey(detailID))
	}
}

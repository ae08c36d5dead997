package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fundledger/fundledger/internal/domain"
)

// ErrInconsistentLedger is returned when the running balance does not equal
// the sum of signed detail amounts.
var ErrInconsistentLedger = errors.New("ledger is inconsistent: balance does not equal sum of details")

// LedgerUseCase handles ledger lifecycle and ledger-wide checks.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
	detailRepo DetailRepository
	authorizer Authorizer
	idGen      IDGenerator
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository, detailRepo DetailRepository, authorizer Authorizer, idGen IDGenerator) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo: ledgerRepo,
		detailRepo: detailRepo,
		authorizer: authorizer,
		idGen:      idGen,
	}
}

// CreateLedgerInput represents input for creating a ledger.
type CreateLedgerInput struct {
	AgencyID string
	UserID   string
	Name     string
}

// CreateLedger creates a new ledger for an agency with a zero balance.
func (uc *LedgerUseCase) CreateLedger(ctx context.Context, input CreateLedgerInput) (*domain.Ledger, error) {
	if err := domain.ValidateLedgerName(input.Name); err != nil {
		return nil, err
	}

	if err := uc.authorizer.RequireStaff(ctx, input.UserID, input.AgencyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	ledger := &domain.Ledger{
		ID:           uc.idGen.Generate(),
		AgencyID:     input.AgencyID,
		Name:         input.Name,
		TotalBalance: 0,
		Version:      0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.ledgerRepo.Create(ctx, ledger); err != nil {
		return nil, err
	}

	return ledger, nil
}

// GetLedger retrieves a ledger by ID.
func (uc *LedgerUseCase) GetLedger(ctx context.Context, id string) (*domain.Ledger, error) {
	return uc.ledgerRepo.GetByID(ctx, id)
}

// ListLedgersInput represents input for listing an agency's ledgers.
type ListLedgersInput struct {
	AgencyID string
	Limit    int
	Offset   int
}

// ListLedgers lists an agency's ledgers with pagination.
func (uc *LedgerUseCase) ListLedgers(ctx context.Context, input ListLedgersInput) ([]*domain.Ledger, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.ledgerRepo.ListByAgency(ctx, input.AgencyID, input.Limit, input.Offset)
}

// CheckConsistency verifies that the ledger's running balance equals the sum
// of signed amounts of all its details. The sum is computed in arbitrary
// precision so a drifted store cannot hide behind integer wraparound.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context, ledgerID string) (bool, error) {
	ledger, err := uc.ledgerRepo.GetByID(ctx, ledgerID)
	if err != nil {
		return false, err
	}

	sum, err := uc.detailRepo.SumSignedAmounts(ctx, ledgerID)
	if err != nil {
		return false, err
	}

	if !sum.Equal(decimal.NewFromInt(ledger.TotalBalance)) {
		return false, ErrInconsistentLedger
	}

	return true, nil
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fundledger/fundledger/internal/domain"
	"github.com/fundledger/fundledger/internal/usecase"
	"github.com/fundledger/fundledger/internal/usecase/mocks"
)

func TestLedgerUseCase_CreateLedger(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateLedgerInput
		setupMocks  func(*mocks.MockLedgerRepository, *mocks.MockAuthorizer)
		expectError bool
		errorType   error
	}{
		{
			name: "successful ledger creation",
			input: usecase.CreateLedgerInput{
				AgencyID: "agency-1",
				UserID:   "user-1",
				Name:     "Club Fund",
			},
			setupMocks: func(repo *mocks.MockLedgerRepository, authz *mocks.MockAuthorizer) {},
		},
		{
			name: "empty name rejected",
			input: usecase.CreateLedgerInput{
				AgencyID: "agency-1",
				UserID:   "user-1",
				Name:     "   ",
			},
			setupMocks:  func(repo *mocks.MockLedgerRepository, authz *mocks.MockAuthorizer) {},
			expectError: true,
			errorType:   domain.ErrInvalidLedgerName,
		},
		{
			name: "member role may not create",
			input: usecase.CreateLedgerInput{
				AgencyID: "agency-1",
				UserID:   "user-2",
				Name:     "Club Fund",
			},
			setupMocks: func(repo *mocks.MockLedgerRepository, authz *mocks.MockAuthorizer) {
				authz.RequireStaffFunc = func(ctx context.Context, userID, agencyID string) error {
					return domain.ErrInvalidAccess
				}
			},
			expectError: true,
			errorType:   domain.ErrInvalidAccess,
		},
		{
			name: "repository error propagates",
			input: usecase.CreateLedgerInput{
				AgencyID: "agency-1",
				UserID:   "user-1",
				Name:     "Club Fund",
			},
			setupMocks: func(repo *mocks.MockLedgerRepository, authz *mocks.MockAuthorizer) {
				repo.CreateFunc = func(ctx context.Context, ledger *domain.Ledger) error {
					return errors.New("connection refused")
				}
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockLedgerRepository()
			authz := mocks.NewMockAuthorizer()
			idGen := mocks.NewMockIDGenerator()
			tt.setupMocks(repo, authz)

			uc := usecase.NewLedgerUseCase(repo, mocks.NewMockDetailRepository(), authz, idGen)
			ledger, err := uc.CreateLedger(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if tt.errorType != nil && !errors.Is(err, tt.errorType) {
					t.Errorf("expected error %v, got %v", tt.errorType, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if ledger.TotalBalance != 0 {
				t.Errorf("expected new ledger to start at zero, got %d", ledger.TotalBalance)
			}

			if ledger.AgencyID != tt.input.AgencyID {
				t.Errorf("expected agency %q, got %q", tt.input.AgencyID, ledger.AgencyID)
			}
		})
	}
}

func TestLedgerUseCase_ListLedgers(t *testing.T) {
	repo := mocks.NewMockLedgerRepository()
	_ = repo.Create(context.Background(), &domain.Ledger{ID: "l1", AgencyID: "agency-1"})
	_ = repo.Create(context.Background(), &domain.Ledger{ID: "l2", AgencyID: "agency-1"})
	_ = repo.Create(context.Background(), &domain.Ledger{ID: "l3", AgencyID: "agency-2"})

	uc := usecase.NewLedgerUseCase(repo, mocks.NewMockDetailRepository(), mocks.NewMockAuthorizer(), mocks.NewMockIDGenerator())

	ledgers, err := uc.ListLedgers(context.Background(), usecase.ListLedgersInput{AgencyID: "agency-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ledgers) != 2 {
		t.Errorf("expected 2 ledgers, got %d", len(ledgers))
	}
}

func TestLedgerUseCase_CheckConsistency(t *testing.T) {
	t.Run("balance matching the detail sum passes", func(t *testing.T) {
		ledgerRepo := mocks.NewMockLedgerRepository()
		detailRepo := mocks.NewMockDetailRepository()
		_ = ledgerRepo.Create(context.Background(), &domain.Ledger{ID: "l1", TotalBalance: 70})
		_ = detailRepo.Create(context.Background(), nil, &domain.Detail{ID: "d1", LedgerID: "l1", FundType: domain.FundTypeIncome, Amount: 100})
		_ = detailRepo.Create(context.Background(), nil, &domain.Detail{ID: "d2", LedgerID: "l1", FundType: domain.FundTypeExpense, Amount: 30})

		uc := usecase.NewLedgerUseCase(ledgerRepo, detailRepo, mocks.NewMockAuthorizer(), mocks.NewMockIDGenerator())

		ok, err := uc.CheckConsistency(context.Background(), "l1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Error("expected ledger to be consistent")
		}
	})

	t.Run("drifted balance is reported", func(t *testing.T) {
		ledgerRepo := mocks.NewMockLedgerRepository()
		detailRepo := mocks.NewMockDetailRepository()
		_ = ledgerRepo.Create(context.Background(), &domain.Ledger{ID: "l1", TotalBalance: 999})
		detailRepo.SumSignedAmountsFunc = func(ctx context.Context, ledgerID string) (decimal.Decimal, error) {
			return decimal.NewFromInt(70), nil
		}

		uc := usecase.NewLedgerUseCase(ledgerRepo, detailRepo, mocks.NewMockAuthorizer(), mocks.NewMockIDGenerator())

		ok, err := uc.CheckConsistency(context.Background(), "l1")
		if !errors.Is(err, usecase.ErrInconsistentLedger) {
			t.Fatalf("expected ErrInconsistentLedger, got %v", err)
		}
		if ok {
			t.Error("expected consistency check to fail")
		}
	})

	t.Run("missing ledger reads as not found", func(t *testing.T) {
		uc := usecase.NewLedgerUseCase(mocks.NewMockLedgerRepository(), mocks.NewMockDetailRepository(), mocks.NewMockAuthorizer(), mocks.NewMockIDGenerator())

		_, err := uc.CheckConsistency(context.Background(), "nope")
		if !errors.Is(err, domain.ErrLedgerNotFound) {
			t.Fatalf("expected ErrLedgerNotFound, got %v", err)
		}
	})
}

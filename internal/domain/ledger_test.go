package domain

import (
	"errors"
	"testing"
)

func TestLedger_ApplyDelta(t *testing.T) {
	tests := []struct {
		name        string
		balance     int64
		delta       int64
		want        int64
		expectError bool
	}{
		{
			name:    "income increases balance",
			balance: 100,
			delta:   50,
			want:    150,
		},
		{
			name:    "expense decreases balance",
			balance: 100,
			delta:   -40,
			want:    60,
		},
		{
			name:    "balance may reach zero",
			balance: 100,
			delta:   -100,
			want:    0,
		},
		{
			name:    "balance may reach the upper bound exactly",
			balance: MaxLedgerBalance - 1,
			delta:   1,
			want:    MaxLedgerBalance,
		},
		{
			name:        "balance may not go negative",
			balance:     100,
			delta:       -101,
			expectError: true,
		},
		{
			name:        "balance may not exceed the upper bound",
			balance:     MaxLedgerBalance,
			delta:       1,
			expectError: true,
		},
		{
			name:        "large delta cannot wrap around the bound",
			balance:     MaxLedgerBalance,
			delta:       9_223_372_036_854_775_807,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Ledger{TotalBalance: tt.balance}

			got, err := l.ApplyDelta(tt.delta)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidLedgerAmount) {
					t.Fatalf("expected ErrInvalidLedgerAmount, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDetail_Validate(t *testing.T) {
	t.Parallel()

	valid := &Detail{FundType: FundTypeIncome, Amount: 100}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	badType := &Detail{FundType: FundType("LOAN"), Amount: 100}
	if err := badType.Validate(); !errors.Is(err, ErrUnknownFundType) {
		t.Fatalf("expected ErrUnknownFundType, got %v", err)
	}

	badAmount := &Detail{FundType: FundTypeExpense, Amount: 0}
	if err := badAmount.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

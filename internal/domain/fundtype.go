package domain

// FundType categorizes a ledger detail and determines the sign of its
// effect on the ledger balance.
type FundType string

const (
	// FundTypeIncome increases the ledger balance.
	FundTypeIncome FundType = "INCOME"

	// FundTypeExpense decreases the ledger balance.
	FundTypeExpense FundType = "EXPENSE"
)

// IsValid checks if the fund type is recognized.
func (f FundType) IsValid() bool {
	return f == FundTypeIncome || f == FundTypeExpense
}

// SignedAmount maps a fund type and magnitude to the signed delta applied
// to a ledger balance: +amount for income, -amount for expense.
func SignedAmount(fundType FundType, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	switch fundType {
	case FundTypeIncome:
		return amount, nil
	case FundTypeExpense:
		return -amount, nil
	default:
		return 0, ErrUnknownFundType
	}
}

// ModificationDelta is the net balance change required when an existing
// detail's amount is edited. The original signed amount is already
// reflected in the ledger balance, so the delta is the difference between
// the new and old signed amounts, not the new signed amount itself.
func ModificationDelta(fundType FundType, oldAmount, newAmount int64) (int64, error) {
	oldSigned, err := SignedAmount(fundType, oldAmount)
	if err != nil {
		return 0, err
	}

	newSigned, err := SignedAmount(fundType, newAmount)
	if err != nil {
		return 0, err
	}

	return newSigned - oldSigned, nil
}

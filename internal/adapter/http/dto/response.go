package dto

import (
	"time"

	"github.com/fundledger/fundledger/internal/domain"
	"github.com/fundledger/fundledger/internal/usecase"
)

// LedgerResponse represents a ledger in API responses.
type LedgerResponse struct {
	ID           string    `json:"id"`
	AgencyID     string    `json:"agency_id"`
	Name         string    `json:"name"`
	TotalBalance int64     `json:"total_balance"`
	Version      int64     `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LedgerFromDomain converts a domain ledger to a response.
func LedgerFromDomain(l *domain.Ledger) *LedgerResponse {
	return &LedgerResponse{
		ID:           l.ID,
		AgencyID:     l.AgencyID,
		Name:         l.Name,
		TotalBalance: l.TotalBalance,
		Version:      l.Version,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

// LedgersFromDomain converts domain ledgers to responses.
func LedgersFromDomain(ledgers []*domain.Ledger) []*LedgerResponse {
	result := make([]*LedgerResponse, len(ledgers))
	for i, l := range ledgers {
		result[i] = LedgerFromDomain(l)
	}
	return result
}

// ListLedgersResponse represents a page of ledgers.
type ListLedgersResponse struct {
	Ledgers []*LedgerResponse `json:"ledgers"`
	Total   int64             `json:"total"`
}

// DetailResponse represents a ledger detail in API responses.
type DetailResponse struct {
	ID                      string    `json:"id"`
	LedgerID                string    `json:"ledger_id"`
	UserID                  string    `json:"user_id"`
	FundType                string    `json:"fund_type"`
	Amount                  int64     `json:"amount"`
	BalanceAfterTransaction int64     `json:"balance_after_transaction"`
	StoreInfo               string    `json:"store_info"`
	Description             string    `json:"description,omitempty"`
	PaymentDate             time.Time `json:"payment_date"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// DetailFromDomain converts a domain detail to a response.
func DetailFromDomain(d *domain.Detail) *DetailResponse {
	return &DetailResponse{
		ID:                      d.ID,
		LedgerID:                d.LedgerID,
		UserID:                  d.UserID,
		FundType:                string(d.FundType),
		Amount:                  d.Amount,
		BalanceAfterTransaction: d.BalanceAfterTransaction,
		StoreInfo:               d.StoreInfo,
		Description:             d.Description,
		PaymentDate:             d.PaymentDate,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               d.UpdatedAt,
	}
}

// DetailsFromDomain converts domain details to responses.
func DetailsFromDomain(details []*domain.Detail) []*DetailResponse {
	result := make([]*DetailResponse, len(details))
	for i, d := range details {
		result[i] = DetailFromDomain(d)
	}
	return result
}

// ListDetailsResponse represents a page of details.
type ListDetailsResponse struct {
	Details []*DetailResponse `json:"details"`
	Total   int64             `json:"total"`
}

// EvidenceResponse represents a receipt or document in API responses.
type EvidenceResponse struct {
	ID        string    `json:"id"`
	DetailID  string    `json:"detail_id"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// ReceiptsFromDomain converts domain receipts to responses.
func ReceiptsFromDomain(receipts []*domain.Receipt) []*EvidenceResponse {
	result := make([]*EvidenceResponse, len(receipts))
	for i, r := range receipts {
		result[i] = &EvidenceResponse{
			ID:        r.ID,
			DetailID:  r.DetailID,
			ImageURL:  r.ImageURL,
			CreatedAt: r.CreatedAt,
		}
	}
	return result
}

// DocumentsFromDomain converts domain documents to responses.
func DocumentsFromDomain(documents []*domain.Document) []*EvidenceResponse {
	result := make([]*EvidenceResponse, len(documents))
	for i, d := range documents {
		result[i] = &EvidenceResponse{
			ID:        d.ID,
			DetailID:  d.DetailID,
			ImageURL:  d.ImageURL,
			CreatedAt: d.CreatedAt,
		}
	}
	return result
}

// DetailInfoResponse represents a detail together with its evidence.
type DetailInfoResponse struct {
	Detail    *DetailResponse     `json:"detail"`
	Receipts  []*EvidenceResponse `json:"receipts"`
	Documents []*EvidenceResponse `json:"documents"`
}

// DetailInfoFromUseCase converts a use case detail view to a response.
func DetailInfoFromUseCase(info *usecase.DetailInfo) *DetailInfoResponse {
	return &DetailInfoResponse{
		Detail:    DetailFromDomain(info.Detail),
		Receipts:  ReceiptsFromDomain(info.Receipts),
		Documents: DocumentsFromDomain(info.Documents),
	}
}

// ConsistencyResponse represents the result of a ledger consistency check.
type ConsistencyResponse struct {
	LedgerID   string `json:"ledger_id"`
	Consistent bool   `json:"consistent"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Active: u.Active,
	}
}

// LoginResponse represents a login response.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

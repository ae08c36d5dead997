package dto

import (
	"time"

	"github.com/fundledger/fundledger/internal/domain"
	"github.com/fundledger/fundledger/internal/usecase"
)

// CreateLedgerRequest represents a request to create a ledger.
type CreateLedgerRequest struct {
	AgencyID string `json:"agency_id"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLedgerRequest) ToUseCaseInput() usecase.CreateLedgerInput {
	return usecase.CreateLedgerInput{
		AgencyID: r.AgencyID,
		UserID:   r.UserID,
		Name:     r.Name,
	}
}

// CreateTransactionRequest represents a request to record a transaction.
type CreateTransactionRequest struct {
	UserID            string    `json:"user_id"`
	FundType          string    `json:"fund_type"`
	Amount            int64     `json:"amount"`
	StoreInfo         string    `json:"store_info"`
	Description       string    `json:"description,omitempty"`
	PaymentDate       time.Time `json:"payment_date"`
	ReceiptImageURLs  []string  `json:"receipt_image_urls,omitempty"`
	DocumentImageURLs []string  `json:"document_image_urls,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput(ledgerID string) usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		LedgerID:          ledgerID,
		UserID:            r.UserID,
		FundType:          domain.FundType(r.FundType),
		Amount:            r.Amount,
		StoreInfo:         r.StoreInfo,
		Description:       r.Description,
		PaymentDate:       r.PaymentDate,
		ReceiptImageURLs:  r.ReceiptImageURLs,
		DocumentImageURLs: r.DocumentImageURLs,
	}
}

// UpdateTransactionRequest represents a request to edit a recorded
// transaction. The fund type is fixed at creation and cannot change.
type UpdateTransactionRequest struct {
	UserID      string    `json:"user_id"`
	Amount      int64     `json:"amount"`
	StoreInfo   string    `json:"store_info"`
	Description string    `json:"description,omitempty"`
	PaymentDate time.Time `json:"payment_date"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateTransactionRequest) ToUseCaseInput(detailID string) usecase.UpdateTransactionInput {
	return usecase.UpdateTransactionInput{
		DetailID:    detailID,
		UserID:      r.UserID,
		Amount:      r.Amount,
		StoreInfo:   r.StoreInfo,
		Description: r.Description,
		PaymentDate: r.PaymentDate,
	}
}

// AddEvidenceRequest represents a request to attach receipt or document
// images to a detail.
type AddEvidenceRequest struct {
	ImageURLs []string `json:"image_urls"`
}

// RegisterRequest represents a request to register a user.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

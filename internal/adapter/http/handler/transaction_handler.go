package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundledger/fundledger/internal/adapter/http/dto"
	"github.com/fundledger/fundledger/internal/adapter/http/middleware"
	"github.com/fundledger/fundledger/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*usecase.DetailInfo, error)
	UpdateTransaction(ctx context.Context, input usecase.UpdateTransactionInput) (*usecase.DetailInfo, error)
	DeleteTransaction(ctx context.Context, detailID string) error
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	transactionUC TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

// Create records a new transaction against a ledger.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ledgerID := chi.URLParam(r, "id")
	if ledgerID == "" {
		writeError(w, http.StatusBadRequest, "missing ledger ID", "")
		return
	}

	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input := req.ToUseCaseInput(ledgerID)
	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		input.UserID = user.ID
	}

	info, err := h.transactionUC.CreateTransaction(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.DetailInfoFromUseCase(info))
}

// Update edits a recorded transaction.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	if detailID == "" {
		writeError(w, http.StatusBadRequest, "missing detail ID", "")
		return
	}

	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input := req.ToUseCaseInput(detailID)
	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		input.UserID = user.ID
	}

	info, err := h.transactionUC.UpdateTransaction(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.DetailInfoFromUseCase(info))
}

// Delete removes a transaction and reverses its balance effect.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	if detailID == "" {
		writeError(w, http.StatusBadRequest, "missing detail ID", "")
		return
	}

	if err := h.transactionUC.DeleteTransaction(r.Context(), detailID); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete transaction", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

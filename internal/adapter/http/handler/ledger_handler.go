package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundledger/fundledger/internal/adapter/http/dto"
	"github.com/fundledger/fundledger/internal/adapter/http/middleware"
	"github.com/fundledger/fundledger/internal/domain"
	"github.com/fundledger/fundledger/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	CreateLedger(ctx context.Context, input usecase.CreateLedgerInput) (*domain.Ledger, error)
	GetLedger(ctx context.Context, id string) (*domain.Ledger, error)
	ListLedgers(ctx context.Context, input usecase.ListLedgersInput) ([]*domain.Ledger, error)
	CheckConsistency(ctx context.Context, ledgerID string) (bool, error)
}

// LedgerHandler handles ledger-related HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Create creates a new ledger.
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input := req.ToUseCaseInput()
	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		input.UserID = user.ID
	}

	ledger, err := h.ledgerUC.CreateLedger(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create ledger", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.LedgerFromDomain(ledger))
}

// Get retrieves a ledger by ID.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing ledger ID", "")
		return
	}

	ledger, err := h.ledgerUC.GetLedger(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get ledger", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerFromDomain(ledger))
}

// List lists an agency's ledgers.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	agencyID := r.URL.Query().Get("agency_id")
	if agencyID == "" {
		writeError(w, http.StatusBadRequest, "missing agency_id", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	ledgers, err := h.ledgerUC.ListLedgers(r.Context(), usecase.ListLedgersInput{
		AgencyID: agencyID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list ledgers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListLedgersResponse{
		Ledgers: dto.LedgersFromDomain(ledgers),
		Total:   int64(len(ledgers)),
	})
}

// CheckConsistency verifies the ledger balance against its details.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing ledger ID", "")
		return
	}

	consistent, err := h.ledgerUC.CheckConsistency(r.Context(), id)
	if err != nil && !errors.Is(err, usecase.ErrInconsistentLedger) {
		status := mapDomainError(err)
		writeError(w, status, "failed to check consistency", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{
		LedgerID:   id,
		Consistent: consistent,
	})
}

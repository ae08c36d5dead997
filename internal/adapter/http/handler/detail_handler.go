package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundledger/fundledger/internal/adapter/http/dto"
	"github.com/fundledger/fundledger/internal/domain"
	"github.com/fundledger/fundledger/internal/usecase"
)

// DetailService defines the behavior needed by DetailHandler.
type DetailService interface {
	GetDetail(ctx context.Context, detailID string) (*usecase.DetailInfo, error)
	ListDetails(ctx context.Context, input usecase.ListDetailsInput) ([]*domain.Detail, error)
}

// DetailHandler handles detail read requests.
type DetailHandler struct {
	detailUC DetailService
}

// NewDetailHandler creates a new DetailHandler.
func NewDetailHandler(detailUC DetailService) *DetailHandler {
	return &DetailHandler{detailUC: detailUC}
}

// Get retrieves a detail with its evidence.
func (h *DetailHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing detail ID", "")
		return
	}

	info, err := h.detailUC.GetDetail(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get detail", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.DetailInfoFromUseCase(info))
}

// ListByLedger lists details for a ledger.
func (h *DetailHandler) ListByLedger(w http.ResponseWriter, r *http.Request) {
	ledgerID := chi.URLParam(r, "id")
	if ledgerID == "" {
		writeError(w, http.StatusBadRequest, "missing ledger ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	details, err := h.detailUC.ListDetails(r.Context(), usecase.ListDetailsInput{
		LedgerID: ledgerID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list details", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListDetailsResponse{
		Details: dto.DetailsFromDomain(details),
		Total:   int64(len(details)),
	})
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundledger/fundledger/internal/adapter/http/dto"
	"github.com/fundledger/fundledger/internal/domain"
)

// EvidenceService defines the behavior needed by EvidenceHandler.
type EvidenceService interface {
	AddReceipts(ctx context.Context, detailID string, imageURLs []string) ([]*domain.Receipt, error)
	RemoveReceipt(ctx context.Context, detailID, receiptID string) error
	AddDocuments(ctx context.Context, detailID string, imageURLs []string) ([]*domain.Document, error)
	RemoveDocument(ctx context.Context, detailID, documentID string) error
}

// EvidenceHandler handles receipt and document HTTP requests.
type EvidenceHandler struct {
	evidenceUC EvidenceService
}

// NewEvidenceHandler creates a new EvidenceHandler.
func NewEvidenceHandler(evidenceUC EvidenceService) *EvidenceHandler {
	return &EvidenceHandler{evidenceUC: evidenceUC}
}

// AddReceipts attaches receipt images to a detail.
func (h *EvidenceHandler) AddReceipts(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	if detailID == "" {
		writeError(w, http.StatusBadRequest, "missing detail ID", "")
		return
	}

	var req dto.AddEvidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipts, err := h.evidenceUC.AddReceipts(r.Context(), detailID, req.ImageURLs)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to add receipts", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ReceiptsFromDomain(receipts))
}

// RemoveReceipt removes a receipt from a detail.
func (h *EvidenceHandler) RemoveReceipt(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	receiptID := chi.URLParam(r, "receiptID")
	if detailID == "" || receiptID == "" {
		writeError(w, http.StatusBadRequest, "missing detail or receipt ID", "")
		return
	}

	if err := h.evidenceUC.RemoveReceipt(r.Context(), detailID, receiptID); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to remove receipt", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddDocuments attaches supporting documents to a detail.
func (h *EvidenceHandler) AddDocuments(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	if detailID == "" {
		writeError(w, http.StatusBadRequest, "missing detail ID", "")
		return
	}

	var req dto.AddEvidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	documents, err := h.evidenceUC.AddDocuments(r.Context(), detailID, req.ImageURLs)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to add documents", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.DocumentsFromDomain(documents))
}

// RemoveDocument removes a document from a detail.
func (h *EvidenceHandler) RemoveDocument(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	documentID := chi.URLParam(r, "documentID")
	if detailID == "" || documentID == "" {
		writeError(w, http.StatusBadRequest, "missing detail or document ID", "")
		return
	}

	if err := h.evidenceUC.RemoveDocument(r.Context(), detailID, documentID); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to remove document", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

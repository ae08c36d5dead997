package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/fundledger/fundledger/internal/adapter/http/dto"
)

func TestTransactionAmendment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ledger := env.DB.CreateTestLedger(ctx, env.AgencyID, "amendable-fund", 0)

	env.recordTransaction(t, ledger.ID, env.StaffID, "INCOME", 1000)
	expense := env.recordTransaction(t, ledger.ID, env.StaffID, "EXPENSE", 200)

	t.Run("raising an expense amount lowers the balance", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/v1/ledger-details/"+expense.Detail.ID, dto.UpdateTransactionRequest{
			UserID:      env.StaffID,
			Amount:      500,
			StoreInfo:   "corrected store",
			PaymentDate: time.Now().UTC(),
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.DetailInfoResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.Detail.Amount != 500 {
			t.Errorf("expected amended amount 500, got %d", resp.Detail.Amount)
		}
		if resp.Detail.BalanceAfterTransaction != 500 {
			t.Errorf("expected snapshot 500, got %d", resp.Detail.BalanceAfterTransaction)
		}

		if got := env.getLedger(t, ledger.ID).TotalBalance; got != 500 {
			t.Errorf("expected ledger balance 500, got %d", got)
		}
	})

	t.Run("amendment that would overdraw is rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/v1/ledger-details/"+expense.Detail.ID, dto.UpdateTransactionRequest{
			UserID:      env.StaffID,
			Amount:      5000,
			StoreInfo:   "way too big",
			PaymentDate: time.Now().UTC(),
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
		}

		if got := env.getLedger(t, ledger.ID).TotalBalance; got != 500 {
			t.Errorf("expected balance unchanged at 500, got %d", got)
		}
	})
}

func TestTransactionReversal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ledger := env.DB.CreateTestLedger(ctx, env.AgencyID, "reversible-fund", 0)

	env.recordTransaction(t, ledger.ID, env.StaffID, "INCOME", 1000)
	expense := env.recordTransaction(t, ledger.ID, env.StaffID, "EXPENSE", 300)

	t.Run("deleting an expense restores the balance", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, "/api/v1/ledger-details/"+expense.Detail.ID, nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected status %d, got %d: %s", http.StatusNoContent, w.Code, w.Body.String())
		}

		if got := env.getLedger(t, ledger.ID).TotalBalance; got != 1000 {
			t.Errorf("expected ledger balance 1000, got %d", got)
		}

		get := env.do(t, http.MethodGet, "/api/v1/ledger-details/"+expense.Detail.ID, nil)
		if get.Code != http.StatusNotFound {
			t.Errorf("expected deleted detail to return 404, got %d", get.Code)
		}
	})

	t.Run("deleting the same detail twice fails", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, "/api/v1/ledger-details/"+expense.Detail.ID, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})
}

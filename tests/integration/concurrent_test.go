package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/fundledger/fundledger/internal/adapter/http/dto"
)

func TestConcurrentTransactions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ledger := env.DB.CreateTestLedger(ctx, env.AgencyID, "contended-fund", 0)

	const workers = 8

	var wg sync.WaitGroup
	statuses := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			w := env.do(t, http.MethodPost, "/api/v1/ledgers/"+ledger.ID+"/transactions", dto.CreateTransactionRequest{
				UserID:      env.StaffID,
				FundType:    "INCOME",
				Amount:      100,
				StoreInfo:   "concurrent deposit",
				PaymentDate: time.Now().UTC(),
			})
			statuses[i] = w.Code
		}(i)
	}

	wg.Wait()

	for i, code := range statuses {
		if code != http.StatusCreated {
			t.Fatalf("worker %d: expected status %d, got %d", i, http.StatusCreated, code)
		}
	}

	if got := env.getLedger(t, ledger.ID).TotalBalance; got != workers*100 {
		t.Errorf("expected final balance %d, got %d", workers*100, got)
	}

	// Every detail must carry a distinct running balance. A duplicate
	// snapshot means two transactions read the same starting balance.
	w := env.do(t, http.MethodGet, "/api/v1/ledgers/"+ledger.ID+"/details?limit=100", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var list dto.ListDetailsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(list.Details) != workers {
		t.Fatalf("expected %d details, got %d", workers, len(list.Details))
	}

	seen := map[int64]bool{}
	for _, d := range list.Details {
		if seen[d.BalanceAfterTransaction] {
			t.Errorf("duplicate snapshot %d indicates a lost update", d.BalanceAfterTransaction)
		}
		seen[d.BalanceAfterTransaction] = true
	}

	consistency := env.do(t, http.MethodGet, "/api/v1/ledgers/"+ledger.ID+"/consistency", nil)
	var resp dto.ConsistencyResponse
	if err := json.Unmarshal(consistency.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse consistency response: %v", err)
	}
	if !resp.Consistent {
		t.Errorf("expected ledger to stay consistent under concurrency")
	}
}

func TestConcurrentExpensesNeverOverdraw(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Ten workers each try to spend 100 from a balance of 500. Exactly
	// five can succeed.
	ledger := env.DB.CreateTestLedger(ctx, env.AgencyID, "overdraw-fund", 500)

	const workers = 10

	var wg sync.WaitGroup
	statuses := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			w := env.do(t, http.MethodPost, "/api/v1/ledgers/"+ledger.ID+"/transactions", dto.CreateTransactionRequest{
				UserID:      env.StaffID,
				FundType:    "EXPENSE",
				Amount:      100,
				StoreInfo:   "concurrent withdrawal",
				PaymentDate: time.Now().UTC(),
			})
			statuses[i] = w.Code
		}(i)
	}

	wg.Wait()

	succeeded := 0
	for _, code := range statuses {
		switch code {
		case http.StatusCreated:
			succeeded++
		case http.StatusBadRequest:
			// rejected once the balance ran out
		default:
			t.Fatalf("unexpected status %d", code)
		}
	}

	if succeeded != 5 {
		t.Errorf("expected exactly 5 withdrawals to succeed, got %d", succeeded)
	}

	if got := env.getLedger(t, ledger.ID).TotalBalance; got != 0 {
		t.Errorf("expected final balance 0, got %d", got)
	}
}

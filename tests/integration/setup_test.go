package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	adaptershttp "github.com/fundledger/fundledger/internal/adapter/http"
	"github.com/fundledger/fundledger/internal/adapter/http/dto"
	"github.com/fundledger/fundledger/internal/adapter/http/handler"
	postgresrepo "github.com/fundledger/fundledger/internal/adapter/repository/postgres"
	redisrepo "github.com/fundledger/fundledger/internal/adapter/repository/redis"
	"github.com/fundledger/fundledger/internal/domain"
	infraredis "github.com/fundledger/fundledger/internal/infrastructure/redis"
	"github.com/fundledger/fundledger/internal/usecase"
	"github.com/fundledger/fundledger/tests/testutil"
)

type testEnv struct {
	DB         *testutil.TestDB
	Router     http.Handler
	OutboxRepo *postgresrepo.OutboxRepository
	AgencyID   string
	StaffID    string
	MemberID   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(ctx)

	mr := miniredis.RunT(t)
	redisClient, err := infraredis.NewClient(ctx, fmt.Sprintf("redis://%s", mr.Addr()))
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	pool := testDB.Pool
	txManager := postgresrepo.NewTxManager(pool)
	ledgerRepo := postgresrepo.NewLedgerRepository(pool)
	detailRepo := postgresrepo.NewDetailRepository(pool)
	receiptRepo := postgresrepo.NewReceiptRepository(pool)
	documentRepo := postgresrepo.NewDocumentRepository(pool)
	agencyRepo := postgresrepo.NewAgencyRepository(pool)
	outboxRepo := postgresrepo.NewOutboxRepository(pool)
	retrier := postgresrepo.NewRetrier()
	idGen := postgresrepo.NewULIDGenerator()
	cache := redisrepo.NewCache(redisClient)
	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)

	agencyUC := usecase.NewAgencyUseCase(agencyRepo, nil)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo, detailRepo, agencyUC, idGen)
	transactionUC := usecase.NewTransactionUseCase(
		txManager, ledgerRepo, detailRepo, receiptRepo, documentRepo,
		outboxRepo, agencyUC, idGen, retrier, cache, nil,
	)
	detailUC := usecase.NewDetailUseCase(detailRepo, receiptRepo, documentRepo, cache)
	evidenceUC := usecase.NewEvidenceUseCase(txManager, detailRepo, receiptRepo, documentRepo, idGen, cache)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		LedgerHandler:      handler.NewLedgerHandler(ledgerUC),
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		DetailHandler:      handler.NewDetailHandler(detailUC),
		EvidenceHandler:    handler.NewEvidenceHandler(evidenceUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   idempotencyStore,
	})

	env := &testEnv{
		DB:         testDB,
		Router:     router,
		OutboxRepo: outboxRepo,
		AgencyID:   testutil.GenerateID(),
		StaffID:    testutil.GenerateID(),
		MemberID:   testutil.GenerateID(),
	}

	testDB.AddAgencyMember(ctx, env.StaffID, env.AgencyID, domain.AgencyRoleStaff)
	testDB.AddAgencyMember(ctx, env.MemberID, env.AgencyID, domain.AgencyRoleMember)

	return env
}

func (env *testEnv) do(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, body)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	env.Router.ServeHTTP(w, r)

	return w
}

func (env *testEnv) recordTransaction(t *testing.T, ledgerID, userID, fundType string, amount int64) *dto.DetailInfoResponse {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/v1/ledgers/"+ledgerID+"/transactions", dto.CreateTransactionRequest{
		UserID:      userID,
		FundType:    fundType,
		Amount:      amount,
		StoreInfo:   "test store",
		PaymentDate: time.Now().UTC(),
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var resp dto.DetailInfoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	return &resp
}

func (env *testEnv) getLedger(t *testing.T, ledgerID string) *dto.LedgerResponse {
	t.Helper()

	w := env.do(t, http.MethodGet, "/api/v1/ledgers/"+ledgerID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp dto.LedgerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	return &resp
}

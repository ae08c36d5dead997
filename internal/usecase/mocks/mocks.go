package mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fundledger/fundledger/internal/domain"
	"github.com/fundledger/fundledger/internal/usecase"
)

// ErrCacheMiss is returned by MockCache when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// MockLedgerRepository is a mock implementation of LedgerRepository.
type MockLedgerRepository struct {
	mu      sync.RWMutex
	ledgers map[string]*domain.Ledger

	CreateFunc           func(ctx context.Context, ledger *domain.Ledger) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Ledger, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Ledger, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id string, balance int64, updatedAt time.Time) error
	ListByAgencyFunc     func(ctx context.Context, agencyID string, limit, offset int) ([]*domain.Ledger, error)
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{
		ledgers: make(map[string]*domain.Ledger),
	}
}

func (m *MockLedgerRepository) Create(ctx context.Context, ledger *domain.Ledger) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ledger)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ledgers[ledger.ID] = ledger
	return nil
}

func (m *MockLedgerRepository) GetByID(ctx context.Context, id string) (*domain.Ledger, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.ledgers[id]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, domain.ErrLedgerNotFound
}

func (m *MockLedgerRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Ledger, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockLedgerRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance int64, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.ledgers[id]; ok {
		l.TotalBalance = balance
		l.Version++
		l.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockLedgerRepository) ListByAgency(ctx context.Context, agencyID string, limit, offset int) ([]*domain.Ledger, error) {
	if m.ListByAgencyFunc != nil {
		return m.ListByAgencyFunc(ctx, agencyID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ledgers []*domain.Ledger
	for _, l := range m.ledgers {
		if l.AgencyID == agencyID {
			copied := *l
			ledgers = append(ledgers, &copied)
		}
	}
	return ledgers, nil
}

// MockDetailRepository is a mock implementation of DetailRepository.
type MockDetailRepository struct {
	mu      sync.RWMutex
	details map[string]*domain.Detail

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Detail, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Detail, error)
	UpdateFunc           func(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error
	DeleteFunc           func(ctx context.Context, tx usecase.Transaction, id string) error
	ListByLedgerFunc     func(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.Detail, error)
	SumSignedAmountsFunc func(ctx context.Context, ledgerID string) (decimal.Decimal, error)
}

func NewMockDetailRepository() *MockDetailRepository {
	return &MockDetailRepository{
		details: make(map[string]*domain.Detail),
	}
}

func (m *MockDetailRepository) Create(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, detail)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *detail
	m.details[detail.ID] = &copied
	return nil
}

func (m *MockDetailRepository) GetByID(ctx context.Context, id string) (*domain.Detail, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.details[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, domain.ErrDetailNotFound
}

func (m *MockDetailRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Detail, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockDetailRepository) Update(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, detail)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.details[detail.ID]; !ok {
		return domain.ErrDetailNotFound
	}
	copied := *detail
	m.details[detail.ID] = &copied
	return nil
}

func (m *MockDetailRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.details, id)
	return nil
}

func (m *MockDetailRepository) ListByLedger(ctx context.Context, ledgerID string, limit, offset int) ([]*domain.Detail, error) {
	if m.ListByLedgerFunc != nil {
		return m.ListByLedgerFunc(ctx, ledgerID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var details []*domain.Detail
	for _, d := range m.details {
		if d.LedgerID == ledgerID {
			copied := *d
			details = append(details, &copied)
		}
	}
	return details, nil
}

func (m *MockDetailRepository) SumSignedAmounts(ctx context.Context, ledgerID string) (decimal.Decimal, error) {
	if m.SumSignedAmountsFunc != nil {
		return m.SumSignedAmountsFunc(ctx, ledgerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, d := range m.details {
		if d.LedgerID != ledgerID {
			continue
		}
		signed, err := domain.SignedAmount(d.FundType, d.Amount)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(decimal.NewFromInt(signed))
	}
	return sum, nil
}

// MockReceiptRepository is a mock implementation of ReceiptRepository.
type MockReceiptRepository struct {
	mu       sync.RWMutex
	receipts map[string]*domain.Receipt

	CreateBatchFunc    func(ctx context.Context, tx usecase.Transaction, receipts []*domain.Receipt) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Receipt, error)
	ListByDetailFunc   func(ctx context.Context, detailID string) ([]*domain.Receipt, error)
	DeleteFunc         func(ctx context.Context, id string) error
	DeleteByDetailFunc func(ctx context.Context, tx usecase.Transaction, detailID string) error
}

func NewMockReceiptRepository() *MockReceiptRepository {
	return &MockReceiptRepository{
		receipts: make(map[string]*domain.Receipt),
	}
}

func (m *MockReceiptRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, receipts []*domain.Receipt) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, receipts)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range receipts {
		copied := *r
		m.receipts[r.ID] = &copied
	}
	return nil
}

func (m *MockReceiptRepository) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.receipts[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, domain.ErrReceiptNotFound
}

func (m *MockReceiptRepository) ListByDetail(ctx context.Context, detailID string) ([]*domain.Receipt, error) {
	if m.ListByDetailFunc != nil {
		return m.ListByDetailFunc(ctx, detailID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var receipts []*domain.Receipt
	for _, r := range m.receipts {
		if r.DetailID == detailID {
			copied := *r
			receipts = append(receipts, &copied)
		}
	}
	return receipts, nil
}

func (m *MockReceiptRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.receipts, id)
	return nil
}

func (m *MockReceiptRepository) DeleteByDetail(ctx context.Context, tx usecase.Transaction, detailID string) error {
	if m.DeleteByDetailFunc != nil {
		return m.DeleteByDetailFunc(ctx, tx, detailID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.receipts {
		if r.DetailID == detailID {
			delete(m.receipts, id)
		}
	}
	return nil
}

// MockDocumentRepository is a mock implementation of DocumentRepository.
type MockDocumentRepository struct {
	mu        sync.RWMutex
	documents map[string]*domain.Document

	CreateBatchFunc    func(ctx context.Context, tx usecase.Transaction, documents []*domain.Document) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Document, error)
	ListByDetailFunc   func(ctx context.Context, detailID string) ([]*domain.Document, error)
	DeleteFunc         func(ctx context.Context, id string) error
	DeleteByDetailFunc func(ctx context.Context, tx usecase.Transaction, detailID string) error
}

func NewMockDocumentRepository() *MockDocumentRepository {
	return &MockDocumentRepository{
		documents: make(map[string]*domain.Document),
	}
}

func (m *MockDocumentRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, documents []*domain.Document) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, documents)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range documents {
		copied := *d
		m.documents[d.ID] = &copied
	}
	return nil
}

func (m *MockDocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.documents[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, domain.ErrDocumentNotFound
}

func (m *MockDocumentRepository) ListByDetail(ctx context.Context, detailID string) ([]*domain.Document, error) {
	if m.ListByDetailFunc != nil {
		return m.ListByDetailFunc(ctx, detailID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var documents []*domain.Document
	for _, d := range m.documents {
		if d.DetailID == detailID {
			copied := *d
			documents = append(documents, &copied)
		}
	}
	return documents, nil
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.documents, id)
	return nil
}

func (m *MockDocumentRepository) DeleteByDetail(ctx context.Context, tx usecase.Transaction, detailID string) error {
	if m.DeleteByDetailFunc != nil {
		return m.DeleteByDetailFunc(ctx, tx, detailID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, d := range m.documents {
		if d.DetailID == detailID {
			delete(m.documents, id)
		}
	}
	return nil
}

// MockAgencyRepository is a mock implementation of AgencyRepository.
type MockAgencyRepository struct {
	mu      sync.RWMutex
	members map[string]*domain.AgencyUser

	GetMemberFunc func(ctx context.Context, userID, agencyID string) (*domain.AgencyUser, error)
}

func NewMockAgencyRepository() *MockAgencyRepository {
	return &MockAgencyRepository{
		members: make(map[string]*domain.AgencyUser),
	}
}

// AddMember registers a membership for lookups.
func (m *MockAgencyRepository) AddMember(member *domain.AgencyUser) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[member.UserID+":"+member.AgencyID] = member
}

func (m *MockAgencyRepository) GetMember(ctx context.Context, userID, agencyID string) (*domain.AgencyUser, error) {
	if m.GetMemberFunc != nil {
		return m.GetMemberFunc(ctx, userID, agencyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if member, ok := m.members[userID+":"+agencyID]; ok {
		return member, nil
	}
	return nil, domain.ErrAgencyUserNotFound
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc func(ctx context.Context, id string, publishedAt time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var unpublished []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			unpublished = append(unpublished, e)
		}
		if len(unpublished) == limit {
			break
		}
	}
	return unpublished, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			t := publishedAt
			e.PublishedAt = &t
		}
	}
	return nil
}

// Events returns all recorded events.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.OutboxEvent(nil), m.events...)
}

// MockAuthorizer is a mock implementation of Authorizer. The zero value
// allows everything.
type MockAuthorizer struct {
	RequireStaffFunc func(ctx context.Context, userID, agencyID string) error
}

func NewMockAuthorizer() *MockAuthorizer {
	return &MockAuthorizer{}
}

func (m *MockAuthorizer) RequireStaff(ctx context.Context, userID, agencyID string) error {
	if m.RequireStaffFunc != nil {
		return m.RequireStaffFunc(ctx, userID, agencyID)
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
// When Locking is set, Begin acquires a mutex that is released on Commit or
// Rollback, serializing whole units of work the way row locks do.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	Locking bool
	mu      sync.Mutex
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func NewLockingTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{Locking: true}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	if m.Locking {
		m.mu.Lock()
		return &MockTransaction{release: m.mu.Unlock}, nil
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	release func()
	done    bool
	mu      sync.Mutex
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.finish()
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.finish()
	return nil
}

func (m *MockTransaction) finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return
	}
	m.done = true
	if m.release != nil {
		m.release()
	}
}

// PassthroughRetrier runs the operation exactly once.
type PassthroughRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewPassthroughRetrier() *PassthroughRetrier {
	return &PassthroughRetrier{}
}

func (r *PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	if r.RetryFunc != nil {
		return r.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + strconvItoa(m.counter)
}

func strconvItoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}

package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking the ledger row
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// DetailCacheTTL is how long detail views are cached
	DetailCacheTTL = 5 * time.Minute
)

// detailCacheKey builds the cache key for a detail view.
func detailCacheKey(detailID string) string {
	return "detail:" + detailID
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction engine metrics
	TransactionsRecorded prometheus.Counter
	TransactionsAmended  prometheus.Counter
	TransactionsReversed prometheus.Counter
	TransactionDuration  prometheus.Histogram
	TransactionErrors    *prometheus.CounterVec

	// Ledger metrics
	LedgersCreated prometheus.Counter
	LedgerBalance  *prometheus.GaugeVec

	// Evidence metrics
	ReceiptsAttached  prometheus.Counter
	DocumentsAttached prometheus.Counter

	// Database metrics
	DBRetries prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransactionsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundledger_transactions_recorded_total",
			Help: "Total number of ledger transactions recorded",
		}),
		TransactionsAmended: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundledger_transactions_amended_total",
			Help: "Total number of ledger transactions amended",
		}),
		TransactionsReversed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundledger_transactions_reversed_total",
			Help: "Total number of ledger transactions deleted and reversed",
		}),
		TransactionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fundledger_transaction_duration_seconds",
			Help:    "Duration of ledger transaction operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransactionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundledger_transaction_errors_total",
				Help: "Total number of failed ledger transactions",
			},
			[]string{"operation", "reason"},
		),
		LedgersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundledger_ledgers_created_total",
			Help: "Total number of ledgers created",
		}),
		LedgerBalance: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fundledger_ledger_balance",
				Help: "Current total balance per ledger",
			},
			[]string{"ledger_id"},
		),
		ReceiptsAttached: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundledger_receipts_attached_total",
			Help: "Total number of receipts attached to details",
		}),
		DocumentsAttached: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundledger_documents_attached_total",
			Help: "Total number of documents attached to details",
		}),
		DBRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundledger_db_retries_total",
			Help: "Total number of retried database conflicts",
		}),
	}
}

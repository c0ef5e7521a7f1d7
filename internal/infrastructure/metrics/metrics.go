package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Statement metrics
	StatementsBuilt    prometheus.Counter
	StatementDuration  prometheus.Histogram
	StatementEntries   prometheus.Histogram
	DedupExclusions    prometheus.Counter
	CapabilityFallback prometheus.Counter

	// Entry metrics
	EntriesCreated  *prometheus.CounterVec
	EntriesDeleted  prometheus.Counter
	EntriesUpdated  prometheus.Counter
	TaxEntriesSplit prometheus.Counter
	BulkBatchSize   prometheus.Histogram

	// Invoice metrics
	InvoicesCreated   prometheus.Counter
	POInvoicesCreated prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBErrors *prometheus.CounterVec

	// Idempotency metrics
	IdempotencyHits prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Statement metrics
		StatementsBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_statements_built_total",
			Help: "Total number of customer statements built",
		}),
		StatementDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "openbooks_statement_duration_seconds",
			Help:    "Duration of statement builds",
			Buckets: prometheus.DefBuckets,
		}),
		StatementEntries: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "openbooks_statement_entries",
			Help:    "Number of entries per built statement",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),
		DedupExclusions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_dedup_exclusions_total",
			Help: "Total derived candidates dropped for matching a persisted bill reference",
		}),
		CapabilityFallback: promauto.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_capability_fallback_total",
			Help: "Total statement builds that deduplicated without entry kind tagging",
		}),

		// Entry metrics
		EntriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openbooks_entries_created_total",
				Help: "Total number of ledger entries created by kind",
			},
			[]string{"kind"},
		),
		EntriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_entries_deleted_total",
			Help: "Total number of ledger entries deleted",
		}),
		EntriesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_entries_updated_total",
			Help: "Total number of ledger entries updated",
		}),
		TaxEntriesSplit: promauto.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_tax_entries_split_total",
			Help: "Total number of tax sibling entries created",
		}),
		BulkBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "openbooks_bulk_batch_size",
			Help:    "Number of entries per bulk create",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 500},
		}),

		// Invoice metrics
		InvoicesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_invoices_created_total",
			Help: "Total number of invoices created",
		}),
		POInvoicesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_po_invoices_created_total",
			Help: "Total number of PO invoices created",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openbooks_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "openbooks_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "openbooks_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Idempotency metrics
		IdempotencyHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "openbooks_idempotency_hits_total",
			Help: "Total requests served from the idempotency store",
		}),
	}
}

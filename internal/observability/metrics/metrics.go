package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "hive_"

	resultSuccess = "success"
)

var (
	registerOnce sync.Once

	dailyParseTotal   *prometheus.CounterVec
	dailyParseLatency *prometheus.HistogramVec
	parseErrors       *prometheus.CounterVec
	invalidCells      prometheus.Counter
	droppedRows       prometheus.Counter

	reconcileTotal   *prometheus.CounterVec
	reconcileLatency *prometheus.HistogramVec
	priorYearSkipped prometheus.Counter

	historyUpserts *prometheus.CounterVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec
)

// Init registers the service metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		dailyParseTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "daily_parse_total",
				Help: "Total daily export parses by result",
			},
			[]string{"result"},
		)
		dailyParseLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "daily_parse_latency_seconds",
				Help:    "Daily export parse latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		parseErrors = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "parse_errors_total",
				Help: "Total structural parse failures by reason",
			},
			[]string{"reason"},
		)
		invalidCells = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "invalid_amount_cells_total",
				Help: "Total amount cells normalized to zero after a parse failure",
			},
		)
		droppedRows = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "dropped_rows_total",
				Help: "Total leaf rows dropped for lack of a classified revenue center",
			},
		)

		reconcileTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reconcile_total",
				Help: "Total reconciliation runs by result",
			},
			[]string{"result"},
		)
		reconcileLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "reconcile_latency_seconds",
				Help:    "Reconciliation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		priorYearSkipped = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "prior_year_files_skipped_total",
				Help: "Total prior-year files skipped during batch merges",
			},
		)

		historyUpserts = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "history_upserts_total",
				Help: "Total history log upserts by result",
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total export renders by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_latency_seconds",
				Help:    "Export render latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			dailyParseTotal,
			dailyParseLatency,
			parseErrors,
			invalidCells,
			droppedRows,
			reconcileTotal,
			reconcileLatency,
			priorYearSkipped,
			historyUpserts,
			exportTotal,
			exportLatency,
		)
	})
}

// ObserveDailyParse records one parse duration and result.
func ObserveDailyParse(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if dailyParseTotal != nil {
		dailyParseTotal.WithLabelValues(result).Inc()
	}
	if dailyParseLatency != nil {
		dailyParseLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncParseError increments the structural failure counter.
func IncParseError(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	if parseErrors != nil {
		parseErrors.WithLabelValues(reason).Inc()
	}
}

// AddInvalidCells counts amount cells that failed to parse.
func AddInvalidCells(count int) {
	if count <= 0 {
		return
	}
	if invalidCells != nil {
		invalidCells.Add(float64(count))
	}
}

// AddDroppedRows counts leaf rows dropped without attribution.
func AddDroppedRows(count int) {
	if count <= 0 {
		return
	}
	if droppedRows != nil {
		droppedRows.Add(float64(count))
	}
}

// ObserveReconcile records one reconciliation run.
func ObserveReconcile(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if reconcileTotal != nil {
		reconcileTotal.WithLabelValues(result).Inc()
	}
	if reconcileLatency != nil {
		reconcileLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// AddPriorYearSkipped counts files skipped during a batch merge.
func AddPriorYearSkipped(count int) {
	if count <= 0 {
		return
	}
	if priorYearSkipped != nil {
		priorYearSkipped.Add(float64(count))
	}
}

// IncHistoryUpsert increments the history write counter.
func IncHistoryUpsert(result string) {
	if result == "" {
		result = resultSuccess
	}
	if historyUpserts != nil {
		historyUpserts.WithLabelValues(result).Inc()
	}
}

// ObserveExport records one export render.
func ObserveExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

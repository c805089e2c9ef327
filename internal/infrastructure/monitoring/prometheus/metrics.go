// Package prometheus exposes the operational metrics of the document
// processing core on a private registry, so the embedding process can mount
// the handler wherever its (out-of-scope) HTTP surface lives.
package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values for the status dimension.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Label values for the segmentation pass dimension.
const (
	PassOrdinal = "ordinal"
	PassNumeric = "numeric"
)

// ProcessingMetrics records telemetry for document processing.  All methods
// are safe for concurrent use; a nil *ProcessingMetrics is a valid no-op
// receiver so components can treat metrics as optional.
type ProcessingMetrics struct {
	registry *prometheus.Registry

	documentsProcessed *prometheus.CounterVec
	batchFiles         *prometheus.CounterVec
	articlesExtracted  *prometheus.CounterVec
	processingDuration prometheus.Histogram
	extractionDuration *prometheus.HistogramVec
}

// NewProcessingMetrics registers all collectors on a fresh private registry.
// The namespace typically comes from config.MetricsConfig.Namespace.
func NewProcessingMetrics(namespace string) *ProcessingMetrics {
	m := &ProcessingMetrics{registry: prometheus.NewRegistry()}

	m.documentsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "docproc",
		Name:      "documents_processed_total",
		Help:      "Documents processed, labelled by outcome.",
	}, []string{"status"})

	m.batchFiles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "docproc",
		Name:      "batch_files_total",
		Help:      "Files handled inside batch runs, labelled by outcome.",
	}, []string{"status"})

	m.articlesExtracted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "docproc",
		Name:      "articles_extracted_total",
		Help:      "Articles extracted, labelled by the segmentation pass that produced them.",
	}, []string{"pass"})

	m.processingDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "docproc",
		Name:      "processing_duration_seconds",
		Help:      "End-to-end duration of single-document processing.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	})

	m.extractionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "docproc",
		Name:      "extraction_duration_seconds",
		Help:      "Raw text extraction duration, labelled by document format.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"format"})

	m.registry.MustRegister(
		m.documentsProcessed,
		m.batchFiles,
		m.articlesExtracted,
		m.processingDuration,
		m.extractionDuration,
	)
	return m
}

// Handler returns an http.Handler serving the private registry in the
// standard exposition format.
func (m *ProcessingMetrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordDocument records the outcome and duration of one Process call.
func (m *ProcessingMetrics) RecordDocument(success bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.documentsProcessed.WithLabelValues(statusLabel(success)).Inc()
	m.processingDuration.Observe(elapsed.Seconds())
}

// RecordBatchFile records the outcome of one file inside a batch run.
func (m *ProcessingMetrics) RecordBatchFile(success bool) {
	if m == nil {
		return
	}
	m.batchFiles.WithLabelValues(statusLabel(success)).Inc()
}

// RecordArticles records how many articles a segmentation pass produced.
func (m *ProcessingMetrics) RecordArticles(pass string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.articlesExtracted.WithLabelValues(pass).Add(float64(count))
}

// RecordExtraction records the duration of raw text extraction for a format
// label such as "pdf" or "docx".
func (m *ProcessingMetrics) RecordExtraction(format string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.extractionDuration.WithLabelValues(format).Observe(elapsed.Seconds())
}

func statusLabel(success bool) string {
	if success {
		return StatusSuccess
	}
	return StatusFailure
}

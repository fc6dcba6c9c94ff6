package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autocontract_ai_requests_total",
		Help: "AI drafting calls by operation and outcome.",
	}, []string{"operation", "status"})

	AIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "autocontract_ai_request_duration_seconds",
		Help:    "Wall time of AI drafting calls.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"operation"})

	PDFsRenderedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "autocontract_pdfs_rendered_total",
		Help: "PDF documents successfully rendered.",
	})

	PDFRenderErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "autocontract_pdf_render_errors_total",
		Help: "PDF render failures, including renderer outages and invalid output.",
	})

	PreviewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autocontract_previews_total",
		Help: "HTML previews served, by document kind.",
	}, []string{"kind"})

	TemplatesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "autocontract_templates_total",
		Help: "Total number of stored templates in the database.",
	})

	ContractsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "autocontract_contracts_total",
		Help: "Total number of stored contracts in the database.",
	})
)

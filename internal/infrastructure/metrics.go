package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "messages_scanned_total",
		Help: "Total number of raw messages scanned by the extractor",
	})

	RecordsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "records_extracted_total",
		Help: "Total number of trade records extracted from resolved lines",
	})

	AnalysisRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_runs_total",
		Help: "Total number of analysis runs served",
	}, []string{"status"})

	AnalysisLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "analysis_latency_seconds",
		Help: "Latency of a full extract-and-aggregate run",
	})

	RunsPersisted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_insert_total",
		Help: "Total number of rows inserted into the database",
	}, []string{"table"})
)

package platform

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ad_pipeline_runs_total",
			Help: "Total number of ad generation runs",
		},
		[]string{"status"},
	)

	StageFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ad_stage_failures_total",
			Help: "Total number of pipeline stage failures",
		},
		[]string{"stage"},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ad_pipeline_duration_seconds",
			Help:    "Wall-clock duration of a full ad generation run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		},
	)
)

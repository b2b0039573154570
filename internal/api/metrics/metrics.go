package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shortener"

var (
	// RegistrationsTotal counts successful account registrations.
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Number of successfully registered users.",
	})

	// LoginsTotal counts login attempts by outcome.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Number of login attempts, labelled by result.",
	}, []string{"result"})

	// VideosProcessedTotal counts processed videos by source.
	VideosProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "videos_processed_total",
		Help:      "Number of videos accepted for processing, labelled by source.",
	}, []string{"source"})

	// ClipsGeneratedTotal counts generated clip suggestions.
	ClipsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clips_generated_total",
		Help:      "Number of clip suggestions produced.",
	})

	// ProcessingDuration observes end-to-end processing latency per source.
	ProcessingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "processing_duration_seconds",
		Help:      "Time spent turning a submission into clip suggestions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})
)

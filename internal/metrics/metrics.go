// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StudentsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registrar_students_added_total",
			Help: "Total number of students added",
		},
	)

	CompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrar_completions_total",
			Help: "Completion submissions by outcome",
		},
		[]string{"outcome"},
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrar_searches_total",
			Help: "Searches by kind and whether anything matched",
		},
		[]string{"kind", "matched"},
	)

	TranscriptGPA = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "registrar_transcript_gpa",
			Help:    "Distribution of GPAs shown on transcripts",
			Buckets: prometheus.LinearBuckets(1, 0.5, 9),
		},
	)
)

// WriteTextfile dumps the default registry in the node_exporter textfile
// format. An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}

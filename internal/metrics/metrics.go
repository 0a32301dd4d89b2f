// Package metrics expose les métriques Prometheus du service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jukebox_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jukebox_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "jukebox_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Stockage clé/valeur
var (
	StorageOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jukebox_storage_operations_total",
			Help: "Total number of key-value storage operations",
		},
		[]string{"backend", "operation", "status"},
	)

	StorageOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jukebox_storage_operation_duration_seconds",
			Help:    "Key-value storage operation duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"backend", "operation"},
	)
)

// Playlist
var (
	PlaylistSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "jukebox_playlist_entries",
			Help: "Number of entries currently in the playlist",
		},
	)

	SongsAddedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jukebox_songs_added_total",
			Help: "Total number of songs added to the playlist",
		},
	)

	AddRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jukebox_add_rejected_total",
			Help: "Total number of rejected add requests by error code",
		},
		[]string{"code"},
	)

	PlaysTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jukebox_plays_total",
			Help: "Total number of recorded plays",
		},
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jukebox_exports_total",
			Help: "Total number of playlist exports by format",
		},
		[]string{"format"},
	)

	RestoreParseFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jukebox_restore_parse_failures_total",
			Help: "Number of times persisted playlist data could not be parsed and was reset",
		},
	)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric exported by this package.
const Namespace = "media_playlist"

// Player metrics
var (
	PlayerNavigationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_playlist_player_navigation_total",
			Help: "Total number of player cursor and playlist actions",
		},
		[]string{"action", "status"},
	)

	PlayerItemsAddedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_playlist_player_items_added_total",
			Help: "Total number of items appended to the playlist",
		},
		[]string{"kind"}, // "media", "track", "movie"
	)

	PlaylistSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_playlist_playlist_size",
			Help: "Number of items currently in the playlist",
		},
	)
)

// Loader metrics
var (
	PlaylistLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_playlist_loads_total",
			Help: "Total number of playlist file loads",
		},
		[]string{"format", "status"},
	)

	PlaylistItemsLoadedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_playlist_items_loaded_total",
			Help: "Total number of items read from playlist files",
		},
		[]string{"format"},
	)
)

// Catalog metrics
var (
	CatalogQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_playlist_catalog_queries_total",
			Help: "Total number of catalog database queries",
		},
		[]string{"operation", "status"},
	)

	CatalogQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_playlist_catalog_query_duration_seconds",
			Help:    "Catalog database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)
)

// Filesystem metrics
var (
	FilesystemOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_playlist_filesystem_operations_total",
			Help: "Total number of playlist file stat and open operations",
		},
		[]string{"operation", "status"}, // operation: "stat", "open"
	)

	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_playlist_filesystem_retry_attempts_total",
			Help: "Total number of extra attempts spent on transient filesystem errors",
		},
		[]string{"operation"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_playlist_filesystem_stale_errors_total",
			Help: "Total number of stale file handle or interrupted call errors",
		},
		[]string{"operation"},
	)

	FilesystemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_playlist_filesystem_operation_duration_seconds",
			Help:    "Duration of filesystem operations including retries",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"operation"},
	)
)

func status(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}

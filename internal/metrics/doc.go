// Package metrics provides Prometheus instrumentation for the playlist player.
//
// All metrics are prefixed with "media_playlist_" and registered on the
// default Prometheus registry through promauto.
//
// # Metric Categories
//
// ## Player Metrics
//
//   - PlayerNavigationTotal: Counter of next/prev/reset/remove actions by status
//   - PlayerItemsAddedTotal: Counter of items appended, by media kind
//   - PlaylistSize: Gauge of the current playlist length
//
// ## Loader Metrics
//
//   - PlaylistLoadsTotal: Counter of playlist loads by format and status
//   - PlaylistItemsLoadedTotal: Counter of items read, by format
//
// ## Catalog Metrics
//
//   - CatalogQueryTotal: Counter of SQLite catalog queries by operation and status
//   - CatalogQueryDuration: Histogram of catalog query duration by operation
//
// # Observers
//
// The player and playlist packages do not import Prometheus. They expose
// Observer interfaces, and this package supplies the implementations:
//
//	player.SetObserver(metrics.NewPlayerObserver())
//	playlist.SetObserver(metrics.NewPlaylistObserver())
//
// # Output
//
// There is no HTTP endpoint. WriteText dumps the current values in the
// Prometheus text format, which the CLI does on exit when METRICS_DUMP is set.
package metrics

package metrics

import (
	"time"

	"media-playlist/internal/filesystem"
	"media-playlist/internal/media"
	"media-playlist/internal/player"
	"media-playlist/internal/playlist"
)

// playerObserver implements player.Observer using the Prometheus
// metrics declared in this package.
type playerObserver struct{}

// NewPlayerObserver creates an observer that records player metrics.
func NewPlayerObserver() player.Observer {
	return &playerObserver{}
}

func (o *playerObserver) ObserveNavigation(action string, ok bool) {
	PlayerNavigationTotal.WithLabelValues(action, status(ok)).Inc()
}

func (o *playerObserver) ObserveItemAdded(kind media.Kind) {
	PlayerItemsAddedTotal.WithLabelValues(string(kind)).Inc()
}

func (o *playerObserver) ObservePlaylistSize(n int) {
	PlaylistSize.Set(float64(n))
}

// playlistObserver implements playlist.Observer.
type playlistObserver struct{}

// NewPlaylistObserver creates an observer that records playlist load metrics.
func NewPlaylistObserver() playlist.Observer {
	return &playlistObserver{}
}

func (o *playlistObserver) ObserveLoad(format string, items int, err error) {
	RecordLoad(format, items, err)
}

// RecordLoad records the outcome of loading a playlist from any source.
func RecordLoad(format string, items int, err error) {
	PlaylistLoadsTotal.WithLabelValues(format, status(err == nil)).Inc()
	if err == nil {
		PlaylistItemsLoadedTotal.WithLabelValues(format).Add(float64(items))
	}
}

// RecordCatalogQuery records the duration and outcome of a catalog query
// started at start.
func RecordCatalogQuery(operation string, start time.Time, err error) {
	CatalogQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	CatalogQueryTotal.WithLabelValues(operation, status(err == nil)).Inc()
}

// filesystemObserver implements filesystem.Observer.
type filesystemObserver struct{}

// NewFilesystemObserver creates an observer that records filesystem retry metrics.
func NewFilesystemObserver() filesystem.Observer {
	return &filesystemObserver{}
}

func (o *filesystemObserver) ObserveOperation(operation string, attempts int, durationSeconds float64, err error) {
	FilesystemOperationsTotal.WithLabelValues(operation, status(err == nil)).Inc()
	FilesystemOperationDuration.WithLabelValues(operation).Observe(durationSeconds)
	if attempts > 1 {
		FilesystemRetryAttempts.WithLabelValues(operation).Add(float64(attempts - 1))
	}
}

func (o *filesystemObserver) ObserveStaleError(operation string) {
	FilesystemStaleErrors.WithLabelValues(operation).Inc()
}

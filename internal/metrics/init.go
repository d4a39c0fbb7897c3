package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric appears in the first dump.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, action := range []string{"next", "prev", "reset", "remove"} {
		PlayerNavigationTotal.WithLabelValues(action, "success")
		PlayerNavigationTotal.WithLabelValues(action, "error")
	}

	for _, kind := range []string{"media", "track", "movie"} {
		PlayerItemsAddedTotal.WithLabelValues(kind)
	}

	for _, format := range []string{"json", "wpl", "catalog"} {
		PlaylistLoadsTotal.WithLabelValues(format, "success")
		PlaylistLoadsTotal.WithLabelValues(format, "error")
		PlaylistItemsLoadedTotal.WithLabelValues(format)
	}

	for _, op := range []string{"open", "playlists", "items"} {
		CatalogQueryTotal.WithLabelValues(op, "success")
		CatalogQueryTotal.WithLabelValues(op, "error")
		CatalogQueryDuration.WithLabelValues(op)
	}

	for _, op := range []string{"stat", "open"} {
		FilesystemOperationsTotal.WithLabelValues(op, "success")
		FilesystemOperationsTotal.WithLabelValues(op, "error")
		FilesystemRetryAttempts.WithLabelValues(op)
		FilesystemStaleErrors.WithLabelValues(op)
		FilesystemOperationDuration.WithLabelValues(op)
	}
}

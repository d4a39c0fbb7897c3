package player

import "media-playlist/internal/media"

// Observer records player activity. Implementations are provided by the
// metrics package to keep this package free of Prometheus imports.
type Observer interface {
	// ObserveNavigation records a cursor or playlist action such as "next",
	// "prev", "reset" or "remove", and whether it succeeded.
	ObserveNavigation(action string, ok bool)
	// ObserveItemAdded records an item appended to the playlist.
	ObserveItemAdded(kind media.Kind)
	// ObservePlaylistSize records the playlist length after a change.
	ObservePlaylistSize(n int)
}

// defaultObserver is the package-level observer set at startup.
// If nil, metric recording is silently skipped (safe for tests).
var defaultObserver Observer

// SetObserver sets the package-level player observer.
func SetObserver(o Observer) {
	defaultObserver = o
}

func observeNavigation(action string, ok bool) {
	if o := defaultObserver; o != nil {
		o.ObserveNavigation(action, ok)
	}
}

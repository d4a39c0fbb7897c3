package filesystem

// Observer records retried file operations. Implementations are provided by
// the metrics package, which already imports the packages that read files.
type Observer interface {
	// ObserveOperation records one completed operation ("stat" or "open"),
	// the number of attempts it took, and its final error.
	ObserveOperation(operation string, attempts int, durationSeconds float64, err error)

	// ObserveStaleError records a single retryable error.
	ObserveStaleError(operation string)
}

// defaultObserver is the package-level observer set at startup.
// If nil, recording is skipped.
var defaultObserver Observer

// SetObserver sets the package-level observer.
func SetObserver(o Observer) {
	defaultObserver = o
}

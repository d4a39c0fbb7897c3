package filesystem

import (
	"errors"
	"os"
	"syscall"
	"time"

	"media-playlist/internal/logging"
)

// RetryConfig configures retry behavior for filesystem operations
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryConfig returns the retry settings used for playlist files.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     500 * time.Millisecond,
	}
}

// isRetryable reports whether err is a transient error worth another
// attempt: a stale NFS file handle or an interrupted system call.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.ESTALE || errno == syscall.EINTR
	}
	return false
}

// StatWithRetry performs os.Stat, retrying transient errors.
func StatWithRetry(path string, config RetryConfig) (os.FileInfo, error) {
	return withRetry("stat", path, config, func() (os.FileInfo, error) {
		return os.Stat(path)
	})
}

// OpenWithRetry performs os.Open, retrying transient errors.
func OpenWithRetry(path string, config RetryConfig) (*os.File, error) {
	return withRetry("open", path, config, func() (*os.File, error) {
		return os.Open(path)
	})
}

// withRetry calls fn until it succeeds, fails with a non-retryable error, or
// config.MaxRetries retries have been spent. Backoff doubles up to MaxBackoff.
func withRetry[T any](operation, path string, config RetryConfig, fn func() (T, error)) (T, error) {
	start := time.Now()
	backoff := config.InitialBackoff

	var (
		result T
		err    error
	)
	attempt := 0
	for ; attempt <= config.MaxRetries; attempt++ {
		result, err = fn()
		if err == nil {
			if attempt > 0 {
				logging.Info("%s succeeded on retry %d for %s", operation, attempt, path)
			}
			break
		}
		if !isRetryable(err) {
			break
		}

		if o := defaultObserver; o != nil {
			o.ObserveStaleError(operation)
		}

		// Don't sleep after the last attempt
		if attempt < config.MaxRetries {
			logging.Debug("%s failed for %s, retrying in %v (attempt %d/%d): %v",
				operation, path, backoff, attempt+1, config.MaxRetries, err)
			time.Sleep(backoff)

			backoff *= 2
			if backoff > config.MaxBackoff {
				backoff = config.MaxBackoff
			}
		}
	}

	attempts := min(attempt+1, config.MaxRetries+1)
	if err != nil && isRetryable(err) {
		logging.Warn("%s failed after %d retries for %s: %v", operation, config.MaxRetries, path, err)
	}
	if o := defaultObserver; o != nil {
		o.ObserveOperation(operation, attempts, time.Since(start).Seconds(), err)
	}
	return result, err
}

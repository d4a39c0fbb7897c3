/*
Package filesystem opens and stats playlist files with retry logic for
transient errors.

Playlists often live on network shares. A stale NFS file handle (ESTALE) or
an interrupted system call (EINTR) is retried with exponential backoff; every
other error is returned immediately.

	f, err := filesystem.OpenWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
	    return err
	}
	defer f.Close()

Defaults are 3 retries starting at 50ms and capped at 500ms.

Results are reported to the Observer set with SetObserver. The metrics
package provides the implementation used by the player.
*/
package filesystem

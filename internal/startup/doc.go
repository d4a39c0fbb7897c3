// Package startup loads player configuration and logs startup progress.
//
// Configuration comes from environment variables, with the playlist file
// optionally given as the first command-line argument:
//
//	PLAYLIST_FILE     Path to a .json or .wpl playlist
//	CATALOG_DB        Path to a SQLite catalog, used when no file is given
//	CATALOG_PLAYLIST  Catalog playlist name (default: the first by name)
//	METRICS_DUMP      Write metrics to stderr on exit (default: false)
//	LOG_LEVEL         debug, info, warn or error (default: info)
//
// Build metadata (Version, Commit, BuildTime) is injected with -ldflags.
package startup

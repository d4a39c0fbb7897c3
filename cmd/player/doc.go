// Command player loads a playlist and navigates it from an interactive
// command shell.
//
// Usage:
//
//	player [playlist-file]
//	player --version
//
// The playlist comes from the file argument, PLAYLIST_FILE, or, when neither
// is set, a read-only SQLite catalog named by CATALOG_DB. JSON files hold
// iTunes Search API results; WPL files are Windows Media Player playlists.
//
// Commands:
//
//	play               Play the current item
//	next, prev         Move the cursor and play
//	reset              Return to the first item
//	forward, backward  Play every item in either direction
//	list, size         Show the playlist or its length
//	remove <index>     Remove an item; the cursor moves on if it was removed
//	undo               Put the most recently removed item back
//	enqueue <index>    Add an item to the up next queue
//	upnext             Play the oldest queued item
//	version            Show build information
//	quit               Exit
//
// When stdin is a terminal the shell uses golang.org/x/term for line
// editing; otherwise commands are read one per line, so the player can be
// scripted:
//
//	printf 'next\nforward\n' | player songs.json
//
// Environment:
//
//	PLAYLIST_FILE, CATALOG_DB, CATALOG_PLAYLIST, METRICS_DUMP, LOG_LEVEL
//
// See package startup for details. With METRICS_DUMP=true the player writes
// its Prometheus metrics to stderr in text format on exit.
package main

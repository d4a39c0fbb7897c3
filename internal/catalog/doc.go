// Package catalog reads playlists from a SQLite media index.
//
// The catalog is opened read-only (mode=ro); the player never persists its
// list back. Each row of the media table is one playlist entry, and
// Items returns a playlist's rows ordered by position. NULL columns take the
// same placeholders the JSON loader uses for missing fields.
//
// Every query records its duration and status in the metrics package.
package catalog

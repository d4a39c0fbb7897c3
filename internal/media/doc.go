// Package media defines the items a playlist holds: generic media entries,
// tracks, and movies, along with the one-line rendering used when an item
// is played.
package media

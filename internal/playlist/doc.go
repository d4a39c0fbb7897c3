// Package playlist loads media items from playlist files.
//
// Currently supported formats:
//   - JSON: an array of iTunes Search API results (songs, feature movies,
//     and collections)
//   - WPL (Windows Playlist): XML-based playlist format used by Windows Media Player
//
// Load picks the parser from the file extension. Items are returned in file
// order; the player appends them to its list unchanged.
package playlist

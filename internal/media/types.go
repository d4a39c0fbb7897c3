package media

import (
	"fmt"
	"time"
)

// Kind identifies which fields of an Item are meaningful.
type Kind string

const (
	// KindMedia is a generic media entry such as an album or audiobook.
	KindMedia Kind = "media"
	// KindTrack is a song.
	KindTrack Kind = "track"
	// KindMovie is a feature film.
	KindMovie Kind = "movie"
)

// Placeholders used when a source record omits a field.
const (
	NoTitle       = "No Title"
	NoArtist      = "No Artist"
	NoReleaseDate = "No Release Date"
	NoURL         = "No URL"
	NoAlbum       = "No Album"
	NoGenre       = "No Genre"
	NoRating      = "No Rating"
)

// Item is one entry in a playlist.
type Item struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	ReleaseDate string `json:"releaseDate"`
	URL         string `json:"url"`

	// Track fields
	Album    string        `json:"album,omitempty"`
	Genre    string        `json:"genre,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`

	// Movie fields
	Rating string        `json:"rating,omitempty"`
	Length time.Duration `json:"length,omitempty"`
}

// NewMedia returns a generic media item.
func NewMedia(title, artist, releaseDate, url string) Item {
	return Item{
		Kind:        KindMedia,
		Title:       title,
		Artist:      artist,
		ReleaseDate: releaseDate,
		URL:         url,
	}
}

// NewTrack returns a song item.
func NewTrack(title, artist, releaseDate, url, album, genre string, duration time.Duration) Item {
	return Item{
		Kind:        KindTrack,
		Title:       title,
		Artist:      artist,
		ReleaseDate: releaseDate,
		URL:         url,
		Album:       album,
		Genre:       genre,
		Duration:    duration,
	}
}

// NewMovie returns a movie item.
func NewMovie(title, artist, releaseDate, url, rating string, length time.Duration) Item {
	return Item{
		Kind:        KindMovie,
		Title:       title,
		Artist:      artist,
		ReleaseDate: releaseDate,
		URL:         url,
		Rating:      rating,
		Length:      length,
	}
}

// Year returns the first four characters of the release date, which for
// ISO-8601 timestamps is the year. Shorter values are returned unchanged.
func (i Item) Year() string {
	if len(i.ReleaseDate) >= 4 && i.ReleaseDate != NoReleaseDate {
		return i.ReleaseDate[:4]
	}
	return i.ReleaseDate
}

// String renders the item as the single line printed when it is played.
func (i Item) String() string {
	switch i.Kind {
	case KindTrack:
		return fmt.Sprintf("%s by %s (%s) [%s] - %s", i.Title, i.Artist, i.Year(), i.Genre, formatClock(i.Duration))
	case KindMovie:
		return fmt.Sprintf("%s (%s) [%s] - %s", i.Title, i.Year(), i.Rating, formatLength(i.Length))
	default:
		return fmt.Sprintf("%s by %s (%s)", i.Title, i.Artist, i.Year())
	}
}

// formatClock renders d as m:ss.
func formatClock(d time.Duration) string {
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// formatLength renders d as XhYYm.
func formatLength(d time.Duration) string {
	total := int(d.Round(time.Minute) / time.Minute)
	return fmt.Sprintf("%dh%02dm", total/60, total%60)
}

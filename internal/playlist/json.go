package playlist

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"media-playlist/internal/filesystem"
	"media-playlist/internal/media"
)

// record is one result from the iTunes Search API. Pointer fields tell a
// missing key apart from an empty value.
type record struct {
	WrapperType           string  `json:"wrapperType"`
	Kind                  string  `json:"kind"`
	ArtistName            *string `json:"artistName"`
	CollectionName        *string `json:"collectionName"`
	TrackName             *string `json:"trackName"`
	CollectionViewURL     *string `json:"collectionViewUrl"`
	TrackViewURL          *string `json:"trackViewUrl"`
	ReleaseDate           *string `json:"releaseDate"`
	PrimaryGenreName      *string `json:"primaryGenreName"`
	ContentAdvisoryRating *string `json:"contentAdvisoryRating"`
	TrackTimeMillis       *int64  `json:"trackTimeMillis"`
}

// LoadJSON reads a JSON array of iTunes Search API results and returns the
// corresponding media items in file order.
func LoadJSON(jsonPath string) ([]media.Item, error) {
	f, err := filesystem.OpenWithRetry(jsonPath, filesystem.DefaultRetryConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}
	defer f.Close()

	return DecodeJSON(f)
}

// DecodeJSON parses a JSON array of iTunes Search API results from r.
// Songs become tracks, feature movies become movies, and every other record
// becomes a generic media item.
func DecodeJSON(r io.Reader) ([]media.Item, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON playlist: %w", err)
	}

	items := make([]media.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, rec.item())
	}
	return items, nil
}

func (rec record) item() media.Item {
	artist := stringOr(rec.ArtistName, media.NoArtist)
	released := stringOr(rec.ReleaseDate, media.NoReleaseDate)

	if rec.WrapperType == "track" {
		switch rec.Kind {
		case "feature-movie":
			return media.NewMovie(
				stringOr(rec.TrackName, media.NoTitle),
				artist,
				released,
				stringOr(rec.TrackViewURL, media.NoURL),
				stringOr(rec.ContentAdvisoryRating, media.NoRating),
				millis(rec.TrackTimeMillis),
			)
		case "song":
			return media.NewTrack(
				stringOr(rec.TrackName, media.NoTitle),
				artist,
				released,
				stringOr(rec.TrackViewURL, media.NoURL),
				stringOr(rec.CollectionName, media.NoAlbum),
				stringOr(rec.PrimaryGenreName, media.NoGenre),
				millis(rec.TrackTimeMillis),
			)
		}
	}

	return media.NewMedia(
		stringOr(rec.CollectionName, media.NoTitle),
		artist,
		released,
		stringOr(rec.CollectionViewURL, media.NoURL),
	)
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func millis(ms *int64) time.Duration {
	if ms == nil {
		return 0
	}
	return time.Duration(*ms) * time.Millisecond
}

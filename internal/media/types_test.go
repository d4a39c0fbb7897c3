package media

import (
	"testing"
	"time"
)

func TestKindConstants(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected string
	}{
		{"Media", KindMedia, "media"},
		{"Track", KindTrack, "track"},
		{"Movie", KindMovie, "movie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.kind) != tt.expected {
				t.Errorf("Kind value mismatch: got %s, want %s", tt.kind, tt.expected)
			}
		})
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		releaseDate string
		expected    string
	}{
		{"2011-05-23T07:00:00Z", "2011"},
		{"1999", "1999"},
		{"99", "99"},
		{"", ""},
		{NoReleaseDate, NoReleaseDate},
	}

	for _, tt := range tests {
		t.Run(tt.releaseDate, func(t *testing.T) {
			item := Item{ReleaseDate: tt.releaseDate}
			if got := item.Year(); got != tt.expected {
				t.Errorf("Year() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestItemString(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		expected string
	}{
		{
			name:     "Media",
			item:     NewMedia("Greatest Hits", "Queen", "1981-10-26T08:00:00Z", "https://example.com/c"),
			expected: "Greatest Hits by Queen (1981)",
		},
		{
			name:     "Track",
			item:     NewTrack("Bohemian Rhapsody", "Queen", "1975-10-31T08:00:00Z", "https://example.com/t", "A Night at the Opera", "Rock", 354*time.Second),
			expected: "Bohemian Rhapsody by Queen (1975) [Rock] - 5:54",
		},
		{
			name:     "Track rounds to the second",
			item:     NewTrack("Short", "Someone", "2020", NoURL, NoAlbum, NoGenre, 65499*time.Millisecond),
			expected: "Short by Someone (2020) [No Genre] - 1:05",
		},
		{
			name:     "Movie",
			item:     NewMovie("Jaws", "Steven Spielberg", "1975-06-20T07:00:00Z", "https://example.com/m", "PG", 124*time.Minute),
			expected: "Jaws (1975) [PG] - 2h04m",
		},
		{
			name:     "Movie without length",
			item:     NewMovie(NoTitle, NoArtist, NoReleaseDate, NoURL, NoRating, 0),
			expected: "No Title (No Release Date) [No Rating] - 0h00m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConstructorsSetKind(t *testing.T) {
	if k := NewMedia("", "", "", "").Kind; k != KindMedia {
		t.Errorf("NewMedia kind = %s, want %s", k, KindMedia)
	}
	if k := NewTrack("", "", "", "", "", "", 0).Kind; k != KindTrack {
		t.Errorf("NewTrack kind = %s, want %s", k, KindTrack)
	}
	if k := NewMovie("", "", "", "", "", 0).Kind; k != KindMovie {
		t.Errorf("NewMovie kind = %s, want %s", k, KindMovie)
	}
}

package playlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"media-playlist/internal/media"
)

const itunesJSON = `[
	{
		"wrapperType": "track",
		"kind": "song",
		"artistName": "Queen",
		"collectionName": "A Night at the Opera",
		"trackName": "Bohemian Rhapsody",
		"trackViewUrl": "https://music.example.com/track/1",
		"releaseDate": "1975-10-31T08:00:00Z",
		"primaryGenreName": "Rock",
		"trackTimeMillis": 354000
	},
	{
		"wrapperType": "track",
		"kind": "feature-movie",
		"artistName": "Steven Spielberg",
		"trackName": "Jaws",
		"trackViewUrl": "https://video.example.com/movie/2",
		"releaseDate": "1975-06-20T07:00:00Z",
		"contentAdvisoryRating": "PG",
		"trackTimeMillis": 7440000
	},
	{
		"wrapperType": "audiobook",
		"artistName": "Jane Austen",
		"collectionName": "Pride and Prejudice",
		"collectionViewUrl": "https://books.example.com/3",
		"releaseDate": "2011-01-01T08:00:00Z"
	},
	{
		"wrapperType": "track",
		"kind": "song"
	}
]`

const sampleWPL = `<?wpl version="1.0"?>
<smil>
	<head>
		<meta name="Generator" content="Microsoft Windows Media Player -- 12.0.19041.1"/>
		<meta name="Author" content="DJ Test"/>
		<title>Road Trip</title>
	</head>
	<body>
		<seq>
			<media src="..\Music\Highway Star.mp3"/>
			<media src="C:\Music\Radar Love.flac"/>
			<media src="relative/Born to Run.mp3"/>
		</seq>
	</body>
</smil>`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return p
}

func TestDecodeJSON(t *testing.T) {
	items, err := DecodeJSON(strings.NewReader(itunesJSON))
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("Expected 4 items, got %d", len(items))
	}

	tests := []struct {
		name string
		got  media.Item
		want media.Item
	}{
		{
			name: "song",
			got:  items[0],
			want: media.NewTrack("Bohemian Rhapsody", "Queen", "1975-10-31T08:00:00Z",
				"https://music.example.com/track/1", "A Night at the Opera", "Rock", 354*time.Second),
		},
		{
			name: "feature movie",
			got:  items[1],
			want: media.NewMovie("Jaws", "Steven Spielberg", "1975-06-20T07:00:00Z",
				"https://video.example.com/movie/2", "PG", 124*time.Minute),
		},
		{
			name: "other wrapper type",
			got:  items[2],
			want: media.NewMedia("Pride and Prejudice", "Jane Austen", "2011-01-01T08:00:00Z",
				"https://books.example.com/3"),
		},
		{
			name: "song with missing fields",
			got:  items[3],
			want: media.NewTrack(media.NoTitle, media.NoArtist, media.NoReleaseDate,
				media.NoURL, media.NoAlbum, media.NoGenre, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("item = %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestDecodeJSONUnknownTrackKind(t *testing.T) {
	input := `[{"wrapperType": "track", "kind": "podcast", "collectionName": "Show", "trackName": "Episode 1"}]`

	items, err := DecodeJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Kind != media.KindMedia {
		t.Errorf("Kind = %s, want %s", items[0].Kind, media.KindMedia)
	}
	if items[0].Title != "Show" {
		t.Errorf("Title = %q, want collection name %q", items[0].Title, "Show")
	}
}

func TestDecodeJSONInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "not json"},
		{"object instead of array", `{"wrapperType": "track"}`},
		{"wrong field type", `[{"trackTimeMillis": "long"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected error for invalid JSON")
			}
		})
	}
}

func TestDecodeWPL(t *testing.T) {
	items, err := DecodeWPL(strings.NewReader(sampleWPL))
	if err != nil {
		t.Fatalf("DecodeWPL() error = %v", err)
	}

	wantTitles := []string{"Highway Star", "Radar Love", "Born to Run"}
	if len(items) != len(wantTitles) {
		t.Fatalf("Expected %d items, got %d", len(wantTitles), len(items))
	}
	for i, want := range wantTitles {
		if items[i].Title != want {
			t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, want)
		}
		if items[i].Artist != "DJ Test" {
			t.Errorf("items[%d].Artist = %q, want %q", i, items[i].Artist, "DJ Test")
		}
		if items[i].Kind != media.KindMedia {
			t.Errorf("items[%d].Kind = %s, want %s", i, items[i].Kind, media.KindMedia)
		}
		if strings.Contains(items[i].URL, "\\") {
			t.Errorf("items[%d].URL = %q still contains backslashes", i, items[i].URL)
		}
	}
}

func TestDecodeWPLWithoutAuthor(t *testing.T) {
	input := `<smil><head><title>x</title></head><body><seq><media src="a.mp3"/><media src=""/></seq></body></smil>`

	items, err := DecodeWPL(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeWPL() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Artist != media.NoArtist {
		t.Errorf("Artist = %q, want %q", items[0].Artist, media.NoArtist)
	}
	if items[1].Title != media.NoTitle {
		t.Errorf("empty src Title = %q, want %q", items[1].Title, media.NoTitle)
	}
}

func TestParseWPLInvalidFile(t *testing.T) {
	wplPath := writeFile(t, "test.wpl", "not xml")

	if _, err := LoadWPL(wplPath); err == nil {
		t.Error("Expected error when parsing invalid XML")
	}
}

func TestParseWPLNonexistent(t *testing.T) {
	wplPath := filepath.Join(t.TempDir(), "nonexistent.wpl")

	if _, err := LoadWPL(wplPath); err == nil {
		t.Error("Expected error when parsing nonexistent file")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"list.json", FormatJSON},
		{"LIST.JSON", FormatJSON},
		{"dir/list.wpl", FormatWPL},
		{"list.m3u", ""},
		{"noext", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Format(tt.path); got != tt.expected {
				t.Errorf("Format(%s) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

type recordingObserver struct {
	format string
	items  int
	err    error
	calls  int
}

func (r *recordingObserver) ObserveLoad(format string, items int, err error) {
	r.format, r.items, r.err = format, items, err
	r.calls++
}

func TestLoad(t *testing.T) {
	obs := &recordingObserver{}
	SetObserver(obs)
	t.Cleanup(func() { SetObserver(nil) })

	t.Run("json", func(t *testing.T) {
		items, err := Load(writeFile(t, "songs.json", itunesJSON))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(items) != 4 {
			t.Errorf("Expected 4 items, got %d", len(items))
		}
		if obs.format != FormatJSON || obs.items != 4 || obs.err != nil {
			t.Errorf("observer saw (%s, %d, %v), want (json, 4, nil)", obs.format, obs.items, obs.err)
		}
	})

	t.Run("wpl", func(t *testing.T) {
		items, err := Load(writeFile(t, "trip.wpl", sampleWPL))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(items) != 3 {
			t.Errorf("Expected 3 items, got %d", len(items))
		}
		if obs.format != FormatWPL {
			t.Errorf("observer format = %s, want %s", obs.format, FormatWPL)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "list.m3u", "#EXTM3U"))
		if !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("Load() error = %v, want ErrUnknownFormat", err)
		}
		if obs.format != "unknown" || obs.err == nil {
			t.Errorf("observer saw (%s, %v), want (unknown, error)", obs.format, obs.err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		if err == nil {
			t.Error("Expected error for missing file")
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Load() error = %v, want wrapped os.ErrNotExist", err)
		}
	})

	if obs.calls != 4 {
		t.Errorf("observer called %d times, want 4", obs.calls)
	}
}

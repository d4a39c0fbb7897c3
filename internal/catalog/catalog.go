package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver

	"media-playlist/internal/logging"
	"media-playlist/internal/media"
	"media-playlist/internal/metrics"
)

// Default timeout for catalog operations
const defaultTimeout = 5 * time.Second

// ErrNotOpen is returned by queries on a closed or zero Catalog.
var ErrNotOpen = errors.New("catalog is not open")

// Catalog reads playlists from a SQLite media index. It never writes.
type Catalog struct {
	db     *sql.DB
	dbPath string
}

// Schema is the table layout the catalog reads. It is exported so tools and
// tests can build a compatible database.
const Schema = `
CREATE TABLE IF NOT EXISTS media (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	playlist TEXT NOT NULL,
	position INTEGER NOT NULL,
	kind TEXT NOT NULL DEFAULT 'media',
	title TEXT,
	artist TEXT,
	release_date TEXT,
	url TEXT,
	album TEXT,
	genre TEXT,
	rating TEXT,
	duration_ms INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_media_playlist_position ON media(playlist, position);
`

// Open opens the catalog at dbPath read-only and verifies the connection.
func Open(ctx context.Context, dbPath string) (c *Catalog, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery("open", start, err) }()

	logging.Info("Catalog path: %s", dbPath)

	connStr := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("failed to close catalog after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to connect to catalog: %w", err)
	}

	db.SetMaxOpenConns(1)

	return &Catalog{db: db, dbPath: dbPath}, nil
}

// Close releases the database handle.
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	if err != nil {
		return fmt.Errorf("failed to close catalog %s: %w", c.dbPath, err)
	}
	logging.Debug("Closed catalog %s", c.dbPath)
	return nil
}

// Playlists returns the distinct playlist names in the catalog, sorted.
func (c *Catalog) Playlists(ctx context.Context) (names []string, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery("playlists", start, err) }()

	if c == nil || c.db == nil {
		return nil, ErrNotOpen
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := c.db.QueryContext(ctx, `SELECT DISTINCT playlist FROM media ORDER BY playlist`)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists in %s: %w", c.dbPath, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan playlist name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list playlists in %s: %w", c.dbPath, err)
	}
	return names, nil
}

// Items returns the entries of the named playlist ordered by position.
func (c *Catalog) Items(ctx context.Context, playlist string) (items []media.Item, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery("items", start, err) }()

	if c == nil || c.db == nil {
		return nil, ErrNotOpen
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := c.db.QueryContext(ctx, `
		SELECT kind, title, artist, release_date, url, album, genre, rating, duration_ms
		FROM media
		WHERE playlist = ?
		ORDER BY position, id`, playlist)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist %q in %s: %w", playlist, c.dbPath, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist %q: %w", playlist, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query playlist %q in %s: %w", playlist, c.dbPath, err)
	}

	logging.Debug("Catalog returned %d items for playlist %q", len(items), playlist)
	return items, nil
}

func scanItem(rows *sql.Rows) (media.Item, error) {
	var (
		kind                         string
		title, artist, released, url sql.NullString
		album, genre, rating         sql.NullString
		durationMs                   int64
	)
	if err := rows.Scan(&kind, &title, &artist, &released, &url, &album, &genre, &rating, &durationMs); err != nil {
		return media.Item{}, err
	}

	duration := time.Duration(durationMs) * time.Millisecond
	switch media.Kind(kind) {
	case media.KindTrack:
		return media.NewTrack(
			orDefault(title, media.NoTitle), orDefault(artist, media.NoArtist),
			orDefault(released, media.NoReleaseDate), orDefault(url, media.NoURL),
			orDefault(album, media.NoAlbum), orDefault(genre, media.NoGenre), duration,
		), nil
	case media.KindMovie:
		return media.NewMovie(
			orDefault(title, media.NoTitle), orDefault(artist, media.NoArtist),
			orDefault(released, media.NoReleaseDate), orDefault(url, media.NoURL),
			orDefault(rating, media.NoRating), duration,
		), nil
	default:
		return media.NewMedia(
			orDefault(title, media.NoTitle), orDefault(artist, media.NoArtist),
			orDefault(released, media.NoReleaseDate), orDefault(url, media.NoURL),
		), nil
	}
}

func orDefault(s sql.NullString, fallback string) string {
	if !s.Valid {
		return fallback
	}
	return s.String
}

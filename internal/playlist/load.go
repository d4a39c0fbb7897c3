package playlist

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"media-playlist/internal/logging"
	"media-playlist/internal/media"
)

// ErrUnknownFormat is returned by Load for file extensions it cannot parse.
var ErrUnknownFormat = errors.New("unknown playlist format")

// Supported playlist formats, keyed by lowercase file extension.
const (
	FormatJSON = "json"
	FormatWPL  = "wpl"
)

// Observer records playlist load results. Implementations are provided by
// the metrics package.
type Observer interface {
	ObserveLoad(format string, items int, err error)
}

var defaultObserver Observer

// SetObserver sets the package-level load observer.
func SetObserver(o Observer) {
	defaultObserver = o
}

// Format returns the playlist format for a path, or "" if unsupported.
func Format(p string) string {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json":
		return FormatJSON
	case ".wpl":
		return FormatWPL
	default:
		return ""
	}
}

// Load reads a playlist file, choosing the parser from its extension.
func Load(p string) ([]media.Item, error) {
	format := Format(p)

	var (
		items []media.Item
		err   error
	)
	switch format {
	case FormatJSON:
		items, err = LoadJSON(p)
	case FormatWPL:
		items, err = LoadWPL(p)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(p))
		format = "unknown"
	}

	if o := defaultObserver; o != nil {
		o.ObserveLoad(format, len(items), err)
	}
	if err != nil {
		return nil, err
	}

	logging.Debug("Loaded %d items from %s playlist %s", len(items), format, p)
	return items, nil
}

package playlist

import (
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"media-playlist/internal/filesystem"
	"media-playlist/internal/media"
)

// WPL structure based on Windows Media Player playlist format
type WPL struct {
	XMLName xml.Name `xml:"smil"`
	Head    WPLHead  `xml:"head"`
	Body    WPLBody  `xml:"body"`
}

type WPLHead struct {
	Title string    `xml:"title"`
	Meta  []WPLMeta `xml:"meta"`
}

type WPLMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

type WPLBody struct {
	Seq WPLSeq `xml:"seq"`
}

type WPLSeq struct {
	Media []WPLMedia `xml:"media"`
}

type WPLMedia struct {
	Src string `xml:"src,attr"`
}

// meta returns the content of the named meta element, or "" if absent.
func (h WPLHead) meta(name string) string {
	for _, m := range h.Meta {
		if strings.EqualFold(m.Name, name) {
			return m.Content
		}
	}
	return ""
}

// LoadWPL reads a Windows Media Player playlist and returns one media item
// per <media> entry, in document order.
func LoadWPL(wplPath string) ([]media.Item, error) {
	f, err := filesystem.OpenWithRetry(wplPath, filesystem.DefaultRetryConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}
	defer f.Close()

	return DecodeWPL(f)
}

// DecodeWPL parses WPL XML from r. Each entry is titled by its file name
// without extension; the playlist author, when present, becomes the artist.
func DecodeWPL(r io.Reader) ([]media.Item, error) {
	var wpl WPL
	if err := xml.NewDecoder(r).Decode(&wpl); err != nil {
		return nil, fmt.Errorf("failed to parse WPL: %w", err)
	}

	artist := wpl.Head.meta("Author")
	if artist == "" {
		artist = media.NoArtist
	}

	items := make([]media.Item, 0, len(wpl.Body.Seq.Media))
	for _, m := range wpl.Body.Seq.Media {
		// Handle Windows paths
		srcPath := strings.ReplaceAll(m.Src, "\\", "/")
		name := path.Base(srcPath)
		title := strings.TrimSuffix(name, path.Ext(name))
		if srcPath == "" || title == "" {
			title = media.NoTitle
		}

		items = append(items, media.NewMedia(title, artist, media.NoReleaseDate, srcPath))
	}

	return items, nil
}

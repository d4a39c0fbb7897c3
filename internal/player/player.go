package player

import (
	"fmt"
	"io"

	"media-playlist/internal/linkedlist"
	"media-playlist/internal/logging"
	"media-playlist/internal/media"
)

// Messages written when there is nothing to play.
const (
	EmptyCurrentMessage  = "The current media is empty."
	EmptyPlaylistMessage = "Playlist is empty."
)

// Player manages a playlist and a cursor on the item being played.
type Player struct {
	playlist *linkedlist.List
	current  *linkedlist.Node
}

// New returns a player with an empty playlist and no current item.
func New() *Player {
	return &Player{playlist: linkedlist.New()}
}

// Len returns the number of items in the playlist.
func (p *Player) Len() int {
	return p.playlist.Len()
}

// Items returns the playlist contents in order.
func (p *Player) Items() []media.Item {
	values := p.playlist.Values()
	items := make([]media.Item, len(values))
	for i, v := range values {
		items[i] = v.(media.Item)
	}
	return items
}

// CurrentIndex returns the position of the cursor node. It is false when
// there is no current item.
func (p *Player) CurrentIndex() (int, bool) {
	if p.current == nil {
		return 0, false
	}
	i := 0
	for n := p.playlist.FrontNode(); n != nil; n = n.Next() {
		if n == p.current {
			return i, true
		}
		i++
	}
	return 0, false
}

// AddMedia appends item to the playlist. The first item added becomes the
// current one.
func (p *Player) AddMedia(item media.Item) {
	p.playlist.Append(item)
	if p.current == nil {
		p.current = p.playlist.FrontNode()
	}

	if o := defaultObserver; o != nil {
		o.ObserveItemAdded(item.Kind)
		o.ObservePlaylistSize(p.playlist.Len())
	}
}

// InsertMedia inserts item so that it ends up at index, which may equal
// Len(). It reports false for any other out of range index.
func (p *Player) InsertMedia(index int, item media.Item) bool {
	if !p.playlist.AddAtIndex(index, item) {
		return false
	}
	if p.current == nil {
		p.current = p.playlist.FrontNode()
	}

	if o := defaultObserver; o != nil {
		o.ObserveItemAdded(item.Kind)
		o.ObservePlaylistSize(p.playlist.Len())
	}
	return true
}

// LoadItems appends items in order and moves the cursor to the first item.
func (p *Player) LoadItems(items []media.Item) {
	for _, item := range items {
		p.AddMedia(item)
	}
	if p.playlist.Len() > 0 {
		p.Reset()
	}
	logging.Debug("Playlist loaded: %d items added, %d total", len(items), p.playlist.Len())
}

// RemoveMedia removes the item at index. If that was the current item the
// cursor moves to the item after it, or to nothing if it was the last.
func (p *Player) RemoveMedia(index int) bool {
	if !p.playlist.DeleteAtIndex(index) {
		observeNavigation("remove", false)
		return false
	}

	// The removed node keeps its links, so a stale cursor still knows its
	// successor.
	if p.playlist.IsLinkBroken(p.current) {
		p.current = p.current.Next()
	}

	observeNavigation("remove", true)
	if o := defaultObserver; o != nil {
		o.ObservePlaylistSize(p.playlist.Len())
	}
	return true
}

// Next moves the cursor to the following item. It reports false, leaving the
// cursor in place, when there is no current item or it is the last one.
func (p *Player) Next() bool {
	ok := p.current != nil && p.current.Next() != nil
	if ok {
		p.current = p.current.Next()
	}
	observeNavigation("next", ok)
	return ok
}

// Prev moves the cursor to the preceding item. It reports false, leaving the
// cursor in place, when there is no current item or it is the first one.
func (p *Player) Prev() bool {
	ok := p.current != nil && p.current.Prev() != nil
	if ok {
		p.current = p.current.Prev()
	}
	observeNavigation("prev", ok)
	return ok
}

// Reset moves the cursor to the first item, if there is one.
func (p *Player) Reset() bool {
	front := p.playlist.FrontNode()
	if front != nil {
		p.current = front
	}
	observeNavigation("reset", front != nil)
	return front != nil
}

// Current returns the item under the cursor.
func (p *Player) Current() (media.Item, bool) {
	if p.current == nil {
		return media.Item{}, false
	}
	item, ok := p.current.Value().(media.Item)
	return item, ok
}

// Play writes the current item to w.
func (p *Player) Play(w io.Writer) error {
	item, ok := p.Current()
	if !ok {
		_, err := fmt.Fprintln(w, EmptyCurrentMessage)
		return err
	}
	_, err := fmt.Fprintln(w, item)
	return err
}

// PlayForward writes every item from first to last, one per line.
func (p *Player) PlayForward(w io.Writer) error {
	return p.playAll(w, true)
}

// PlayBackward writes every item from last to first, one per line.
func (p *Player) PlayBackward(w io.Writer) error {
	return p.playAll(w, false)
}

func (p *Player) playAll(w io.Writer, forward bool) error {
	if p.playlist.Len() == 0 {
		_, err := fmt.Fprintln(w, EmptyPlaylistMessage)
		return err
	}
	return p.playlist.Fprint(w, forward)
}

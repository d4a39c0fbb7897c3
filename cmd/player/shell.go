package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"media-playlist/internal/logging"
	"media-playlist/internal/media"
	"media-playlist/internal/player"
	"media-playlist/internal/queue"
	"media-playlist/internal/stack"
	"media-playlist/internal/startup"
)

const prompt = "> "

// removal remembers where an item was so undo can put it back.
type removal struct {
	index int
	item  media.Item
}

// shell executes player commands read one line at a time.
type shell struct {
	player  *player.Player
	out     io.Writer
	removed *stack.Stack
	upNext  *queue.Queue
}

func newShell(p *player.Player, out io.Writer) *shell {
	return &shell{
		player:  p,
		out:     out,
		removed: stack.New(),
		upNext:  queue.New(),
	}
}

// run reads and executes commands until quit, end of input, or ctx is done.
func (s *shell) run(ctx context.Context, readLine func() (string, error)) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		if quit := s.exec(line); quit {
			return nil
		}
	}
}

// exec runs one command line and reports whether the shell should exit.
func (s *shell) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		s.help()
	case "play":
		s.report("play", s.player.Play(s.out))
	case "next", "n":
		if s.player.Next() {
			s.report("play", s.player.Play(s.out))
		} else {
			fmt.Fprintln(s.out, "No next item.")
		}
	case "prev", "p":
		if s.player.Prev() {
			s.report("play", s.player.Play(s.out))
		} else {
			fmt.Fprintln(s.out, "No previous item.")
		}
	case "reset":
		if s.player.Reset() {
			s.report("play", s.player.Play(s.out))
		} else {
			fmt.Fprintln(s.out, player.EmptyPlaylistMessage)
		}
	case "forward":
		s.report("forward", s.player.PlayForward(s.out))
	case "backward":
		s.report("backward", s.player.PlayBackward(s.out))
	case "version":
		fmt.Fprintln(s.out, startup.GetBuildInfo())
	case "list", "ls":
		s.list()
	case "size":
		fmt.Fprintf(s.out, "%d items\n", s.player.Len())
	case "remove", "rm":
		s.remove(args)
	case "undo":
		s.undo()
	case "enqueue":
		s.enqueue(args)
	case "upnext":
		s.playUpNext()
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type help for a list)\n", sanitizeCommand(cmd))
	}
	return false
}

// report logs a failed write to the shell output.
func (s *shell) report(cmd string, err error) {
	if err != nil {
		logging.Warn("%s: failed to write output: %v", cmd, err)
	}
}

// parseIndex reads the single index argument of a command.
func (s *shell) parseIndex(cmd string, args []string) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "Usage: %s <index>\n", cmd)
		return 0, false
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid index: %s\n", sanitizeCommand(args[0]))
		return 0, false
	}
	return index, true
}

func (s *shell) list() {
	items := s.player.Items()
	if len(items) == 0 {
		fmt.Fprintln(s.out, player.EmptyPlaylistMessage)
		return
	}
	current, hasCurrent := s.player.CurrentIndex()
	for i, item := range items {
		marker := " "
		if hasCurrent && i == current {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %d: %s\n", marker, i, item)
	}
}

func (s *shell) remove(args []string) {
	index, ok := s.parseIndex("remove", args)
	if !ok {
		return
	}

	items := s.player.Items()
	if !s.player.RemoveMedia(index) {
		fmt.Fprintf(s.out, "Index out of range: %d\n", index)
		return
	}
	s.removed.Push(removal{index: index, item: items[index]})
	fmt.Fprintf(s.out, "Removed %s\n", items[index].Title)
}

func (s *shell) undo() {
	v, ok := s.removed.Pop()
	if !ok {
		fmt.Fprintln(s.out, "Nothing to undo.")
		return
	}
	r := v.(removal)
	if !s.player.InsertMedia(r.index, r.item) {
		// Later removals shrank the playlist past the old position.
		s.player.AddMedia(r.item)
	}
	fmt.Fprintf(s.out, "Restored %s\n", r.item.Title)
}

func (s *shell) enqueue(args []string) {
	index, ok := s.parseIndex("enqueue", args)
	if !ok {
		return
	}
	items := s.player.Items()
	if index < 0 || index >= len(items) {
		fmt.Fprintf(s.out, "Index out of range: %d\n", index)
		return
	}
	s.upNext.Enqueue(items[index])
	fmt.Fprintf(s.out, "Queued %s (%d up next)\n", items[index].Title, s.upNext.Len())
}

func (s *shell) playUpNext() {
	v, ok := s.upNext.Dequeue()
	if !ok {
		fmt.Fprintln(s.out, "Up next queue is empty.")
		return
	}
	fmt.Fprintln(s.out, v.(media.Item))
}

func (s *shell) help() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  play              - Play the current item")
	fmt.Fprintln(s.out, "  next, prev        - Move to and play the next or previous item")
	fmt.Fprintln(s.out, "  reset             - Return to and play the first item")
	fmt.Fprintln(s.out, "  forward, backward - Play the whole playlist in either direction")
	fmt.Fprintln(s.out, "  list              - Show the playlist, * marks the current item")
	fmt.Fprintln(s.out, "  size              - Show the number of items")
	fmt.Fprintln(s.out, "  remove <index>    - Remove an item")
	fmt.Fprintln(s.out, "  undo              - Restore the most recently removed item")
	fmt.Fprintln(s.out, "  enqueue <index>   - Add an item to the up next queue")
	fmt.Fprintln(s.out, "  upnext            - Play the oldest item in the up next queue")
	fmt.Fprintln(s.out, "  version           - Show build information")
	fmt.Fprintln(s.out, "  quit              - Exit")
}

// sanitizeCommand returns a safe representation of a command string for display.
// It uses an allowlist approach, replacing any character that is not alphanumeric,
// a hyphen, or an underscore with '_'.
func sanitizeCommand(cmd string) string {
	var b strings.Builder
	b.Grow(len(cmd))
	for _, r := range cmd {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"media-playlist/internal/catalog"
	"media-playlist/internal/filesystem"
	"media-playlist/internal/logging"
	"media-playlist/internal/media"
	"media-playlist/internal/metrics"
	"media-playlist/internal/player"
	"media-playlist/internal/playlist"
	"media-playlist/internal/startup"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help" || os.Args[1] == "help") {
		printUsage(os.Stdout)
		return
	}
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version" || os.Args[1] == "version") {
		fmt.Println(startup.GetBuildInfo())
		return
	}

	// Create a context that cancels on interrupt signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		cancel()
		// Stdin reads do not observe ctx.
		os.Stdin.Close()
	}()

	startup.LogBanner()

	metrics.InitializeMetrics()
	filesystem.SetObserver(metrics.NewFilesystemObserver())
	player.SetObserver(metrics.NewPlayerObserver())
	playlist.SetObserver(metrics.NewPlaylistObserver())

	cfg, err := startup.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	loadStart := time.Now()
	items, source, err := loadItems(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := player.New()
	p.LoadItems(items)
	startup.LogPlaylistLoaded(source, len(items), time.Since(loadStart))

	runErr := runInteractive(ctx, p)

	if cfg.MetricsDump {
		if err := metrics.WriteText(os.Stderr, prometheus.DefaultGatherer); err != nil {
			logging.Warn("Failed to write metrics: %v", err)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// loadItems reads the configured playlist file, or the catalog when no file
// was given. It returns the items and a description of where they came from.
func loadItems(ctx context.Context, cfg *startup.Config) ([]media.Item, string, error) {
	if !cfg.UseCatalog() {
		items, err := playlist.Load(cfg.PlaylistFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load playlist: %w", err)
		}
		return items, cfg.PlaylistFile, nil
	}

	items, name, err := loadCatalog(ctx, cfg.CatalogDB, cfg.CatalogPlaylist)
	metrics.RecordLoad("catalog", len(items), err)
	if err != nil {
		return nil, "", err
	}
	return items, fmt.Sprintf("catalog playlist %q", name), nil
}

// loadCatalog opens the catalog and reads one playlist. An empty name selects
// the first playlist by name.
func loadCatalog(ctx context.Context, dbPath, name string) ([]media.Item, string, error) {
	c, err := catalog.Open(ctx, dbPath)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if err := c.Close(); err != nil {
			logging.Warn("failed to close catalog: %v", err)
		}
	}()

	if name == "" {
		names, err := c.Playlists(ctx)
		if err != nil {
			return nil, "", err
		}
		if len(names) == 0 {
			return nil, "", errors.New("catalog contains no playlists")
		}
		name = names[0]
		logging.Info("No CATALOG_PLAYLIST set, using %q", name)
	}

	items, err := c.Items(ctx, name)
	if err != nil {
		return nil, "", err
	}
	return items, name, nil
}

// runInteractive drives the shell from stdin. A terminal gets line editing
// through x/term; anything else is read line by line.
func runInteractive(ctx context.Context, p *player.Player) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		scanner := bufio.NewScanner(os.Stdin)
		readLine := func() (string, error) {
			if scanner.Scan() {
				return scanner.Text(), nil
			}
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return newShell(p, os.Stdout).run(ctx, readLine)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, oldState); err != nil {
			logging.Warn("failed to restore terminal: %v", err)
		}
	}()

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, prompt)

	s := newShell(p, t)
	s.help()
	return s.run(ctx, t.ReadLine)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Media Playlist Player")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage: player [playlist-file]")
	fmt.Fprintln(w, "       player --version")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Playlist files: .json (iTunes Search API results) or .wpl (Windows Media Player)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PLAYLIST_FILE     - Playlist file, overridden by the argument")
	fmt.Fprintln(w, "  CATALOG_DB        - SQLite catalog used when no playlist file is given")
	fmt.Fprintln(w, "  CATALOG_PLAYLIST  - Catalog playlist name (default: first by name)")
	fmt.Fprintln(w, "  METRICS_DUMP      - Write metrics to stderr on exit (default: false)")
	fmt.Fprintln(w, "  LOG_LEVEL         - debug, info, warn, error (default: info)")
}

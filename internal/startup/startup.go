package startup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"media-playlist/internal/filesystem"
	"media-playlist/internal/logging"
	"media-playlist/internal/playlist"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// ErrNoSource is returned when neither a playlist file nor a catalog is configured.
var ErrNoSource = errors.New("no playlist source configured (pass a file or set PLAYLIST_FILE or CATALOG_DB)")

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// String formats the build information as a single line.
func (b BuildInfo) String() string {
	return fmt.Sprintf("media-playlist %s (commit %s, built %s, %s %s/%s)",
		b.Version, b.Commit, b.BuildTime, b.GoVersion, b.OS, b.Arch)
}

// Config holds all player configuration
type Config struct {
	PlaylistFile    string
	CatalogDB       string
	CatalogPlaylist string
	MetricsDump     bool
}

// UseCatalog reports whether items come from the SQLite catalog rather than
// a playlist file.
func (c *Config) UseCatalog() bool {
	return c.PlaylistFile == "" && c.CatalogDB != ""
}

// LoadConfig reads configuration from environment variables. A non-empty
// first argument overrides PLAYLIST_FILE.
func LoadConfig(args []string) (*Config, error) {
	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	playlistFile := getEnv("PLAYLIST_FILE", "")
	if len(args) > 0 && args[0] != "" {
		playlistFile = args[0]
	}
	catalogDB := getEnv("CATALOG_DB", "")
	catalogPlaylist := getEnv("CATALOG_PLAYLIST", "")
	metricsDump := getEnvBool("METRICS_DUMP", false)

	logging.Info("  PLAYLIST_FILE:     %s", playlistFile)
	logging.Info("  CATALOG_DB:        %s", catalogDB)
	logging.Info("  CATALOG_PLAYLIST:  %s", catalogPlaylist)
	logging.Info("  METRICS_DUMP:      %v", metricsDump)
	logging.Info("  LOG_LEVEL:         %s", logging.GetLevel())

	config := &Config{
		CatalogPlaylist: catalogPlaylist,
		MetricsDump:     metricsDump,
	}

	switch {
	case playlistFile != "":
		path, err := checkFile(playlistFile, "playlist")
		if err != nil {
			return nil, err
		}
		if playlist.Format(path) == "" {
			return nil, fmt.Errorf("%w: %s", playlist.ErrUnknownFormat, filepath.Ext(path))
		}
		config.PlaylistFile = path
		logging.Info("  Source: %s playlist %s", playlist.Format(path), path)
	case catalogDB != "":
		path, err := checkFile(catalogDB, "catalog")
		if err != nil {
			return nil, err
		}
		config.CatalogDB = path
		logging.Info("  Source: catalog %s", path)
	default:
		return nil, ErrNoSource
	}

	return config, nil
}

// checkFile resolves path to an absolute path and verifies it is a regular file.
func checkFile(path, name string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s path: %w", name, err)
	}

	info, err := filesystem.StatWithRetry(abs, filesystem.DefaultRetryConfig())
	if err != nil {
		return "", fmt.Errorf("%s file error: %w", name, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s path %s is a directory", name, abs)
	}
	return abs, nil
}

// LogPlaylistLoaded logs how many items were loaded and how long it took
func LogPlaylistLoaded(source string, items int, duration time.Duration) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("PLAYLIST")
	logging.Info("------------------------------------------------------------")
	logging.Info("  [OK] Loaded %d items from %s in %v", items, source, duration)
}

// LogBanner logs version information
func LogBanner() {
	logging.Info("------------------------------------------------------------")
	logging.Info("  media-playlist %s (%s)", Version, Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Go version: %s %s/%s", GoVersion, runtime.GOOS, runtime.GOARCH)
	logging.Info("------------------------------------------------------------")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

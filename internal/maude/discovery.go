package maude

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/exmaude/maude-sdk-go/internal/errors"
)

// VersionCheckTimeout is the timeout for the binary version probe.
const VersionCheckTimeout = 2 * time.Second

// Config holds configuration for binary discovery.
type Config struct {
	// MaudePath is an explicit binary path that skips PATH search.
	// If empty, discovery will search PATH and common locations.
	MaudePath string

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates the Maude binary.
type Discoverer interface {
	// Discover locates the Maude binary.
	// Returns the path to the binary or a MaudeNotFoundError.
	Discover(ctx context.Context) (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new binary discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the Maude binary.
func (d *discoverer) Discover(ctx context.Context) (string, error) {
	d.log.Debug("Discovering Maude binary")

	maudePath, err := d.findBinary()
	if err != nil {
		d.log.Error("Failed to find Maude binary", "error", err)

		return "", err
	}

	d.log.Debug("Found Maude binary", "maude_path", maudePath)

	d.probeVersion(ctx, maudePath)

	return maudePath, nil
}

// findBinary locates the Maude binary.
func (d *discoverer) findBinary() (string, error) {
	// If explicit path provided, use it and only it
	if d.cfg.MaudePath != "" {
		d.log.Debug("Using explicit Maude path", "maude_path", d.cfg.MaudePath)

		if _, err := os.Stat(d.cfg.MaudePath); err == nil {
			return d.cfg.MaudePath, nil
		}

		d.log.Debug("Explicit Maude path not found", "maude_path", d.cfg.MaudePath)

		return "", &errors.MaudeNotFoundError{SearchedPaths: []string{d.cfg.MaudePath}}
	}

	searchedPaths := make([]string, 0, 4)

	// Search in PATH
	d.log.Debug("Searching for 'maude' in PATH")

	if path, err := exec.LookPath("maude"); err == nil {
		d.log.Debug("Found 'maude' in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	// Check common locations
	commonPaths := []string{
		"/usr/local/bin/maude",
		"/usr/bin/maude",
		"/opt/maude/maude",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		commonPaths = append(commonPaths, filepath.Join(homeDir, ".local/bin/maude"))
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)
		d.log.Debug("Checking common path", "path", path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found Maude at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("Maude binary not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.MaudeNotFoundError{SearchedPaths: searchedPaths}
}

// probeVersion logs the interpreter version. Errors are silently ignored:
// the probe exists only to make session logs diagnosable.
func (d *discoverer) probeVersion(ctx context.Context, maudePath string) {
	ctx, cancel := context.WithTimeout(ctx, VersionCheckTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, maudePath, "--version")

	output, err := cmd.Output()
	if err != nil {
		d.log.Debug("Maude version probe failed", "error", err)

		return
	}

	d.log.Debug("Maude version", "version", strings.TrimSpace(string(output)))
}

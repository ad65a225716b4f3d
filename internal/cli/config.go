package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/huecard/internal/match"
	"github.com/jmylchreest/huecard/internal/palette"
)

// Environment variables honoured alongside the global flags. Flags
// win; a .env file in the working directory is loaded by main.
const (
	envPalette     = "HUECARD_PALETTE"
	envDatabaseURL = "HUECARD_DATABASE_URL"
	envRenderer    = "HUECARD_RENDERER"
)

// loadPalette resolves the palette index from, in order: the --palette
// flag, HUECARD_PALETTE, the --database-url flag, HUECARD_DATABASE_URL,
// and finally the embedded stock catalogue.
func loadPalette() (*palette.Index, error) {
	path := globalPalettePath
	if path == "" {
		path = os.Getenv(envPalette)
	}
	if path != "" {
		idx, err := palette.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load palette %q: %w", path, err)
		}
		verbosef("✓ Palette: %s (%d entries)\n", path, idx.Len())
		return idx, nil
	}

	connStr := globalDatabaseURL
	if connStr == "" {
		connStr = os.Getenv(envDatabaseURL)
	}
	if connStr != "" {
		idx, err := palette.LoadPostgres(connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to load palette from database: %w", err)
		}
		verbosef("✓ Palette: postgres (%d entries)\n", idx.Len())
		return idx, nil
	}

	idx, err := palette.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded palette: %w", err)
	}
	verbosef("✓ Palette: embedded (%d entries)\n", idx.Len())
	return idx, nil
}

// newFinder loads the palette and wraps it in a nearest-match finder.
func newFinder() (*match.Finder, error) {
	idx, err := loadPalette()
	if err != nil {
		return nil, err
	}
	return match.NewFinder(idx), nil
}

// rendererPath resolves the external renderer binary, empty when the
// built-in SVG encoder should be used.
func rendererPath() string {
	if globalRenderer != "" {
		return globalRenderer
	}
	return os.Getenv(envRenderer)
}

// verbosef writes progress output to stderr when --verbose is set.
func verbosef(format string, args ...any) {
	if globalVerbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/jmylchreest/huecard/internal/colour"
	"github.com/jmylchreest/huecard/internal/match"
	"github.com/jmylchreest/huecard/internal/palette"
)

// parseColourArg turns a user-supplied colour into an RGB value. It
// accepts hex ("#E7A8A5", "E7A8A5") and SVG 1.1 colour names
// ("cornflowerblue", "Tomato").
func parseColourArg(arg string) (colour.RGB, error) {
	c, err := colour.ParseHex(arg)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, colour.ErrInvalidFormat) {
		return colour.RGB{}, err
	}

	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(arg))]; ok {
		return colour.RGB{R: named.R, G: named.G, B: named.B}, nil
	}

	return colour.RGB{}, fmt.Errorf("%w: %q is neither a hex colour nor a colour name", colour.ErrInvalidFormat, arg)
}

// resolveEntry finds the palette entry a user means. Accepted forms,
// in resolution order:
//
//	42          numeric palette id
//	ext:7       external catalogue id
//	Rose Pink   dye name, case-insensitive
//	#E7A8A5     hex or SVG colour name, snapped to the nearest dye
func resolveEntry(f *match.Finder, arg string) (palette.Entry, error) {
	idx := f.Index()
	trimmed := strings.TrimSpace(arg)

	if id, err := strconv.Atoi(trimmed); err == nil {
		if e, ok := idx.ByID(id); ok {
			return e, nil
		}
		return palette.Entry{}, fmt.Errorf("no palette entry with id %d", id)
	}

	if ext, ok := strings.CutPrefix(trimmed, "ext:"); ok {
		id, err := strconv.Atoi(ext)
		if err != nil {
			return palette.Entry{}, fmt.Errorf("invalid external id %q", ext)
		}
		if e, ok := idx.ByExternalID(id); ok {
			return e, nil
		}
		return palette.Entry{}, fmt.Errorf("no palette entry with external id %d", id)
	}

	for _, e := range idx.Entries() {
		if strings.EqualFold(e.Name, trimmed) {
			return e, nil
		}
	}

	rgb, err := parseColourArg(trimmed)
	if err != nil {
		return palette.Entry{}, fmt.Errorf("unknown dye %q (not an id, name or colour)", arg)
	}
	result, ok, err := f.Closest(rgb.CanonicalHex())
	if err != nil {
		return palette.Entry{}, err
	}
	if !ok {
		return palette.Entry{}, fmt.Errorf("palette is empty, cannot resolve %q", arg)
	}
	if result.Distance > 0 {
		verbosef("  └─ %q snapped to nearest dye %s (ΔE %.2f)\n", arg, result.Entry.Name, result.Distance)
	}
	return result.Entry, nil
}

// resolveEntries maps each argument through resolveEntry, enforcing
// the per-card entry cap.
func resolveEntries(f *match.Finder, args []string, max int) ([]palette.Entry, error) {
	if len(args) > max {
		return nil, fmt.Errorf("at most %d dyes per card, got %d", max, len(args))
	}
	entries := make([]palette.Entry, 0, len(args))
	for _, arg := range args {
		e, err := resolveEntry(f, arg)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

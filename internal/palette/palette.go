// Package palette defines the immutable colour palette the matching,
// harmony and layout engines run against, plus the sources that load
// it (embedded dataset, JSON/YAML files, PostgreSQL).
package palette

import (
	"fmt"
	"sort"

	"github.com/jmylchreest/huecard/internal/colour"
)

// Entry is a single named palette colour.
type Entry struct {
	// ID is the stable internal identifier used for exclusion sets.
	ID int `json:"id" yaml:"id"`
	// ExternalID is the identifier the colour is known by in the
	// upstream catalogue; auxiliary datasets reference it.
	ExternalID int `json:"externalId" yaml:"externalId"`
	// Name is the display name, e.g. "Rose Pink".
	Name string `json:"name" yaml:"name"`
	// Category is a coarse colour family, e.g. "red" or "neutral".
	Category string `json:"category" yaml:"category"`
	// HexColor holds the canonical "#RRGGBB" form after loading.
	// Source files may omit the '#' and use any case.
	HexColor string `json:"hexColor" yaml:"hexColor"`
}

// RGB returns the entry's colour. Entries held by an Index always
// carry a valid canonical hex value.
func (e Entry) RGB() colour.RGB {
	c, _ := colour.ParseHex(e.HexColor)
	return c
}

// Index is an immutable, validated palette with identifier lookups.
type Index struct {
	entries []Entry
	byID    map[int]int
	byExt   map[int]int
}

// New validates and indexes a set of palette entries. Hex values are
// normalised to canonical form; duplicate internal or external
// identifiers are rejected.
func New(entries []Entry) (*Index, error) {
	idx := &Index{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[int]int, len(entries)),
		byExt:   make(map[int]int, len(entries)),
	}
	for i, e := range entries {
		norm, err := colour.Normalize(e.HexColor)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", e.ID, e.Name, err)
		}
		e.HexColor = norm
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: name must not be empty", e.ID)
		}
		if prev, dup := idx.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate palette id %d (%q and %q)", e.ID, idx.entries[prev].Name, e.Name)
		}
		if prev, dup := idx.byExt[e.ExternalID]; dup {
			return nil, fmt.Errorf("duplicate external id %d (%q and %q)", e.ExternalID, idx.entries[prev].Name, e.Name)
		}
		idx.byID[e.ID] = i
		idx.byExt[e.ExternalID] = i
		idx.entries = append(idx.entries, e)
	}
	return idx, nil
}

// Len returns the number of entries in the palette.
func (x *Index) Len() int {
	return len(x.entries)
}

// Get returns the entry at the specified position.
// Returns an error if the position is out of bounds.
func (x *Index) Get(pos int) (Entry, error) {
	if pos < 0 || pos >= len(x.entries) {
		return Entry{}, fmt.Errorf("position out of bounds: %d (palette has %d entries)", pos, len(x.entries))
	}
	return x.entries[pos], nil
}

// All returns an iterator over all entries in load order using Go 1.25
// range over functions.
func (x *Index) All() func(func(int, Entry) bool) {
	return func(yield func(int, Entry) bool) {
		for i, e := range x.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Entries returns a copy of the palette in load order.
func (x *Index) Entries() []Entry {
	out := make([]Entry, len(x.entries))
	copy(out, x.entries)
	return out
}

// ByID returns the entry with the given internal identifier.
func (x *Index) ByID(id int) (Entry, bool) {
	i, ok := x.byID[id]
	if !ok {
		return Entry{}, false
	}
	return x.entries[i], true
}

// ByExternalID returns the entry with the given upstream identifier.
func (x *Index) ByExternalID(id int) (Entry, bool) {
	i, ok := x.byExt[id]
	if !ok {
		return Entry{}, false
	}
	return x.entries[i], true
}

// Categories returns the distinct entry categories, sorted.
func (x *Index) Categories() []string {
	seen := make(map[string]bool)
	for _, e := range x.entries {
		seen[e.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

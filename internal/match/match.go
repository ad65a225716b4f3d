// Package match implements nearest-neighbour colour search over the
// palette under the perceptual CIE Lab metric.
package match

import (
	"sort"

	"github.com/jmylchreest/huecard/internal/colour"
	"github.com/jmylchreest/huecard/internal/palette"
)

// DefaultLimit is the number of matches returned when no limit is
// requested.
const DefaultLimit = 5

// Result pairs a palette entry with its perceptual distance from the
// query colour.
type Result struct {
	Entry    palette.Entry `json:"entry"`
	Distance float64       `json:"distance"`
}

// Options narrow a search.
type Options struct {
	// Limit caps the number of results. Zero falls back to
	// DefaultLimit; negative values are clamped to 1.
	Limit int
	// Exclude lists palette entry IDs to omit from the results.
	Exclude map[int]bool
}

// Finder answers nearest-match queries. The Lab representation of
// every palette entry is computed once at construction.
type Finder struct {
	index *palette.Index
	labs  []colour.Lab
}

// NewFinder builds a Finder over idx.
func NewFinder(idx *palette.Index) *Finder {
	labs := make([]colour.Lab, idx.Len())
	// Invokes the iterator directly: range-over-func needs Go >= 1.23.
	idx.All()(func(i int, e palette.Entry) bool {
		labs[i] = e.RGB().Lab()
		return true
	})
	return &Finder{index: idx, labs: labs}
}

// Index returns the palette the finder searches.
func (f *Finder) Index() *palette.Index {
	return f.index
}

// FindClosest returns the palette entries nearest to targetHex,
// ascending by distance; equal distances keep palette load order. A
// malformed target fails with colour.ErrInvalidFormat. Searching an
// empty palette (or excluding everything) yields an empty, non-nil
// slice.
func (f *Finder) FindClosest(targetHex string, opts Options) ([]Result, error) {
	target, err := colour.ParseHex(targetHex)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	}

	targetLab := target.Lab()
	results := make([]Result, 0, f.index.Len())
	// Invokes the iterator directly: range-over-func needs Go >= 1.23.
	f.index.All()(func(i int, e palette.Entry) bool {
		if opts.Exclude[e.ID] {
			return true
		}
		results = append(results, Result{Entry: e, Distance: colour.DeltaE(targetLab, f.labs[i])})
		return true
	})

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Closest returns the single nearest entry, when the palette has one.
func (f *Finder) Closest(targetHex string) (Result, bool, error) {
	results, err := f.FindClosest(targetHex, Options{Limit: 1})
	if err != nil {
		return Result{}, false, err
	}
	if len(results) == 0 {
		return Result{}, false, nil
	}
	return results[0], true, nil
}

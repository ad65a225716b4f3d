// Package charsheet resolves which character-creation colour sheet a
// hex value appears on (skin, hair or eye charts per race and gender)
// and where it sits on the fixed 8-column sheet grid.
package charsheet

import (
	"context"
	"fmt"

	"github.com/jmylchreest/huecard/internal/colour"
)

// GridColumns is the fixed sheet width used to derive cell positions.
const GridColumns = 8

// Sheet is one character-creation colour chart.
type Sheet struct {
	// Kind is the chart category: "skin", "hair" or "eyes".
	Kind   string   `json:"kind" yaml:"kind"`
	Race   string   `json:"race" yaml:"race"`
	Gender string   `json:"gender" yaml:"gender"`
	Colors []string `json:"colors" yaml:"colors"`
}

// Placement reports where a colour sits on a sheet. Row and Col are
// 1-based grid coordinates derived from Index.
type Placement struct {
	Kind   string `json:"kind"`
	Race   string `json:"race"`
	Gender string `json:"gender"`
	Index  int    `json:"index"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// GridPosition converts a 0-based sheet index into its 1-based grid
// cell on the 8-column layout.
func GridPosition(index int) (row, col int) {
	return index/GridColumns + 1, index%GridColumns + 1
}

// Filter narrows a lookup. Empty fields match any sheet.
type Filter struct {
	Kind   string
	Race   string
	Gender string
}

func (f Filter) matches(s Sheet) bool {
	if f.Kind != "" && f.Kind != s.Kind {
		return false
	}
	if f.Race != "" && f.Race != s.Race {
		return false
	}
	if f.Gender != "" && f.Gender != s.Gender {
		return false
	}
	return true
}

// Source resolves a hex value to its sheet placement. Implementations
// may be remote; lookups must honour ctx.
type Source interface {
	Lookup(ctx context.Context, hex string, f Filter) (Placement, bool, error)
}

// Library answers placements from in-memory sheets. A reverse index
// from hex to placements is built once at construction, so lookups are
// a single map probe regardless of sheet count.
type Library struct {
	sheets  []Sheet
	reverse map[string][]Placement
}

var _ Source = (*Library)(nil)

// NewLibrary validates sheets and builds the reverse index. Sheet
// colours are normalised to canonical hex form.
func NewLibrary(sheets []Sheet) (*Library, error) {
	lib := &Library{
		sheets:  make([]Sheet, 0, len(sheets)),
		reverse: make(map[string][]Placement),
	}
	for si, s := range sheets {
		if s.Kind == "" {
			return nil, fmt.Errorf("sheet %d: kind must not be empty", si)
		}
		norm := make([]string, len(s.Colors))
		for i, raw := range s.Colors {
			hex, err := colour.Normalize(raw)
			if err != nil {
				return nil, fmt.Errorf("sheet %d (%s/%s/%s) colour %d: %w", si, s.Kind, s.Race, s.Gender, i, err)
			}
			norm[i] = hex
			row, col := GridPosition(i)
			lib.reverse[hex] = append(lib.reverse[hex], Placement{
				Kind:   s.Kind,
				Race:   s.Race,
				Gender: s.Gender,
				Index:  i,
				Row:    row,
				Col:    col,
			})
		}
		s.Colors = norm
		lib.sheets = append(lib.sheets, s)
	}
	return lib, nil
}

// Sheets returns a copy of the loaded sheets.
func (l *Library) Sheets() []Sheet {
	out := make([]Sheet, len(l.sheets))
	copy(out, l.sheets)
	return out
}

// Lookup returns the first placement of hex that passes the filter,
// in sheet load order. A colour missing from every sheet is not an
// error; the second return is false.
func (l *Library) Lookup(_ context.Context, hex string, f Filter) (Placement, bool, error) {
	key, err := colour.Normalize(hex)
	if err != nil {
		return Placement{}, false, err
	}
	for _, p := range l.reverse[key] {
		if f.matches(Sheet{Kind: p.Kind, Race: p.Race, Gender: p.Gender}) {
			return p, true, nil
		}
	}
	return Placement{}, false, nil
}

// ResolveAny queries all sources concurrently and returns the first
// placement any of them finds, cancelling the rest. When no source
// matches, the first lookup error (if any) is reported so callers can
// distinguish "not on any sheet" from "a source failed".
func ResolveAny(ctx context.Context, sources []Source, hex string, f Filter) (Placement, bool, error) {
	if len(sources) == 0 {
		return Placement{}, false, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type answer struct {
		placement Placement
		ok        bool
		err       error
	}
	answers := make(chan answer, len(sources))
	for _, src := range sources {
		src := src // per-iteration copy; required for correctness before Go 1.22 loop semantics
		go func() {
			p, ok, err := src.Lookup(ctx, hex, f)
			answers <- answer{placement: p, ok: ok, err: err}
		}()
	}

	var firstErr error
	for range sources {
		select {
		case a := <-answers:
			if a.ok {
				return a.placement, true, nil
			}
			if a.err != nil && firstErr == nil {
				firstErr = a.err
			}
		case <-ctx.Done():
			return Placement{}, false, ctx.Err()
		}
	}
	return Placement{}, false, firstErr
}

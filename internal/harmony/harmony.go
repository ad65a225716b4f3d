// Package harmony generates colour-scheme companions for a palette
// entry by rotating its Lab hue angle and electing the palette entry
// closest to each target hue.
package harmony

import (
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/huecard/internal/colour"
	"github.com/jmylchreest/huecard/internal/match"
	"github.com/jmylchreest/huecard/internal/palette"
)

// Scheme identifies a harmony generation rule.
type Scheme string

const (
	Complementary      Scheme = "complementary"
	Analogous          Scheme = "analogous"
	Triadic            Scheme = "triadic"
	SplitComplementary Scheme = "split-complementary"
	Tetradic           Scheme = "tetradic"
	Square             Scheme = "square"
	Monochromatic      Scheme = "monochromatic"
	Compound           Scheme = "compound"
	Shades             Scheme = "shades"
)

// allSchemes lists the schemes in display order.
var allSchemes = []Scheme{
	Complementary,
	Analogous,
	Triadic,
	SplitComplementary,
	Tetradic,
	Square,
	Monochromatic,
	Compound,
	Shades,
}

// hueOffsets maps each hue-rotating scheme to its angular offsets in
// degrees. Monochromatic and shades are deliberately absent: they
// bypass hue rotation and use nearest-match lookups instead.
var hueOffsets = map[Scheme][]float64{
	Complementary:      {180},
	Analogous:          {-30, 30},
	Triadic:            {120, -120},
	SplitComplementary: {150, -150},
	Tetradic:           {60, 180, 240},
	Square:             {90, 180, 270},
	Compound:           {30, 150, -150, -30},
}

// Schemes returns the valid scheme names in display order.
func Schemes() []string {
	names := make([]string, len(allSchemes))
	for i, s := range allSchemes {
		names[i] = string(s)
	}
	return names
}

// ParseScheme validates a scheme name. Matching is case-insensitive.
func ParseScheme(s string) (Scheme, error) {
	in := Scheme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allSchemes {
		if in == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown harmony scheme %q (valid: %s)", s, strings.Join(Schemes(), ", "))
}

// Generator produces harmony companions from a palette.
type Generator struct {
	index  *palette.Index
	finder *match.Finder
}

// NewGenerator builds a Generator sharing the finder's palette.
func NewGenerator(f *match.Finder) *Generator {
	return &Generator{index: f.Index(), finder: f}
}

// Generate returns companion matches for base under scheme, one per
// hue offset in offset order, each carrying the perceptual distance
// from the base colour (not the hue difference). Monochromatic and
// shades instead return the four nearest palette neighbours of the
// base colour, base excluded. Schemes without an offset table fall
// back to complementary. The result is shorter than the offset list
// when the palette runs out of candidates.
func (g *Generator) Generate(base palette.Entry, scheme Scheme) ([]match.Result, error) {
	if scheme == Monochromatic || scheme == Shades {
		return g.finder.FindClosest(base.HexColor, match.Options{
			Limit:   4,
			Exclude: map[int]bool{base.ID: true},
		})
	}

	baseRGB, err := colour.ParseHex(base.HexColor)
	if err != nil {
		return nil, err
	}
	baseLab := baseRGB.Lab()
	baseHue := baseLab.HueAngle()

	offsets, ok := hueOffsets[scheme]
	if !ok {
		offsets = hueOffsets[Complementary]
	}

	type candidate struct {
		entry palette.Entry
		lab   colour.Lab
		hue   float64
	}
	cands := make([]candidate, 0, g.index.Len())
	// Invokes the iterator directly: range-over-func needs Go >= 1.23.
	g.index.All()(func(_ int, e palette.Entry) bool {
		if e.ID == base.ID {
			return true
		}
		lab := e.RGB().Lab()
		cands = append(cands, candidate{entry: e, lab: lab, hue: lab.HueAngle()})
		return true
	})

	taken := make(map[int]bool, len(offsets))
	results := make([]match.Result, 0, len(offsets))
	for _, offset := range offsets {
		target := colour.NormalizeHue(baseHue + offset)
		best := -1
		bestDiff := math.MaxFloat64
		for i, c := range cands {
			if taken[c.entry.ID] {
				continue
			}
			// Strict less-than keeps the first-encountered entry on ties.
			if d := colour.HueDistance(c.hue, target); d < bestDiff {
				bestDiff = d
				best = i
			}
		}
		if best < 0 {
			break
		}
		chosen := cands[best]
		taken[chosen.entry.ID] = true
		results = append(results, match.Result{
			Entry:    chosen.entry,
			Distance: colour.DeltaE(baseLab, chosen.lab),
		})
	}
	return results, nil
}

// Package blend mixes palette colours and expands gradients, resolving
// every produced colour to its nearest palette match.
package blend

import (
	"github.com/jmylchreest/huecard/internal/colour"
	"github.com/jmylchreest/huecard/internal/match"
)

// Step is one produced colour together with its nearest palette match.
// Match is nil when the palette has no entries.
type Step struct {
	Hex   string        `json:"hex"`
	Match *match.Result `json:"match,omitempty"`
}

// Engine resolves blend results against a palette.
type Engine struct {
	finder *match.Finder
}

// NewEngine builds an Engine over the finder's palette.
func NewEngine(f *match.Finder) *Engine {
	return &Engine{finder: f}
}

// Mix2 blends two hex colours; ratio is the percentage weight of hexA
// and is clamped to [0, 100].
func (e *Engine) Mix2(hexA, hexB string, ratio int) (Step, error) {
	a, err := colour.ParseHex(hexA)
	if err != nil {
		return Step{}, err
	}
	b, err := colour.ParseHex(hexB)
	if err != nil {
		return Step{}, err
	}
	return e.resolve(colour.Mix2(a, b, ratio)), nil
}

// Mix3 blends three hex colours with equal weight.
func (e *Engine) Mix3(hexA, hexB, hexC string) (Step, error) {
	a, err := colour.ParseHex(hexA)
	if err != nil {
		return Step{}, err
	}
	b, err := colour.ParseHex(hexB)
	if err != nil {
		return Step{}, err
	}
	c, err := colour.ParseHex(hexC)
	if err != nil {
		return Step{}, err
	}
	return e.resolve(colour.Mix3(a, b, c)), nil
}

// Gradient returns stepCount colours evenly interpolated from startHex
// to endHex inclusive, each resolved to its nearest palette match.
// Counts below 2 are treated as 2. The first and last steps equal the
// endpoints exactly.
func (e *Engine) Gradient(startHex, endHex string, stepCount int) ([]Step, error) {
	start, err := colour.ParseHex(startHex)
	if err != nil {
		return nil, err
	}
	end, err := colour.ParseHex(endHex)
	if err != nil {
		return nil, err
	}
	colours := colour.GradientSteps(start, end, stepCount)
	steps := make([]Step, len(colours))
	for i, c := range colours {
		steps[i] = e.resolve(c)
	}
	return steps, nil
}

// resolve attaches the nearest palette match to a computed colour. The
// computed hex is always well-formed, so the lookup cannot fail.
func (e *Engine) resolve(c colour.RGB) Step {
	step := Step{Hex: c.CanonicalHex()}
	if r, ok, _ := e.finder.Closest(step.Hex); ok {
		step.Match = &r
	}
	return step
}

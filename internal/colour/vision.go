package colour

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Deficiency identifies a colour-vision deficiency to simulate.
type Deficiency string

const (
	// DeficiencyNone leaves colours untouched.
	DeficiencyNone Deficiency = "none"
	// Protanopia simulates missing long-wavelength (red) cones.
	Protanopia Deficiency = "protanopia"
	// Deuteranopia simulates missing medium-wavelength (green) cones.
	Deuteranopia Deficiency = "deuteranopia"
	// Tritanopia simulates missing short-wavelength (blue) cones.
	Tritanopia Deficiency = "tritanopia"
	// Achromatopsia simulates total colour blindness via the standard
	// 0.299/0.587/0.114 luma weights.
	Achromatopsia Deficiency = "achromatopsia"
)

// visionMatrices holds the Viénot/Brettel-derived linear RGB
// transforms for each deficiency. They are applied to 0..255 channel
// values directly and are part of the rendered-output contract: do not
// tune them.
var visionMatrices = map[Deficiency]*mat.Dense{
	Protanopia: mat.NewDense(3, 3, []float64{
		0.567, 0.433, 0,
		0.558, 0.442, 0,
		0, 0.242, 0.758,
	}),
	Deuteranopia: mat.NewDense(3, 3, []float64{
		0.625, 0.375, 0,
		0.7, 0.3, 0,
		0, 0.3, 0.7,
	}),
	Tritanopia: mat.NewDense(3, 3, []float64{
		0.95, 0.05, 0,
		0, 0.433, 0.567,
		0, 0.475, 0.525,
	}),
	Achromatopsia: mat.NewDense(3, 3, []float64{
		0.299, 0.587, 0.114,
		0.299, 0.587, 0.114,
		0.299, 0.587, 0.114,
	}),
}

// Deficiencies returns the supported deficiency names, sorted, with
// "none" excluded.
func Deficiencies() []string {
	names := make([]string, 0, len(visionMatrices))
	for d := range visionMatrices {
		names = append(names, string(d))
	}
	sort.Strings(names)
	return names
}

// ParseDeficiency validates a deficiency name. Matching is
// case-insensitive; the empty string means DeficiencyNone.
func ParseDeficiency(s string) (Deficiency, error) {
	d := Deficiency(strings.ToLower(strings.TrimSpace(s)))
	if d == "" || d == DeficiencyNone {
		return DeficiencyNone, nil
	}
	if _, ok := visionMatrices[d]; !ok {
		return "", fmt.Errorf("unknown vision deficiency %q (valid: %s)", s, strings.Join(Deficiencies(), ", "))
	}
	return d, nil
}

// Simulate returns the colour as perceived with the given deficiency.
// Unrecognised deficiencies are treated as DeficiencyNone and returned
// unchanged.
func Simulate(c RGB, d Deficiency) RGB {
	m, ok := visionMatrices[d]
	if !ok {
		return c
	}
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{float64(c.R), float64(c.G), float64(c.B)}))
	return FromFloats(out.AtVec(0), out.AtVec(1), out.AtVec(2))
}

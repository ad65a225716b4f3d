package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Lab represents a colour in CIE L*a*b* space under the D65 reference
// white, on the classical scale where L* runs 0..100.
type Lab struct {
	L float64
	A float64
	B float64
}

// Lab converts the colour to CIE L*a*b*.
func (c RGB) Lab() Lab {
	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	l, a, b := cf.Lab()
	// go-colorful keeps Lab components on a 0..1 scale; expand to the
	// conventional 0..100 scale so delta-E values match the published
	// just-noticeable-difference thresholds.
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// DeltaE returns the Euclidean distance between two Lab colours
// (CIE76). Smaller is more similar; values under ~2.3 are generally
// indistinguishable to the eye.
func DeltaE(x, y Lab) float64 {
	dl := x.L - y.L
	da := x.A - y.A
	db := x.B - y.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Distance returns the perceptual distance between two hex colours.
// It is symmetric and zero exactly when both strings normalize to the
// same colour.
func Distance(hexA, hexB string) (float64, error) {
	a, err := ParseHex(hexA)
	if err != nil {
		return 0, err
	}
	b, err := ParseHex(hexB)
	if err != nil {
		return 0, err
	}
	return DeltaE(a.Lab(), b.Lab()), nil
}

// HueAngle returns the Lab hue angle h° = atan2(b*, a*) in degrees,
// normalized to [0, 360). Near-neutral colours have unstable hue
// angles; callers compensate (the harmony generator treats those via
// its nearest-match fallback).
func (l Lab) HueAngle() float64 {
	h := math.Atan2(l.B, l.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

// HueDistance calculates the angular distance between two hues in
// degrees, accounting for wraparound. The result is in [0, 180].
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// NormalizeHue wraps a hue angle in degrees onto [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

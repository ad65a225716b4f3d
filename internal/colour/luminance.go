package colour

import "math"

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminance(c RGB) float64 {
	rf := gammaCorrect(float64(c.R) / 255.0)
	gf := gammaCorrect(float64(c.G) / 255.0)
	bf := gammaCorrect(float64(c.B) / 255.0)
	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies the sRGB gamma correction curve.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// overlayThreshold is the luminance boundary for choosing overlay text:
// dark text above it, light text at or below.
const overlayThreshold = 0.179

// IsLight reports whether the colour is light enough to need dark
// overlay text.
func (c RGB) IsLight() bool {
	return Luminance(c) > overlayThreshold
}

// OverlayText returns the text colour to draw on top of a swatch of
// this colour: near-black for light swatches, white otherwise.
func (c RGB) OverlayText() RGB {
	if c.IsLight() {
		return RGB{R: 0x11, G: 0x18, B: 0x27}
	}
	return RGB{R: 0xFF, G: 0xFF, B: 0xFF}
}

// Package colour provides colour parsing, conversion, blending and
// perceptual distance primitives used by the matching and layout engines.
package colour

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidFormat is returned when a hex colour string is not exactly
// six hexadecimal digits after stripping an optional leading '#'.
var ErrInvalidFormat = errors.New("invalid hex colour format")

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex parses a hex colour string such as "#1a2b3c" or "A0B2C3".
// The leading '#' is optional and digits are case-insensitive; any
// other deviation (shorthand, alpha channels, named colours) fails
// with ErrInvalidFormat.
func ParseHex(s string) (RGB, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(t) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	b, err := hex.DecodeString(t)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// Hex returns the colour as a lowercase hex string (e.g., "#1a2b3c").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CanonicalHex returns the boundary form of the colour: a leading '#'
// followed by six uppercase hex digits.
func (c RGB) CanonicalHex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Normalize parses a hex colour string and returns its canonical form:
// a leading '#' followed by six uppercase hex digits. All boundary
// values (palette entries, layout fills, lookup keys) use this form.
func Normalize(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.CanonicalHex(), nil
}

// FromFloats builds an RGB colour from floating-point channel values,
// rounding half-up and clamping each channel to [0, 255].
func FromFloats(r, g, b float64) RGB {
	return RGB{R: clamp8(r), G: clamp8(g), B: clamp8(b)}
}

func clamp8(v float64) uint8 {
	v = math.Floor(v + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

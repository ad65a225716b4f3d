package colour

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want float64
	}{
		{name: "black", c: RGB{0, 0, 0}, want: 0},
		{name: "white", c: RGB{255, 255, 255}, want: 1},
		{name: "pure red", c: RGB{255, 0, 0}, want: 0.2126},
		{name: "pure green", c: RGB{0, 255, 0}, want: 0.7152},
		{name: "pure blue", c: RGB{0, 0, 255}, want: 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.c); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Luminance(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

// The 0.179 threshold splits the grey ramp between #757575 and
// #767676; both sides are pinned so the boundary cannot drift.
func TestIsLightThreshold(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want bool
	}{
		{name: "white is light", c: RGB{255, 255, 255}, want: true},
		{name: "black is dark", c: RGB{0, 0, 0}, want: false},
		{name: "grey just above threshold", c: RGB{0x76, 0x76, 0x76}, want: true},
		{name: "grey just below threshold", c: RGB{0x75, 0x75, 0x75}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsLight(); got != tt.want {
				t.Errorf("IsLight(%s) = %v, want %v", tt.c.Hex(), got, tt.want)
			}
		})
	}
}

func TestOverlayText(t *testing.T) {
	dark := RGB{0x11, 0x18, 0x27}
	white := RGB{0xFF, 0xFF, 0xFF}

	if got := (RGB{255, 255, 0}).OverlayText(); got != dark {
		t.Errorf("OverlayText(yellow) = %v, want dark text %v", got, dark)
	}
	if got := (RGB{0x20, 0x20, 0x60}).OverlayText(); got != white {
		t.Errorf("OverlayText(navy) = %v, want white text %v", got, white)
	}
}

package colour

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{
			name:  "lowercase with hash",
			input: "#1a2b3c",
			want:  RGB{R: 0x1A, G: 0x2B, B: 0x3C},
		},
		{
			name:  "uppercase without hash",
			input: "A0B2C3",
			want:  RGB{R: 0xA0, G: 0xB2, B: 0xC3},
		},
		{
			name:  "mixed case",
			input: "#FfEe00",
			want:  RGB{R: 0xFF, G: 0xEE, B: 0x00},
		},
		{
			name:  "surrounding whitespace",
			input: "  #334455  ",
			want:  RGB{R: 0x33, G: 0x44, B: 0x55},
		},
		{
			name:    "shorthand rejected",
			input:   "#abc",
			wantErr: true,
		},
		{
			name:    "alpha channel rejected",
			input:   "#11223344",
			wantErr: true,
		},
		{
			name:    "named colour rejected",
			input:   "tomato",
			wantErr: true,
		},
		{
			name:    "non-hex digits",
			input:   "#12345g",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bare hash",
			input:   "#",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParseHex(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	inputs := []string{"#000000", "#ffffff", "#1a2b3c", "#a0b2c3"}
	for _, in := range inputs {
		c, err := ParseHex(in)
		if err != nil {
			t.Fatalf("ParseHex(%q) unexpected error: %v", in, err)
		}
		if got := c.Hex(); got != in {
			t.Errorf("Hex() round trip = %q, want %q", got, in)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "lowercase", input: "a0b2c3", want: "#A0B2C3"},
		{name: "already canonical", input: "#A0B2C3", want: "#A0B2C3"},
		{name: "mixed", input: "#fFeE10", want: "#FFEE10"},
		{name: "invalid", input: "zzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromFloats(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    RGB
	}{
		{name: "exact", r: 10, g: 20, b: 30, want: RGB{10, 20, 30}},
		{name: "rounds half up", r: 127.5, g: 0.4, b: 0.5, want: RGB{128, 0, 1}},
		{name: "clamps high", r: 300, g: 255.6, b: 255, want: RGB{255, 255, 255}},
		{name: "clamps low", r: -5, g: -0.6, b: 0, want: RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromFloats(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("FromFloats(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	c := RGB{R: 1, G: 2, B: 3}
	if got, want := c.String(), "rgb(1, 2, 3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

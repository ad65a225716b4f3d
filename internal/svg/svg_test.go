package svg

import (
	"strings"
	"testing"

	"github.com/jmylchreest/huecard/internal/layout"
)

func TestEncodeFallbackCard(t *testing.T) {
	plan := layout.Fallback(layout.ToolComparison)
	out, err := Encode(plan)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630" viewBox="0 0 1200 630">`,
		`<rect width="1200" height="630" fill="#FFFFFF"/>`,
		`fill="#E7A8A5"`,
		`>Palette comparison</text>`,
		`>huecard</text>`,
		"</svg>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if opens, closes := strings.Count(doc, "<text"), strings.Count(doc, "</text>"); opens != closes {
		t.Errorf("unbalanced text tags: %d open, %d close", opens, closes)
	}
}

func TestEncodeGradientDefs(t *testing.T) {
	steps := []layout.GradientStop{
		{Offset: 0, Color: "#000000"},
		{Offset: 0.5, Color: "#808080"},
		{Offset: 1, Color: "#FFFFFF"},
	}
	out, err := Encode(&layout.Plan{
		Width:      layout.CanvasWidth,
		Height:     layout.CanvasHeight,
		Background: "#FFFFFF",
		Elements: []layout.Element{
			layout.LinearGradient{X: 40, Y: 100, W: 1120, H: 46, Radius: 8, Stops: steps},
		},
	})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		`<linearGradient id="grad0" x1="0" y1="0" x2="1" y2="0">`,
		`<stop offset="0" stop-color="#000000"/>`,
		`<stop offset="0.5" stop-color="#808080"/>`,
		`<stop offset="1" stop-color="#FFFFFF"/>`,
		`fill="url(#grad0)"`,
		`rx="8"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestEncodeEscapesText(t *testing.T) {
	out, err := Encode(&layout.Plan{
		Width:  10,
		Height: 10,
		Elements: []layout.Element{
			layout.Text{X: 1, Y: 1, Content: `Salt & "Pepper" <mix>`, Fill: "#000000", Size: 10},
		},
	})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, ">Salt &amp; &quot;Pepper&quot; &lt;mix&gt;</text>") {
		t.Errorf("text content not escaped: %s", doc)
	}
	if strings.Contains(doc, "<mix>") {
		t.Error("raw markup leaked into the document")
	}
}

func TestEncodeStrokeOnlyRectIsUnfilled(t *testing.T) {
	out, err := Encode(&layout.Plan{
		Width:  100,
		Height: 100,
		Elements: []layout.Element{
			layout.Rect{X: 5, Y: 5, W: 50, H: 50, Stroke: "#111827", StrokeWidth: 2},
		},
	})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, `fill="none" stroke="#111827" stroke-width="2"`) {
		t.Errorf("stroke-only rect should carry fill=\"none\": %s", doc)
	}
}

func TestEncodeTextAttributes(t *testing.T) {
	out, err := Encode(&layout.Plan{
		Width:  100,
		Height: 100,
		Elements: []layout.Element{
			layout.Text{X: 50, Y: 20, Content: "#E7A8A5", Fill: "#111827", Size: 15, Family: "monospace", Anchor: layout.AnchorMiddle},
			layout.Text{X: 10, Y: 40, Content: "plain", Fill: "#111827", Size: 12},
		},
	})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, `font-family="monospace"`) || !strings.Contains(doc, `text-anchor="middle"`) {
		t.Errorf("styled text attributes missing: %s", doc)
	}
	if !strings.Contains(doc, `font-family="sans-serif"`) {
		t.Errorf("plain text should default to sans-serif: %s", doc)
	}
	if strings.Contains(doc, `text-anchor=""`) {
		t.Error("unanchored text should omit the attribute")
	}
}

func TestEncodeNegativeRect(t *testing.T) {
	_, err := Encode(&layout.Plan{
		Width:    100,
		Height:   100,
		Elements: []layout.Element{layout.Rect{X: 0, Y: 0, W: -5, H: 10}},
	})
	if err == nil {
		t.Error("Encode() error = nil, want error for negative size")
	}
}

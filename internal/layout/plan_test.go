package layout

import (
	"encoding/json"
	"testing"
)

func TestPlanMarshalJSON(t *testing.T) {
	p := newPlan()
	p.add(
		Rect{X: 1, Y: 2, W: 3, H: 4, Fill: "#101010"},
		Circle{CX: 5, CY: 6, R: 7, Fill: "#202020"},
		Line{X1: 0, Y1: 0, X2: 10, Y2: 10, Stroke: "#303030", StrokeWidth: 1},
		Text{X: 8, Y: 9, Content: "hello", Fill: "#404040", Size: 12},
		LinearGradient{X: 0, Y: 0, W: 100, H: 10, Stops: []GradientStop{{Offset: 0, Color: "#000000"}, {Offset: 1, Color: "#FFFFFF"}}},
	)

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded struct {
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		Background string `json:"background"`
		Elements   []struct {
			Kind string `json:"kind"`
		} `json:"elements"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.Width != CanvasWidth || decoded.Height != CanvasHeight {
		t.Errorf("canvas = %dx%d, want %dx%d", decoded.Width, decoded.Height, CanvasWidth, CanvasHeight)
	}
	if decoded.Background != "#FFFFFF" {
		t.Errorf("background = %q, want %q", decoded.Background, "#FFFFFF")
	}

	wantKinds := []string{"rect", "circle", "line", "text", "linearGradient"}
	if len(decoded.Elements) != len(wantKinds) {
		t.Fatalf("element count = %d, want %d", len(decoded.Elements), len(wantKinds))
	}
	for i, want := range wantKinds {
		if decoded.Elements[i].Kind != want {
			t.Errorf("element %d kind = %q, want %q", i, decoded.Elements[i].Kind, want)
		}
	}
}

func TestPlanMarshalJSONEmptyElements(t *testing.T) {
	raw, err := json.Marshal(newPlan())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if string(decoded["elements"]) != "[]" {
		t.Errorf("elements = %s, want []", decoded["elements"])
	}
}

func TestPlanRoundTrip(t *testing.T) {
	p := newPlan()
	p.add(
		Rect{X: 40, Y: 60, W: 130, H: 130, Radius: 10, Fill: "#E7A8A5", Stroke: "#E5E7EB", StrokeWidth: 1},
		Text{X: 600, Y: 40, Content: "Colour harmony", Fill: "#111827", Size: 28, Weight: "bold", Anchor: AnchorMiddle},
		LinearGradient{X: 40, Y: 120, W: 1120, H: 46, Radius: 8, Stops: []GradientStop{{Offset: 0, Color: "#E7A8A5"}, {Offset: 1, Color: "#31687E"}}},
	)

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got Plan
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.Width != p.Width || got.Height != p.Height || got.Background != p.Background {
		t.Errorf("canvas = %dx%d %s, want %dx%d %s",
			got.Width, got.Height, got.Background, p.Width, p.Height, p.Background)
	}
	if len(got.Elements) != len(p.Elements) {
		t.Fatalf("element count = %d, want %d", len(got.Elements), len(p.Elements))
	}
	if r, ok := got.Elements[0].(Rect); !ok || r != p.Elements[0].(Rect) {
		t.Errorf("element 0 = %#v, want %#v", got.Elements[0], p.Elements[0])
	}
	if txt, ok := got.Elements[1].(Text); !ok || txt != p.Elements[1].(Text) {
		t.Errorf("element 1 = %#v, want %#v", got.Elements[1], p.Elements[1])
	}
	lg, ok := got.Elements[2].(LinearGradient)
	if !ok || len(lg.Stops) != 2 || lg.Stops[1].Color != "#31687E" {
		t.Errorf("element 2 = %#v, want %#v", got.Elements[2], p.Elements[2])
	}
}

func TestPlanUnmarshalJSONRejectsUnknownKind(t *testing.T) {
	raw := []byte(`{"width":1200,"height":630,"background":"#FFFFFF","elements":[{"kind":"sprite"}]}`)
	var p Plan
	if err := json.Unmarshal(raw, &p); err == nil {
		t.Error("Unmarshal() expected error for unknown element kind")
	}
}

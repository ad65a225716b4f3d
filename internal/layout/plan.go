// Package layout composes the drawing plans for every card the tool
// renders. Composition is pure geometry: resolved colour data goes in,
// a canvas-agnostic instruction list comes out, and missing data
// produces the designed fallback card rather than an error.
package layout

import (
	"encoding/json"
	"fmt"
)

// Canvas dimensions and chrome bands are the raster contract shared
// with the renderer; every card uses the same fixed geometry.
const (
	CanvasWidth  = 1200
	CanvasHeight = 630
	HeaderHeight = 60
	FooterHeight = 50
	Padding      = 40
)

// DisplayStepCap is the most gradient steps a card draws. Capping
// drops trailing steps from display only; the interpolation itself is
// never recomputed at a coarser resolution.
const DisplayStepCap = 7

// Plan is a complete drawing of one card. Elements are appended during
// composition and drawn in order, later elements on top.
type Plan struct {
	Width      int
	Height     int
	Background string
	Elements   []Element
}

// Element is one drawing instruction. The set of shapes is closed;
// encoders switch over it exhaustively.
type Element interface {
	element()
}

// Rect draws an axis-aligned rectangle, optionally rounded.
type Rect struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	W           float64 `json:"w"`
	H           float64 `json:"h"`
	Radius      float64 `json:"radius,omitempty"`
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// Circle draws a filled or stroked circle.
type Circle struct {
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	R           float64 `json:"r"`
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// Line draws a straight stroke between two points.
type Line struct {
	X1          float64 `json:"x1"`
	Y1          float64 `json:"y1"`
	X2          float64 `json:"x2"`
	Y2          float64 `json:"y2"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// Anchor positions text relative to its X coordinate.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text draws a single line of text. Y is the baseline.
type Text struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Content string  `json:"content"`
	Fill    string  `json:"fill"`
	Size    float64 `json:"size"`
	Weight  string  `json:"weight,omitempty"`
	Family  string  `json:"family,omitempty"`
	Anchor  Anchor  `json:"anchor,omitempty"`
}

// GradientStop is one colour stop of a LinearGradient, with Offset in
// [0, 1].
type GradientStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// LinearGradient draws a rectangle filled with a horizontal gradient.
type LinearGradient struct {
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	W      float64        `json:"w"`
	H      float64        `json:"h"`
	Radius float64        `json:"radius,omitempty"`
	Stops  []GradientStop `json:"stops"`
}

func (Rect) element()           {}
func (Circle) element()         {}
func (Line) element()           {}
func (Text) element()           {}
func (LinearGradient) element() {}

func newPlan() *Plan {
	return &Plan{
		Width:      CanvasWidth,
		Height:     CanvasHeight,
		Background: colourBackground,
	}
}

func (p *Plan) add(els ...Element) {
	p.Elements = append(p.Elements, els...)
}

// MarshalJSON encodes the plan with a "kind" discriminator per
// element, the serialized form the renderer protocol carries.
func (p *Plan) MarshalJSON() ([]byte, error) {
	elements := make([]json.RawMessage, 0, len(p.Elements))
	for _, el := range p.Elements {
		raw, err := marshalElement(el)
		if err != nil {
			return nil, err
		}
		elements = append(elements, raw)
	}
	return json.Marshal(struct {
		Width      int               `json:"width"`
		Height     int               `json:"height"`
		Background string            `json:"background"`
		Elements   []json.RawMessage `json:"elements"`
	}{
		Width:      p.Width,
		Height:     p.Height,
		Background: p.Background,
		Elements:   elements,
	})
}

func marshalElement(el Element) (json.RawMessage, error) {
	switch v := el.(type) {
	case Rect:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Rect
		}{Kind: "rect", Rect: v})
	case Circle:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Circle
		}{Kind: "circle", Circle: v})
	case Line:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Line
		}{Kind: "line", Line: v})
	case Text:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Text
		}{Kind: "text", Text: v})
	case LinearGradient:
		return json.Marshal(struct {
			Kind string `json:"kind"`
			LinearGradient
		}{Kind: "linearGradient", LinearGradient: v})
	default:
		return nil, fmt.Errorf("unknown layout element type %T", el)
	}
}

// UnmarshalJSON decodes the kind-discriminated wire form produced by
// MarshalJSON. Renderer plugins use it to reconstruct the plan carried
// in a render request.
func (p *Plan) UnmarshalJSON(data []byte) error {
	var doc struct {
		Width      int               `json:"width"`
		Height     int               `json:"height"`
		Background string            `json:"background"`
		Elements   []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	p.Width = doc.Width
	p.Height = doc.Height
	p.Background = doc.Background
	p.Elements = make([]Element, 0, len(doc.Elements))
	for _, raw := range doc.Elements {
		el, err := unmarshalElement(raw)
		if err != nil {
			return err
		}
		p.Elements = append(p.Elements, el)
	}
	return nil
}

func unmarshalElement(raw json.RawMessage) (Element, error) {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}

	switch probe.Kind {
	case "rect":
		var v Rect
		err := json.Unmarshal(raw, &v)
		return v, err
	case "circle":
		var v Circle
		err := json.Unmarshal(raw, &v)
		return v, err
	case "line":
		var v Line
		err := json.Unmarshal(raw, &v)
		return v, err
	case "text":
		var v Text
		err := json.Unmarshal(raw, &v)
		return v, err
	case "linearGradient":
		var v LinearGradient
		err := json.Unmarshal(raw, &v)
		return v, err
	default:
		return nil, fmt.Errorf("unknown layout element kind %q", probe.Kind)
	}
}

package layout

import (
	"fmt"

	"github.com/jmylchreest/huecard/internal/blend"
	"github.com/jmylchreest/huecard/internal/charsheet"
	"github.com/jmylchreest/huecard/internal/colour"
	"github.com/jmylchreest/huecard/internal/harmony"
	"github.com/jmylchreest/huecard/internal/match"
	"github.com/jmylchreest/huecard/internal/palette"
)

// Tool identifies a card kind. The set is closed; Fallback switches
// over it exhaustively.
type Tool string

const (
	ToolHarmony       Tool = "harmony"
	ToolGradient      Tool = "gradient"
	ToolMix           Tool = "mix"
	ToolSwatch        Tool = "swatch"
	ToolComparison    Tool = "comparison"
	ToolAccessibility Tool = "accessibility"
)

// chrome draws the header band, footer band and their dividers. Every
// card shares this frame.
func chrome(p *Plan, title, footnote string) {
	p.add(
		Text{X: Padding, Y: 40, Content: Truncate(title, 25), Fill: colourInk, Size: 28, Weight: "bold", Anchor: AnchorStart},
		Line{X1: Padding, Y1: HeaderHeight, X2: CanvasWidth - Padding, Y2: HeaderHeight, Stroke: colourBorder, StrokeWidth: 1},
		Line{X1: Padding, Y1: CanvasHeight - FooterHeight, X2: CanvasWidth - Padding, Y2: CanvasHeight - FooterHeight, Stroke: colourBorder, StrokeWidth: 1},
		Text{X: Padding, Y: CanvasHeight - 19, Content: "huecard", Fill: colourMuted, Size: 15, Weight: "bold", Anchor: AnchorStart},
	)
	if footnote != "" {
		p.add(Text{X: CanvasWidth - Padding, Y: CanvasHeight - 19, Content: footnote, Fill: colourMuted, Size: 15, Anchor: AnchorEnd})
	}
}

// drawSwatch draws a rounded colour square with a hairline border.
func drawSwatch(p *Plan, x, y, size float64, hex string) {
	p.add(Rect{X: x, Y: y, W: size, H: size, Radius: 10, Fill: hex, Stroke: colourBorder, StrokeWidth: 1})
}

// drawSwatchWithHex draws a swatch with its hex value overlaid near
// the bottom edge, choosing dark or light text by the luminance rule.
func drawSwatchWithHex(p *Plan, x, y, size float64, hex string) {
	drawSwatch(p, x, y, size, hex)
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return
	}
	p.add(Text{
		X:       x + size/2,
		Y:       y + size - 12,
		Content: rgb.CanonicalHex(),
		Fill:    rgb.OverlayText().Hex(),
		Size:    15,
		Family:  "monospace",
		Anchor:  AnchorMiddle,
	})
}

// HarmonyData is the resolved input of the harmony card.
type HarmonyData struct {
	Base       palette.Entry
	Scheme     harmony.Scheme
	Companions []match.Result
}

// ComposeHarmony lays out the base dye beside its scheme companions.
// Missing data falls back to the designed empty-state card.
func ComposeHarmony(data *HarmonyData) *Plan {
	if data == nil || len(data.Companions) == 0 {
		return Fallback(ToolHarmony)
	}

	companions := data.Companions
	if len(companions) > 4 {
		companions = companions[:4]
	}

	p := newPlan()
	chrome(p, fmt.Sprintf("%s harmony", titleCase(string(data.Scheme))), "deltas at CIE Lab scale")

	total := 1 + len(companions)
	size, gap := harmonySizing(total)
	const labelBand = 58
	y := blockTop(size+labelBand, -8)
	x := rowX(total, size, gap)

	// Base swatch wears a dark ring so it reads as the anchor.
	p.add(Rect{X: x - 5, Y: y - 5, W: size + 10, H: size + 10, Radius: 14, Stroke: colourInk, StrokeWidth: 2})
	drawSwatchWithHex(p, x, y, size, data.Base.HexColor)
	p.add(
		Text{X: x + size/2, Y: y + size + 26, Content: Truncate(data.Base.Name, 8), Fill: colourInk, Size: 18, Weight: "bold", Anchor: AnchorMiddle},
		Text{X: x + size/2, Y: y + size + 48, Content: "base", Fill: colourMuted, Size: 15, Anchor: AnchorMiddle},
	)

	for i, r := range companions {
		cx := x + float64(i+1)*(size+gap)
		drawSwatchWithHex(p, cx, y, size, r.Entry.HexColor)
		p.add(
			Text{X: cx + size/2, Y: y + size + 26, Content: Truncate(r.Entry.Name, 8), Fill: colourInk, Size: 18, Weight: "bold", Anchor: AnchorMiddle},
			Text{X: cx + size/2, Y: y + size + 48, Content: fmt.Sprintf("ΔE %.1f", r.Distance), Fill: coarseTierColour(r.Distance), Size: 15, Anchor: AnchorMiddle},
		)
	}
	return p
}

// GradientData is the resolved input of the gradient card.
type GradientData struct {
	Start palette.Entry
	End   palette.Entry
	Steps []blend.Step
}

// ComposeGradient lays out the continuous gradient bar over the
// individual interpolation steps. Steps beyond DisplayStepCap are
// computed but not drawn.
func ComposeGradient(data *GradientData) *Plan {
	if data == nil || len(data.Steps) == 0 {
		return Fallback(ToolGradient)
	}

	p := newPlan()
	chrome(p, fmt.Sprintf("Gradient blend (%d steps)", len(data.Steps)), "steps resolved to nearest dye")

	shown := data.Steps
	if len(shown) > DisplayStepCap {
		shown = shown[:DisplayStepCap]
	}
	size, gap := gradientSizing(len(shown))

	const (
		subtitleBand = 34
		barH         = 46
		barToRow     = 36
		labelBand    = 56
	)
	blockH := subtitleBand + barH + barToRow + size + labelBand
	top := blockTop(blockH, -6)

	subtitle := fmt.Sprintf("%s to %s", Truncate(data.Start.Name, 18), Truncate(data.End.Name, 18))
	p.add(Text{X: CanvasWidth / 2, Y: top + 18, Content: subtitle, Fill: colourMuted, Size: 18, Anchor: AnchorMiddle})

	// The bar keeps every computed step even when the row below is
	// capped for legibility.
	stops := make([]GradientStop, len(data.Steps))
	span := len(data.Steps) - 1
	if span < 1 {
		span = 1
	}
	for i, s := range data.Steps {
		stops[i] = GradientStop{Offset: float64(i) / float64(span), Color: s.Hex}
	}
	barY := top + subtitleBand
	p.add(LinearGradient{X: Padding, Y: barY, W: CanvasWidth - 2*Padding, H: barH, Radius: 8, Stops: stops})

	rowY := barY + barH + barToRow
	x := rowX(len(shown), size, gap)
	for i, s := range shown {
		sx := x + float64(i)*(size+gap)
		drawSwatchWithHex(p, sx, rowY, size, s.Hex)
		if s.Match != nil {
			p.add(
				Text{X: sx + size/2, Y: rowY + size + 24, Content: Truncate(s.Match.Entry.Name, 8), Fill: colourInk, Size: 16, Anchor: AnchorMiddle},
				Text{X: sx + size/2, Y: rowY + size + 44, Content: fmt.Sprintf("%.1f", s.Match.Distance), Fill: matchTierColour(s.Match.Distance), Size: 13, Anchor: AnchorMiddle},
			)
		}
	}
	return p
}

// MixData is the resolved input of the mixer card. Ratio is the
// percentage weight of the first input and only applies to two-way
// mixes.
type MixData struct {
	Inputs []palette.Entry
	Ratio  int
	Result blend.Step
}

// ComposeMix lays out the input dyes above their blended result.
func ComposeMix(data *MixData) *Plan {
	if data == nil || len(data.Inputs) < 2 {
		return Fallback(ToolMix)
	}

	inputs := data.Inputs
	if len(inputs) > 3 {
		inputs = inputs[:3]
	}

	p := newPlan()
	chrome(p, "Colour mixer", "deltas at CIE Lab scale")

	size, gap := mixSizing(len(inputs))
	nameLimit := 14
	if len(inputs) == 3 {
		nameLimit = 10
	}

	const (
		inputLabelBand = 54
		joinBand       = 52
		resultSize     = 150.0
		resultBand     = 56
	)
	blockH := size + inputLabelBand + joinBand + resultSize + resultBand
	top := blockTop(blockH, -4)

	x := rowX(len(inputs), size, gap)
	for i, e := range inputs {
		sx := x + float64(i)*(size+gap)
		drawSwatchWithHex(p, sx, top, size, e.HexColor)
		p.add(Text{X: sx + size/2, Y: top + size + 26, Content: Truncate(e.Name, nameLimit), Fill: colourInk, Size: 18, Weight: "bold", Anchor: AnchorMiddle})
		if len(inputs) == 2 {
			share := data.Ratio
			if i == 1 {
				share = 100 - data.Ratio
			}
			p.add(Text{X: sx + size/2, Y: top + size + 48, Content: fmt.Sprintf("%d%%", share), Fill: colourMuted, Size: 15, Anchor: AnchorMiddle})
		}
		if i > 0 {
			plusX := sx - gap/2
			p.add(Text{X: plusX, Y: top + size/2 + 12, Content: "+", Fill: colourMuted, Size: 36, Anchor: AnchorMiddle})
		}
	}

	joinY := top + size + inputLabelBand
	p.add(Text{X: CanvasWidth / 2, Y: joinY + 34, Content: "=", Fill: colourMuted, Size: 36, Anchor: AnchorMiddle})

	resultY := joinY + joinBand
	resultX := (CanvasWidth - resultSize) / 2
	drawSwatchWithHex(p, resultX, resultY, resultSize, data.Result.Hex)
	if m := data.Result.Match; m != nil {
		p.add(
			Text{X: CanvasWidth / 2, Y: resultY + resultSize + 26, Content: Truncate(m.Entry.Name, 18), Fill: colourInk, Size: 18, Weight: "bold", Anchor: AnchorMiddle},
			Text{X: CanvasWidth / 2, Y: resultY + resultSize + 48, Content: fmt.Sprintf("ΔE %.1f", m.Distance), Fill: coarseTierColour(m.Distance), Size: 15, Anchor: AnchorMiddle},
		)
	}
	return p
}

// SwatchData is the resolved input of the closest-match card.
type SwatchData struct {
	TargetHex string
	Matches   []match.Result
	Context   *charsheet.Placement
}

// ComposeSwatch lays out the target colour beside its nearest palette
// matches, with the character-sheet placement when one was found.
func ComposeSwatch(data *SwatchData) *Plan {
	if data == nil || len(data.Matches) == 0 {
		return Fallback(ToolSwatch)
	}

	matches := data.Matches
	if len(matches) > 4 {
		matches = matches[:4]
	}

	p := newPlan()
	chrome(p, fmt.Sprintf("Matches for %s", data.TargetHex), "deltas at palette scale")

	// Target block on the left half.
	const targetSize = 240.0
	contextLines := 0
	if data.Context != nil {
		contextLines = 2
	}
	targetBlockH := targetSize + 30 + float64(contextLines)*24
	targetY := blockTop(targetBlockH, -4)
	targetX := Padding + 110.0
	drawSwatchWithHex(p, targetX, targetY, targetSize, data.TargetHex)
	p.add(Text{X: targetX + targetSize/2, Y: targetY + targetSize + 28, Content: "target", Fill: colourMuted, Size: 15, Anchor: AnchorMiddle})
	if c := data.Context; c != nil {
		where := fmt.Sprintf("on the %s %s %s chart", c.Race, c.Gender, c.Kind)
		cell := fmt.Sprintf("row %d, column %d", c.Row, c.Col)
		p.add(
			Text{X: targetX + targetSize/2, Y: targetY + targetSize + 54, Content: where, Fill: colourInk, Size: 15, Anchor: AnchorMiddle},
			Text{X: targetX + targetSize/2, Y: targetY + targetSize + 76, Content: cell, Fill: colourMuted, Size: 15, Anchor: AnchorMiddle},
		)
	}

	// Match rows on the right half.
	const (
		rowH  = 72.0
		chip  = 44.0
		listX = 560.0
	)
	rowsTop := blockTop(rowH*float64(len(matches)), -4)
	for i, r := range matches {
		y := rowsTop + float64(i)*rowH
		drawSwatch(p, listX, y, chip, r.Entry.HexColor)
		p.add(
			Text{X: listX + chip + 18, Y: y + 20, Content: Truncate(r.Entry.Name, 25), Fill: colourInk, Size: 19, Weight: "bold", Anchor: AnchorStart},
			Text{X: listX + chip + 18, Y: y + 40, Content: r.Entry.Category, Fill: colourMuted, Size: 14, Anchor: AnchorStart},
			Text{X: CanvasWidth - Padding, Y: y + 28, Content: fmt.Sprintf("ΔE %.2f", r.Distance), Fill: matchTierColour(r.Distance), Size: 17, Anchor: AnchorEnd},
		)
	}
	return p
}

// ComposeComparison lays out up to four dyes side by side.
func ComposeComparison(entries []palette.Entry) *Plan {
	if len(entries) == 0 {
		return Fallback(ToolComparison)
	}
	if len(entries) > 4 {
		entries = entries[:4]
	}

	p := newPlan()
	title := fmt.Sprintf("Comparing %d dyes", len(entries))
	if len(entries) == 1 {
		title = "Comparing 1 dye"
	}
	chrome(p, title, "stock dye catalogue")

	size, gap := comparisonSizing(len(entries))
	limit := comparisonNameLimit(len(entries))
	const labelBand = 56
	y := blockTop(size+labelBand, -6)
	x := rowX(len(entries), size, gap)

	for i, e := range entries {
		sx := x + float64(i)*(size+gap)
		drawSwatchWithHex(p, sx, y, size, e.HexColor)
		p.add(
			Text{X: sx + size/2, Y: y + size + 28, Content: Truncate(e.Name, limit), Fill: colourInk, Size: 19, Weight: "bold", Anchor: AnchorMiddle},
			Text{X: sx + size/2, Y: y + size + 50, Content: e.Category, Fill: colourMuted, Size: 15, Anchor: AnchorMiddle},
		)
	}
	return p
}

// AccessibilityData is the resolved input of the vision simulation
// card.
type AccessibilityData struct {
	Entries    []palette.Entry
	Deficiency colour.Deficiency
}

// ComposeAccessibility lays out each dye above its simulated
// appearance under the requested deficiency.
func ComposeAccessibility(data *AccessibilityData) *Plan {
	if data == nil || len(data.Entries) == 0 {
		return Fallback(ToolAccessibility)
	}

	entries := data.Entries
	if len(entries) > 4 {
		entries = entries[:4]
	}

	p := newPlan()
	chrome(p, fmt.Sprintf("%s simulation", titleCase(string(data.Deficiency))), "simulated with fixed linear transforms")

	size, gap := accessibilitySizing(len(entries))
	limit := comparisonNameLimit(len(entries))
	const (
		rowGap    = 44
		labelBand = 34
	)
	blockH := 2*size + rowGap + labelBand
	top := blockTop(blockH, -4)
	x := rowX(len(entries), size, gap)
	simY := top + size + rowGap

	p.add(
		Text{X: x - 24, Y: top + size/2 + 6, Content: "original", Fill: colourMuted, Size: 15, Anchor: AnchorEnd},
		Text{X: x - 24, Y: simY + size/2 + 6, Content: "simulated", Fill: colourMuted, Size: 15, Anchor: AnchorEnd},
	)

	for i, e := range entries {
		sx := x + float64(i)*(size+gap)
		drawSwatchWithHex(p, sx, top, size, e.HexColor)
		sim := colour.Simulate(e.RGB(), data.Deficiency)
		drawSwatchWithHex(p, sx, simY, size, sim.CanonicalHex())
		p.add(Text{X: sx + size/2, Y: simY + size + 26, Content: Truncate(e.Name, limit), Fill: colourInk, Size: 17, Weight: "bold", Anchor: AnchorMiddle})
	}
	return p
}

// exampleSwatches are the decorative colours every fallback card shows
// in place of real data.
var exampleSwatches = []struct {
	Name string
	Hex  string
}{
	{Name: "Rose Pink", Hex: "#E7A8A5"},
	{Name: "Peacock Blue", Hex: "#31687E"},
	{Name: "Meadow Green", Hex: "#3D5D25"},
	{Name: "Honey Yellow", Hex: "#F4BC4C"},
}

// Fallback builds the designed empty-state card for a tool. It is the
// response to unresolved or malformed input; composing a card never
// fails.
func Fallback(tool Tool) *Plan {
	var title, message string
	switch tool {
	case ToolHarmony:
		title = "Colour harmony"
		message = "Pick a base dye to generate matching colours"
	case ToolGradient:
		title = "Gradient blend"
		message = "Pick two dyes to blend between"
	case ToolMix:
		title = "Colour mixer"
		message = "Pick two or three dyes to mix"
	case ToolSwatch:
		title = "Closest matches"
		message = "Provide a valid hex colour to match"
	case ToolComparison:
		title = "Palette comparison"
		message = "Pick up to four dyes to compare"
	case ToolAccessibility:
		title = "Vision simulation"
		message = "Pick dyes to preview colour-vision deficiencies"
	default:
		title = "Colour preview"
		message = "No colours selected"
	}

	p := newPlan()
	chrome(p, title, "huecard preview")

	size, gap := comparisonSizing(len(exampleSwatches))
	const (
		messageBand = 66
		labelBand   = 34
	)
	top := blockTop(messageBand+size+labelBand, 0)
	p.add(Text{X: CanvasWidth / 2, Y: top + 22, Content: message, Fill: colourMuted, Size: 20, Anchor: AnchorMiddle})

	y := top + messageBand
	x := rowX(len(exampleSwatches), size, gap)
	for i, s := range exampleSwatches {
		sx := x + float64(i)*(size+gap)
		drawSwatchWithHex(p, sx, y, size, s.Hex)
		p.add(Text{X: sx + size/2, Y: y + size + 26, Content: s.Name, Fill: colourMuted, Size: 16, Anchor: AnchorMiddle})
	}
	return p
}

// Package svg encodes layout plans as standalone SVG documents. It is
// the built-in renderer, used whenever no external renderer plugin is
// configured.
package svg

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/huecard/internal/layout"
)

// MIME is the content type of encoded documents.
const MIME = "image/svg+xml"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Encode renders a drawing plan as an SVG document. Elements are
// emitted in plan order, so later elements paint over earlier ones.
func Encode(p *layout.Plan) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		p.Width, p.Height, p.Width, p.Height)

	// Gradients live in <defs> and are referenced by generated ids.
	gradientIDs := make(map[int]string)
	var defs bytes.Buffer
	for i, el := range p.Elements {
		g, ok := el.(layout.LinearGradient)
		if !ok {
			continue
		}
		id := fmt.Sprintf("grad%d", len(gradientIDs))
		gradientIDs[i] = id
		fmt.Fprintf(&defs, "    <linearGradient id=\"%s\" x1=\"0\" y1=\"0\" x2=\"1\" y2=\"0\">\n", id)
		for _, s := range g.Stops {
			fmt.Fprintf(&defs, "      <stop offset=\"%s\" stop-color=\"%s\"/>\n", num(s.Offset), s.Color)
		}
		defs.WriteString("    </linearGradient>\n")
	}
	if defs.Len() > 0 {
		buf.WriteString("  <defs>\n")
		buf.Write(defs.Bytes())
		buf.WriteString("  </defs>\n")
	}

	if p.Background != "" {
		fmt.Fprintf(&buf, "  <rect width=\"%d\" height=\"%d\" fill=\"%s\"/>\n", p.Width, p.Height, p.Background)
	}

	for i, el := range p.Elements {
		switch v := el.(type) {
		case layout.Rect:
			if err := writeRect(&buf, v.X, v.Y, v.W, v.H, v.Radius, fillAttr(v.Fill), v.Stroke, v.StrokeWidth); err != nil {
				return nil, err
			}
		case layout.Circle:
			fmt.Fprintf(&buf, "  <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"", num(v.CX), num(v.CY), num(v.R), fillAttr(v.Fill))
			writeStroke(&buf, v.Stroke, v.StrokeWidth)
			buf.WriteString("/>\n")
		case layout.Line:
			fmt.Fprintf(&buf, "  <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"", num(v.X1), num(v.Y1), num(v.X2), num(v.Y2))
			writeStroke(&buf, v.Stroke, v.StrokeWidth)
			buf.WriteString("/>\n")
		case layout.Text:
			writeText(&buf, v)
		case layout.LinearGradient:
			if err := writeRect(&buf, v.X, v.Y, v.W, v.H, v.Radius, "url(#"+gradientIDs[i]+")", "", 0); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("cannot encode layout element %T", el)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func writeRect(buf *bytes.Buffer, x, y, w, h, radius float64, fill, stroke string, strokeWidth float64) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("rect has negative size %gx%g", w, h)
	}
	fmt.Fprintf(buf, "  <rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\"", num(x), num(y), num(w), num(h))
	if radius > 0 {
		fmt.Fprintf(buf, " rx=\"%s\"", num(radius))
	}
	fmt.Fprintf(buf, " fill=\"%s\"", fill)
	writeStroke(buf, stroke, strokeWidth)
	buf.WriteString("/>\n")
	return nil
}

func writeStroke(buf *bytes.Buffer, stroke string, width float64) {
	if stroke == "" {
		return
	}
	fmt.Fprintf(buf, " stroke=\"%s\" stroke-width=\"%s\"", stroke, num(width))
}

func writeText(buf *bytes.Buffer, t layout.Text) {
	family := t.Family
	if family == "" {
		family = "sans-serif"
	}
	fmt.Fprintf(buf, "  <text x=\"%s\" y=\"%s\" font-family=\"%s\" font-size=\"%s\" fill=\"%s\"",
		num(t.X), num(t.Y), textEscaper.Replace(family), num(t.Size), t.Fill)
	if t.Weight != "" {
		fmt.Fprintf(buf, " font-weight=\"%s\"", t.Weight)
	}
	if t.Anchor != "" {
		fmt.Fprintf(buf, " text-anchor=\"%s\"", t.Anchor)
	}
	fmt.Fprintf(buf, ">%s</text>\n", textEscaper.Replace(t.Content))
}

// fillAttr maps an empty fill to "none"; SVG would otherwise default
// unfilled shapes to black.
func fillAttr(fill string) string {
	if fill == "" {
		return "none"
	}
	return fill
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

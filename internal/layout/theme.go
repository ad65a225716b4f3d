package layout

// Light card theme. The tier colours double as the delta badge
// palette.
const (
	colourBackground = "#FFFFFF"
	colourInk        = "#111827"
	colourMuted      = "#6B7280"
	colourBorder     = "#E5E7EB"
	colourSuccess    = "#10B981"
	colourWarning    = "#F59E0B"
	colourError      = "#EF4444"
)

// matchTierColour buckets a nearest-match delta at palette-distance
// scale. Harmony and mix deltas run larger and use the coarser scale
// below.
func matchTierColour(delta float64) string {
	switch {
	case delta < 3:
		return colourSuccess
	case delta < 6:
		return colourWarning
	default:
		return colourError
	}
}

// coarseTierColour buckets harmony and mix deltas.
func coarseTierColour(delta float64) string {
	switch {
	case delta < 5:
		return colourSuccess
	case delta < 10:
		return colourWarning
	default:
		return colourError
	}
}

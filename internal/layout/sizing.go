package layout

// Sizing tables map item count to swatch edge and inter-item gap, in
// pixels.

// comparisonSizing covers the dye comparison card.
func comparisonSizing(count int) (swatch, gap float64) {
	switch count {
	case 1:
		return 220, 50
	case 2:
		return 180, 50
	case 3:
		return 150, 35
	default:
		return 130, 25
	}
}

// comparisonNameLimit is the name truncation threshold at each
// comparison cardinality; wider swatches fit longer names.
func comparisonNameLimit(count int) int {
	switch count {
	case 1:
		return 18
	case 2:
		return 14
	case 3:
		return 12
	default:
		return 10
	}
}

// accessibilitySizing covers the two-row vision simulation card.
func accessibilitySizing(count int) (swatch, gap float64) {
	switch count {
	case 1:
		return 200, 50
	case 2:
		return 160, 45
	case 3:
		return 130, 35
	default:
		return 110, 25
	}
}

// harmonySizing sizes the base-plus-companions row by its total count.
func harmonySizing(total int) (swatch, gap float64) {
	switch total {
	case 2:
		return 180, 50
	case 3:
		return 150, 40
	case 4:
		return 130, 30
	default:
		return 120, 25
	}
}

// gradientSizing sizes the step row; callers cap the count at
// DisplayStepCap first.
func gradientSizing(count int) (swatch, gap float64) {
	switch count {
	case 2:
		return 220, 60
	case 3:
		return 190, 50
	case 4:
		return 160, 40
	case 5:
		return 150, 30
	case 6:
		return 130, 25
	default:
		return 120, 20
	}
}

// mixSizing sizes the mixer input row; the wide gaps leave room for
// the plus markers drawn between swatches.
func mixSizing(count int) (swatch, gap float64) {
	if count == 2 {
		return 180, 120
	}
	return 150, 90
}

// rowX returns the starting X that horizontally centres count swatches
// of the given edge and gap on the canvas.
func rowX(count int, swatch, gap float64) float64 {
	total := float64(count)*swatch + float64(count-1)*gap
	return (CanvasWidth - total) / 2
}

// blockTop returns the Y that vertically centres a block of the given
// visual height in the content region between header and footer.
// offset nudges the block to balance asymmetric label bands.
func blockTop(visualHeight, offset float64) float64 {
	top := float64(HeaderHeight)
	bottom := float64(CanvasHeight - FooterHeight)
	return top + (bottom-top-visualHeight)/2 + offset
}

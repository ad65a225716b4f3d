package colour

// Mix2 blends two colours channel-wise; ratio is the percentage weight
// of a and is clamped to [0, 100]. Channels round half-up, so mixing
// pure white and pure black at 50 lands on #808080 rather than #7f7f7f.
func Mix2(a, b RGB, ratio int) RGB {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 100 {
		ratio = 100
	}
	w := float64(ratio) / 100.0
	return FromFloats(
		float64(a.R)*w+float64(b.R)*(1-w),
		float64(a.G)*w+float64(b.G)*(1-w),
		float64(a.B)*w+float64(b.B)*(1-w),
	)
}

// Mix3 blends three colours with equal weight.
func Mix3(a, b, c RGB) RGB {
	return FromFloats(
		(float64(a.R)+float64(b.R)+float64(c.R))/3,
		(float64(a.G)+float64(b.G)+float64(c.G))/3,
		(float64(a.B)+float64(b.B)+float64(c.B))/3,
	)
}

// Lerp interpolates from a to b by t in [0, 1], sharing Mix2's
// rounding. t outside the range is clamped.
func Lerp(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return FromFloats(
		float64(a.R)*(1-t)+float64(b.R)*t,
		float64(a.G)*(1-t)+float64(b.G)*t,
		float64(a.B)*(1-t)+float64(b.B)*t,
	)
}

// GradientSteps returns steps evenly interpolated colours from start
// to end inclusive. The first element is always exactly start and the
// last exactly end; steps below 2 are treated as 2.
func GradientSteps(start, end RGB, steps int) []RGB {
	if steps < 2 {
		steps = 2
	}
	out := make([]RGB, steps)
	for i := 0; i < steps; i++ {
		out[i] = Lerp(start, end, float64(i)/float64(steps-1))
	}
	return out
}

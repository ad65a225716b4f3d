package blend

import (
	"errors"
	"testing"

	"github.com/jmylchreest/huecard/internal/colour"
	"github.com/jmylchreest/huecard/internal/match"
	"github.com/jmylchreest/huecard/internal/palette"
)

func testEngine(t *testing.T, entries []palette.Entry) *Engine {
	t.Helper()
	idx, err := palette.New(entries)
	if err != nil {
		t.Fatalf("palette.New() unexpected error: %v", err)
	}
	return NewEngine(match.NewFinder(idx))
}

func greyscaleEngine(t *testing.T) *Engine {
	t.Helper()
	return testEngine(t, []palette.Entry{
		{ID: 1, ExternalID: 1, Name: "Black", Category: "black", HexColor: "000000"},
		{ID: 2, ExternalID: 2, Name: "Mid Grey", Category: "grey", HexColor: "808080"},
		{ID: 3, ExternalID: 3, Name: "White", Category: "white", HexColor: "FFFFFF"},
	})
}

func TestMix2(t *testing.T) {
	e := greyscaleEngine(t)

	step, err := e.Mix2("#FFFFFF", "#000000", 50)
	if err != nil {
		t.Fatalf("Mix2() unexpected error: %v", err)
	}
	if step.Hex != "#808080" {
		t.Errorf("Mix2(white, black, 50) = %s, want #808080", step.Hex)
	}
	if step.Match == nil || step.Match.Entry.Name != "Mid Grey" {
		t.Errorf("Mix2 match = %+v, want Mid Grey", step.Match)
	}
	if step.Match.Distance != 0 {
		t.Errorf("Mix2 match distance = %v, want 0", step.Match.Distance)
	}
}

func TestMix2InvalidInput(t *testing.T) {
	e := greyscaleEngine(t)

	_, err := e.Mix2("bogus", "#000000", 50)
	if !errors.Is(err, colour.ErrInvalidFormat) {
		t.Errorf("Mix2 error = %v, want colour.ErrInvalidFormat", err)
	}
	_, err = e.Mix2("#000000", "#12345", 50)
	if !errors.Is(err, colour.ErrInvalidFormat) {
		t.Errorf("Mix2 error = %v, want colour.ErrInvalidFormat", err)
	}
}

func TestMix3(t *testing.T) {
	e := greyscaleEngine(t)

	step, err := e.Mix3("#FF0000", "#00FF00", "#0000FF")
	if err != nil {
		t.Fatalf("Mix3() unexpected error: %v", err)
	}
	if step.Hex != "#555555" {
		t.Errorf("Mix3(primaries) = %s, want #555555", step.Hex)
	}
	if step.Match == nil {
		t.Fatal("Mix3 returned no match against a populated palette")
	}
}

func TestGradient(t *testing.T) {
	e := greyscaleEngine(t)

	steps, err := e.Gradient("#000000", "#FFFFFF", 5)
	if err != nil {
		t.Fatalf("Gradient() unexpected error: %v", err)
	}
	wantHex := []string{"#000000", "#404040", "#808080", "#BFBFBF", "#FFFFFF"}
	if len(steps) != len(wantHex) {
		t.Fatalf("Gradient() returned %d steps, want %d", len(steps), len(wantHex))
	}
	for i, w := range wantHex {
		if steps[i].Hex != w {
			t.Errorf("step %d hex = %s, want %s", i, steps[i].Hex, w)
		}
		if steps[i].Match == nil {
			t.Errorf("step %d has no match", i)
		}
	}

	if steps[0].Match.Entry.Name != "Black" || steps[0].Match.Distance != 0 {
		t.Errorf("first step match = %+v, want exact Black", steps[0].Match)
	}
	if steps[4].Match.Entry.Name != "White" || steps[4].Match.Distance != 0 {
		t.Errorf("last step match = %+v, want exact White", steps[4].Match)
	}
}

func TestGradientClampsStepCount(t *testing.T) {
	e := greyscaleEngine(t)

	for _, n := range []int{-1, 0, 1} {
		steps, err := e.Gradient("#000000", "#FFFFFF", n)
		if err != nil {
			t.Fatalf("Gradient(%d) unexpected error: %v", n, err)
		}
		if len(steps) != 2 {
			t.Errorf("Gradient(%d) returned %d steps, want 2", n, len(steps))
		}
	}
}

func TestEmptyPaletteLeavesMatchNil(t *testing.T) {
	e := testEngine(t, nil)

	step, err := e.Mix2("#FFFFFF", "#000000", 50)
	if err != nil {
		t.Fatalf("Mix2() unexpected error: %v", err)
	}
	if step.Hex != "#808080" {
		t.Errorf("Mix2 hex = %s, want #808080 even without a palette", step.Hex)
	}
	if step.Match != nil {
		t.Errorf("Mix2 match = %+v, want nil for empty palette", step.Match)
	}
}

package palette

import (
	"image/color"
	"math"
	"testing"
)

func TestColorForEnds(t *testing.T) {
	tbl := New(DefaultSize)
	if got, want := tbl.ColorFor(0), tbl.At(0); got != want {
		t.Errorf("ColorFor(0) = %v, want first entry %v", got, want)
	}
	if got, want := tbl.ColorFor(1), tbl.At(tbl.Len()-1); got != want {
		t.Errorf("ColorFor(1) = %v, want last entry %v", got, want)
	}
}

func TestColorForClampsOutOfRange(t *testing.T) {
	tbl := New(DefaultSize)
	first, last := tbl.At(0), tbl.At(tbl.Len()-1)

	tests := []struct {
		in   float64
		want color.RGBA
	}{
		{-0.5, first},
		{-1e300, first},
		{math.Inf(-1), first},
		{math.NaN(), first},
		{1.0000001, last},
		{42, last},
		{math.Inf(1), last},
	}
	for _, tt := range tests {
		if got := tbl.ColorFor(tt.in); got != tt.want {
			t.Errorf("ColorFor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIndexRounds(t *testing.T) {
	tbl := New(256)
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.5, 128}, // 127.5 rounds half away from zero
		{1.0 / 255, 1},
		{0.499 / 255, 0},
		{1, 255},
	}
	for _, tt := range tests {
		if got := tbl.Index(tt.in); got != tt.want {
			t.Errorf("Index(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(DefaultSize), New(DefaultSize)
	if a.Len() != b.Len() {
		t.Fatalf("Len() = %d vs %d", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Fatalf("entry %d differs: %v vs %v", i, a.At(i), b.At(i))
		}
	}
}

func TestRampRunsPurpleToRed(t *testing.T) {
	tbl := New(DefaultSize)

	near := func(got, want uint8) bool {
		d := int(got) - int(want)
		return d >= -1 && d <= 1
	}

	// hue 252 degrees, s 0.8, v 0.9
	first := tbl.At(0)
	if !near(first.R, 82) || !near(first.G, 45) || !near(first.B, 229) || first.A != 255 {
		t.Errorf("first entry = %v, want about {82 45 229 255}", first)
	}
	// hue just above 0 degrees
	last := tbl.At(tbl.Len() - 1)
	if !near(last.R, 229) || !near(last.B, 45) || last.G > 60 {
		t.Errorf("last entry = %v, want about {229 ~48 45 255}", last)
	}
}

func TestNewTinyTable(t *testing.T) {
	tbl := New(0)
	if tbl.Len() != 1 {
		t.Fatalf("New(0).Len() = %d, want 1", tbl.Len())
	}
	if tbl.ColorFor(0) != tbl.ColorFor(1) {
		t.Error("single-entry table should return the same color everywhere")
	}
}

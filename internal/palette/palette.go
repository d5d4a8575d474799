// Package palette builds the gradient lookup table used to color the heat
// field.
package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultSize is the number of entries in the standard table.
const DefaultSize = 256

const (
	hueStart   = 0.7 // purple, as a fraction of the hue circle
	saturation = 0.8
	value      = 0.9
)

// Table maps a normalized intensity to a color. It is immutable after New.
type Table struct {
	colors []color.RGBA
}

// New builds an n-entry ramp from purple (cold) to red (hot). Entry i has
// hue 0.7 - (i/n)*0.7. n below 1 is treated as 1.
func New(n int) *Table {
	if n < 1 {
		n = 1
	}
	colors := make([]color.RGBA, n)
	for i := range colors {
		h := hueStart - (float64(i)/float64(n))*hueStart
		colors[i] = hsvToRGBA(h*360, saturation, value)
	}
	return &Table{colors: colors}
}

// Len is the number of entries.
func (t *Table) Len() int { return len(t.colors) }

// At returns entry i, clamped to the table.
func (t *Table) At(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	if i >= len(t.colors) {
		i = len(t.colors) - 1
	}
	return t.colors[i]
}

// Index is the table slot for a normalized intensity. v is clamped to [0,1]
// first; NaN maps to 0.
func (t *Table) Index(v float64) int {
	v = clamp01(v)
	i := int(math.Round(v * float64(len(t.colors)-1)))
	if i < 0 {
		return 0
	}
	if i > len(t.colors)-1 {
		return len(t.colors) - 1
	}
	return i
}

// ColorFor returns the color for a normalized intensity.
func (t *Table) ColorFor(v float64) color.RGBA {
	return t.colors[t.Index(v)]
}

func hsvToRGBA(h, s, v float64) color.RGBA {
	c := colorful.Hsv(h, s, v)
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

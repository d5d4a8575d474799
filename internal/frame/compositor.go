// Package frame turns the heat field into a pixel buffer each frame.
package frame

import (
	"image"
	"image/color"

	"github.com/iburimskiy/heatmap-visualization/internal/heat"
	"github.com/iburimskiy/heatmap-visualization/internal/palette"
	"github.com/iburimskiy/heatmap-visualization/internal/source"
)

const DefaultMarkerRadius = 5

// DefaultMarkerColor is drawn over the tracked point.
var DefaultMarkerColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Compositor owns a W x H RGBA buffer that is overwritten on every Render.
type Compositor struct {
	MarkerRadius int
	MarkerColor  color.RGBA

	img *image.RGBA
}

func NewCompositor(w, h int) *Compositor {
	return &Compositor{
		MarkerRadius: DefaultMarkerRadius,
		MarkerColor:  DefaultMarkerColor,
		img:          image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// Render colors every cell of f through tbl, normalized by f.DisplayMax, then
// draws the marker at p on top. The returned image is reused by the next
// call.
func (c *Compositor) Render(f *heat.Field, tbl *palette.Table, p source.Point) *image.RGBA {
	w, h := f.Width(), f.Height()
	if b := c.img.Bounds(); b.Dx() != w || b.Dy() != h {
		c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	scale := 1 / f.DisplayMax()
	values := f.Values()
	pix := c.img.Pix
	for y := 0; y < h; y++ {
		row := values[y*w : (y+1)*w]
		off := y * c.img.Stride
		for x, v := range row {
			col := tbl.ColorFor(v * scale)
			i := off + x*4
			pix[i+0] = col.R
			pix[i+1] = col.G
			pix[i+2] = col.B
			pix[i+3] = col.A
		}
	}

	c.drawMarker(p)
	return c.img
}

func (c *Compositor) drawMarker(p source.Point) {
	r := c.MarkerRadius
	if r < 0 {
		return
	}
	b := c.img.Bounds()
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := p.X+dx, p.Y+dy
			if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
				continue
			}
			c.img.SetRGBA(x, y, c.MarkerColor)
		}
	}
}

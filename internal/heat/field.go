// Package heat holds the per-cell intensity buffer that the visualizer
// accumulates into and blurs every frame, along with the set of cells that
// have ever been touched.
package heat

import "github.com/iburimskiy/heatmap-visualization/internal/source"

// DisplayFloor is the smallest divisor used when normalizing for display.
const DisplayFloor = 1.0

// Field is a W x H row-major grid of non-negative intensities. It is owned
// by a single frame loop and is not safe for concurrent use.
type Field struct {
	w, h    int
	values  []float64
	scratch []float64
	kernel  Kernel

	visited      []bool
	visitedCount int
}

// NewField returns a zeroed field smoothed with k.
func NewField(w, h int, k Kernel) *Field {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	return &Field{
		w:       w,
		h:       h,
		values:  make([]float64, n),
		scratch: make([]float64, n),
		kernel:  k,
		visited: make([]bool, n),
	}
}

func (f *Field) Width() int  { return f.w }
func (f *Field) Height() int { return f.h }

// Bounds returns the canvas size as source.Bounds.
func (f *Field) Bounds() source.Bounds { return source.Bounds{W: f.w, H: f.h} }

// At returns the intensity at (x, y), or 0 outside the field.
func (f *Field) At(x, y int) float64 {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return 0
	}
	return f.values[y*f.w+x]
}

// Values exposes the backing slice, row-major. Callers must not write to it.
func (f *Field) Values() []float64 { return f.values }

// Deposit adds increment to every cell with dx*dx+dy*dy <= radius*radius
// around center and marks those cells visited. Cells off the canvas are
// skipped.
func (f *Field) Deposit(center source.Point, radius int, increment float64) {
	if radius < 0 || increment <= 0 {
		return
	}
	r2 := radius * radius
	// Iterate only the part of the bounding box that lies on the canvas.
	y0, y1 := max(center.Y-radius, 0), min(center.Y+radius, f.h-1)
	x0, x1 := max(center.X-radius, 0), min(center.X+radius, f.w-1)
	for py := y0; py <= y1; py++ {
		dy := py - center.Y
		row := py * f.w
		for px := x0; px <= x1; px++ {
			dx := px - center.X
			if dx*dx+dy*dy > r2 {
				continue
			}
			i := row + px
			f.values[i] += increment
			f.markVisited(i)
		}
	}
}

// Smooth convolves the whole field with the kernel. Taps that fall outside
// the canvas contribute nothing, but the divisor is always the full kernel
// sum, so mass bleeds off at the edges.
func (f *Field) Smooth() {
	copy(f.scratch, f.values)

	k := f.kernel
	half := k.half()
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			var sum float64
			for ky := -half; ky <= half; ky++ {
				sy := y + ky
				if sy < 0 || sy >= f.h {
					continue
				}
				wrow := (ky + half) * k.Size
				srow := sy * f.w
				for kx := -half; kx <= half; kx++ {
					sx := x + kx
					if sx < 0 || sx >= f.w {
						continue
					}
					sum += k.Weights[wrow+kx+half] * f.scratch[srow+sx]
				}
			}
			f.values[y*f.w+x] = sum / k.Sum
		}
	}
}

// Max returns the largest intensity currently in the field.
func (f *Field) Max() float64 {
	var m float64
	for _, v := range f.values {
		if v > m {
			m = v
		}
	}
	return m
}

// DisplayMax is the normalization divisor for rendering: the current maximum,
// never below DisplayFloor.
func (f *Field) DisplayMax() float64 {
	if m := f.Max(); m > DisplayFloor {
		return m
	}
	return DisplayFloor
}

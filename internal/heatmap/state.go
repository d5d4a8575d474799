// Package heatmap wires the position source, heat field, palette and
// compositor into the per-frame pipeline. A State is owned by exactly one
// frame loop; nothing in it is safe for concurrent use.
package heatmap

import (
	"image"
	"time"

	"github.com/iburimskiy/heatmap-visualization/internal/frame"
	"github.com/iburimskiy/heatmap-visualization/internal/heat"
	"github.com/iburimskiy/heatmap-visualization/internal/palette"
	"github.com/iburimskiy/heatmap-visualization/internal/source"
)

// Options configures a State.
type Options struct {
	Width, Height int
	Radius        int
	Increment     float64
	Kernel        heat.Kernel
	PaletteSize   int
	MarkerRadius  int
	EndPolicy     source.EndPolicy
	Mode          source.Mode
}

// DefaultOptions matches the 800x600 interactive visualizer.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       600,
		Radius:       20,
		Increment:    0.1,
		Kernel:       heat.Gaussian5,
		PaletteSize:  palette.DefaultSize,
		MarkerRadius: frame.DefaultMarkerRadius,
		EndPolicy:    source.EndWrap,
		Mode:         source.ModeLive,
	}
}

// Stats is what the overlay shows next to the render.
type Stats struct {
	Coverage float64 // in [0,1]
	Elapsed  time.Duration
	Frames   int
	Max      float64
	Mode     source.Mode
	Point    source.Point
}

// State is the full visualizer state, passed by pointer through the loop.
type State struct {
	opts Options

	field      *heat.Field
	table      *palette.Table
	compositor *frame.Compositor

	live   *source.Live
	replay *source.Replay
	sw     *source.Switch

	start  time.Time
	frames int
	point  source.Point
	looped bool
}

// New builds a State. pointer may be nil when only replay is used.
func New(opts Options, pointer source.Pointer, path []source.Point, start time.Time) *State {
	bounds := source.Bounds{W: opts.Width, H: opts.Height}
	live := &source.Live{Pointer: pointer, Bounds: bounds}
	replay := source.NewReplay(path, bounds, opts.EndPolicy)

	comp := frame.NewCompositor(opts.Width, opts.Height)
	comp.MarkerRadius = opts.MarkerRadius

	return &State{
		opts:       opts,
		field:      heat.NewField(opts.Width, opts.Height, opts.Kernel),
		table:      palette.New(opts.PaletteSize),
		compositor: comp,
		live:       live,
		replay:     replay,
		sw:         source.NewSwitch(live, replay, opts.Mode, bounds.Center()),
		start:      start,
		point:      bounds.Center(),
	}
}

// Step advances one frame: sample the source, deposit, smooth.
func (s *State) Step() source.Point {
	passes := s.replay.Wrapped()
	s.point = s.sw.NextPosition()
	s.looped = s.replay.Wrapped() != passes
	s.field.Deposit(s.point, s.opts.Radius, s.opts.Increment)
	s.field.Smooth()
	s.frames++
	return s.point
}

// Render composites the current field with the marker at the tracked point.
func (s *State) Render() *image.RGBA {
	return s.compositor.Render(s.field, s.table, s.point)
}

// Stats reports coverage and elapsed time as of now.
func (s *State) Stats(now time.Time) Stats {
	return Stats{
		Coverage: s.field.Coverage(),
		Elapsed:  now.Sub(s.start),
		Frames:   s.frames,
		Max:      s.field.Max(),
		Mode:     s.sw.Mode(),
		Point:    s.point,
	}
}

// SetMode switches between live and replay; it applies on the next Step.
func (s *State) SetMode(m source.Mode) { s.sw.SetMode(m) }

func (s *State) Mode() source.Mode { return s.sw.Mode() }

// LoadPath replaces the replay path and rewinds it.
func (s *State) LoadPath(path []source.Point) {
	s.replay.Load(path)
	s.looped = false
}

// Looped reports whether the last Step finished a pass over the replay path.
func (s *State) Looped() bool { return s.looped }

// Replay exposes the replay source for progress display.
func (s *State) Replay() *source.Replay { return s.replay }

func (s *State) Field() *heat.Field { return s.field }

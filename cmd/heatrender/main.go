// Command heatrender replays a movement path without a window and writes the
// heat map as PNG snapshots.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/iburimskiy/heatmap-visualization/internal/config"
	"github.com/iburimskiy/heatmap-visualization/internal/heatmap"
	"github.com/iburimskiy/heatmap-visualization/internal/pathdata"
)

func main() {
	cfg := config.Default()
	cfg.Mode = "replay"
	outDir := flag.String("out", "frames", "directory for PNG snapshots")
	every := flag.Int("every", 30, "write a snapshot every N frames (0: final frame only)")
	frames := flag.Int("frames", 0, "frames to simulate (0: one pass over the path)")
	flag.StringVar(&cfg.PathFile, "path", cfg.PathFile, "movement path CSV")
	flag.StringVar(&cfg.Kernel, "kernel", cfg.Kernel, "smoothing kernel: gaussian5 or binomial3")
	flag.StringVar(&cfg.ReplayEnd, "replay-end", cfg.ReplayEnd, "wrap or hold at the end of the path")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "deposit radius in cells")
	flag.Float64Var(&cfg.Increment, "increment", cfg.Increment, "intensity added per frame")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := render(cfg, *outDir, *every, *frames, log); err != nil {
		log.Error("render failed", "err", err)
		os.Exit(1)
	}
}

func render(cfg *config.Config, outDir string, every, frames int, log *slog.Logger) error {
	opts, err := cfg.HeatmapOptions()
	if err != nil {
		return err
	}
	res, err := pathdata.ReadFile(cfg.PathFile)
	if err != nil {
		return err
	}
	if len(res.Points) == 0 {
		return errors.Errorf("path %s has no usable samples", cfg.PathFile)
	}
	if res.Skipped > 0 {
		log.Warn("skipped malformed path rows", "rows", res.Skipped)
	}
	if frames <= 0 {
		frames = len(res.Points)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	start := time.Now()
	state := heatmap.New(opts, nil, res.Points, start)
	written := 0
	for i := 1; i <= frames; i++ {
		state.Step()
		if (every > 0 && i%every == 0) || i == frames {
			name := filepath.Join(outDir, fmt.Sprintf("frame_%05d.png", i))
			if err := writePNG(name, state.Render()); err != nil {
				return err
			}
			written++
		}
		if i%300 == 0 {
			log.Info("progress", "frame", i, "of", frames)
		}
	}

	st := state.Stats(time.Now())
	log.Info("render complete",
		"frames", st.Frames,
		"snapshots", written,
		"coverage", fmt.Sprintf("%.2f%%", st.Coverage*100),
		"took", st.Elapsed.Round(time.Millisecond).String())
	return nil
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "create %s", name)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", name)
		}
	}()
	return errors.Wrapf(png.Encode(f, img), "encode %s", name)
}

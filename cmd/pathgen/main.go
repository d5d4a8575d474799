// Command pathgen writes a synthetic movement path CSV for replay mode.
package main

import (
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/iburimskiy/heatmap-visualization/internal/pathdata"
)

func main() {
	opt := pathdata.DefaultGenerateOptions()
	out := flag.String("out", "movement_path.csv", "output CSV file")
	seed := flag.Uint64("seed", 0, "random seed (0 uses the clock)")
	flag.IntVar(&opt.Duration, "duration", opt.Duration, "path length in seconds")
	flag.IntVar(&opt.FPS, "fps", opt.FPS, "samples per second")
	flag.Float64Var(&opt.TeleportProb, "teleport", opt.TeleportProb, "per-frame chance of a random jump")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	samples := pathdata.Generate(opt, rand.New(rand.NewPCG(*seed, *seed>>1)))
	if err := pathdata.WriteFile(*out, samples); err != nil {
		log.Error("write path", "err", err)
		os.Exit(1)
	}
	log.Info("path written", "file", *out, "samples", len(samples), "seed", *seed)
}

package pathdata

import (
	"math"
	"math/rand/v2"
)

// GenerateOptions shapes a synthetic path. The zero value is not useful;
// start from DefaultGenerateOptions.
type GenerateOptions struct {
	Duration int // seconds
	FPS      int

	CenterX, CenterY float64
	Amplitude        float64

	JumpX, JumpY int     // max jump every two seconds
	Zigzag       float64 // offset applied twice per second
	TeleportProb float64 // per-frame chance of a random relocation

	TeleportMinX, TeleportMaxX, TeleportMinY, TeleportMaxY int

	MinX, MaxX, MinY, MaxY float64
}

// DefaultGenerateOptions suits an 800x600 canvas.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Duration:     30,
		FPS:          30,
		CenterX:      400,
		CenterY:      300,
		Amplitude:    150,
		JumpX:        200,
		JumpY:        150,
		Zigzag:       50,
		TeleportProb: 0.05,
		TeleportMinX: 100,
		TeleportMaxX: 700,
		TeleportMinY: 100,
		TeleportMaxY: 500,
		MinX:         50,
		MaxX:         750,
		MinY:         50,
		MaxY:         550,
	}
}

// Generate produces Duration*FPS samples that follow a 3:2 Lissajous curve
// with periodic jumps, a twice-per-second zig-zag and occasional teleports,
// all clipped to the option rectangle.
func Generate(opt GenerateOptions, rng *rand.Rand) []Sample {
	total := opt.Duration * opt.FPS
	if total <= 0 {
		return nil
	}
	jumpEvery := opt.FPS * 2
	zigEvery := opt.FPS / 2
	if zigEvery < 1 {
		zigEvery = 1
	}

	out := make([]Sample, total)
	for i := range out {
		t := 0.0
		if total > 1 {
			t = 2 * math.Pi * float64(i) / float64(total-1)
		}
		x := opt.CenterX + opt.Amplitude*math.Sin(3*t)
		y := opt.CenterY + opt.Amplitude*math.Cos(2*t)

		if jumpEvery > 0 && i%jumpEvery == 0 {
			x += float64(symmetricInt(rng, opt.JumpX))
			y += float64(symmetricInt(rng, opt.JumpY))
		}
		if i%zigEvery == 0 {
			z := opt.Zigzag
			if rng.IntN(2) == 0 {
				z = -z
			}
			x += z
			y += z
		}
		if rng.Float64() < opt.TeleportProb {
			x = float64(uniformInt(rng, opt.TeleportMinX, opt.TeleportMaxX))
			y = float64(uniformInt(rng, opt.TeleportMinY, opt.TeleportMaxY))
		}

		out[i] = Sample{
			Frame: i,
			X:     clampFloat(x, opt.MinX, opt.MaxX),
			Y:     clampFloat(y, opt.MinY, opt.MaxY),
		}
	}
	return out
}

// symmetricInt draws uniformly from [-n, n].
func symmetricInt(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.IntN(2*n+1) - n
}

// uniformInt draws uniformly from [lo, hi].
func uniformInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

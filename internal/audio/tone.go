package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// tone is a sine oscillator that stops after a fixed number of samples.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{freq: freq, duration: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade applies a linear attack and release to a stream of known length so
// cues start and stop without clicks.
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) *fade {
	return &fade{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.attack > 0 && f.position < f.attack {
			gain = float64(f.position) / float64(f.attack)
		}
		if rs := f.total - f.release; f.release > 0 && f.position >= rs {
			gain = math.Max(0, float64(f.total-f.position)/float64(f.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales s by a linear gain in [0,1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	if vol > 1 {
		vol = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Package audio plays short synthesized cues for visualizer events.
package audio

import (
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

// SampleRate is the output rate for all cues.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound.
type Cue int

const (
	CueLiveMode   Cue = iota // switched to pointer input
	CueReplayMode            // switched to path replay
	CueReplayLoop            // replay wrapped to the first sample
	CuePathLoaded            // a new path file was loaded
)

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueLiveMode:   {{660, 70 * time.Millisecond}, {440, 90 * time.Millisecond}},
	CueReplayMode: {{440, 70 * time.Millisecond}, {660, 90 * time.Millisecond}},
	CueReplayLoop: {{880, 50 * time.Millisecond}},
	CuePathLoaded: {{523.25, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}, {783.99, 90 * time.Millisecond}},
}

// Streamer renders c at rate. Unknown cues yield nil.
func Streamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newFade(newTone(n.freq, n.dur, rate), n.dur, 5*time.Millisecond, 20*time.Millisecond, rate))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// Player owns the speaker. Use Open once at startup and Close once on exit.
type Player struct {
	volume float64
	log    *slog.Logger
	closed bool
}

// Open initialises the speaker.
func Open(volume float64, log *slog.Logger) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	log.Debug("audio ready", "rate", int(SampleRate), "volume", volume)
	return &Player{volume: volume, log: log}, nil
}

// Play queues c. It returns immediately.
func (p *Player) Play(c Cue) {
	if p == nil || p.closed {
		return
	}
	s := Streamer(c, SampleRate, p.volume)
	if s == nil {
		p.log.Warn("unknown audio cue", "cue", int(c))
		return
	}
	speaker.Play(s)
}

// Close stops anything still playing and releases the output device.
// Subsequent calls are no-ops.
func (p *Player) Close() {
	if p == nil || p.closed {
		return
	}
	p.closed = true
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	speaker.Close()
	p.log.Debug("audio closed")
}

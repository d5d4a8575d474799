package source

// Mode selects which source answers NextPosition.
type Mode int

const (
	ModeLive Mode = iota
	ModeReplay
)

func (m Mode) String() string {
	if m == ModeReplay {
		return "replay"
	}
	return "live"
}

// Switch routes NextPosition to the live or replay source depending on the
// current mode. A mode change is picked up by the next call.
type Switch struct {
	live   Source
	replay Source
	mode   Mode
	last   Point
}

// NewSwitch starts in mode with the tracked point at start.
func NewSwitch(live, replay Source, mode Mode, start Point) *Switch {
	return &Switch{live: live, replay: replay, mode: mode, last: start}
}

// NextPosition is called exactly once per frame. If the active source has no
// sample the previous point is returned unchanged.
func (s *Switch) NextPosition() Point {
	src := s.live
	if s.mode == ModeReplay {
		src = s.replay
	}
	if src == nil {
		return s.last
	}
	if p, ok := src.Next(); ok {
		s.last = p
	}
	return s.last
}

func (s *Switch) SetMode(m Mode) { s.mode = m }

func (s *Switch) Mode() Mode { return s.mode }

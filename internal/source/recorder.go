package source

// Recorder keeps the last N tracked points in a ring buffer so a live
// session can be saved and replayed later.
type Recorder struct {
	buffer    []Point
	nextIndex int
	count     int
}

func NewRecorder(ringSize int) *Recorder {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Recorder{buffer: make([]Point, ringSize)}
}

// Add appends p, overwriting the oldest point once the ring is full.
func (r *Recorder) Add(p Point) {
	r.buffer[r.nextIndex] = p
	r.nextIndex++
	if r.nextIndex >= len(r.buffer) {
		r.nextIndex = 0
	}
	if r.count < len(r.buffer) {
		r.count++
	}
}

// Len is the number of points currently held.
func (r *Recorder) Len() int { return r.count }

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.nextIndex = 0
	r.count = 0
}

// Snapshot returns up to the last n points, oldest first. n <= 0 means all.
func (r *Recorder) Snapshot(n int) []Point {
	if n <= 0 || n > r.count {
		n = r.count
	}
	out := make([]Point, n)
	// Walk backwards from nextIndex - 1
	idx := r.nextIndex - 1
	for i := n - 1; i >= 0; i-- {
		if idx < 0 {
			idx = len(r.buffer) - 1
		}
		out[i] = r.buffer[idx]
		idx--
	}
	return out
}

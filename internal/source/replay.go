package source

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// EndPolicy controls what Replay does after the last sample.
type EndPolicy int

const (
	// EndWrap restarts from the first sample.
	EndWrap EndPolicy = iota
	// EndHold keeps returning the last sample.
	EndHold
)

func (p EndPolicy) String() string {
	switch p {
	case EndWrap:
		return "wrap"
	case EndHold:
		return "hold"
	default:
		return fmt.Sprintf("EndPolicy(%d)", int(p))
	}
}

// ParseEndPolicy accepts "wrap" or "hold".
func ParseEndPolicy(s string) (EndPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "":
		return EndWrap, nil
	case "hold":
		return EndHold, nil
	}
	return EndWrap, errors.Errorf("unknown replay end policy %q", s)
}

// Replay walks a recorded path one sample per call. The path is not copied
// and must not be modified after it is handed over.
type Replay struct {
	path    []Point
	bounds  Bounds
	policy  EndPolicy
	index   int
	wrapped int
}

func NewReplay(path []Point, bounds Bounds, policy EndPolicy) *Replay {
	return &Replay{path: path, bounds: bounds, policy: policy}
}

func (r *Replay) Next() (Point, bool) {
	if len(r.path) == 0 {
		return Point{}, false
	}
	if r.index >= len(r.path) {
		// only reachable under EndHold
		return r.bounds.Clamp(r.path[len(r.path)-1]), true
	}
	p := r.path[r.index]
	r.index++
	if r.index == len(r.path) && r.policy == EndWrap {
		r.index = 0
		r.wrapped++
	}
	return r.bounds.Clamp(p), true
}

// Load replaces the path and rewinds.
func (r *Replay) Load(path []Point) {
	r.path = path
	r.index = 0
	r.wrapped = 0
}

// Len is the number of samples in the path.
func (r *Replay) Len() int { return len(r.path) }

// Index is the position of the sample the next call will return.
func (r *Replay) Index() int { return r.index }

// Wrapped counts completed passes over the path.
func (r *Replay) Wrapped() int { return r.wrapped }

// Policy reports the end-of-path policy.
func (r *Replay) Policy() EndPolicy { return r.policy }

package source

import "testing"

func TestReplayWrapReturnsFirstSampleOnFourthCall(t *testing.T) {
	path := []Point{{10, 10}, {20, 20}, {30, 30}}
	r := NewReplay(path, Bounds{W: 800, H: 600}, EndWrap)

	want := []Point{{10, 10}, {20, 20}, {30, 30}, {10, 10}}
	for i, w := range want {
		got, ok := r.Next()
		if !ok {
			t.Fatalf("call %d: Next() ok = false", i+1)
		}
		if got != w {
			t.Errorf("call %d: Next() = %v, want %v", i+1, got, w)
		}
	}
	if r.Wrapped() != 1 {
		t.Errorf("Wrapped() = %d, want 1", r.Wrapped())
	}
}

func TestReplayHoldKeepsLastSample(t *testing.T) {
	path := []Point{{1, 2}, {3, 4}}
	r := NewReplay(path, Bounds{W: 10, H: 10}, EndHold)

	r.Next()
	r.Next()
	for i := 0; i < 5; i++ {
		got, ok := r.Next()
		if !ok || got != (Point{3, 4}) {
			t.Fatalf("Next() after end = %v, %v; want {3 4}, true", got, ok)
		}
	}
	if r.Wrapped() != 0 {
		t.Errorf("Wrapped() = %d, want 0", r.Wrapped())
	}
}

func TestReplayEmptyPath(t *testing.T) {
	r := NewReplay(nil, Bounds{W: 10, H: 10}, EndWrap)
	if _, ok := r.Next(); ok {
		t.Error("Next() on empty path returned ok = true")
	}
}

func TestReplayClampsSamples(t *testing.T) {
	r := NewReplay([]Point{{-5, 50}}, Bounds{W: 20, H: 20}, EndWrap)
	got, _ := r.Next()
	if got != (Point{0, 19}) {
		t.Errorf("Next() = %v, want {0 19}", got)
	}
}

func TestLiveClampsPointer(t *testing.T) {
	tests := []struct {
		x, y int
		want Point
	}{
		{5, 5, Point{5, 5}},
		{-10, 3, Point{0, 3}},
		{100, 200, Point{9, 7}},
	}
	for _, tt := range tests {
		x, y := tt.x, tt.y
		l := &Live{
			Pointer: PointerFunc(func() (int, int) { return x, y }),
			Bounds:  Bounds{W: 10, H: 8},
		}
		got, ok := l.Next()
		if !ok || got != tt.want {
			t.Errorf("Live.Next() with pointer (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSwitchHoldsLastPointWhenReplayEmpty(t *testing.T) {
	live := &Live{
		Pointer: PointerFunc(func() (int, int) { return 7, 8 }),
		Bounds:  Bounds{W: 100, H: 100},
	}
	replay := NewReplay(nil, Bounds{W: 100, H: 100}, EndWrap)
	s := NewSwitch(live, replay, ModeLive, Point{50, 50})

	if got := s.NextPosition(); got != (Point{7, 8}) {
		t.Fatalf("live NextPosition() = %v, want {7 8}", got)
	}
	s.SetMode(ModeReplay)
	for i := 0; i < 3; i++ {
		if got := s.NextPosition(); got != (Point{7, 8}) {
			t.Errorf("replay on empty path NextPosition() = %v, want held {7 8}", got)
		}
	}
}

func TestSwitchModeChangeTakesEffectOnNextCall(t *testing.T) {
	bounds := Bounds{W: 100, H: 100}
	live := &Live{Pointer: PointerFunc(func() (int, int) { return 1, 1 }), Bounds: bounds}
	replay := NewReplay([]Point{{90, 90}}, bounds, EndWrap)
	s := NewSwitch(live, replay, ModeLive, bounds.Center())

	s.NextPosition()
	s.SetMode(ModeReplay)
	if got := s.NextPosition(); got != (Point{90, 90}) {
		t.Errorf("NextPosition() after switch = %v, want {90 90}", got)
	}
	s.SetMode(ModeLive)
	if got := s.NextPosition(); got != (Point{1, 1}) {
		t.Errorf("NextPosition() after switch back = %v, want {1 1}", got)
	}
}

func TestParseEndPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    EndPolicy
		wantErr bool
	}{
		{"wrap", EndWrap, false},
		{"HOLD", EndHold, false},
		{"", EndWrap, false},
		{"bounce", EndWrap, true},
	}
	for _, tt := range tests {
		got, err := ParseEndPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEndPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEndPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package source

import "testing"

func TestRecorderChronologicalOrder(t *testing.T) {
	r := NewRecorder(4)
	for i := 1; i <= 6; i++ {
		r.Add(Point{X: i, Y: i})
	}
	if r.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", r.Len())
	}
	got := r.Snapshot(0)
	want := []Point{{3, 3}, {4, 4}, {5, 5}, {6, 6}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Snapshot()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	last2 := r.Snapshot(2)
	if len(last2) != 2 || last2[0] != (Point{5, 5}) || last2[1] != (Point{6, 6}) {
		t.Errorf("Snapshot(2) = %v, want [{5 5} {6 6}]", last2)
	}
}

func TestRecorderPartiallyFilled(t *testing.T) {
	r := NewRecorder(10)
	r.Add(Point{1, 1})
	r.Add(Point{2, 2})
	got := r.Snapshot(5)
	if len(got) != 2 || got[0] != (Point{1, 1}) || got[1] != (Point{2, 2}) {
		t.Errorf("Snapshot(5) = %v, want [{1 1} {2 2}]", got)
	}
	r.Reset()
	if r.Len() != 0 || len(r.Snapshot(0)) != 0 {
		t.Error("Reset() left points behind")
	}
}

package heat

func (f *Field) markVisited(i int) {
	if f.visited[i] {
		return
	}
	f.visited[i] = true
	f.visitedCount++
}

// Visited reports whether (x, y) has ever received a deposit.
func (f *Field) Visited(x, y int) bool {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return false
	}
	return f.visited[y*f.w+x]
}

// VisitedCount is the number of distinct cells ever deposited into.
func (f *Field) VisitedCount() int { return f.visitedCount }

// Coverage is the fraction of the canvas that has ever been deposited into.
// It never decreases.
func (f *Field) Coverage() float64 {
	total := f.w * f.h
	if total == 0 {
		return 0
	}
	return float64(f.visitedCount) / float64(total)
}

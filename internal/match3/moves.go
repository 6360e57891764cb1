package match3

// Swap is a pair of adjacent cells to exchange.
type Swap struct {
	A Coord
	B Coord
}

// ValidSwaps lists every swap TrySwap would accept, scanning row-major and
// trying the right neighbour before the lower one. The board is not
// modified.
func ValidSwaps(b *Board) []Swap {
	var out []Swap
	eachCandidate(b, func(s Swap) bool {
		out = append(out, s)
		return true
	})
	return out
}

// HasValidSwap reports whether any accepted swap exists.
func HasValidSwap(b *Board) bool {
	found := false
	eachCandidate(b, func(Swap) bool {
		found = true
		return false
	})
	return found
}

// BestSwap returns the accepted swap that clears the most cells on its
// first pass, scored with s. Ties keep the earliest swap in ValidSwaps
// order. It returns false when no swap is accepted.
func BestSwap(b *Board, s ScoringConfig) (Swap, bool) {
	scratch := b.Clone()
	opts := &ClearOptions{Scoring: &s}

	var best Swap
	bestPts, found := -1, false
	eachCandidate(b, func(sw Swap) bool {
		copy(scratch.cells, b.cells)
		scratch.swap(sw.A, sw.B)
		pts := ClearAndScore(scratch, FindMatchesMask(scratch), opts)
		if pts > bestPts {
			best, bestPts, found = sw, pts, true
		}
		return true
	})
	return best, found
}

// eachCandidate calls fn for each accepted swap until fn returns false.
// The board is restored after every trial swap.
func eachCandidate(b *Board, fn func(Swap) bool) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			a := At(r, c)
			for _, n := range []Coord{At(r, c+1), At(r+1, c)} {
				if !TrySwap(b, a, n) {
					continue
				}
				b.swap(a, n)
				if !fn(Swap{A: a, B: n}) {
					return
				}
			}
		}
	}
}

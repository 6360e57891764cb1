package match3

// Adjacent reports whether a and c share an edge.
func Adjacent(a, c Coord) bool {
	return a.Manhattan(c) == 1
}

// TrySwap exchanges the tiles at a and c if both are on the board,
// orthogonally adjacent and non-empty, and the exchange leaves at least one
// run anywhere on the board. Otherwise the board is left exactly as it was
// and false is returned. A successful swap does not clear anything.
func TrySwap(b *Board, a, c Coord) bool {
	if !b.InBounds(a) || !b.InBounds(c) || !Adjacent(a, c) {
		return false
	}
	if b.Get(a).IsEmpty() || b.Get(c).IsEmpty() {
		return false
	}

	b.swap(a, c)
	if HasMatch(b) {
		return true
	}
	b.swap(a, c)
	return false
}

package match3

// Source supplies random tile draws. *rand.Rand satisfies it, and tests
// can pass a scripted sequence.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Retry caps for run-avoiding draws. After this many re-draws the last
// draw is accepted even if it completes a run.
const (
	CreateRetries = 12
	RefillRetries = 10
)

// pickKind draws a kind for the cell at c that does not complete a run
// with the two cells to its left or the two cells above it, giving up
// after retries re-draws.
func pickKind(b *Board, c Coord, rng Source, retries int) Kind {
	for tries := 0; ; tries++ {
		k := Kind(rng.Intn(b.kinds))
		if !completesRun(b, c, k) || tries >= retries {
			return k
		}
	}
}

// completesRun reports whether placing k at c would form three in a row
// with the left or upper neighbours. Missing or empty neighbours never match.
func completesRun(b *Board, c Coord, k Kind) bool {
	same := func(at Coord) bool {
		got, ok := b.Get(at).Kind()
		return ok && got == k
	}
	if same(At(c.Row, c.Col-1)) && same(At(c.Row, c.Col-2)) {
		return true
	}
	return same(At(c.Row-1, c.Col)) && same(At(c.Row-2, c.Col))
}

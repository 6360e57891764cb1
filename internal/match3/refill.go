package match3

// Refill fills every empty cell with a random tile, scanning row-major and
// avoiding runs with the left and upper neighbours for up to RefillRetries
// re-draws. It returns the coordinates that were filled. A nil rng
// leaves the board untouched.
func Refill(b *Board, rng Source) []Coord {
	if b.kinds == 0 || rng == nil {
		return nil
	}
	var filled []Coord
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			at := At(r, c)
			if !b.Get(at).IsEmpty() {
				continue
			}
			b.Set(at, Tile(pickKind(b, at, rng, RefillRetries)))
			filled = append(filled, at)
		}
	}
	return filled
}

package match3

// Collapse lets tiles fall straight down into empty cells. Each column is
// compacted toward the bottom keeping the relative order of its tiles and
// the vacated top cells are left empty.
func Collapse(b *Board) {
	for c := 0; c < b.cols; c++ {
		write := b.rows - 1
		for r := b.rows - 1; r >= 0; r-- {
			cell := b.cells[b.index(At(r, c))]
			if cell.IsEmpty() {
				continue
			}
			if write != r {
				b.cells[b.index(At(write, c))] = cell
			}
			write--
		}
		for r := write; r >= 0; r-- {
			b.cells[b.index(At(r, c))] = Empty()
		}
	}
}

package match3

// MinRun is the shortest run of same-kind tiles that counts as a match.
const MinRun = 3

// Run is one maximal line of at least MinRun same-kind tiles.
type Run struct {
	Kind       Kind
	Horizontal bool
	Cells      []Coord // in scan order
}

// Len returns the number of cells in the run.
func (r Run) Len() int {
	return len(r.Cells)
}

// Mask is a boolean grid with the same shape as a board.
// Mask[row][col] is true for marked cells.
type Mask [][]bool

// NewMask allocates an all-false mask.
func NewMask(rows, cols int) Mask {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}
	m := make(Mask, rows)
	for r := range m {
		m[r] = make([]bool, cols)
	}
	return m
}

// Get reports whether c is marked. Out-of-range coordinates are unmarked.
func (m Mask) Get(c Coord) bool {
	if c.Row < 0 || c.Row >= len(m) || c.Col < 0 || c.Col >= len(m[c.Row]) {
		return false
	}
	return m[c.Row][c.Col]
}

// Mark sets c. Out-of-range coordinates are ignored.
func (m Mask) Mark(c Coord) {
	if c.Row < 0 || c.Row >= len(m) || c.Col < 0 || c.Col >= len(m[c.Row]) {
		return
	}
	m[c.Row][c.Col] = true
}

// Any returns true if at least one cell is marked.
func (m Mask) Any() bool {
	for _, row := range m {
		for _, v := range row {
			if v {
				return true
			}
		}
	}
	return false
}

// Count returns the number of marked cells.
func (m Mask) Count() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Coords returns the marked cells in row-major order.
func (m Mask) Coords() []Coord {
	var out []Coord
	for r, row := range m {
		for c, v := range row {
			if v {
				out = append(out, At(r, c))
			}
		}
	}
	return out
}

// Or returns a new mask marking cells marked in either mask.
// The result is as large as the larger of the two in each dimension.
func (m Mask) Or(other Mask) Mask {
	rows := max(len(m), len(other))
	cols := 0
	for _, row := range m {
		cols = max(cols, len(row))
	}
	for _, row := range other {
		cols = max(cols, len(row))
	}
	out := NewMask(rows, cols)
	for r := range rows {
		for c := range cols {
			at := At(r, c)
			out[r][c] = m.Get(at) || other.Get(at)
		}
	}
	return out
}

// FindRuns returns every maximal run: rows top to bottom first, then
// columns left to right. A cell may appear in one horizontal and one
// vertical run.
func FindRuns(b *Board) []Run {
	var runs []Run
	for r := 0; r < b.rows; r++ {
		runs = scanLine(b, At(r, 0), 0, 1, b.cols, true, runs)
	}
	for c := 0; c < b.cols; c++ {
		runs = scanLine(b, At(0, c), 1, 0, b.rows, false, runs)
	}
	return runs
}

// scanLine walks n cells from start by (dr, dc), appending each closed
// run of MinRun or more to runs. Empty cells end the current run.
func scanLine(b *Board, start Coord, dr, dc, n int, horizontal bool, runs []Run) []Run {
	runStart := 0
	var runKind Kind
	inRun := false

	closeRun := func(end int) {
		if inRun && end-runStart >= MinRun {
			cells := make([]Coord, 0, end-runStart)
			for i := runStart; i < end; i++ {
				cells = append(cells, At(start.Row+i*dr, start.Col+i*dc))
			}
			runs = append(runs, Run{Kind: runKind, Horizontal: horizontal, Cells: cells})
		}
	}

	for i := 0; i < n; i++ {
		k, ok := b.Get(At(start.Row+i*dr, start.Col+i*dc)).Kind()
		switch {
		case !ok:
			closeRun(i)
			inRun = false
		case !inRun || k != runKind:
			closeRun(i)
			inRun = true
			runKind = k
			runStart = i
		}
	}
	closeRun(n)
	return runs
}

// FindMatchesMask marks every cell that belongs to a horizontal or
// vertical run. The board is not modified.
func FindMatchesMask(b *Board) Mask {
	mask := NewMask(b.rows, b.cols)
	for _, run := range FindRuns(b) {
		for _, c := range run.Cells {
			mask.Mark(c)
		}
	}
	return mask
}

// FindMatches returns the set of matched cells in row-major order.
// Cells in both a horizontal and a vertical run appear once.
func FindMatches(b *Board) []Coord {
	return FindMatchesMask(b).Coords()
}

// HasMatch reports whether any run exists, stopping at the first one.
func HasMatch(b *Board) bool {
	for r := 0; r < b.rows; r++ {
		if lineHasRun(b, At(r, 0), 0, 1, b.cols) {
			return true
		}
	}
	for c := 0; c < b.cols; c++ {
		if lineHasRun(b, At(0, c), 1, 0, b.rows) {
			return true
		}
	}
	return false
}

func lineHasRun(b *Board, start Coord, dr, dc, n int) bool {
	length := 0
	var prev Kind
	for i := 0; i < n; i++ {
		k, ok := b.Get(At(start.Row+i*dr, start.Col+i*dc)).Kind()
		switch {
		case !ok:
			length = 0
		case length > 0 && k == prev:
			length++
		default:
			length = 1
			prev = k
		}
		if length >= MinRun {
			return true
		}
	}
	return false
}

// Package match3 implements the tile-swapping puzzle rules: board
// construction, run detection, swap validation, gravity, refill, scoring
// and cascade resolution.
//
// The package is UI-agnostic and deterministic given its random source.
// It knows nothing about timing or rendering; callers interleave the
// synchronous operations with their own presentation.
package match3

import (
	"fmt"
	"strings"
)

// Kind identifies one of the K interchangeable tile categories.
type Kind uint8

// MaxKinds is the largest number of kinds a board accepts.
const MaxKinds = 256

// Cell is the content of one board position: either empty or a tile of
// some kind. The zero value is an empty cell.
type Cell struct {
	kind   Kind
	filled bool
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Tile returns a cell holding a tile of the given kind.
func Tile(k Kind) Cell {
	return Cell{kind: k, filled: true}
}

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return !c.filled
}

// Kind returns the tile kind and true, or 0 and false for an empty cell.
func (c Cell) Kind() (Kind, bool) {
	return c.kind, c.filled
}

// String returns the kind ordinal or "." for empty cells.
func (c Cell) String() string {
	if !c.filled {
		return "."
	}
	return fmt.Sprintf("%d", c.kind)
}

// Coord addresses a cell by row (top to bottom) and column (left to right).
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Board is a fixed-size rectangular grid of cells.
// Cells are stored in row-major order: index = row*cols + col.
// All accessors are bounds-checked; out-of-range access never panics.
type Board struct {
	rows  int
	cols  int
	kinds int
	cells []Cell
}

// NewBoard creates an all-empty board of rows×cols accepting kinds tile
// kinds. Negative arguments are treated as zero and kinds is capped at
// MaxKinds.
func NewBoard(rows, cols, kinds int) *Board {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}
	kinds = min(max(kinds, 0), MaxKinds)
	return &Board{
		rows:  rows,
		cols:  cols,
		kinds: kinds,
		cells: make([]Cell, rows*cols),
	}
}

// CreateBoard builds a randomly filled board, avoiding immediate runs
// with the already placed neighbours to the left and above. Each cell is
// re-drawn up to CreateRetries times before the draw is accepted anyway,
// so rare starting runs are possible.
func CreateBoard(rows, cols, kinds int, rng Source) *Board {
	b := NewBoard(rows, cols, kinds)
	if b.kinds == 0 {
		return b
	}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			at := At(r, c)
			b.Set(at, Tile(pickKind(b, at, rng, CreateRetries)))
		}
	}
	return b
}

// ParseBoard builds a board from text rows, one string per row.
// Digits are tile kinds and '.' is an empty cell. Every row must have the
// same length and every digit must be below kinds.
func ParseBoard(kinds int, rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return NewBoard(0, 0, kinds), nil
	}
	cols := len(rows[0])
	b := NewBoard(len(rows), cols, kinds)
	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("match3: row %d has %d cells, want %d", r, len(line), cols)
		}
		for c, ch := range line {
			switch {
			case ch == '.':
				continue
			case ch >= '0' && ch <= '9':
				if !b.Set(At(r, c), Tile(Kind(ch-'0'))) {
					return nil, fmt.Errorf("match3: kind %c at %v out of range [0,%d)", ch, At(r, c), kinds)
				}
			default:
				return nil, fmt.Errorf("match3: unexpected %q at %v", ch, At(r, c))
			}
		}
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Kinds returns the number of tile kinds the board accepts.
func (b *Board) Kinds() int {
	return b.kinds
}

func (b *Board) index(c Coord) int {
	return c.Row*b.cols + c.Col
}

// InBounds returns true if the coordinate lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Get returns the cell at c, or an empty cell if c is out of bounds.
func (b *Board) Get(c Coord) Cell {
	if !b.InBounds(c) {
		return Empty()
	}
	return b.cells[b.index(c)]
}

// Lookup returns the cell at c and whether c is on the board.
func (b *Board) Lookup(c Coord) (Cell, bool) {
	if !b.InBounds(c) {
		return Empty(), false
	}
	return b.cells[b.index(c)], true
}

// Set writes a cell. Writes outside the board or with a kind outside
// [0, Kinds()) are ignored and reported as false.
func (b *Board) Set(c Coord, cell Cell) bool {
	if !b.InBounds(c) {
		return false
	}
	if k, ok := cell.Kind(); ok && int(k) >= b.kinds {
		return false
	}
	b.cells[b.index(c)] = cell
	return true
}

// swap exchanges two in-bounds cells.
func (b *Board) swap(a, c Coord) {
	ia, ic := b.index(a), b.index(c)
	b.cells[ia], b.cells[ic] = b.cells[ic], b.cells[ia]
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.IsEmpty() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		kinds: b.kinds,
		cells: cells,
	}
}

// Equal returns true if both boards have the same shape and contents.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, cell := range b.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board in the ParseBoard format, rows joined by newlines.
// Kinds 10 to 35 are rendered as letters starting at 'a', higher kinds as '?'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			k, ok := b.Get(At(r, c)).Kind()
			switch {
			case !ok:
				sb.WriteByte('.')
			case k < 10:
				sb.WriteByte('0' + byte(k))
			case k < 36:
				sb.WriteByte('a' + byte(k-10))
			default:
				sb.WriteByte('?')
			}
		}
	}
	return sb.String()
}

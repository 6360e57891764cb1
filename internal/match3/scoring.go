package match3

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DefaultPerCell is used when a scoring config carries no usable per-cell value.
const DefaultPerCell = 10

// Bonuses holds the optional size bonuses. Exact[n] applies when a group
// has exactly n cells. AtLeast[n] applies when it has n or more; only the
// highest applicable threshold counts. Both bonuses add up.
type Bonuses struct {
	Exact   map[int]float64
	AtLeast map[int]float64
}

// ScoringConfig is the point table for clearing cells.
type ScoringConfig struct {
	PerCell float64
	Bonuses Bonuses
}

// DefaultScoring returns 10 points per cell, +5 for exactly four, +15 for
// exactly five and +25 for six or more.
func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		PerCell: DefaultPerCell,
		Bonuses: Bonuses{
			Exact:   map[int]float64{3: 0, 4: 5, 5: 15},
			AtLeast: map[int]float64{6: 25},
		},
	}
}

// perCell returns the usable per-cell value.
func (s ScoringConfig) perCell() float64 {
	if math.IsNaN(s.PerCell) || math.IsInf(s.PerCell, 0) || s.PerCell < 0 {
		return DefaultPerCell
	}
	return s.PerCell
}

// Bonus returns the bonus for a group of size cells. Non-finite table
// values contribute nothing.
func (s ScoringConfig) Bonus(size int) float64 {
	var total float64
	if v, ok := s.Bonuses.Exact[size]; ok && finite(v) {
		total += v
	}

	best, bestAt := 0.0, math.MinInt
	for threshold, v := range s.Bonuses.AtLeast {
		if threshold <= size && threshold > bestAt {
			bestAt = threshold
			best = v
		}
	}
	if bestAt != math.MinInt && finite(best) {
		total += best
	}
	return total
}

// Points returns perCell*size + Bonus(size), unrounded. Zero-sized groups
// score nothing.
func (s ScoringConfig) Points(size int) float64 {
	if size <= 0 {
		return 0
	}
	return s.perCell()*float64(size) + s.Bonus(size)
}

// Summary renders the table for display, e.g.
// "10 pts/cell; bonus for 4: 5 pts, 5: 15 pts; 6+: 25 pts".
func (s ScoringConfig) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s pts/cell", formatPoints(s.perCell()))

	var exact []string
	for _, n := range sortedKeys(s.Bonuses.Exact) {
		v := s.Bonuses.Exact[n]
		if !finite(v) || v == 0 {
			continue
		}
		exact = append(exact, fmt.Sprintf("%d: %s pts", n, formatPoints(v)))
	}
	if len(exact) > 0 {
		sb.WriteString("; bonus for ")
		sb.WriteString(strings.Join(exact, ", "))
	}

	var atLeast []string
	for _, n := range sortedKeys(s.Bonuses.AtLeast) {
		v := s.Bonuses.AtLeast[n]
		if !finite(v) || v == 0 {
			continue
		}
		atLeast = append(atLeast, fmt.Sprintf("%d+: %s pts", n, formatPoints(v)))
	}
	if len(atLeast) > 0 {
		sb.WriteString("; ")
		sb.WriteString(strings.Join(atLeast, ", "))
	}
	return sb.String()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatPoints(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

func sortedKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Target is a set of cells to clear: either Cells or a Mask.
type Target interface {
	coords(b *Board) []Coord
}

// Cells is a list of coordinates. Duplicates are ignored.
type Cells []Coord

func (cs Cells) coords(*Board) []Coord {
	return dedupe(cs)
}

func (m Mask) coords(b *Board) []Coord {
	var out []Coord
	for r := 0; r < min(len(m), b.rows); r++ {
		for c := 0; c < min(len(m[r]), b.cols); c++ {
			if m[r][c] {
				out = append(out, At(r, c))
			}
		}
	}
	return out
}

// ClearOptions tunes a single ClearAndScore call.
type ClearOptions struct {
	// Groups, when non-empty, scores each group separately instead of the
	// total number of cleared cells.
	Groups [][]Coord
	// Scoring overrides DefaultScoring for this call.
	Scoring *ScoringConfig
}

// ClearAndScore empties the target cells and returns the points earned,
// rounded to the nearest integer. Out-of-bounds and already empty cells
// are skipped.
//
// Without groups the points are computed once from the number of cells
// actually cleared. With groups each group is deduplicated and scored on
// its own size, and the results are summed; the groups do not have to
// match the cleared cells.
func ClearAndScore(b *Board, target Target, opts *ClearOptions) int {
	cleared := 0
	if target != nil {
		for _, c := range target.coords(b) {
			if b.Get(c).IsEmpty() {
				continue
			}
			b.Set(c, Empty())
			cleared++
		}
	}

	rules := DefaultScoring()
	if opts != nil && opts.Scoring != nil {
		rules = *opts.Scoring
	}

	var points float64
	if opts != nil && len(opts.Groups) > 0 {
		for _, g := range opts.Groups {
			points += rules.Points(len(dedupe(g)))
		}
	} else {
		points = rules.Points(cleared)
	}
	return int(math.Round(points))
}

func dedupe(cs []Coord) []Coord {
	seen := make(map[Coord]struct{}, len(cs))
	out := make([]Coord, 0, len(cs))
	for _, c := range cs {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

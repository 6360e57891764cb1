package match3

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapsePreservesColumnOrder(t *testing.T) {
	b := mustParse(t, 4,
		"01.",
		".2.",
		"3.1",
		"..2",
	)
	Collapse(b)
	assert.Equal(t, "...\n...\n011\n322", b.String())
}

func TestCollapseNoTileAboveEmpty(t *testing.T) {
	b := CreateBoard(8, 8, 5, rand.New(rand.NewSource(3)))
	ClearAndScore(b, Cells{At(7, 0), At(3, 0), At(0, 4), At(5, 5), At(6, 5)}, nil)
	emptiesBefore := b.EmptyCount()

	Collapse(b)

	assert.Equal(t, emptiesBefore, b.EmptyCount())
	for c := range b.Cols() {
		seenTile := false
		for r := range b.Rows() {
			if b.Get(At(r, c)).IsEmpty() {
				assert.False(t, seenTile, "empty cell below a tile at %v", At(r, c))
			} else {
				seenTile = true
			}
		}
	}
}

func TestRefillCompletes(t *testing.T) {
	b := mustParse(t, 4,
		"0.1.",
		"..2.",
		"3012",
	)
	filled := Refill(b, rand.New(rand.NewSource(9)))

	assert.Len(t, filled, 5)
	assert.Zero(t, b.EmptyCount())
	assert.Equal(t, "3012", b.String()[len(b.String())-4:])
	for r := range b.Rows() {
		for c := range b.Cols() {
			k, ok := b.Get(At(r, c)).Kind()
			require.True(t, ok)
			assert.Less(t, int(k), 4)
		}
	}
}

func TestRefillRetryLimit(t *testing.T) {
	src := &scriptSource{}
	b := mustParse(t, 1, "00.")

	Refill(b, src)

	assert.Equal(t, RefillRetries+1, src.calls)
	assert.Equal(t, "000", b.String())
}

func TestRefillNilSource(t *testing.T) {
	b := mustParse(t, 2, "0.")
	assert.Nil(t, Refill(b, nil))
	assert.Equal(t, 1, b.EmptyCount())
}

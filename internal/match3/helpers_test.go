package match3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptSource returns the scripted values in order, each reduced mod n,
// and falls back to 0 when the script runs out.
type scriptSource struct {
	vals  []int
	calls int
}

func (s *scriptSource) Intn(n int) int {
	i := s.calls
	s.calls++
	if i >= len(s.vals) {
		return 0
	}
	return s.vals[i] % n
}

func mustParse(t *testing.T, kinds int, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(kinds, rows...)
	require.NoError(t, err)
	return b
}

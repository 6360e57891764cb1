// Package tui provides the Bubble Tea integration for RockSwap.
// It handles the terminal UI loop, input mapping, menus, the scoreboard
// and serving sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rockswap/internal/core"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickInterval is the delay between ticks at rate ticks per second. A
// non-positive rate falls back to the default config's rate.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/rockswap/internal/core"
)

func TestTickInterval(t *testing.T) {
	fallback := time.Second / time.Duration(core.DefaultConfig().TickRate)

	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{1, time.Second},
		{0, fallback},
		{-5, fallback},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

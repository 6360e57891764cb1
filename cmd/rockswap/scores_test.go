package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/rockswap/internal/storage"
)

func TestWriteScoresSummary(t *testing.T) {
	all := map[string]*storage.GameStats{
		"rockswap": {
			GameID:     "rockswap",
			GamesCount: 3,
			HighScore:  1250,
			AvgScore:   800,
			BestChain:  4,
			LastPlayed: time.Date(2026, 3, 1, 20, 15, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	writeScoresSummary(&buf, []string{"rockswap", "rockswap_zen"}, all)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header, rule and 2 rows:\n%s", len(lines), buf.String())
	}

	played := strings.Fields(lines[2])
	want := []string{"rockswap", "1250", "3", "800", "x4", "2026-03-01", "20:15"}
	if strings.Join(played, " ") != strings.Join(want, " ") {
		t.Errorf("played row = %q, want %q", played, want)
	}

	unplayed := strings.Fields(lines[3])
	if unplayed[0] != "rockswap_zen" || unplayed[2] != "0" {
		t.Errorf("unplayed row = %q", lines[3])
	}
}

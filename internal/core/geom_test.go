package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if !r.Fits(20, 15) || r.Fits(21, 15) {
		t.Error("Fits should accept the exact size and reject wider areas")
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name             string
		areaW, areaH     int
		w, h             int
		expectX, expectY int
	}{
		{"centered", 80, 24, 20, 10, 30, 7},
		{"exact", 20, 10, 20, 10, 0, 0},
		{"too large", 10, 5, 20, 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := CenteredRect(tc.areaW, tc.areaH, tc.w, tc.h)
			if r.X != tc.expectX || r.Y != tc.expectY {
				t.Errorf("CenteredRect origin = (%d, %d), expected (%d, %d)", r.X, r.Y, tc.expectX, tc.expectY)
			}
			if r.W != tc.w || r.H != tc.h {
				t.Errorf("CenteredRect size = %dx%d, expected %dx%d", r.W, r.H, tc.w, tc.h)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestMsToTicks(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 30}

	tests := []struct {
		ms, expected int
	}{
		{0, 0},
		{-5, 0},
		{1, 1},
		{240, 8},
		{60, 2},
		{1000, 30},
	}

	for _, tc := range tests {
		if got := cfg.MsToTicks(tc.ms); got != tc.expected {
			t.Errorf("MsToTicks(%d) = %d, expected %d", tc.ms, got, tc.expected)
		}
	}

	if got := (RuntimeConfig{}).MsToTicks(1000); got != DefaultConfig().TickRate {
		t.Errorf("zero tick rate should fall back to default, got %d", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{" Bright_Cyan ", ColorBrightCyan, true},
		{"grey", ColorGray, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		c, ok := ParseColor(tc.name)
		if c != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%d, %v), expected (%d, %v)", tc.name, c, ok, tc.expected, tc.ok)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionLeft, ActionSelect)

	if !f.Has(ActionLeft) || !f.Has(ActionSelect) {
		t.Error("FrameOf should set every given action")
	}
	if f.Has(ActionHint) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}

	var zero InputFrame
	if zero.Has(ActionUp) || !zero.Empty() {
		t.Error("zero frame should be empty")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

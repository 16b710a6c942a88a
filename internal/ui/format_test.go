// ABOUTME: Tests for display formatting helpers
// ABOUTME: Covers clock strings, bars, and truncation
package ui

import "testing"

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{5.4, "0:05"},
		{59.9, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{600, "10:00"},
		{-3, "0:00"},
	}

	for _, c := range cases {
		if got := FormatClock(c.seconds); got != c.want {
			t.Errorf("FormatClock(%v) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestRenderBar(t *testing.T) {
	if got := renderBar(50, 100, 10); got != "█████░░░░░" {
		t.Errorf("expected half-filled bar, got %q", got)
	}
	if got := renderBar(0, 100, 4); got != "░░░░" {
		t.Errorf("expected empty bar, got %q", got)
	}
	if got := renderBar(100, 100, 4); got != "████" {
		t.Errorf("expected full bar, got %q", got)
	}
	// Overshoot clamps instead of overflowing the width.
	if got := renderBar(150, 100, 4); got != "████" {
		t.Errorf("expected clamped bar, got %q", got)
	}
	if got := renderBar(1, 0, 4); len([]rune(got)) != 4 {
		t.Errorf("expected 4-cell bar with zero max, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected unmodified string, got %q", got)
	}
	if got := truncate("a longer string", 9); got != "a long..." {
		t.Errorf("expected truncated string, got %q", got)
	}
}

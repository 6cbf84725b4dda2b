package core

import (
	"math"
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{420, 0, 420, 420},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{120, time.Second / 120},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.TickInterval(); got != tc.expected {
			t.Errorf("TickInterval() at %d Hz = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		n        int
		expected Rect
	}{
		{"border", NewRect(13, 1, 53, 18), 1, NewRect(14, 2, 51, 16)},
		{"zero", NewRect(2, 3, 4, 5), 0, NewRect(2, 3, 4, 5)},
		{"collapses", NewRect(0, 0, 3, 1), 1, NewRect(1, 1, 1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.n); got != tc.expected {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	r := NewRect(13, 1, 53, 18)

	tests := []struct {
		w, h     int
		expected Rect
	}{
		{15, 5, NewRect(32, 7, 15, 5)},
		{53, 18, r},
		{16, 6, NewRect(31, 7, 16, 6)},
	}

	for _, tc := range tests {
		if got := r.Centered(tc.w, tc.h); got != tc.expected {
			t.Errorf("Centered(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
		}
	}
}

func TestCellIndex(t *testing.T) {
	tests := []struct {
		v, extent float64
		n, want   int
	}{
		{0, 800, 51, 0},
		{400, 800, 51, 25},
		{800, 800, 51, 50},
		{-10, 800, 51, 0},
		{900, 800, 51, 50},
		{100, 0, 51, 0},
		{100, 800, 0, 0},
	}

	for _, tc := range tests {
		if got := CellIndex(tc.v, tc.extent, tc.n); got != tc.want {
			t.Errorf("CellIndex(%v, %v, %d) = %d, expected %d", tc.v, tc.extent, tc.n, got, tc.want)
		}
	}
}

func TestFrames(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		expected float64
	}{
		{"60 Hz tick", time.Second / 60, 1},
		{"30 Hz tick", time.Second / 30, 2},
		{"four frames", 4 * time.Second / 60, 4},
		{"100ms", 100 * time.Millisecond, 6},
		{"half frame", 8 * time.Millisecond, 0.48},
		{"zero", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Frames(tc.elapsed)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Frames(%v) = %v, expected %v", tc.elapsed, got, tc.expected)
			}
			if tc.expected == math.Round(tc.expected) && got != tc.expected {
				t.Errorf("Frames(%v) = %v, expected exactly %v", tc.elapsed, got, tc.expected)
			}
		})
	}
}

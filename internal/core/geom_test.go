package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
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
		{math.Inf(1), 0.0, 10.0, 10.0},
		{math.Inf(-1), 0.0, 10.0, 0.0},
		{math.NaN(), 0.0, 10.0, 0.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.5, 3},
		{2.4, 2},
		{-2.5, -2},
		{-2.6, -3},
		{60, 60},
		{59.999999, 60},
	}
	for _, tc := range tests {
		if got := Round(tc.in); got != tc.want {
			t.Errorf("Round(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if !math.IsInf(Round(math.Inf(1)), 1) {
		t.Error("Round(+Inf) should stay +Inf")
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 10, 10},
		{350, 10, 20},
		{10, 350, 20},
		{0, 180, 180},
		{90, 90, 0},
		{-30, 30, 60},
		{720, 25, 25},
	}
	for _, tc := range tests {
		if got := HueDistance(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAverageColor(t *testing.T) {
	if got := AverageColor(); got != NeutralColor {
		t.Errorf("AverageColor() = %s, want %s", got, NeutralColor)
	}

	single := HueColor(120)
	if got := AverageColor(single); got != single {
		t.Errorf("AverageColor(%s) = %s, want the same color", single, got)
	}

	if got := AverageColor("#ff0000", "not-a-color"); got != "#ff0000" {
		t.Errorf("AverageColor ignoring garbage = %s, want #ff0000", got)
	}
}

func TestHueColorFormat(t *testing.T) {
	c := HueColor(200)
	if len(c) != 7 || c[0] != '#' {
		t.Errorf("HueColor(200) = %q, want #rrggbb", c)
	}
}

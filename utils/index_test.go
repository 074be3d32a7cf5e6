package utils

import "testing"

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{50, 50},
		{100, 100},
		{101, 100},
		{1000, 100},
		{1, 1},
		{0, 1},
		{-5, 1},
	}

	for _, tt := range tests {
		if got := ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCalculateGrowth(t *testing.T) {
	tests := []struct {
		name      string
		today     float64
		yesterday float64
		want      float64
	}{
		{"no activity", 0, 0, 0},
		{"from zero", 100, 0, 100},
		{"doubled", 200, 100, 100},
		{"halved", 50, 100, -50},
		{"flat", 100, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateGrowth(tt.today, tt.yesterday); got != tt.want {
				t.Errorf("CalculateGrowth(%v, %v) = %v, want %v", tt.today, tt.yesterday, got, tt.want)
			}
		})
	}
}

package report

import "testing"

func TestNormalizeScore(t *testing.T) {
	cases := []struct {
		name string
		raw  float64
		want int
	}{
		{"AlreadyNormalized", 76, 76},
		{"Zero", 0, 0},
		{"UpperBound", 100, 100},
		{"LegacyMidScale", 150, 15},
		{"LegacyFullScale", 850, 85},
		{"LegacyOverflowClamped", 1500, 100},
		{"JustOverHundred", 101, 10},
		{"FractionalRounds", 85.5, 86},
		{"LegacyFractionalRounds", 847, 85},
		{"NegativePassesThrough", -5, -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeScore(tc.raw); got != tc.want {
				t.Errorf("NormalizeScore(%v) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

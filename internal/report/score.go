package report

import "math"

// NormalizeScore maps a raw summary score onto the 0-100 report scale.
// Anything above 100 is treated as a legacy out-of-1000 value: divided by
// ten, rounded, and clamped to 100. Values at or below 100 are rounded and
// passed through without a lower clamp. The over-100 rule is a heuristic
// carried over from earlier audit data; values between 100 and 1000 are
// assumed legacy rather than out-of-range.
func NormalizeScore(raw float64) int {
	if raw > 100 {
		scaled := int(math.Round(raw / 10))
		if scaled > 100 {
			scaled = 100
		}
		return scaled
	}
	return int(math.Round(raw))
}

package game

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatAmount renders a currency amount for display: thousands separators,
// at most one decimal, scientific notation past 1e15 and ∞ for infinity.
func FormatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "?"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	case math.Abs(v) >= 1e15:
		return fmt.Sprintf("%.3g", v)
	}
	return humanize.Commaf(math.Round(v*10) / 10)
}

// FormatChance renders a probability in [0,1] as a whole percentage.
func FormatChance(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}

// FormatTime renders minutes since midnight as HH:MM.
func FormatTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60%24, minutes%60)
}

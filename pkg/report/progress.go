package report

import "strings"

// Bar cells.
const (
	filledCell = "█"
	emptyCell  = "░"
)

// Percentage returns actual as a percentage of target, or 0 when target is
// not positive.
func Percentage(actual, target int) float64 {
	if target <= 0 {
		return 0
	}
	return float64(actual) / float64(target) * 100
}

// ProgressBar renders pct as a bar of width cells. Filled cells are rounded
// down and clamped to the bar, so overshooting the target shows a full bar.
func ProgressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(float64(width) * pct / 100)
	filled = max(0, min(filled, width))
	return strings.Repeat(filledCell, filled) + strings.Repeat(emptyCell, width-filled)
}

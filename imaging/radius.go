// Package imaging reproduces the rounded icon masks of the gallery and composes export sheets.
package imaging

import (
	"math"
	"strconv"
	"strings"
)

// MaxRadiusRatio caps corner rounding at half of the shorter edge, a circle or pill
const MaxRadiusRatio = 0.5

// ParseRadius converts a computed border-radius ("22%", "12px", "12") into a ratio
// of the shorter edge of the rendered width x height box. Unparseable values are 0.
func ParseRadius(css string, width, height float64) float64 {
	fields := strings.Fields(strings.TrimSpace(css))
	if len(fields) == 0 {
		return 0
	}
	// elliptical and per-corner forms use the first (top-left horizontal) value
	value := strings.TrimSuffix(fields[0], ",")

	var ratio float64
	switch {
	case strings.HasSuffix(value, "%"):
		pct, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			return 0
		}
		ratio = pct / 100
	default:
		px, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
		if err != nil {
			return 0
		}
		shorter := math.Min(width, height)
		if shorter <= 0 {
			return 0
		}
		ratio = px / shorter
	}

	if math.IsNaN(ratio) || ratio < 0 {
		return 0
	}
	return math.Min(ratio, MaxRadiusRatio)
}

// RadiusFor returns the corner radius in pixels for an image of w x h at the given ratio
func RadiusFor(ratio float64, w, h int) float64 {
	return ratio * float64(min(w, h))
}

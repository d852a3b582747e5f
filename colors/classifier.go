package colors

import (
	"math"
	"regexp"
	"strings"

	"iconhive/models"

	"github.com/lucasb-eyer/go-colorful"
)

var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Classify maps a hex color onto a named bucket. It never fails: unparseable input is black.
func Classify(hex string) models.BucketID {
	c, ok := ParseHex(hex)
	if !ok {
		return models.BucketBlack
	}

	h, s, l := c.Hsl()
	if s < neutralSaturation {
		if l > whiteLightness {
			return models.BucketWhite
		}
		return models.BucketBlack
	}

	best := hueTargets[0]
	bestDistance := HueDistance(h, best.hue)
	for _, target := range hueTargets[1:] {
		if d := HueDistance(h, target.hue); d < bestDistance {
			best, bestDistance = target, d
		}
	}
	return best.id
}

// HueDistance is the circular distance between two hues in degrees
func HueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}

// ParseHex accepts #rgb and #rrggbb, with or without the leading #
func ParseHex(hex string) (colorful.Color, bool) {
	value := strings.TrimSpace(hex)
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	if !hexPattern.MatchString(value) {
		return colorful.Color{}, false
	}

	c, err := colorful.Hex(strings.ToLower(value))
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

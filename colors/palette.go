// Package colors computes the dominant color of an icon and maps it onto the filter palette.
package colors

import (
	"iconhive/models"

	"github.com/lucasb-eyer/go-colorful"
)

// FallbackColor is used whenever an icon yields no pixels or cannot be loaded
const FallbackColor = "#808080"

const (
	// Below this saturation a color is treated as neutral and hue is ignored
	neutralSaturation = 0.12
	// Neutral colors lighter than this are white, the rest black
	whiteLightness = 0.8
)

var palette = []models.Bucket{
	{Kind: models.Wildcard, ID: models.BucketAll, Name: "All"},
	{Kind: models.Named, ID: models.BucketRed, Name: "Red", Color: "#ff0000"},
	{Kind: models.Named, ID: models.BucketOrange, Name: "Orange", Color: "#ffa500"},
	{Kind: models.Named, ID: models.BucketYellow, Name: "Yellow", Color: "#ffff00"},
	{Kind: models.Named, ID: models.BucketGreen, Name: "Green", Color: "#008000"},
	{Kind: models.Named, ID: models.BucketBlue, Name: "Blue", Color: "#0000ff"},
	{Kind: models.Named, ID: models.BucketPurple, Name: "Purple", Color: "#800080"},
	{Kind: models.Named, ID: models.BucketPink, Name: "Pink", Color: "#ffc0cb"},
	{Kind: models.Named, ID: models.BucketBlack, Name: "Black", Color: "#000000", Neutral: true},
	{Kind: models.Named, ID: models.BucketWhite, Name: "White", Color: "#ffffff", Neutral: true},
}

type hueTarget struct {
	id  models.BucketID
	hue float64
}

// hueTargets keeps palette declaration order, which breaks distance ties
var hueTargets = buildHueTargets()

func buildHueTargets() []hueTarget {
	targets := make([]hueTarget, 0, len(palette))
	for _, bucket := range palette {
		if bucket.Kind != models.Named || bucket.Neutral {
			continue
		}
		c, err := colorful.Hex(bucket.Color)
		if err != nil {
			panic("colors: invalid palette color " + bucket.Color)
		}
		h, _, _ := c.Hsl()
		targets = append(targets, hueTarget{id: bucket.ID, hue: h})
	}
	return targets
}

// Palette returns a copy of the filter palette, wildcard first
func Palette() []models.Bucket {
	buckets := make([]models.Bucket, len(palette))
	copy(buckets, palette)
	return buckets
}

// Lookup resolves a bucket id. Empty ids resolve to the wildcard.
func Lookup(id models.BucketID) (models.Bucket, bool) {
	if id == "" {
		return palette[0], true
	}
	for _, bucket := range palette {
		if bucket.ID == id {
			return bucket, true
		}
	}
	return models.Bucket{}, false
}

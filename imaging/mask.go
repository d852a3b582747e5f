package imaging

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so that four curves approximate a circle
const kappa = 0.5522847498

// RoundedMask returns an anti-aliased coverage mask of a w x h rounded rectangle
func RoundedMask(w, h int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}

	rad := float32(math.Max(0, math.Min(radius, float64(min(w, h))/2)))
	fw, fh := float32(w), float32(h)

	r := vector.NewRasterizer(w, h)
	if rad == 0 {
		r.MoveTo(0, 0)
		r.LineTo(fw, 0)
		r.LineTo(fw, fh)
		r.LineTo(0, fh)
		r.ClosePath()
	} else {
		c := rad * kappa
		r.MoveTo(rad, 0)
		r.LineTo(fw-rad, 0)
		r.CubeTo(fw-rad+c, 0, fw, rad-c, fw, rad)
		r.LineTo(fw, fh-rad)
		r.CubeTo(fw, fh-rad+c, fw-rad+c, fh, fw-rad, fh)
		r.LineTo(rad, fh)
		r.CubeTo(rad-c, fh, 0, fh-rad+c, 0, fh-rad)
		r.LineTo(0, rad)
		r.CubeTo(0, rad-c, rad-c, 0, rad, 0)
		r.ClosePath()
	}

	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Single composites img through its rounded-corner clip at natural resolution
func Single(img image.Image, radiusRatio float64) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	mask := RoundedMask(w, h, RadiusFor(radiusRatio, w, h))
	xdraw.DrawMask(dst, dst.Bounds(), img, bounds.Min, mask, image.Point{}, xdraw.Over)
	return dst
}

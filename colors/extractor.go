package colors

import (
	"fmt"
	"image"
	"image/draw"
)

// Dominant returns the most frequent exact RGB color of img as #rrggbb.
// Alpha is ignored. Ties go to the color seen first in row-major order.
func Dominant(img image.Image) string {
	if img == nil || img.Bounds().Empty() {
		return FallbackColor
	}

	source := toNRGBA(img)
	bounds := source.Bounds()

	counts := make(map[uint32]int)
	order := make([]uint32, 0, 64)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := source.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := source.Pix[offset : offset+4 : offset+4]
			key := uint32(pixel[0])<<16 | uint32(pixel[1])<<8 | uint32(pixel[2])
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
			offset += 4
		}
	}

	if len(order) == 0 {
		return FallbackColor
	}

	best := order[0]
	for _, key := range order[1:] {
		if counts[key] > counts[best] {
			best = key
		}
	}
	return fmt.Sprintf("#%06x", best)
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

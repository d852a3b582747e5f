package imaging

import (
	"errors"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

const (
	DefaultCellSize = 256
	DefaultGapRatio = 0.125

	MinCellSize = 16
	MaxCellSize = 1024
)

var ErrNoImages = errors.New("no images to compose")

// SheetItem is one icon of a combined sheet with its own corner rounding
type SheetItem struct {
	Image       image.Image
	RadiusRatio float64
}

// SheetOptions sizes the grid cells; the gap is proportional to the cell edge.
// Zero values select DefaultCellSize and DefaultGapRatio.
type SheetOptions struct {
	CellSize int     `json:"cellSize"`
	GapRatio float64 `json:"gapRatio"`
}

func (o SheetOptions) normalized() SheetOptions {
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	o.CellSize = max(MinCellSize, min(o.CellSize, MaxCellSize))
	if o.GapRatio <= 0 || math.IsNaN(o.GapRatio) {
		o.GapRatio = DefaultGapRatio
	}
	if o.GapRatio > 1 {
		o.GapRatio = 1
	}
	return o
}

// Gap returns the spacing between cells in pixels
func (o SheetOptions) Gap() int {
	n := o.normalized()
	return int(math.Round(float64(n.CellSize) * n.GapRatio))
}

// GridSize lays n images out in a near-square grid
func GridSize(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}

// FitSize scales w x h so that the longer edge equals cell, keeping the aspect ratio
func FitSize(w, h, cell int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if w >= h {
		return cell, max(1, int(math.Round(float64(h)*float64(cell)/float64(w))))
	}
	return max(1, int(math.Round(float64(w)*float64(cell)/float64(h)))), cell
}

// Sheet composes items into one transparent grid image, row by row
func Sheet(items []SheetItem, opts SheetOptions) (*image.RGBA, error) {
	if len(items) == 0 {
		return nil, ErrNoImages
	}

	opts = opts.normalized()
	cell := opts.CellSize
	gap := opts.Gap()
	cols, rows := GridSize(len(items))

	width := cols*cell + (cols-1)*gap
	height := rows*cell + (rows-1)*gap
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))

	for i, item := range items {
		if item.Image == nil {
			continue
		}
		bounds := item.Image.Bounds()
		sw, sh := FitSize(bounds.Dx(), bounds.Dy(), cell)
		if sw == 0 || sh == 0 {
			continue
		}

		scaled := image.NewRGBA(image.Rect(0, 0, sw, sh))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), item.Image, bounds, xdraw.Src, nil)
		mask := RoundedMask(sw, sh, RadiusFor(item.RadiusRatio, sw, sh))

		col, row := i%cols, i/cols
		x := col*(cell+gap) + (cell-sw)/2
		y := row*(cell+gap) + (cell-sh)/2
		xdraw.DrawMask(canvas, image.Rect(x, y, x+sw, y+sh), scaled, image.Point{}, mask, image.Point{}, xdraw.Over)
	}

	return canvas, nil
}

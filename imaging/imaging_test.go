package imaging

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
)

func TestGridSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, cols, rows int
	}{
		{n: 0, cols: 0, rows: 0},
		{n: 1, cols: 1, rows: 1},
		{n: 2, cols: 2, rows: 1},
		{n: 3, cols: 2, rows: 2},
		{n: 4, cols: 2, rows: 2},
		{n: 5, cols: 3, rows: 2},
		{n: 9, cols: 3, rows: 3},
		{n: 10, cols: 4, rows: 3},
	}

	for _, tt := range tests {
		cols, rows := GridSize(tt.n)
		if cols != tt.cols || rows != tt.rows {
			t.Fatalf("GridSize(%d) = %dx%d, want %dx%d", tt.n, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestParseRadius(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		css  string
		w, h float64
		want float64
	}{
		{name: "percent", css: "22%", w: 100, h: 100, want: 0.22},
		{name: "pixels against shorter edge", css: "20px", w: 200, h: 100, want: 0.2},
		{name: "bare number", css: "10", w: 50, h: 80, want: 0.2},
		{name: "first of several values", css: "12px 4px", w: 48, h: 48, want: 0.25},
		{name: "clamped", css: "80%", w: 10, h: 10, want: MaxRadiusRatio},
		{name: "empty", css: "", w: 10, h: 10, want: 0},
		{name: "garbage", css: "auto", w: 10, h: 10, want: 0},
		{name: "negative", css: "-4px", w: 10, h: 10, want: 0},
		{name: "zero box", css: "4px", w: 0, h: 10, want: 0},
	}

	for _, tt := range tests {
		if got := ParseRadius(tt.css, tt.w, tt.h); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("%s: ParseRadius(%q) = %v, want %v", tt.name, tt.css, got, tt.want)
		}
	}
}

func TestRoundedMaskClipsCorners(t *testing.T) {
	t.Parallel()

	mask := RoundedMask(64, 64, 32)
	if a := mask.AlphaAt(0, 0).A; a != 0 {
		t.Fatalf("corner alpha = %d, want 0", a)
	}
	if a := mask.AlphaAt(63, 63).A; a != 0 {
		t.Fatalf("opposite corner alpha = %d, want 0", a)
	}
	if a := mask.AlphaAt(32, 32).A; a != 255 {
		t.Fatalf("center alpha = %d, want 255", a)
	}
	if a := mask.AlphaAt(32, 1).A; a != 255 {
		t.Fatalf("top edge midpoint alpha = %d, want 255", a)
	}
}

func TestRoundedMaskWithoutRadiusIsOpaque(t *testing.T) {
	t.Parallel()

	mask := RoundedMask(8, 4, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if a := mask.AlphaAt(x, y).A; a != 255 {
				t.Fatalf("alpha at %d,%d = %d, want 255", x, y, a)
			}
		}
	}
}

func TestSingleKeepsNaturalSize(t *testing.T) {
	t.Parallel()

	src := solid(120, 80, color.NRGBA{R: 255, A: 255})
	out := Single(src, 0.5)

	if out.Bounds().Dx() != 120 || out.Bounds().Dy() != 80 {
		t.Fatalf("Single size = %v, want 120x80", out.Bounds())
	}
	if a := out.RGBAAt(0, 0).A; a != 0 {
		t.Fatalf("corner alpha = %d, want 0", a)
	}
	if c := out.RGBAAt(60, 40); c.R != 255 || c.A != 255 {
		t.Fatalf("center = %+v, want opaque red", c)
	}
}

func TestSheetLayout(t *testing.T) {
	t.Parallel()

	items := make([]SheetItem, 5)
	for i := range items {
		items[i] = SheetItem{Image: solid(64, 64, color.NRGBA{G: 255, A: 255})}
	}

	sheet, err := Sheet(items, SheetOptions{CellSize: 100, GapRatio: 0.1})
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}

	// 3 columns x 2 rows of 100px cells with 10px gaps
	if sheet.Bounds().Dx() != 320 || sheet.Bounds().Dy() != 210 {
		t.Fatalf("sheet size = %v, want 320x210", sheet.Bounds())
	}
	if c := sheet.RGBAAt(50, 50); c.G != 255 || c.A != 255 {
		t.Fatalf("first cell center = %+v, want opaque green", c)
	}
	if a := sheet.RGBAAt(105, 50).A; a != 0 {
		t.Fatalf("gap alpha = %d, want 0", a)
	}
	// sixth cell is empty
	if a := sheet.RGBAAt(270, 160).A; a != 0 {
		t.Fatalf("empty cell alpha = %d, want 0", a)
	}
}

func TestSheetCentersShorterEdge(t *testing.T) {
	t.Parallel()

	wide := solid(200, 100, color.NRGBA{B: 255, A: 255})
	sheet, err := Sheet([]SheetItem{{Image: wide}}, SheetOptions{CellSize: 100})
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}

	if sheet.Bounds().Dx() != 100 || sheet.Bounds().Dy() != 100 {
		t.Fatalf("sheet size = %v, want 100x100", sheet.Bounds())
	}
	if a := sheet.RGBAAt(50, 10).A; a != 0 {
		t.Fatalf("letterbox alpha = %d, want 0", a)
	}
	if c := sheet.RGBAAt(50, 50); c.B != 255 || c.A != 255 {
		t.Fatalf("center = %+v, want opaque blue", c)
	}
}

func TestSheetRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := Sheet(nil, SheetOptions{}); err != ErrNoImages {
		t.Fatalf("Sheet(nil) error = %v, want ErrNoImages", err)
	}
}

func TestFitSize(t *testing.T) {
	t.Parallel()

	if w, h := FitSize(200, 100, 64); w != 64 || h != 32 {
		t.Fatalf("FitSize(200,100) = %dx%d, want 64x32", w, h)
	}
	if w, h := FitSize(30, 90, 90); w != 30 || h != 90 {
		t.Fatalf("FitSize(30,90) = %dx%d, want 30x90", w, h)
	}
	if w, h := FitSize(0, 10, 64); w != 0 || h != 0 {
		t.Fatalf("FitSize(0,10) = %dx%d, want 0x0", w, h)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := EncodePNG(solid(4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255}))
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		t.Fatalf("encoded data is not a png: %v", err)
	}

	img, format, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "png" || img.Bounds().Dx() != 4 {
		t.Fatalf("Decode = %s %v", format, img.Bounds())
	}

	if _, _, err := Decode([]byte("not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDecodeRejectsOversizedImages(t *testing.T) {
	t.Parallel()

	data, err := EncodePNG(solid(MaxDimension+1, 1, color.NRGBA{A: 255}))
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if _, _, err := Decode(data); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("err = %v, want ErrImageTooLarge", err)
	}

	// a header declaring a huge canvas is refused without reading pixel data
	header := forgedPNGHeader(100000, 100000)
	if _, _, err := Decode(header); !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("forged header err = %v, want ErrImageTooLarge", err)
	}

	data, err = EncodePNG(solid(MaxDimension, 2, color.NRGBA{A: 255}))
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if _, _, err := Decode(data); err != nil {
		t.Fatalf("image at the limit: %v", err)
	}
}

// forgedPNGHeader returns a PNG signature and IHDR chunk with no image data
func forgedPNGHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA

	chunk := append([]byte("IHDR"), ihdr...)
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	buf.Write(chunk)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

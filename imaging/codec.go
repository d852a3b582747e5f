package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/webp"
)

// MaxDimension is the largest width or height Decode accepts
const MaxDimension = 4096

// ErrImageTooLarge is returned for images whose header declares a side above MaxDimension
var ErrImageTooLarge = errors.New("image too large")

// Decode reads a png, jpeg, gif or webp image. The header is checked against MaxDimension
// before any pixel data is allocated.
func Decode(data []byte) (image.Image, string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return nil, "", fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height, MaxDimension, MaxDimension)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// EncodePNG encodes img as PNG
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

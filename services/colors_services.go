package services

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"net/url"

	"iconhive/apperrors"
	"iconhive/colors"
	"iconhive/imaging"
)

const imageSource = "icon"

// ImageLoader fetches and decodes icon artwork without credentials
type ImageLoader struct {
	client *http.Client
}

func NewImageLoader(client *http.Client) *ImageLoader {
	return &ImageLoader{client: client}
}

// Load fetches an http(s) image and decodes it. Every failure is an ImageLoadError.
func (l *ImageLoader) Load(ctx context.Context, imageURL string) (image.Image, error) {
	parsed, err := url.Parse(imageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, apperrors.Wrap(apperrors.ImageLoadError, fmt.Sprintf("invalid image url %q", imageURL), err)
	}

	body, err := upstreamGet(ctx, l.client, imageURL, imageSource)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ImageLoadError, "fetch image", err)
	}

	img, _, err := imaging.Decode(body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ImageLoadError, "decode image", err)
	}
	return img, nil
}

// ColorService computes the dominant color of icons
type ColorService struct {
	images *ImageLoader
}

func NewColorService(images *ImageLoader) *ColorService {
	return &ColorService{images: images}
}

// DominantColor loads the icon at iconURL and returns its most frequent exact color
func (s *ColorService) DominantColor(ctx context.Context, iconURL string) (string, error) {
	img, err := s.images.Load(ctx, iconURL)
	if err != nil {
		return "", err
	}
	return colors.Dominant(img), nil
}

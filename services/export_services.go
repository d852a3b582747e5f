package services

import (
	"context"
	"errors"
	"fmt"
	"image"

	"iconhive/apperrors"
	"iconhive/imaging"
	"iconhive/metrics"
	"iconhive/models"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Clipboard receives exported images. Implementations return apperrors.ErrClipboardDenied
// when the platform refuses or cannot hold an image.
type Clipboard interface {
	WriteImage(ctx context.Context, artifact models.Artifact) error
}

// Downloader hands an exported image to the user as a file
type Downloader interface {
	Download(ctx context.Context, artifact models.Artifact) error
}

// CombinedFilename names a combined sheet of count icons
func CombinedFilename(count int) string {
	return fmt.Sprintf("app-logos-%d.png", count)
}

// Deliver tries the clipboard first and falls back to a download when the clipboard
// is absent or refuses the write. The result tells which path succeeded.
func Deliver(ctx context.Context, clipboard Clipboard, fallback Downloader, artifact models.Artifact, combined bool) (models.DeliveryResult, error) {
	kind := "single"
	clearAfter := models.StatusClearAfter
	if combined {
		kind = "combined"
		clearAfter = models.ToastClearAfter
	}

	result := models.DeliveryResult{Filename: artifact.Filename, ClearAfter: clearAfter.Milliseconds()}

	if clipboard != nil {
		err := clipboard.WriteImage(ctx, artifact)
		if err == nil {
			result.Mode = models.DeliveryCopied
			result.StatusText = statusText(models.DeliveryCopied, artifact.Count, combined)
			metrics.Exports.WithLabelValues(kind, string(result.Mode)).Inc()
			return result, nil
		}
		if !errors.Is(err, apperrors.ErrClipboardDenied) {
			log.WithError(err).Warn("Clipboard write failed, falling back to download")
		}
	}

	if fallback == nil {
		result.Mode = models.DeliveryFailed
		result.StatusText = statusText(models.DeliveryFailed, artifact.Count, combined)
		metrics.Exports.WithLabelValues(kind, string(result.Mode)).Inc()
		return result, apperrors.New(apperrors.ClipboardDenied, "no delivery path available")
	}

	if err := fallback.Download(ctx, artifact); err != nil {
		result.Mode = models.DeliveryFailed
		result.StatusText = statusText(models.DeliveryFailed, artifact.Count, combined)
		metrics.Exports.WithLabelValues(kind, string(result.Mode)).Inc()
		return result, fmt.Errorf("download %s: %w", artifact.Filename, err)
	}

	result.Mode = models.DeliveryDownloaded
	result.StatusText = statusText(models.DeliveryDownloaded, artifact.Count, combined)
	metrics.Exports.WithLabelValues(kind, string(result.Mode)).Inc()
	return result, nil
}

func statusText(mode models.DeliveryMode, count int, combined bool) string {
	if !combined {
		switch mode {
		case models.DeliveryCopied:
			return models.StatusCopied
		case models.DeliveryDownloaded:
			return models.StatusDownloaded
		default:
			return models.StatusFailed
		}
	}

	switch mode {
	case models.DeliveryCopied:
		return fmt.Sprintf("Copied %d logos!", count)
	case models.DeliveryDownloaded:
		return fmt.Sprintf("Downloaded %d logos!", count)
	default:
		return "Failed to export logos"
	}
}

// ExportService renders single icons and combined sheets
type ExportService struct {
	images *ImageLoader
}

func NewExportService(images *ImageLoader) *ExportService {
	return &ExportService{images: images}
}

// RenderSingle reproduces the icon's rounded mask at natural resolution
func (s *ExportService) RenderSingle(ctx context.Context, item models.ExportItem) (models.Artifact, error) {
	img, err := s.images.Load(ctx, item.ImageURL)
	if err != nil {
		return models.Artifact{}, err
	}

	masked := imaging.Single(img, radiusRatio(item, img))
	data, err := imaging.EncodePNG(masked)
	if err != nil {
		return models.Artifact{}, err
	}
	return models.Artifact{
		Filename: models.SingleExportFilename,
		Data:     data,
		Width:    masked.Bounds().Dx(),
		Height:   masked.Bounds().Dy(),
		Count:    1,
	}, nil
}

// RenderCombined loads every item concurrently and composes them into a grid sheet.
// Any image that cannot be loaded fails the export.
func (s *ExportService) RenderCombined(ctx context.Context, items []models.ExportItem, opts imaging.SheetOptions) (models.Artifact, error) {
	if len(items) == 0 {
		return models.Artifact{}, imaging.ErrNoImages
	}

	sheetItems := make([]imaging.SheetItem, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			img, err := s.images.Load(gctx, item.ImageURL)
			if err != nil {
				return err
			}
			sheetItems[i] = imaging.SheetItem{Image: img, RadiusRatio: radiusRatio(item, img)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Artifact{}, err
	}

	sheet, err := imaging.Sheet(sheetItems, opts)
	if err != nil {
		return models.Artifact{}, err
	}
	data, err := imaging.EncodePNG(sheet)
	if err != nil {
		return models.Artifact{}, err
	}
	return models.Artifact{
		Filename: CombinedFilename(len(items)),
		Data:     data,
		Width:    sheet.Bounds().Dx(),
		Height:   sheet.Bounds().Dy(),
		Count:    len(items),
	}, nil
}

// ExportSingle renders and delivers one icon
func (s *ExportService) ExportSingle(ctx context.Context, item models.ExportItem, clipboard Clipboard, fallback Downloader) (models.DeliveryResult, error) {
	artifact, err := s.RenderSingle(ctx, item)
	if err != nil {
		return models.DeliveryResult{Mode: models.DeliveryFailed, StatusText: models.StatusFailed, ClearAfter: models.StatusClearAfter.Milliseconds()}, err
	}
	return Deliver(ctx, clipboard, fallback, artifact, false)
}

// ExportCombined renders and delivers a grid sheet of items
func (s *ExportService) ExportCombined(ctx context.Context, items []models.ExportItem, opts imaging.SheetOptions, clipboard Clipboard, fallback Downloader) (models.DeliveryResult, error) {
	artifact, err := s.RenderCombined(ctx, items, opts)
	if err != nil {
		return models.DeliveryResult{Mode: models.DeliveryFailed, StatusText: statusText(models.DeliveryFailed, len(items), true), ClearAfter: models.ToastClearAfter.Milliseconds()}, err
	}
	return Deliver(ctx, clipboard, fallback, artifact, true)
}

// ItemsFromApps builds export items for displayed apps, using the gallery's icon rounding
func ItemsFromApps(apps []models.EnrichedApp, borderRadius string) []models.ExportItem {
	items := make([]models.ExportItem, 0, len(apps))
	for _, app := range apps {
		items = append(items, models.ExportItem{
			ID:           formatTrackID(app.TrackID),
			ImageURL:     app.ArtworkURL100,
			BorderRadius: borderRadius,
		})
	}
	return items
}

// radiusRatio resolves the item's rounding against its rendered box, or the natural size when no box is given
func radiusRatio(item models.ExportItem, img image.Image) float64 {
	width, height := item.Width, item.Height
	if width <= 0 || height <= 0 {
		width = float64(img.Bounds().Dx())
		height = float64(img.Bounds().Dy())
	}
	return imaging.ParseRadius(item.BorderRadius, width, height)
}

package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"iconhive/apperrors"
	"iconhive/colors"
	"iconhive/metrics"
	"iconhive/models"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var tracer = otel.Tracer("iconhive/services")

// CatalogSource loads catalog records
type CatalogSource interface {
	Load(ctx context.Context) ([]models.CatalogRecord, error)
}

// MetadataSource looks store ids up
type MetadataSource interface {
	FetchDetails(ctx context.Context, ids []string) ([]models.StoreApp, error)
}

// ColorSource computes the dominant color of an icon
type ColorSource interface {
	DominantColor(ctx context.Context, iconURL string) (string, error)
}

// Pipeline joins the catalog, the store metadata and the icon colors into the display list
type Pipeline struct {
	catalog CatalogSource
	lookup  MetadataSource
	colors  ColorSource
	workers int
	locale  language.Tag
}

func NewPipeline(catalog CatalogSource, lookup MetadataSource, colorSource ColorSource, workers int, locale string) *Pipeline {
	if workers <= 0 {
		workers = 1
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Pipeline{catalog: catalog, lookup: lookup, colors: colorSource, workers: workers, locale: tag}
}

// Categories returns the category tabs of the current catalog
func (p *Pipeline) Categories(ctx context.Context) ([]string, error) {
	records, err := p.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(records), nil
}

// View runs load, filter, enrich, extract, classify, color filter and sort, in that order.
// An unavailable catalog yields an empty list; a failed lookup is returned.
func (p *Pipeline) View(ctx context.Context, state models.ViewState) ([]models.EnrichedApp, error) {
	ctx, span := tracer.Start(ctx, "pipeline.view")
	defer span.End()

	startTime := time.Now()
	apps, err := p.view(ctx, state)
	outcome := "ok"
	if err != nil {
		outcome = string(apperrors.CodeOf(err))
		if outcome == "" {
			outcome = "error"
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	metrics.PipelineRuns.WithLabelValues(outcome).Inc()
	metrics.PipelineDuration.Observe(time.Since(startTime).Seconds())
	span.SetAttributes(attribute.Int("apps.count", len(apps)))
	return apps, err
}

func (p *Pipeline) view(ctx context.Context, state models.ViewState) ([]models.EnrichedApp, error) {
	bucket, ok := colors.Lookup(state.Color)
	if !ok {
		return nil, apperrors.Wrap(apperrors.InvalidParameter, "unknown color filter "+string(state.Color), nil)
	}
	search := strings.TrimSpace(state.Search)

	records, err := p.loadCatalog(ctx)
	if err != nil {
		log.WithError(err).Warn("Catalog source unavailable, showing no apps")
		return []models.EnrichedApp{}, nil
	}

	// search widens the scope to every category
	if search != "" {
		records = SearchRecords(records, search)
	} else {
		records = FilterByCategory(records, state.Category)
	}
	if len(records) == 0 {
		return []models.EnrichedApp{}, nil
	}

	apps, err := p.enrich(ctx, records)
	if err != nil {
		return nil, err
	}

	p.extractColors(ctx, apps)

	filtered := apps[:0]
	for _, app := range apps {
		app.ColorBucket = colors.Classify(app.DominantColor)
		if bucket.Matches(app.ColorBucket) {
			filtered = append(filtered, app)
		}
	}

	SortByName(filtered, p.locale)
	return filtered, nil
}

func (p *Pipeline) loadCatalog(ctx context.Context) ([]models.CatalogRecord, error) {
	ctx, span := tracer.Start(ctx, "pipeline.load_catalog")
	defer span.End()

	records, err := p.catalog.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("records.count", len(records)))
	return records, nil
}

func (p *Pipeline) enrich(ctx context.Context, records []models.CatalogRecord) ([]models.EnrichedApp, error) {
	ctx, span := tracer.Start(ctx, "pipeline.enrich")
	defer span.End()

	ids := StoreIDs(records)
	span.SetAttributes(attribute.Int("ids.count", len(ids)))

	storeApps, err := p.lookup.FetchDetails(ctx, ids)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return Enrich(records, storeApps), nil
}

// extractColors fills DominantColor in place. A failing icon gets colors.FallbackColor.
func (p *Pipeline) extractColors(ctx context.Context, apps []models.EnrichedApp) {
	ctx, span := tracer.Start(ctx, "pipeline.extract_colors")
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range apps {
		g.Go(func() error {
			apps[i].DominantColor = p.dominantColor(gctx, apps[i])
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Pipeline) dominantColor(ctx context.Context, app models.EnrichedApp) string {
	if app.ArtworkURL100 == "" {
		metrics.ColorFallbacks.Inc()
		return colors.FallbackColor
	}

	color, err := p.colors.DominantColor(ctx, app.ArtworkURL100)
	if err != nil {
		metrics.ColorFallbacks.Inc()
		log.WithFields(log.Fields{
			"track_id": app.TrackID,
			"artwork":  app.ArtworkURL100,
		}).WithError(err).Debug("Color extraction failed, using fallback")
		return colors.FallbackColor
	}
	return color
}

// SortByName orders apps by display name with locale-aware comparison
func SortByName(apps []models.EnrichedApp, locale language.Tag) {
	collator := collate.New(locale)
	sort.SliceStable(apps, func(i, j int) bool {
		return collator.CompareString(apps[i].TrackName, apps[j].TrackName) < 0
	})
}

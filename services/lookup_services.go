package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"iconhive/apperrors"
	"iconhive/config"
	"iconhive/models"

	"golang.org/x/sync/errgroup"
)

const lookupSource = "store_lookup"

// LookupService queries the store lookup service for app metadata
type LookupService struct {
	client *http.Client
	cfg    config.Config
}

func NewLookupService(cfg config.Config, client *http.Client) *LookupService {
	return &LookupService{client: client, cfg: cfg}
}

// FetchDetails looks ids up in batches of models.LookupBatchSize, all issued concurrently.
// Results are flattened in batch order; the service may reorder results inside a batch,
// so callers join by TrackID. One failed batch fails the whole call.
func (s *LookupService) FetchDetails(ctx context.Context, ids []string) ([]models.StoreApp, error) {
	batches := Batch(ids, models.LookupBatchSize)
	if len(batches) == 0 {
		return []models.StoreApp{}, nil
	}

	results := make([][]models.StoreApp, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		g.Go(func() error {
			apps, err := s.fetchBatch(gctx, batch)
			if err != nil {
				return fmt.Errorf("batch %d: %w", i, err)
			}
			results[i] = apps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.UpstreamError, "fetch app details", err)
	}

	total := 0
	for _, apps := range results {
		total += len(apps)
	}
	flattened := make([]models.StoreApp, 0, total)
	for _, apps := range results {
		flattened = append(flattened, apps...)
	}
	return flattened, nil
}

func (s *LookupService) fetchBatch(ctx context.Context, ids []string) ([]models.StoreApp, error) {
	body, err := upstreamGet(ctx, s.client, s.cfg.LookupQueryURL(ids), lookupSource)
	if err != nil {
		return nil, err
	}

	var response models.LookupResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode lookup response: %w", err)
	}
	if response.Results == nil {
		return []models.StoreApp{}, nil
	}
	return response.Results, nil
}

// Batch splits ids into contiguous groups of at most size
func Batch(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	batches := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		batches = append(batches, ids[start:end])
	}
	return batches
}

// Enrich joins store results with catalog records on app_store_id == trackId.
// Matched apps take the catalog name; store-only apps keep the store name.
func Enrich(records []models.CatalogRecord, apps []models.StoreApp) []models.EnrichedApp {
	byStoreID := make(map[string]models.CatalogRecord, len(records))
	for _, record := range records {
		if _, exists := byStoreID[record.AppStoreID]; !exists {
			byStoreID[record.AppStoreID] = record
		}
	}

	enriched := make([]models.EnrichedApp, 0, len(apps))
	for _, app := range apps {
		entry := models.EnrichedApp{
			TrackID:          app.TrackID,
			TrackName:        app.TrackName,
			ArtworkURL100:    app.ArtworkURL100,
			PrimaryGenreName: app.PrimaryGenreName,
			Genres:           app.Genres,
			TrackViewURL:     app.TrackViewURL,
		}
		if record, ok := byStoreID[formatTrackID(app.TrackID)]; ok {
			entry.InCatalog = true
			entry.CatalogID = record.ID
			entry.Category = record.Category
			if record.Name != "" {
				entry.TrackName = record.Name
			}
		}
		enriched = append(enriched, entry)
	}
	return enriched
}

// StoreIDs returns the distinct app_store_ids of records in order
func StoreIDs(records []models.CatalogRecord) []string {
	seen := make(map[string]bool, len(records))
	ids := make([]string, 0, len(records))
	for _, record := range records {
		if seen[record.AppStoreID] {
			continue
		}
		seen[record.AppStoreID] = true
		ids = append(ids, record.AppStoreID)
	}
	return ids
}

func formatTrackID(trackID int64) string {
	return strconv.FormatInt(trackID, 10)
}

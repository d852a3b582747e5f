package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"iconhive/apperrors"
	"iconhive/config"
	"iconhive/models"
)

// lookupServer answers store lookups with one result per id, in reverse order.
// failID makes any batch containing it answer 500.
func lookupServer(t *testing.T, requests *atomic.Int32, failID string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		ids := strings.Split(r.URL.Query().Get("id"), ",")
		if len(ids) > models.LookupBatchSize {
			t.Errorf("batch of %d ids exceeds the limit", len(ids))
		}
		if failID != "" && slices.Contains(ids, failID) {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}

		response := models.LookupResponse{}
		for i := len(ids) - 1; i >= 0; i-- {
			id, _ := strconv.ParseInt(ids[i], 10, 64)
			response.Results = append(response.Results, models.StoreApp{
				TrackID:       id,
				TrackName:     "Store " + ids[i],
				ArtworkURL100: "https://example.com/" + ids[i] + ".png",
			})
		}
		response.ResultCount = len(response.Results)
		json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func numericIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i + 1)
	}
	return ids
}

func TestBatch(t *testing.T) {
	batches := Batch(numericIDs(25), 10)
	if len(batches) != 3 {
		t.Fatalf("len(batches) = %d, want 3", len(batches))
	}
	for i, want := range []int{10, 10, 5} {
		if len(batches[i]) != want {
			t.Errorf("batch %d has %d ids, want %d", i, len(batches[i]), want)
		}
	}
	if batches[2][0] != "21" {
		t.Errorf("third batch starts with %s, want 21", batches[2][0])
	}
	if Batch(nil, 10) != nil {
		t.Error("Batch(nil) should be nil")
	}
}

func TestFetchDetailsIssuesOneRequestPerBatch(t *testing.T) {
	var requests atomic.Int32
	srv := lookupServer(t, &requests, "")
	service := NewLookupService(config.Config{LookupURL: srv.URL + "/lookup"}, srv.Client())

	apps, err := service.FetchDetails(context.Background(), numericIDs(23))
	if err != nil {
		t.Fatalf("FetchDetails: %v", err)
	}
	if requests.Load() != 3 {
		t.Fatalf("requests = %d, want 3", requests.Load())
	}
	if len(apps) != 23 {
		t.Fatalf("len(apps) = %d, want 23", len(apps))
	}

	// batch order is kept, order inside a batch is whatever the service returned
	if apps[0].TrackID != 10 || apps[9].TrackID != 1 || apps[10].TrackID != 20 || apps[22].TrackID != 21 {
		t.Fatalf("unexpected order: first=%d tenth=%d eleventh=%d last=%d",
			apps[0].TrackID, apps[9].TrackID, apps[10].TrackID, apps[22].TrackID)
	}
}

func TestFetchDetailsFailsWholeCall(t *testing.T) {
	var requests atomic.Int32
	srv := lookupServer(t, &requests, "15")
	service := NewLookupService(config.Config{LookupURL: srv.URL}, srv.Client())

	apps, err := service.FetchDetails(context.Background(), numericIDs(23))
	if !errors.Is(err, apperrors.ErrUpstream) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if apps != nil {
		t.Fatalf("apps = %v, want none", apps)
	}
}

func TestFetchDetailsRejectsUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := NewLookupService(config.Config{LookupURL: srv.URL}, srv.Client()).FetchDetails(context.Background(), []string{"1"})
	if apperrors.CodeOf(err) != apperrors.UpstreamError {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
}

func TestFetchDetailsWithoutIDsMakesNoRequest(t *testing.T) {
	var requests atomic.Int32
	srv := lookupServer(t, &requests, "")

	apps, err := NewLookupService(config.Config{LookupURL: srv.URL}, srv.Client()).FetchDetails(context.Background(), nil)
	if err != nil || len(apps) != 0 {
		t.Fatalf("apps = %v, err = %v", apps, err)
	}
	if requests.Load() != 0 {
		t.Fatalf("requests = %d, want 0", requests.Load())
	}
}

func TestEnrichJoinsOnTrackID(t *testing.T) {
	records := []models.CatalogRecord{
		{ID: 1, Name: "Alpha", AppStoreID: "100", Category: "games"},
		{ID: 2, Name: "Beta", AppStoreID: "200", Category: "tools"},
	}
	storeApps := []models.StoreApp{
		{TrackID: 200, TrackName: "Beta - Store Name"},
		{TrackID: 300, TrackName: "Store Only"},
		{TrackID: 100, TrackName: "Alpha: Deluxe"},
	}

	enriched := Enrich(records, storeApps)
	if len(enriched) != 3 {
		t.Fatalf("len(enriched) = %d", len(enriched))
	}

	if enriched[0].TrackName != "Beta" || enriched[0].Category != "tools" || !enriched[0].InCatalog || enriched[0].CatalogID != 2 {
		t.Errorf("enriched[0] = %+v", enriched[0])
	}
	if enriched[1].TrackName != "Store Only" || enriched[1].InCatalog {
		t.Errorf("store-only app = %+v", enriched[1])
	}
	if enriched[2].TrackName != "Alpha" {
		t.Errorf("enriched[2] = %+v", enriched[2])
	}

	again := Enrich(records, storeApps)
	for i := range enriched {
		if again[i].TrackID != enriched[i].TrackID || again[i].TrackName != enriched[i].TrackName {
			t.Fatalf("Enrich is not deterministic at %d", i)
		}
	}
}

func TestStoreIDsDeduplicates(t *testing.T) {
	records := []models.CatalogRecord{{AppStoreID: "1"}, {AppStoreID: "2"}, {AppStoreID: "1"}}
	if got := StoreIDs(records); !slices.Equal(got, []string{"1", "2"}) {
		t.Fatalf("StoreIDs = %v", got)
	}
}
